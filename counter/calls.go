package counter

import "sync"

// Calls counts named operations. The dry-run client records every mutating
// call it suppressed here, so a run can be verified to have issued zero real
// mutations.
type Calls struct {
	mutex sync.RWMutex
	ops   []string
}

func NewCalls() *Calls {
	return &Calls{}
}

func (c *Calls) Add(op string) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.ops = append(c.ops, op)
}

func (c *Calls) Count() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.ops)
}

func (c *Calls) Ops() []string {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	ops := make([]string, len(c.ops))
	copy(ops, c.ops)
	return ops
}
