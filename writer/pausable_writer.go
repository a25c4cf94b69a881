package writer

import (
	"bytes"
	"io"
	"sync"
)

// PausableWriter buffers writes while paused and flushes them on resume.
// The CLI pauses log output while the interrupt prompt is waiting for an
// answer so the question is not scrolled away.
type PausableWriter struct {
	out    io.Writer
	mutex  sync.Mutex
	paused bool
	buffer bytes.Buffer
}

func NewPausableWriter(out io.Writer) *PausableWriter {
	return &PausableWriter{out: out}
}

func (w *PausableWriter) Write(b []byte) (int, error) {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if w.paused {
		return w.buffer.Write(b)
	}
	return w.out.Write(b)
}

func (w *PausableWriter) Pause() {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	w.paused = true
}

func (w *PausableWriter) Resume() error {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	w.paused = false
	_, err := io.Copy(w.out, &w.buffer)
	w.buffer.Reset()
	return err
}
