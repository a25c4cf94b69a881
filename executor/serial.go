package executor

import "github.com/compute-tools/vm-restore-points/orchestrator"

func NewSerialExecutor() SerialExecutor {
	return SerialExecutor{}
}

type SerialExecutor struct {
}

// Run executes batches strictly in order and stops at the first failure.
// Executables after a failed one must never run: the caller treats anything
// already executed as committed and aborts the rest of its sequence.
func (s SerialExecutor) Run(executablesList [][]orchestrator.Executable) []error {
	for _, executables := range executablesList {
		for _, executable := range executables {
			if err := executable.Execute(); err != nil {
				return []error{err}
			}
		}
	}

	return nil
}
