package orchestrator

import "context"

// PreRestoreDiskSetStep records the disk references attached to the VM
// before any mutation, so the superseded disks can be named in the summary
// and deleted manually later. The tool never deletes them itself.
type PreRestoreDiskSetStep struct {
	logger Logger
}

func NewPreRestoreDiskSetStep(logger Logger) Step {
	return &PreRestoreDiskSetStep{logger: logger}
}

func (s *PreRestoreDiskSetStep) Run(ctx context.Context, session *Session) error {
	vm := session.VM()

	disks := []DiskRef{vm.OSDisk}
	disks = append(disks, vm.DataDisks...)
	session.SetPreRestoreDisks(disks)

	s.logger.Debug("restore", "Captured pre-restore disk set: %d disk(s)", len(disks))
	return nil
}
