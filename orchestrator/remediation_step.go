package orchestrator

import (
	"context"
	"time"
)

// RemediationStep runs when the mutation sequence fails part-way. There is
// no automatic rollback: a second automated failure on top of a partial one
// would be worse than handing over to the operator. The step names what
// failed and which disks made up the pre-restore configuration so the VM can
// be recovered by hand.
type RemediationStep struct {
	writer ReportWriter
	logger Logger
	now    func() time.Time
}

func NewRemediationStep(writer ReportWriter, logger Logger) Step {
	return &RemediationStep{writer: writer, logger: logger, now: time.Now}
}

func (s *RemediationStep) Run(ctx context.Context, session *Session) error {
	request := session.Request()

	s.logger.Error("restore", "Restore of VM '%s' failed during step '%s'; the VM has NOT been rolled back",
		request.VMName, session.FailedStep())
	s.logger.Error("restore", "Manual recovery: inspect the VM in resource group '%s', reattach the original disks if needed, then start the VM", request.ResourceGroup)

	for _, disk := range session.PreRestoreDisks() {
		s.logger.Error("restore", "Original disk: %s", disk.Name)
	}
	for _, disk := range session.CreatedDisks() {
		s.logger.Error("restore", "Disk created by this run (delete manually if unwanted): %s", disk.Disk.Name)
	}

	if _, err := s.writer.Write(buildReport(session, s.now())); err != nil {
		s.logger.Warn("restore", "Could not write restore report: %s", err)
	}
	return nil
}
