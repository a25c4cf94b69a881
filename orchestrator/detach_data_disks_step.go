package orchestrator

import "context"

const StepDetachDataDisks = "detach-data-disks"

type DetachDataDisksStep struct {
	client CloudClient
	logger Logger
}

func NewDetachDataDisksStep(client CloudClient, logger Logger) Step {
	return &DetachDataDisksStep{client: client, logger: logger}
}

func (s *DetachDataDisksStep) Run(ctx context.Context, session *Session) error {
	request := session.Request()

	if len(session.VM().DataDisks) == 0 {
		s.logger.Info("restore", "VM '%s' has no data disks attached, nothing to detach", request.VMName)
		return nil
	}

	s.logger.Info("restore", "Detaching %d data disk(s) from VM '%s'", len(session.VM().DataDisks), request.VMName)
	if err := s.client.DetachAllDataDisks(ctx, request.ResourceGroup, request.VMName); err != nil {
		session.SetFailedStep(StepDetachDataDisks)
		return NewMutationError(StepDetachDataDisks, err)
	}
	return nil
}
