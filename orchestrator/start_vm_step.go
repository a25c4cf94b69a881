package orchestrator

import "context"

const StepStartVM = "start"

type StartVMStep struct {
	client CloudClient
	logger Logger
}

func NewStartVMStep(client CloudClient, logger Logger) Step {
	return &StartVMStep{client: client, logger: logger}
}

func (s *StartVMStep) Run(ctx context.Context, session *Session) error {
	request := session.Request()

	s.logger.Info("restore", "Starting VM '%s'", request.VMName)
	if err := s.client.StartVM(ctx, request.ResourceGroup, request.VMName); err != nil {
		session.SetFailedStep(StepStartVM)
		return NewMutationError(StepStartVM, err)
	}
	return nil
}
