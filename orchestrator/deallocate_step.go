package orchestrator

import "context"

const StepDeallocate = "deallocate"

type DeallocateStep struct {
	client CloudClient
	logger Logger
}

func NewDeallocateStep(client CloudClient, logger Logger) Step {
	return &DeallocateStep{client: client, logger: logger}
}

func (s *DeallocateStep) Run(ctx context.Context, session *Session) error {
	request := session.Request()

	state, err := s.client.PowerState(ctx, request.ResourceGroup, request.VMName)
	if err != nil {
		session.SetFailedStep(StepDeallocate)
		return NewMutationError(StepDeallocate, err)
	}

	if state == PowerStateDeallocated {
		s.logger.Info("restore", "VM '%s' is already deallocated, skipping", request.VMName)
		return nil
	}

	s.logger.Info("restore", "Deallocating VM '%s'", request.VMName)
	if err := s.client.DeallocateVM(ctx, request.ResourceGroup, request.VMName); err != nil {
		session.SetFailedStep(StepDeallocate)
		return NewMutationError(StepDeallocate, err)
	}
	return nil
}
