package orchestrator

import "context"

type ResolveVMStep struct {
	client CloudClient
	logger Logger
}

func NewResolveVMStep(client CloudClient, logger Logger) Step {
	return &ResolveVMStep{client: client, logger: logger}
}

func (s *ResolveVMStep) Run(ctx context.Context, session *Session) error {
	request := session.Request()
	s.logger.Info("restore", "Resolving VM '%s' in resource group '%s'", request.VMName, request.ResourceGroup)

	vm, err := s.client.GetVM(ctx, request.ResourceGroup, request.VMName)
	if err != nil {
		return err
	}

	session.SetVM(vm)
	s.logger.Debug("restore", "VM '%s': size %s, location %s, %d data disk(s)",
		vm.Name, vm.Size, vm.Location, len(vm.DataDisks))
	return nil
}
