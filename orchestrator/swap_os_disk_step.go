package orchestrator

import (
	"context"

	"github.com/pkg/errors"
)

const StepSwapOSDisk = "swap-os-disk"

type SwapOSDiskStep struct {
	client CloudClient
	logger Logger
}

func NewSwapOSDiskStep(client CloudClient, logger Logger) Step {
	return &SwapOSDiskStep{client: client, logger: logger}
}

func (s *SwapOSDiskStep) Run(ctx context.Context, session *Session) error {
	request := session.Request()

	osDisk, ok := session.CreatedOSDisk()
	if !ok {
		session.SetFailedStep(StepSwapOSDisk)
		return NewMutationError(StepSwapOSDisk, errors.New("no restored OS disk recorded for this run"))
	}

	s.logger.Info("restore", "Replacing OS disk of VM '%s' with '%s'", request.VMName, osDisk.Disk.Name)
	if err := s.client.SetOSDisk(ctx, request.ResourceGroup, request.VMName, osDisk.Disk); err != nil {
		session.SetFailedStep(StepSwapOSDisk)
		return NewMutationError(StepSwapOSDisk, err)
	}
	return nil
}
