package toggle

import (
	"context"

	"github.com/pkg/errors"

	"github.com/compute-tools/vm-restore-points/orchestrator"
)

type Toggler struct {
	inspector Inspector
	patcher   Patcher
	validator Validator
	logger    orchestrator.Logger
}

func NewToggler(inspector Inspector, patcher Patcher, validator Validator, logger orchestrator.Logger) Toggler {
	return Toggler{
		inspector: inspector,
		patcher:   patcher,
		validator: validator,
		logger:    logger,
	}
}

// Toggle sets the periodic restore points flag. Enabling runs the full
// validation pass first; disabling patches unconditionally. Returns the
// response payload from the update for the CLI to print.
func (t Toggler) Toggle(ctx context.Context, resourceGroup, vmName string, enabled bool) (string, error) {
	if enabled {
		profile, err := t.inspector.Profile(ctx, resourceGroup, vmName)
		if err != nil {
			return "", errors.Wrapf(err, "failed to inspect VM '%s'", vmName)
		}

		if err := t.validator.Validate(profile); err != nil {
			return "", err
		}
		t.logger.Info("toggle", "All pre-flight checks passed for VM '%s'", vmName)
	}

	t.logger.Info("toggle", "Setting periodic restore points on VM '%s' to %t", vmName, enabled)
	payload, err := t.patcher.SetPeriodicRestorePoints(ctx, resourceGroup, vmName, enabled)
	if err != nil {
		return "", errors.Wrapf(err, "failed to update VM '%s'", vmName)
	}
	return payload, nil
}
