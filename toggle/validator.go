package toggle

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"
)

// Disk tiers the periodic restore points feature does not support.
var unsupportedDiskSKUs = map[string]bool{
	"UltraSSD_LRS":  true,
	"PremiumV2_LRS": true,
}

// Validator runs every pre-flight check and collects all failures before
// reporting, so the operator sees the complete remediation list in one run
// instead of one check per attempt.
type Validator struct {
}

func NewValidator() Validator {
	return Validator{}
}

func (v Validator) Validate(profile VMProfile) error {
	var failures []error

	if !profile.PremiumIOCapable {
		failures = append(failures, errors.Errorf("VM size '%s' does not support premium storage, which periodic restore points require", profile.Size))
	}
	if profile.InScaleSet {
		failures = append(failures, errors.Errorf("VM '%s' is a member of a scale set, which is not supported", profile.Name))
	}
	if profile.EphemeralOSDisk {
		failures = append(failures, errors.Errorf("VM '%s' uses an ephemeral OS disk, which is not supported", profile.Name))
	}

	for _, disk := range profile.Disks {
		if disk.WriteAcceleratorEnabled {
			failures = append(failures, errors.Errorf("disk '%s' has write accelerator enabled, which is not supported", disk.Name))
		}
		if disk.Shared {
			failures = append(failures, errors.Errorf("disk '%s' is provisioned for shared (multi-attach) use, which is not supported", disk.Name))
		}
		if unsupportedDiskSKUs[disk.SKU] {
			failures = append(failures, errors.Errorf("disk '%s' uses unsupported tier '%s'", disk.Name, disk.SKU))
		}
	}

	if len(failures) == 0 {
		return nil
	}
	return ValidationErrors(failures)
}

type ValidationErrors []error

func (errs ValidationErrors) Error() string {
	buffer := bytes.NewBufferString(fmt.Sprintf("VM cannot enable periodic restore points, %d check(s) failed:\n", len(errs)))
	for _, err := range errs {
		fmt.Fprintf(buffer, "  - %s\n", err.Error())
	}
	return buffer.String()
}
