package toggle

import "context"

// VMProfile is everything the pre-flight validation needs to know about a
// VM, gathered in a single inspector call.
type VMProfile struct {
	Name             string
	ResourceGroup    string
	Location         string
	Size             string
	PremiumIOCapable bool
	InScaleSet       bool
	EphemeralOSDisk  bool
	Disks            []DiskProfile
}

type DiskProfile struct {
	Name                    string
	SKU                     string
	OS                      bool
	WriteAcceleratorEnabled bool
	Shared                  bool
}

//go:generate counterfeiter -o fakes/fake_inspector.go . Inspector
type Inspector interface {
	Profile(ctx context.Context, resourceGroup, vmName string) (VMProfile, error)
}

//go:generate counterfeiter -o fakes/fake_patcher.go . Patcher

// Patcher flips the periodic restore points flag on the VM resource. The
// update is idempotent: setting a flag to its current value succeeds.
type Patcher interface {
	SetPeriodicRestorePoints(ctx context.Context, resourceGroup, vmName string, enabled bool) (string, error)
}
