package orchestrator

import (
	"context"

	"github.com/pkg/errors"
)

// DefaultDataDiskSKU is the fallback tier used when a data disk named in the
// manifest is no longer attached to the VM and its tier cannot be resolved.
const DefaultDataDiskSKU = "Standard_LRS"

//go:generate counterfeiter -o fakes/fake_executable.go . Executable
type Executable interface {
	Execute() error
}

//go:generate counterfeiter -o fakes/fake_executor.go . Executor
type Executor interface {
	Run([][]Executable) []error
}

// DiskRecreator creates one new managed disk per manifest entry of the
// selected restore point, under the original name plus the request suffix.
// Tiers come from the disks currently attached to the VM, not from the
// restore point, which carries none. Every creation must succeed before the
// VM mutation sequence is allowed to begin; disks created before a failure
// are left in place for manual cleanup.
type DiskRecreator struct {
	client   CloudClient
	logger   Logger
	executor Executor
}

func NewDiskRecreator(client CloudClient, logger Logger, executor Executor) *DiskRecreator {
	return &DiskRecreator{client: client, logger: logger, executor: executor}
}

func (r *DiskRecreator) Recreate(ctx context.Context, session *Session) ([]CreatedDisk, error) {
	vm := session.VM()
	restorePoint := session.RestorePoint()
	request := session.Request()

	osTier, err := r.osDiskTier(ctx, vm, restorePoint)
	if err != nil {
		return nil, err
	}

	tags := map[string]string{
		"restore-run-id":       session.RunID(),
		"source-restore-point": restorePoint.Name,
	}

	var created []CreatedDisk
	var batches [][]Executable

	batches = append(batches, []Executable{diskCreationExecutable{
		ctx:           ctx,
		client:        r.client,
		logger:        r.logger,
		resourceGroup: vm.ResourceGroup,
		spec: DiskSpec{
			Name:                 restorePoint.OSDisk.Name + request.Suffix,
			SourceRestorePointID: restorePoint.OSDisk.DiskRestorePointID,
			SKU:                  osTier,
			Location:             vm.Location,
			Zones:                vm.Zones,
			Tags:                 tags,
		},
		source:  restorePoint.OSDisk,
		os:      true,
		results: &created,
	}})

	for _, manifestDisk := range restorePoint.DataDisks {
		tier, err := r.dataDiskTier(ctx, vm, manifestDisk)
		if err != nil {
			return nil, err
		}

		batches = append(batches, []Executable{diskCreationExecutable{
			ctx:           ctx,
			client:        r.client,
			logger:        r.logger,
			resourceGroup: vm.ResourceGroup,
			spec: DiskSpec{
				Name:                 manifestDisk.Name + request.Suffix,
				SourceRestorePointID: manifestDisk.DiskRestorePointID,
				SKU:                  tier,
				Location:             vm.Location,
				Zones:                vm.Zones,
				Tags:                 tags,
			},
			source:  manifestDisk,
			results: &created,
		}})
	}

	if errs := r.executor.Run(batches); len(errs) != 0 {
		return created, NewDiskCreationError(errs[0])
	}

	return created, nil
}

// osDiskTier assumes the VM's current OS disk is the manifest OS disk; a
// name mismatch means the tier cannot be trusted and the run must stop
// before anything is created.
func (r *DiskRecreator) osDiskTier(ctx context.Context, vm VM, restorePoint RestorePoint) (string, error) {
	if vm.OSDisk.Name != restorePoint.OSDisk.Name {
		return "", NewTierLookupError("VM's current OS disk '%s' does not match the restore point's OS disk '%s'",
			vm.OSDisk.Name, restorePoint.OSDisk.Name)
	}

	disk, err := r.client.GetDisk(ctx, vm.ResourceGroup, vm.OSDisk.Name)
	if err != nil {
		return "", TierLookupError{errors.Wrapf(err, "failed to read tier of OS disk '%s'", vm.OSDisk.Name)}
	}
	return disk.SKU, nil
}

func (r *DiskRecreator) dataDiskTier(ctx context.Context, vm VM, manifestDisk ManifestDisk) (string, error) {
	for _, attached := range vm.DataDisks {
		if attached.Name != manifestDisk.Name {
			continue
		}
		disk, err := r.client.GetDisk(ctx, vm.ResourceGroup, attached.Name)
		if err != nil {
			return "", TierLookupError{errors.Wrapf(err, "failed to read tier of data disk '%s'", attached.Name)}
		}
		return disk.SKU, nil
	}

	r.logger.Warn("disks", "Data disk '%s' from the restore point is not attached to VM '%s'; falling back to tier %s",
		manifestDisk.Name, vm.Name, DefaultDataDiskSKU)
	return DefaultDataDiskSKU, nil
}

type diskCreationExecutable struct {
	ctx           context.Context
	client        CloudClient
	logger        Logger
	resourceGroup string
	spec          DiskSpec
	source        ManifestDisk
	os            bool
	results       *[]CreatedDisk
}

func (e diskCreationExecutable) Execute() error {
	e.logger.Info("disks", "Creating disk '%s' (tier %s) from restore point", e.spec.Name, e.spec.SKU)

	disk, err := e.client.CreateDisk(e.ctx, e.resourceGroup, e.spec)
	if err != nil {
		return errors.Wrapf(err, "failed to create disk '%s'", e.spec.Name)
	}

	*e.results = append(*e.results, CreatedDisk{Disk: disk, Source: e.source, OS: e.os})
	return nil
}
