package azure

import (
	"context"

	"github.com/compute-tools/vm-restore-points/counter"
	"github.com/compute-tools/vm-restore-points/orchestrator"
)

// DryRunClient passes reads through to the wrapped client and suppresses
// every mutating call, logging what would have happened and recording it in
// the counter. A dry run therefore produces the same selection and
// validation output as a real run while the wrapped client issues zero
// mutations.
type DryRunClient struct {
	orchestrator.CloudClient

	logger    orchestrator.Logger
	mutations *counter.Calls
}

func NewDryRunClient(client orchestrator.CloudClient, logger orchestrator.Logger, mutations *counter.Calls) *DryRunClient {
	return &DryRunClient{
		CloudClient: client,
		logger:      logger,
		mutations:   mutations,
	}
}

func (c *DryRunClient) CreateDisk(ctx context.Context, resourceGroup string, spec orchestrator.DiskSpec) (orchestrator.Disk, error) {
	c.mutations.Add("create-disk")
	c.logger.Info("dry-run", "Would create disk '%s' (tier %s) from %s", spec.Name, spec.SKU, spec.SourceRestorePointID)
	return orchestrator.Disk{
		Name:  spec.Name,
		ID:    "dry-run:" + spec.Name,
		SKU:   spec.SKU,
		Zones: spec.Zones,
	}, nil
}

func (c *DryRunClient) DeallocateVM(ctx context.Context, resourceGroup, name string) error {
	c.mutations.Add("deallocate")
	c.logger.Info("dry-run", "Would deallocate VM '%s'", name)
	return nil
}

func (c *DryRunClient) DetachAllDataDisks(ctx context.Context, resourceGroup, name string) error {
	c.mutations.Add("detach-data-disks")
	c.logger.Info("dry-run", "Would detach all data disks from VM '%s'", name)
	return nil
}

func (c *DryRunClient) AttachDataDisks(ctx context.Context, resourceGroup, name string, disks []orchestrator.DiskAttachment) error {
	c.mutations.Add("attach-data-disks")
	for _, attachment := range disks {
		c.logger.Info("dry-run", "Would attach disk '%s' to VM '%s' at LUN %d", attachment.Disk.Name, name, attachment.LUN)
	}
	return nil
}

func (c *DryRunClient) SetOSDisk(ctx context.Context, resourceGroup, name string, disk orchestrator.Disk) error {
	c.mutations.Add("swap-os-disk")
	c.logger.Info("dry-run", "Would replace OS disk of VM '%s' with '%s'", name, disk.Name)
	return nil
}

func (c *DryRunClient) StartVM(ctx context.Context, resourceGroup, name string) error {
	c.mutations.Add("start")
	c.logger.Info("dry-run", "Would start VM '%s'", name)
	return nil
}
