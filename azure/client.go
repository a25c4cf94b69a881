package azure

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute/v5"

	"github.com/compute-tools/vm-restore-points/orchestrator"
)

// Client implements the orchestrator's management-plane surface on top of
// the compute resource provider. Long-running operations are polled to
// completion before returning: every call blocks for as long as the remote
// operation runs.
type Client struct {
	subscriptionID string
	vms            *armcompute.VirtualMachinesClient
	disks          *armcompute.DisksClient
	collections    *armcompute.RestorePointCollectionsClient
	points         *armcompute.RestorePointsClient
	skus           *armcompute.ResourceSKUsClient
}

func NewClient(subscriptionID string, credential azcore.TokenCredential, options *arm.ClientOptions) (*Client, error) {
	factory, err := armcompute.NewClientFactory(subscriptionID, credential, options)
	if err != nil {
		return nil, err
	}

	return &Client{
		subscriptionID: subscriptionID,
		vms:            factory.NewVirtualMachinesClient(),
		disks:          factory.NewDisksClient(),
		collections:    factory.NewRestorePointCollectionsClient(),
		points:         factory.NewRestorePointsClient(),
		skus:           factory.NewResourceSKUsClient(),
	}, nil
}

func (c *Client) GetVM(ctx context.Context, resourceGroup, name string) (orchestrator.VM, error) {
	resp, err := c.vms.Get(ctx, resourceGroup, name, nil)
	if err != nil {
		if isNotFound(err) {
			return orchestrator.VM{}, orchestrator.NewNotFoundError("virtual machine '%s' not found in resource group '%s'", name, resourceGroup)
		}
		return orchestrator.VM{}, err
	}
	return convertVM(resourceGroup, resp.VirtualMachine), nil
}

func (c *Client) PowerState(ctx context.Context, resourceGroup, name string) (string, error) {
	resp, err := c.vms.InstanceView(ctx, resourceGroup, name, nil)
	if err != nil {
		return "", err
	}
	for _, status := range resp.Statuses {
		if status.Code != nil && strings.HasPrefix(*status.Code, "PowerState/") {
			return *status.Code, nil
		}
	}
	return "", nil
}

func (c *Client) GetDisk(ctx context.Context, resourceGroup, name string) (orchestrator.Disk, error) {
	resp, err := c.disks.Get(ctx, resourceGroup, name, nil)
	if err != nil {
		if isNotFound(err) {
			return orchestrator.Disk{}, orchestrator.NewNotFoundError("disk '%s' not found in resource group '%s'", name, resourceGroup)
		}
		return orchestrator.Disk{}, err
	}
	return convertDisk(resp.Disk), nil
}

func (c *Client) ListRestorePointCollections(ctx context.Context, resourceGroup string) ([]orchestrator.RestorePointCollection, error) {
	var collections []orchestrator.RestorePointCollection

	pager := c.collections.NewListPager(resourceGroup, nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, collection := range page.Value {
			collections = append(collections, convertCollection(resourceGroup, collection))
		}
	}
	return collections, nil
}

func (c *Client) GetRestorePointCollection(ctx context.Context, resourceGroup, name string) (orchestrator.RestorePointCollection, error) {
	resp, err := c.collections.Get(ctx, resourceGroup, name, nil)
	if err != nil {
		if isNotFound(err) {
			return orchestrator.RestorePointCollection{}, orchestrator.NewNotFoundError("restore point collection '%s' not found in resource group '%s'", name, resourceGroup)
		}
		return orchestrator.RestorePointCollection{}, err
	}
	return convertCollection(resourceGroup, &resp.RestorePointCollection), nil
}

// ListRestorePoints enumerates a collection's restore points. The resource
// provider only returns them inline on a collection read with the
// restorePoints expansion, there is no list operation on the points
// themselves.
func (c *Client) ListRestorePoints(ctx context.Context, resourceGroup, collection string) ([]orchestrator.RestorePoint, error) {
	resp, err := c.collections.Get(ctx, resourceGroup, collection, &armcompute.RestorePointCollectionsClientGetOptions{
		Expand: to.Ptr(armcompute.RestorePointCollectionExpandOptionsRestorePoints),
	})
	if err != nil {
		if isNotFound(err) {
			return nil, orchestrator.NewNotFoundError("restore point collection '%s' not found in resource group '%s'", collection, resourceGroup)
		}
		return nil, err
	}

	var points []orchestrator.RestorePoint
	if resp.Properties != nil {
		for _, point := range resp.Properties.RestorePoints {
			points = append(points, convertRestorePoint(point))
		}
	}
	return points, nil
}

func (c *Client) GetRestorePoint(ctx context.Context, resourceGroup, collection, name string) (orchestrator.RestorePoint, error) {
	resp, err := c.points.Get(ctx, resourceGroup, collection, name, nil)
	if err != nil {
		if isNotFound(err) {
			return orchestrator.RestorePoint{}, orchestrator.NewNotFoundError("restore point '%s' not found in collection '%s'", name, collection)
		}
		return orchestrator.RestorePoint{}, err
	}
	return convertRestorePoint(&resp.RestorePoint), nil
}

func (c *Client) CreateDisk(ctx context.Context, resourceGroup string, spec orchestrator.DiskSpec) (orchestrator.Disk, error) {
	disk := armcompute.Disk{
		Location: to.Ptr(spec.Location),
		Zones:    toPtrSlice(spec.Zones),
		SKU: &armcompute.DiskSKU{
			Name: to.Ptr(armcompute.DiskStorageAccountTypes(spec.SKU)),
		},
		Properties: &armcompute.DiskProperties{
			CreationData: &armcompute.CreationData{
				CreateOption:     to.Ptr(armcompute.DiskCreateOptionRestore),
				SourceResourceID: to.Ptr(spec.SourceRestorePointID),
			},
		},
		Tags: toTagMap(spec.Tags),
	}

	poller, err := c.disks.BeginCreateOrUpdate(ctx, resourceGroup, spec.Name, disk, nil)
	if err != nil {
		return orchestrator.Disk{}, err
	}
	resp, err := poller.PollUntilDone(ctx, nil)
	if err != nil {
		return orchestrator.Disk{}, err
	}
	return convertDisk(resp.Disk), nil
}

func (c *Client) DeallocateVM(ctx context.Context, resourceGroup, name string) error {
	poller, err := c.vms.BeginDeallocate(ctx, resourceGroup, name, nil)
	if err != nil {
		return err
	}
	_, err = poller.PollUntilDone(ctx, nil)
	return err
}

func (c *Client) DetachAllDataDisks(ctx context.Context, resourceGroup, name string) error {
	return c.updateVM(ctx, resourceGroup, name, armcompute.VirtualMachineUpdate{
		Properties: &armcompute.VirtualMachineProperties{
			StorageProfile: &armcompute.StorageProfile{
				DataDisks: []*armcompute.DataDisk{},
			},
		},
	})
}

func (c *Client) AttachDataDisks(ctx context.Context, resourceGroup, name string, disks []orchestrator.DiskAttachment) error {
	dataDisks := make([]*armcompute.DataDisk, 0, len(disks))
	for _, attachment := range disks {
		dataDisks = append(dataDisks, &armcompute.DataDisk{
			Name:         to.Ptr(attachment.Disk.Name),
			Lun:          to.Ptr(attachment.LUN),
			Caching:      to.Ptr(armcompute.CachingTypes(attachment.Caching)),
			CreateOption: to.Ptr(armcompute.DiskCreateOptionTypesAttach),
			ManagedDisk: &armcompute.ManagedDiskParameters{
				ID: to.Ptr(attachment.Disk.ID),
			},
			WriteAcceleratorEnabled: to.Ptr(attachment.WriteAcceleratorEnabled),
		})
	}

	return c.updateVM(ctx, resourceGroup, name, armcompute.VirtualMachineUpdate{
		Properties: &armcompute.VirtualMachineProperties{
			StorageProfile: &armcompute.StorageProfile{
				DataDisks: dataDisks,
			},
		},
	})
}

func (c *Client) SetOSDisk(ctx context.Context, resourceGroup, name string, disk orchestrator.Disk) error {
	return c.updateVM(ctx, resourceGroup, name, armcompute.VirtualMachineUpdate{
		Properties: &armcompute.VirtualMachineProperties{
			StorageProfile: &armcompute.StorageProfile{
				OSDisk: &armcompute.OSDisk{
					Name: to.Ptr(disk.Name),
					ManagedDisk: &armcompute.ManagedDiskParameters{
						ID: to.Ptr(disk.ID),
					},
				},
			},
		},
	})
}

func (c *Client) StartVM(ctx context.Context, resourceGroup, name string) error {
	poller, err := c.vms.BeginStart(ctx, resourceGroup, name, nil)
	if err != nil {
		return err
	}
	_, err = poller.PollUntilDone(ctx, nil)
	return err
}

func (c *Client) updateVM(ctx context.Context, resourceGroup, name string, update armcompute.VirtualMachineUpdate) error {
	poller, err := c.vms.BeginUpdate(ctx, resourceGroup, name, update, nil)
	if err != nil {
		return err
	}
	_, err = poller.PollUntilDone(ctx, nil)
	return err
}

func isNotFound(err error) bool {
	var respErr *azcore.ResponseError
	if errors.As(err, &respErr) {
		return respErr.StatusCode == http.StatusNotFound
	}
	return false
}

func toPtrSlice(values []string) []*string {
	if len(values) == 0 {
		return nil
	}
	ptrs := make([]*string, 0, len(values))
	for _, value := range values {
		ptrs = append(ptrs, to.Ptr(value))
	}
	return ptrs
}

func toTagMap(tags map[string]string) map[string]*string {
	if len(tags) == 0 {
		return nil
	}
	out := make(map[string]*string, len(tags))
	for key, value := range tags {
		out[key] = to.Ptr(value)
	}
	return out
}
