package azure

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute/v5"

	"github.com/compute-tools/vm-restore-points/orchestrator"
	"github.com/compute-tools/vm-restore-points/toggle"
)

// Profile gathers everything the toggle pre-flight validation inspects: the
// VM's size capability, scale-set membership, OS disk placement and the
// tier/sharing/acceleration attributes of every attached disk.
func (c *Client) Profile(ctx context.Context, resourceGroup, vmName string) (toggle.VMProfile, error) {
	resp, err := c.vms.Get(ctx, resourceGroup, vmName, nil)
	if err != nil {
		if isNotFound(err) {
			return toggle.VMProfile{}, orchestrator.NewNotFoundError("virtual machine '%s' not found in resource group '%s'", vmName, resourceGroup)
		}
		return toggle.VMProfile{}, err
	}
	vm := resp.VirtualMachine

	profile := toggle.VMProfile{
		Name:          deref(vm.Name),
		ResourceGroup: resourceGroup,
		Location:      deref(vm.Location),
	}

	props := vm.Properties
	if props == nil {
		return profile, nil
	}

	profile.InScaleSet = props.VirtualMachineScaleSet != nil

	if props.HardwareProfile != nil && props.HardwareProfile.VMSize != nil {
		profile.Size = string(*props.HardwareProfile.VMSize)
		capable, err := c.sizeSupportsPremiumIO(ctx, profile.Location, profile.Size)
		if err != nil {
			return toggle.VMProfile{}, err
		}
		profile.PremiumIOCapable = capable
	}

	if props.StorageProfile == nil {
		return profile, nil
	}

	if osDisk := props.StorageProfile.OSDisk; osDisk != nil {
		profile.EphemeralOSDisk = osDisk.DiffDiskSettings != nil

		diskProfile, err := c.diskProfile(ctx, resourceGroup, deref(osDisk.Name), derefBool(osDisk.WriteAcceleratorEnabled), true)
		if err != nil {
			return toggle.VMProfile{}, err
		}
		profile.Disks = append(profile.Disks, diskProfile)
	}

	for _, dataDisk := range props.StorageProfile.DataDisks {
		diskProfile, err := c.diskProfile(ctx, resourceGroup, deref(dataDisk.Name), derefBool(dataDisk.WriteAcceleratorEnabled), false)
		if err != nil {
			return toggle.VMProfile{}, err
		}
		profile.Disks = append(profile.Disks, diskProfile)
	}

	return profile, nil
}

func (c *Client) diskProfile(ctx context.Context, resourceGroup, name string, writeAccelerator, os bool) (toggle.DiskProfile, error) {
	resp, err := c.disks.Get(ctx, resourceGroup, name, nil)
	if err != nil {
		return toggle.DiskProfile{}, err
	}

	profile := toggle.DiskProfile{
		Name:                    name,
		OS:                      os,
		WriteAcceleratorEnabled: writeAccelerator,
	}
	if resp.SKU != nil && resp.SKU.Name != nil {
		profile.SKU = string(*resp.SKU.Name)
	}
	if resp.Properties != nil && resp.Properties.MaxShares != nil {
		profile.Shared = *resp.Properties.MaxShares > 1
	}
	return profile, nil
}

// sizeSupportsPremiumIO reads the PremiumIO capability of the VM size from
// the resource SKU catalog for the VM's location. An unknown size counts as
// not capable.
func (c *Client) sizeSupportsPremiumIO(ctx context.Context, location, size string) (bool, error) {
	pager := c.skus.NewListPager(&armcompute.ResourceSKUsClientListOptions{
		Filter: to.Ptr(fmt.Sprintf("location eq '%s'", location)),
	})

	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return false, err
		}
		for _, sku := range page.Value {
			if deref(sku.ResourceType) != "virtualMachines" || deref(sku.Name) != size {
				continue
			}
			for _, capability := range sku.Capabilities {
				if deref(capability.Name) == "PremiumIO" {
					return deref(capability.Value) == "True", nil
				}
			}
			return false, nil
		}
	}
	return false, nil
}
