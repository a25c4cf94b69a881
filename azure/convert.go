package azure

import (
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute/v5"

	"github.com/compute-tools/vm-restore-points/orchestrator"
)

func convertVM(resourceGroup string, vm armcompute.VirtualMachine) orchestrator.VM {
	out := orchestrator.VM{
		ResourceGroup: resourceGroup,
		Name:          deref(vm.Name),
		Location:      deref(vm.Location),
		Zones:         derefSlice(vm.Zones),
	}

	props := vm.Properties
	if props == nil {
		return out
	}

	if props.HardwareProfile != nil && props.HardwareProfile.VMSize != nil {
		out.Size = string(*props.HardwareProfile.VMSize)
	}

	if props.StorageProfile != nil {
		if osDisk := props.StorageProfile.OSDisk; osDisk != nil {
			out.OSDisk = orchestrator.DiskRef{
				Name:                    deref(osDisk.Name),
				Caching:                 cachingString(osDisk.Caching),
				WriteAcceleratorEnabled: derefBool(osDisk.WriteAcceleratorEnabled),
			}
			if osDisk.ManagedDisk != nil {
				out.OSDisk.ID = deref(osDisk.ManagedDisk.ID)
			}
		}
		for _, dataDisk := range props.StorageProfile.DataDisks {
			ref := orchestrator.DiskRef{
				Name:                    deref(dataDisk.Name),
				LUN:                     derefInt32(dataDisk.Lun),
				Caching:                 cachingString(dataDisk.Caching),
				WriteAcceleratorEnabled: derefBool(dataDisk.WriteAcceleratorEnabled),
			}
			if dataDisk.ManagedDisk != nil {
				ref.ID = deref(dataDisk.ManagedDisk.ID)
			}
			out.DataDisks = append(out.DataDisks, ref)
		}
	}

	return out
}

func convertDisk(disk armcompute.Disk) orchestrator.Disk {
	out := orchestrator.Disk{
		Name:  deref(disk.Name),
		ID:    deref(disk.ID),
		Zones: derefSlice(disk.Zones),
	}
	if disk.SKU != nil && disk.SKU.Name != nil {
		out.SKU = string(*disk.SKU.Name)
	}
	return out
}

func convertCollection(resourceGroup string, collection *armcompute.RestorePointCollection) orchestrator.RestorePointCollection {
	return orchestrator.RestorePointCollection{
		ResourceGroup: resourceGroup,
		Name:          deref(collection.Name),
		ID:            deref(collection.ID),
	}
}

func convertRestorePoint(point *armcompute.RestorePoint) orchestrator.RestorePoint {
	out := orchestrator.RestorePoint{
		Name: deref(point.Name),
	}

	props := point.Properties
	if props == nil {
		return out
	}
	if props.TimeCreated != nil {
		out.TimeCreated = *props.TimeCreated
	}
	if props.SourceMetadata == nil || props.SourceMetadata.StorageProfile == nil {
		return out
	}
	storage := props.SourceMetadata.StorageProfile

	if storage.OSDisk != nil {
		out.OSDisk = orchestrator.ManifestDisk{
			Name:                    deref(storage.OSDisk.Name),
			Caching:                 cachingString(storage.OSDisk.Caching),
			WriteAcceleratorEnabled: derefBool(storage.OSDisk.WriteAcceleratorEnabled),
		}
		if storage.OSDisk.DiskRestorePoint != nil {
			out.OSDisk.DiskRestorePointID = deref(storage.OSDisk.DiskRestorePoint.ID)
		}
	}

	for _, dataDisk := range storage.DataDisks {
		manifestDisk := orchestrator.ManifestDisk{
			Name:                    deref(dataDisk.Name),
			LUN:                     derefInt32(dataDisk.Lun),
			Caching:                 cachingString(dataDisk.Caching),
			WriteAcceleratorEnabled: derefBool(dataDisk.WriteAcceleratorEnabled),
		}
		if dataDisk.DiskRestorePoint != nil {
			manifestDisk.DiskRestorePointID = deref(dataDisk.DiskRestorePoint.ID)
		}
		out.DataDisks = append(out.DataDisks, manifestDisk)
	}

	return out
}

func cachingString(caching *armcompute.CachingTypes) string {
	if caching == nil {
		return ""
	}
	return string(*caching)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefBool(b *bool) bool {
	if b == nil {
		return false
	}
	return *b
}

func derefInt32(i *int32) int32 {
	if i == nil {
		return 0
	}
	return *i
}

func derefSlice(values []*string) []string {
	var out []string
	for _, value := range values {
		if value != nil {
			out = append(out, *value)
		}
	}
	return out
}
