package orchestrator

import (
	"context"
	"time"
)

// VM is a projection of the virtual machine resource, limited to what the
// restore workflow reads and mutates.
type VM struct {
	ResourceGroup string
	Name          string
	Location      string
	Size          string
	Zones         []string
	OSDisk        DiskRef
	DataDisks     []DiskRef
}

// DiskRef is a disk as referenced by a VM's storage profile.
type DiskRef struct {
	Name                    string
	ID                      string
	LUN                     int32
	Caching                 string
	WriteAcceleratorEnabled bool
}

// Disk is a managed disk resource, read or created independently of a VM.
type Disk struct {
	Name  string
	ID    string
	SKU   string
	Zones []string
}

type RestorePointCollection struct {
	ResourceGroup string
	Name          string
	ID            string
}

// RestorePoint carries the per-disk manifest of a point-in-time capture.
// Exactly one OS disk entry; LUNs are unique across the data disk entries.
type RestorePoint struct {
	Name        string
	TimeCreated time.Time
	OSDisk      ManifestDisk
	DataDisks   []ManifestDisk
}

// ManifestDisk is one entry of a restore point's disk manifest. Restore
// points carry no storage tier; tiers are resolved from the disks currently
// attached to the VM.
type ManifestDisk struct {
	Name                    string
	DiskRestorePointID      string
	LUN                     int32
	Caching                 string
	WriteAcceleratorEnabled bool
}

// DiskSpec describes a managed disk to be created from a disk restore point.
type DiskSpec struct {
	Name                 string
	SourceRestorePointID string
	SKU                  string
	Location             string
	Zones                []string
	Tags                 map[string]string
}

// DiskAttachment describes a restored data disk to attach, at the LUN and
// cache mode recorded in the manifest.
type DiskAttachment struct {
	Disk                    Disk
	LUN                     int32
	Caching                 string
	WriteAcceleratorEnabled bool
}

// CreatedDisk is a disk produced by the recreation stage, tied back to the
// manifest entry it was sourced from.
type CreatedDisk struct {
	Disk   Disk
	Source ManifestDisk
	OS     bool
}

const (
	PowerStateDeallocated = "PowerState/deallocated"
	PowerStateRunning     = "PowerState/running"
)

//go:generate counterfeiter -o fakes/fake_cloud_client.go . CloudClient

// CloudClient is the management-plane surface the workflow drives. Every
// call blocks until the remote operation completes. Implementations map
// missing resources to NotFoundError.
type CloudClient interface {
	GetVM(ctx context.Context, resourceGroup, name string) (VM, error)
	PowerState(ctx context.Context, resourceGroup, name string) (string, error)
	GetDisk(ctx context.Context, resourceGroup, name string) (Disk, error)
	ListRestorePointCollections(ctx context.Context, resourceGroup string) ([]RestorePointCollection, error)
	GetRestorePointCollection(ctx context.Context, resourceGroup, name string) (RestorePointCollection, error)
	ListRestorePoints(ctx context.Context, resourceGroup, collection string) ([]RestorePoint, error)
	GetRestorePoint(ctx context.Context, resourceGroup, collection, name string) (RestorePoint, error)

	CreateDisk(ctx context.Context, resourceGroup string, spec DiskSpec) (Disk, error)
	DeallocateVM(ctx context.Context, resourceGroup, name string) error
	DetachAllDataDisks(ctx context.Context, resourceGroup, name string) error
	AttachDataDisks(ctx context.Context, resourceGroup, name string, disks []DiskAttachment) error
	SetOSDisk(ctx context.Context, resourceGroup, name string, disk Disk) error
	StartVM(ctx context.Context, resourceGroup, name string) error
}
