package orchestrator

import "github.com/google/uuid"

// RestoreRequest is the operator's input to a restore run.
type RestoreRequest struct {
	ResourceGroup     string
	VMName            string
	CollectionName    string
	RestorePointName  string
	Suffix            string
	KeepOriginalDisks bool
}

// Session carries the mutable state of a single restore run between steps.
// Nothing in it survives process exit; the control plane owns every
// resource the session refers to.
type Session struct {
	runID   string
	request RestoreRequest

	vm              VM
	collection      RestorePointCollection
	restorePoint    RestorePoint
	preRestoreDisks []DiskRef
	createdDisks    []CreatedDisk
	failedStep      string
	reportPath      string
}

func NewSession(request RestoreRequest) *Session {
	return &Session{
		runID:   uuid.NewString(),
		request: request,
	}
}

func (session *Session) RunID() string {
	return session.runID
}

func (session *Session) Request() RestoreRequest {
	return session.request
}

func (session *Session) VM() VM {
	return session.vm
}

func (session *Session) SetVM(vm VM) {
	session.vm = vm
}

func (session *Session) Collection() RestorePointCollection {
	return session.collection
}

func (session *Session) SetCollection(collection RestorePointCollection) {
	session.collection = collection
}

func (session *Session) RestorePoint() RestorePoint {
	return session.restorePoint
}

func (session *Session) SetRestorePoint(restorePoint RestorePoint) {
	session.restorePoint = restorePoint
}

// PreRestoreDisks is the disk set attached to the VM before any mutation,
// retained so the operator can find and delete the superseded disks by hand.
func (session *Session) PreRestoreDisks() []DiskRef {
	return session.preRestoreDisks
}

func (session *Session) SetPreRestoreDisks(disks []DiskRef) {
	session.preRestoreDisks = disks
}

func (session *Session) CreatedDisks() []CreatedDisk {
	return session.createdDisks
}

func (session *Session) SetCreatedDisks(disks []CreatedDisk) {
	session.createdDisks = disks
}

func (session *Session) CreatedOSDisk() (CreatedDisk, bool) {
	for _, disk := range session.createdDisks {
		if disk.OS {
			return disk, true
		}
	}
	return CreatedDisk{}, false
}

func (session *Session) CreatedDataDisks() []CreatedDisk {
	var disks []CreatedDisk
	for _, disk := range session.createdDisks {
		if !disk.OS {
			disks = append(disks, disk)
		}
	}
	return disks
}

func (session *Session) FailedStep() string {
	return session.failedStep
}

func (session *Session) SetFailedStep(step string) {
	session.failedStep = step
}

func (session *Session) ReportPath() string {
	return session.reportPath
}

func (session *Session) SetReportPath(path string) {
	session.reportPath = path
}
