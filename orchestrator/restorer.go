package orchestrator

import (
	"context"
	"io"
)

// Restorer drives the full restore sequence: resolve the VM, pick a restore
// point, recreate its disks, then walk the VM through
// deallocate/detach/attach/swap/start. The sequence is strictly serial; the
// first failure halts it. Mutation failures route to the remediation step,
// nothing is retried or rolled back.
type Restorer struct {
	workflow *Workflow
	logger   Logger
}

func NewRestorer(client CloudClient, logger Logger, selector *Selector, recreator *DiskRecreator, reportWriter ReportWriter, out io.Writer) *Restorer {
	resolveVM := NewResolveVMStep(client, logger)
	selectRestorePoint := NewSelectRestorePointStep(selector)
	captureDiskSet := NewPreRestoreDiskSetStep(logger)
	createDisks := NewCreateDisksStep(recreator, logger)
	deallocate := NewDeallocateStep(client, logger)
	detachDataDisks := NewDetachDataDisksStep(client, logger)
	attachRestoredDisks := NewAttachRestoredDisksStep(client, logger)
	swapOSDisk := NewSwapOSDiskStep(client, logger)
	startVM := NewStartVMStep(client, logger)
	writeReport := NewReportStep(reportWriter, logger)
	summary := NewSummaryStep(out, logger)
	remediation := NewRemediationStep(reportWriter, logger)

	workflow := NewWorkflow()
	workflow.StartWith(resolveVM).OnSuccess(selectRestorePoint)
	workflow.Add(selectRestorePoint).OnSuccess(captureDiskSet)
	workflow.Add(captureDiskSet).OnSuccess(createDisks)
	workflow.Add(createDisks).OnSuccess(deallocate)
	workflow.Add(deallocate).OnSuccess(detachDataDisks).OnFailure(remediation)
	workflow.Add(detachDataDisks).OnSuccess(attachRestoredDisks).OnFailure(remediation)
	workflow.Add(attachRestoredDisks).OnSuccess(swapOSDisk).OnFailure(remediation)
	workflow.Add(swapOSDisk).OnSuccess(startVM).OnFailure(remediation)
	workflow.Add(startVM).OnSuccess(writeReport).OnFailure(remediation)
	workflow.Add(writeReport).OnSuccess(summary)
	workflow.Add(summary)
	workflow.Add(remediation)

	return &Restorer{
		workflow: workflow,
		logger:   logger,
	}
}

// Restore runs the sequence against one VM. Disk creation failures abort
// before any VM mutation has been issued; selection failures abort before
// anything at all has been created.
func (r *Restorer) Restore(ctx context.Context, request RestoreRequest) Error {
	session := NewSession(request)
	r.logger.Info("restore", "Starting restore of VM '%s' (run %s)", request.VMName, session.RunID())

	errs := r.workflow.Run(ctx, session)
	if errs.IsNil() {
		r.logger.Info("restore", "Completed restore of VM '%s'", request.VMName)
	}
	return errs
}
