package orchestrator

import "context"

const StepAttachRestoredDisks = "attach-restored-disks"

type AttachRestoredDisksStep struct {
	client CloudClient
	logger Logger
}

func NewAttachRestoredDisksStep(client CloudClient, logger Logger) Step {
	return &AttachRestoredDisksStep{client: client, logger: logger}
}

func (s *AttachRestoredDisksStep) Run(ctx context.Context, session *Session) error {
	request := session.Request()

	dataDisks := session.CreatedDataDisks()
	if len(dataDisks) == 0 {
		s.logger.Info("restore", "Restore point has no data disks, nothing to attach")
		return nil
	}

	attachments := make([]DiskAttachment, 0, len(dataDisks))
	for _, disk := range dataDisks {
		attachments = append(attachments, DiskAttachment{
			Disk:                    disk.Disk,
			LUN:                     disk.Source.LUN,
			Caching:                 disk.Source.Caching,
			WriteAcceleratorEnabled: disk.Source.WriteAcceleratorEnabled,
		})
		s.logger.Info("restore", "Attaching disk '%s' at LUN %d (%s caching)", disk.Disk.Name, disk.Source.LUN, disk.Source.Caching)
	}

	if err := s.client.AttachDataDisks(ctx, request.ResourceGroup, request.VMName, attachments); err != nil {
		session.SetFailedStep(StepAttachRestoredDisks)
		return NewMutationError(StepAttachRestoredDisks, err)
	}
	return nil
}
