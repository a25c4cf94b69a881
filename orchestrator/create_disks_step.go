package orchestrator

import "context"

type CreateDisksStep struct {
	recreator *DiskRecreator
	logger    Logger
}

func NewCreateDisksStep(recreator *DiskRecreator, logger Logger) Step {
	return &CreateDisksStep{recreator: recreator, logger: logger}
}

func (s *CreateDisksStep) Run(ctx context.Context, session *Session) error {
	restorePoint := session.RestorePoint()
	s.logger.Info("restore", "Recreating %d disk(s) from restore point '%s'",
		1+len(restorePoint.DataDisks), restorePoint.Name)

	created, err := s.recreator.Recreate(ctx, session)
	session.SetCreatedDisks(created)
	if err != nil {
		return err
	}

	s.logger.Info("restore", "All %d disk(s) created", len(created))
	return nil
}
