package orchestrator

import "context"

type SelectRestorePointStep struct {
	selector *Selector
}

func NewSelectRestorePointStep(selector *Selector) Step {
	return &SelectRestorePointStep{selector: selector}
}

func (s *SelectRestorePointStep) Run(ctx context.Context, session *Session) error {
	collection, restorePoint, err := s.selector.Select(ctx, session.Request())
	if err != nil {
		return err
	}

	session.SetCollection(collection)
	session.SetRestorePoint(restorePoint)
	return nil
}
