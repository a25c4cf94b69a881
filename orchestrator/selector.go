package orchestrator

import (
	"context"
	"sort"

	"github.com/pkg/errors"
)

// Selector resolves exactly one restore point, plus its parent collection,
// from an operator request that may name neither, either or both.
type Selector struct {
	client CloudClient
	logger Logger
}

func NewSelector(client CloudClient, logger Logger) *Selector {
	return &Selector{client: client, logger: logger}
}

func (s *Selector) Select(ctx context.Context, request RestoreRequest) (RestorePointCollection, RestorePoint, error) {
	collection, err := s.selectCollection(ctx, request)
	if err != nil {
		return RestorePointCollection{}, RestorePoint{}, err
	}

	restorePoint, err := s.selectRestorePoint(ctx, request, collection)
	if err != nil {
		return RestorePointCollection{}, RestorePoint{}, err
	}

	s.logger.Info("selector", "Selected restore point '%s' from collection '%s' (created %s)",
		restorePoint.Name, collection.Name, restorePoint.TimeCreated.Format("2006-01-02T15:04:05Z07:00"))
	return collection, restorePoint, nil
}

func (s *Selector) selectCollection(ctx context.Context, request RestoreRequest) (RestorePointCollection, error) {
	if request.CollectionName != "" {
		collection, err := s.client.GetRestorePointCollection(ctx, request.ResourceGroup, request.CollectionName)
		if err != nil {
			return RestorePointCollection{}, err
		}
		return collection, nil
	}

	collections, err := s.client.ListRestorePointCollections(ctx, request.ResourceGroup)
	if err != nil {
		return RestorePointCollection{}, errors.Wrap(err, "failed to list restore point collections")
	}

	if len(collections) == 0 {
		return RestorePointCollection{}, NewNoCollectionsFoundError(request.ResourceGroup)
	}

	if len(collections) == 1 {
		return collections[0], nil
	}

	return s.newestCollection(ctx, request.ResourceGroup, collections)
}

// newestCollection compares collections by their newest restore point and
// picks the collection whose newest is globally latest. Collections with no
// restore points are excluded from the comparison.
func (s *Selector) newestCollection(ctx context.Context, resourceGroup string, collections []RestorePointCollection) (RestorePointCollection, error) {
	var (
		winner      RestorePointCollection
		winnerPoint RestorePoint
		found       bool
	)

	for _, collection := range collections {
		points, err := s.client.ListRestorePoints(ctx, resourceGroup, collection.Name)
		if err != nil {
			return RestorePointCollection{}, errors.Wrapf(err, "failed to list restore points in collection '%s'", collection.Name)
		}
		if len(points) == 0 {
			s.logger.Debug("selector", "Collection '%s' has no restore points, skipping", collection.Name)
			continue
		}

		newest := newestRestorePoint(points)
		if !found || newest.TimeCreated.After(winnerPoint.TimeCreated) {
			winner = collection
			winnerPoint = newest
			found = true
		}
	}

	if !found {
		return RestorePointCollection{}, NewNoRestorePointsFoundError(resourceGroup)
	}

	return winner, nil
}

func (s *Selector) selectRestorePoint(ctx context.Context, request RestoreRequest, collection RestorePointCollection) (RestorePoint, error) {
	if request.RestorePointName != "" {
		restorePoint, err := s.client.GetRestorePoint(ctx, request.ResourceGroup, collection.Name, request.RestorePointName)
		if err != nil {
			return RestorePoint{}, err
		}
		return restorePoint, nil
	}

	points, err := s.client.ListRestorePoints(ctx, request.ResourceGroup, collection.Name)
	if err != nil {
		return RestorePoint{}, errors.Wrapf(err, "failed to list restore points in collection '%s'", collection.Name)
	}
	if len(points) == 0 {
		return RestorePoint{}, NewNoRestorePointsFoundError(request.ResourceGroup)
	}

	return newestRestorePoint(points), nil
}

// newestRestorePoint picks the restore point with the latest creation time.
// Identical timestamps are broken by the lexicographically smallest name, so
// repeated runs against the same collection select the same point.
func newestRestorePoint(points []RestorePoint) RestorePoint {
	sorted := make([]RestorePoint, len(points))
	copy(sorted, points)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].TimeCreated.Equal(sorted[j].TimeCreated) {
			return sorted[i].Name < sorted[j].Name
		}
		return sorted[i].TimeCreated.After(sorted[j].TimeCreated)
	})
	return sorted[0]
}
