package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/noah-isme/timetable-api/internal/models"
	appErrors "github.com/noah-isme/timetable-api/pkg/errors"
)

type snapshotRepository interface {
	Load(ctx context.Context) (*models.Snapshot, error)
	Save(ctx context.Context, snap models.Snapshot) error
}

// SnapshotService is the bridge to the optional durable store. The engine
// is memory-resident; snapshots are explicit load/save hooks, never part
// of the request path.
type SnapshotService struct {
	scheduler *SchedulingService
	repo      snapshotRepository
	logger    *zap.Logger
}

// NewSnapshotService constructs a snapshot service.
func NewSnapshotService(scheduler *SchedulingService, repo snapshotRepository, logger *zap.Logger) *SnapshotService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SnapshotService{scheduler: scheduler, repo: repo, logger: logger}
}

// Save persists the full in-memory state.
func (s *SnapshotService) Save(ctx context.Context) (models.Snapshot, error) {
	snap := s.scheduler.Snapshot()
	if err := s.repo.Save(ctx, snap); err != nil {
		return models.Snapshot{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save snapshot")
	}
	s.logger.Info("snapshot saved",
		zap.Int("courses", len(snap.Courses)),
		zap.Int("entries", len(snap.Entries)))
	return snap, nil
}

// Load replaces the in-memory state with the last saved snapshot.
func (s *SnapshotService) Load(ctx context.Context) error {
	snap, err := s.repo.Load(ctx)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load snapshot")
	}
	if err := s.scheduler.Restore(*snap); err != nil {
		return err
	}
	s.logger.Info("snapshot restored",
		zap.Int("courses", len(snap.Courses)),
		zap.Int("entries", len(snap.Entries)))
	return nil
}
