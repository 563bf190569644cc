package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	redisclient "github.com/numberloom/numberloom-backend/internal/clients/redis"
	"github.com/numberloom/numberloom-backend/internal/data/repos"
	types "github.com/numberloom/numberloom-backend/internal/domain"
	domainprogress "github.com/numberloom/numberloom-backend/internal/domain/progress"
	"github.com/numberloom/numberloom-backend/internal/platform/logger"
	"github.com/numberloom/numberloom-backend/internal/scheduler"
)

type PathService interface {
	// InitializePath creates a learner's queue for a path, seeding positions
	// 1..N from the catalog's seed order.
	InitializePath(ctx context.Context, userID, pathID uuid.UUID) (*QueueView, error)
	// ResetPath deletes the learner's queue for a path. The repositioning
	// ledger is retained.
	ResetPath(ctx context.Context, userID, pathID uuid.UUID) error
	// ListActivePaths returns the catalog's active paths in slug order.
	ListActivePaths(ctx context.Context) ([]*types.LearningPath, error)
}

type pathService struct {
	db       *gorm.DB
	log      *logger.Logger
	loader   queueLoader
	stitches repos.StitchRepo

	locks      *scheduler.KeyedMutex
	snaps      *scheduler.SnapshotCache
	queueCache redisclient.QueueCache
}

func NewPathService(
	db *gorm.DB,
	baseLog *logger.Logger,
	users repos.UserRepo,
	paths repos.LearningPathRepo,
	queues repos.StitchQueueRepo,
	stitches repos.StitchRepo,
	locks *scheduler.KeyedMutex,
	snaps *scheduler.SnapshotCache,
	queueCache redisclient.QueueCache,
) PathService {
	return &pathService{
		db:         db,
		log:        baseLog.With("service", "PathService"),
		loader:     queueLoader{users: users, paths: paths, queues: queues},
		stitches:   stitches,
		locks:      locks,
		snaps:      snaps,
		queueCache: queueCache,
	}
}

func (s *pathService) InitializePath(ctx context.Context, userID, pathID uuid.UUID) (*QueueView, error) {
	key := scheduler.QueueKey{UserID: userID, LearningPathID: pathID}
	unlock := s.locks.Lock(key)
	defer unlock()

	if _, err := s.loader.resolvePath(ctx, nil, userID, pathID); err != nil {
		return nil, err
	}

	existing, err := s.loader.queues.GetByUserAndPath(ctx, nil, userID, pathID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: user %s path %s", scheduler.ErrPathAlreadyInitialized, userID, pathID)
	}

	catalog, err := s.stitches.ListByPathID(ctx, nil, pathID)
	if err != nil {
		return nil, err
	}
	if len(catalog) == 0 {
		return nil, fmt.Errorf("%w: path %s has no stitches", scheduler.ErrNoStitchesAvailable, pathID)
	}

	order := make(scheduler.Order, len(catalog))
	entries := make([]QueueEntryView, len(catalog))
	for i, row := range catalog {
		order[i] = row.ID
		entries[i] = QueueEntryView{
			Position:   i + 1,
			StitchID:   row.ID,
			Name:       row.Name,
			Difficulty: row.Difficulty,
		}
	}
	encoded, err := domainprogress.EncodeOrder(order)
	if err != nil {
		return nil, err
	}

	row := &types.StitchQueue{
		ID:             uuid.New(),
		UserID:         userID,
		LearningPathID: pathID,
		Positions:      encoded,
		Version:        0,
	}
	if _, err := s.loader.queues.Create(ctx, nil, row); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	snap := scheduler.NewSnapshot(order, 0, now)
	s.snaps.Put(key, snap)
	if s.queueCache != nil {
		if err := s.queueCache.Put(ctx, key, snap); err != nil {
			s.log.Warn("shared queue cache write failed", "error", err)
		}
	}

	s.log.Info("initialized learning path queue",
		"user_id", userID, "path_id", pathID, "stitches", len(order))

	return &QueueView{
		UserID:         userID,
		LearningPathID: pathID,
		Entries:        entries,
		Version:        0,
		TakenAt:        now,
	}, nil
}

func (s *pathService) ListActivePaths(ctx context.Context) ([]*types.LearningPath, error) {
	rows, err := s.loader.paths.ListActive(ctx, nil)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []*types.LearningPath{}
	}
	return rows, nil
}

func (s *pathService) ResetPath(ctx context.Context, userID, pathID uuid.UUID) error {
	key := scheduler.QueueKey{UserID: userID, LearningPathID: pathID}
	unlock := s.locks.Lock(key)
	defer unlock()

	if _, err := s.loader.resolvePath(ctx, nil, userID, pathID); err != nil {
		return err
	}

	q, err := s.loader.queues.GetByUserAndPath(ctx, nil, userID, pathID)
	if err != nil {
		return err
	}
	if q == nil {
		return fmt.Errorf("%w: no queue for path %s", scheduler.ErrLearningPathNotFound, pathID)
	}

	if err := s.loader.queues.DeleteByUserAndPath(ctx, nil, userID, pathID); err != nil {
		return err
	}

	s.snaps.Drop(key)
	if s.queueCache != nil {
		if err := s.queueCache.Drop(ctx, key); err != nil {
			s.log.Warn("shared queue cache drop failed", "error", err)
		}
	}

	s.log.Info("reset learning path queue", "user_id", userID, "path_id", pathID)
	return nil
}
