package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	redisclient "github.com/numberloom/numberloom-backend/internal/clients/redis"
	"github.com/numberloom/numberloom-backend/internal/data/repos"
	"github.com/numberloom/numberloom-backend/internal/data/repos/progress"
	types "github.com/numberloom/numberloom-backend/internal/domain"
	domainprogress "github.com/numberloom/numberloom-backend/internal/domain/progress"
	"github.com/numberloom/numberloom-backend/internal/platform/logger"
	"github.com/numberloom/numberloom-backend/internal/scheduler"
)

// RepositionResult reports one committed repositioning. SkipNumber is the
// applied skip, already clamped to the live queue.
type RepositionResult struct {
	StitchID         uuid.UUID `json:"stitch_id"`
	PreviousPosition int       `json:"previous_position"`
	NewPosition      int       `json:"new_position"`
	SkipNumber       int       `json:"skip_number"`
	QueueLength      int       `json:"queue_length"`
	QueueVersion     int64     `json:"queue_version"`
	OccurredAt       time.Time `json:"occurred_at"`
}

type RepositioningService interface {
	// RepositionStitch moves a stitch back in the learner's queue by the skip
	// distance earned from the performance data, shifting the stitches in
	// between forward by one.
	RepositionStitch(ctx context.Context, userID, pathID, stitchID uuid.UUID, perf scheduler.PerformanceData) (*RepositionResult, error)
}

type repositioningService struct {
	db     *gorm.DB
	log    *logger.Logger
	loader queueLoader
	events repos.RepositionEventRepo

	locks      *scheduler.KeyedMutex
	snaps      *scheduler.SnapshotCache
	queueCache redisclient.QueueCache

	maxRetries int
}

func NewRepositioningService(
	db *gorm.DB,
	baseLog *logger.Logger,
	users repos.UserRepo,
	paths repos.LearningPathRepo,
	queues repos.StitchQueueRepo,
	events repos.RepositionEventRepo,
	locks *scheduler.KeyedMutex,
	snaps *scheduler.SnapshotCache,
	queueCache redisclient.QueueCache,
	maxRetries int,
) RepositioningService {
	if maxRetries < 0 {
		maxRetries = 0
	}
	return &repositioningService{
		db:         db,
		log:        baseLog.With("service", "RepositioningService"),
		loader:     queueLoader{users: users, paths: paths, queues: queues},
		events:     events,
		locks:      locks,
		snaps:      snaps,
		queueCache: queueCache,
		maxRetries: maxRetries,
	}
}

func (s *repositioningService) RepositionStitch(ctx context.Context, userID, pathID, stitchID uuid.UUID, perf scheduler.PerformanceData) (*RepositionResult, error) {
	skip, err := scheduler.CalculateSkipNumber(perf)
	if err != nil {
		return nil, err
	}

	key := scheduler.QueueKey{UserID: userID, LearningPathID: pathID}
	unlock := s.locks.Lock(key)
	defer unlock()

	var lastErr error
	for attempt := 0; attempt <= s.maxRetries; attempt++ {
		res, err := s.attempt(ctx, key, stitchID, skip)
		if err == nil {
			if attempt > 0 {
				s.log.Info("repositioning committed after retry",
					"user_id", userID, "path_id", pathID, "attempts", attempt+1)
			}
			return res, nil
		}
		if !errors.Is(err, progress.ErrVersionConflict) {
			return nil, err
		}
		lastErr = err
	}

	s.log.Error("repositioning gave up after retries",
		"user_id", userID, "path_id", pathID, "retries", s.maxRetries)
	return nil, fmt.Errorf("%w: %v", scheduler.ErrRepositioningFailed, lastErr)
}

func (s *repositioningService) attempt(ctx context.Context, key scheduler.QueueKey, stitchID uuid.UUID, skip int) (*RepositionResult, error) {
	q, err := s.loader.load(ctx, nil, key.UserID, key.LearningPathID)
	if err != nil {
		return nil, err
	}

	order, err := q.Order()
	if err != nil {
		return nil, err
	}

	pos := order.PositionOf(stitchID)
	if pos == 0 {
		return nil, fmt.Errorf("%w: %s", scheduler.ErrStitchNotFound, stitchID)
	}

	clamped := scheduler.ClampSkip(skip, len(order))
	next, err := order.Reposition(pos, clamped)
	if err != nil {
		return nil, err
	}

	encoded, err := domainprogress.EncodeOrder(next)
	if err != nil {
		return nil, err
	}

	// The ledger records the applied skip, never the raw band value: the
	// skip in a committed row always lies within the queue it acted on.
	event := &types.RepositionEvent{
		ID:               uuid.New(),
		UserID:           key.UserID,
		LearningPathID:   key.LearningPathID,
		StitchID:         stitchID,
		PreviousPosition: pos,
		NewPosition:      clamped,
		SkipNumber:       clamped,
		QueueLength:      len(order),
		CreatedAt:        time.Now().UTC(),
	}

	// The position write and the ledger append commit together or not at all.
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.loader.queues.UpdatePositions(ctx, tx, q.ID, encoded, q.Version); err != nil {
			return err
		}
		if _, err := s.events.Append(ctx, tx, event); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, key, next, q.Version+1)

	return &RepositionResult{
		StitchID:         stitchID,
		PreviousPosition: pos,
		NewPosition:      clamped,
		SkipNumber:       clamped,
		QueueLength:      len(order),
		QueueVersion:     q.Version + 1,
		OccurredAt:       event.CreatedAt,
	}, nil
}

// publish refreshes the local snapshot and drops the shared cache entry so
// other replicas reload from the database.
func (s *repositioningService) publish(ctx context.Context, key scheduler.QueueKey, order scheduler.Order, version int64) {
	snap := scheduler.NewSnapshot(order, version, time.Now().UTC())
	s.snaps.Put(key, snap)
	if s.queueCache != nil {
		if err := s.queueCache.Drop(ctx, key); err != nil {
			s.log.Warn("failed to invalidate shared queue cache", "error", err)
		}
	}
}
