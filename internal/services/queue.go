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
	"github.com/numberloom/numberloom-backend/internal/platform/logger"
	"github.com/numberloom/numberloom-backend/internal/scheduler"
)

// NextStitchResult is the stitch a learner should practice now: the one at
// position 1 of their queue.
type NextStitchResult struct {
	Stitch       *types.Stitch `json:"stitch"`
	Position     int           `json:"position"`
	QueueLength  int           `json:"queue_length"`
	QueueVersion int64         `json:"queue_version"`
}

// QueueEntryView is one row of a learner-facing queue listing.
type QueueEntryView struct {
	Position   int       `json:"position"`
	StitchID   uuid.UUID `json:"stitch_id"`
	Name       string    `json:"name"`
	Difficulty int       `json:"difficulty"`
}

// QueueView is a point-in-time listing of a learner's whole queue.
type QueueView struct {
	UserID         uuid.UUID        `json:"user_id"`
	LearningPathID uuid.UUID        `json:"learning_path_id"`
	Entries        []QueueEntryView `json:"entries"`
	Version        int64            `json:"version"`
	TakenAt        time.Time        `json:"taken_at"`
}

type QueueService interface {
	GetNextStitch(ctx context.Context, userID, pathID uuid.UUID) (*NextStitchResult, error)
	GetStitchQueue(ctx context.Context, userID, pathID uuid.UUID) (*QueueView, error)
}

type queueService struct {
	db       *gorm.DB
	log      *logger.Logger
	loader   queueLoader
	stitches repos.StitchRepo

	snaps      *scheduler.SnapshotCache
	queueCache redisclient.QueueCache
}

func NewQueueService(
	db *gorm.DB,
	baseLog *logger.Logger,
	users repos.UserRepo,
	paths repos.LearningPathRepo,
	queues repos.StitchQueueRepo,
	stitches repos.StitchRepo,
	snaps *scheduler.SnapshotCache,
	queueCache redisclient.QueueCache,
) QueueService {
	return &queueService{
		db:         db,
		log:        baseLog.With("service", "QueueService"),
		loader:     queueLoader{users: users, paths: paths, queues: queues},
		stitches:   stitches,
		snaps:      snaps,
		queueCache: queueCache,
	}
}

// snapshot reads the queue without tearing: local snapshot first, then the
// shared cache, then the database. Whatever it returns is immutable; a
// concurrent repositioning swaps in a new snapshot rather than editing this
// one.
func (s *queueService) snapshot(ctx context.Context, key scheduler.QueueKey) (*scheduler.Snapshot, error) {
	if snap, ok := s.snaps.Get(key); ok {
		return snap, nil
	}

	if s.queueCache != nil {
		snap, err := s.queueCache.Get(ctx, key)
		if err != nil {
			s.log.Warn("shared queue cache read failed", "error", err)
		} else if snap != nil {
			s.snaps.Put(key, snap)
			return snap, nil
		}
	}

	q, err := s.loader.load(ctx, nil, key.UserID, key.LearningPathID)
	if err != nil {
		return nil, err
	}
	order, err := q.Order()
	if err != nil {
		return nil, err
	}

	snap := scheduler.NewSnapshot(order, q.Version, time.Now().UTC())
	s.snaps.Put(key, snap)
	if s.queueCache != nil {
		if err := s.queueCache.Put(ctx, key, snap); err != nil {
			s.log.Warn("shared queue cache write failed", "error", err)
		}
	}
	return snap, nil
}

func (s *queueService) GetNextStitch(ctx context.Context, userID, pathID uuid.UUID) (*NextStitchResult, error) {
	key := scheduler.QueueKey{UserID: userID, LearningPathID: pathID}
	snap, err := s.snapshot(ctx, key)
	if err != nil {
		return nil, err
	}

	head, ok := snap.Head()
	if !ok {
		return nil, fmt.Errorf("%w: queue is empty", scheduler.ErrNoStitchesAvailable)
	}

	stitch, err := s.stitches.GetByID(ctx, nil, head)
	if err != nil {
		return nil, err
	}
	if stitch == nil {
		return nil, fmt.Errorf("queue references stitch %s missing from catalog", head)
	}

	return &NextStitchResult{
		Stitch:       stitch,
		Position:     1,
		QueueLength:  snap.Len(),
		QueueVersion: snap.Version,
	}, nil
}

func (s *queueService) GetStitchQueue(ctx context.Context, userID, pathID uuid.UUID) (*QueueView, error) {
	key := scheduler.QueueKey{UserID: userID, LearningPathID: pathID}
	snap, err := s.snapshot(ctx, key)
	if err != nil {
		return nil, err
	}

	rows, err := s.stitches.GetByIDs(ctx, nil, []uuid.UUID(snap.Order()))
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]*types.Stitch, len(rows))
	for _, r := range rows {
		byID[r.ID] = r
	}

	entries := make([]QueueEntryView, 0, snap.Len())
	for _, e := range snap.Entries {
		view := QueueEntryView{Position: e.Position, StitchID: e.StitchID}
		if row, ok := byID[e.StitchID]; ok {
			view.Name = row.Name
			view.Difficulty = row.Difficulty
		}
		entries = append(entries, view)
	}

	return &QueueView{
		UserID:         userID,
		LearningPathID: pathID,
		Entries:        entries,
		Version:        snap.Version,
		TakenAt:        snap.TakenAt,
	}, nil
}
