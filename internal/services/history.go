package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/numberloom/numberloom-backend/internal/data/repos"
	types "github.com/numberloom/numberloom-backend/internal/domain"
	"github.com/numberloom/numberloom-backend/internal/platform/logger"
	"github.com/numberloom/numberloom-backend/internal/scheduler"
)

type HistoryService interface {
	// GetRepositioningHistory returns a stitch's audit trail for one learner,
	// most recent first. A stitch that was never repositioned yields an empty
	// list, not an error.
	GetRepositioningHistory(ctx context.Context, userID, stitchID uuid.UUID, limit int) ([]*types.RepositionEvent, error)
}

type historyService struct {
	db       *gorm.DB
	log      *logger.Logger
	users    repos.UserRepo
	stitches repos.StitchRepo
	events   repos.RepositionEventRepo
}

func NewHistoryService(
	db *gorm.DB,
	baseLog *logger.Logger,
	users repos.UserRepo,
	stitches repos.StitchRepo,
	events repos.RepositionEventRepo,
) HistoryService {
	return &historyService{
		db:       db,
		log:      baseLog.With("service", "HistoryService"),
		users:    users,
		stitches: stitches,
		events:   events,
	}
}

func (s *historyService) GetRepositioningHistory(ctx context.Context, userID, stitchID uuid.UUID, limit int) ([]*types.RepositionEvent, error) {
	ok, err := s.users.Exists(ctx, nil, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", scheduler.ErrUserNotFound, userID)
	}

	stitch, err := s.stitches.GetByID(ctx, nil, stitchID)
	if err != nil {
		return nil, err
	}
	if stitch == nil {
		return nil, fmt.Errorf("%w: %s", scheduler.ErrStitchNotFound, stitchID)
	}

	rows, err := s.events.ListByUserAndStitch(ctx, nil, userID, stitchID, limit)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []*types.RepositionEvent{}
	}
	return rows, nil
}
