package progress

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/numberloom/numberloom-backend/internal/domain"
	"github.com/numberloom/numberloom-backend/internal/platform/logger"
)

// RepositionEventRepo is append-only: the ledger exposes no update or delete.
type RepositionEventRepo interface {
	Append(ctx context.Context, tx *gorm.DB, row *types.RepositionEvent) (*types.RepositionEvent, error)
	// ListByUserAndStitch returns a stitch's audit trail, most recent first
	// with a tie-safe (created_at, id) ordering.
	ListByUserAndStitch(ctx context.Context, tx *gorm.DB, userID, stitchID uuid.UUID, limit int) ([]*types.RepositionEvent, error)
	CountByUserAndPath(ctx context.Context, tx *gorm.DB, userID, pathID uuid.UUID) (int64, error)
}

type repositionEventRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRepositionEventRepo(db *gorm.DB, baseLog *logger.Logger) RepositionEventRepo {
	return &repositionEventRepo{db: db, log: baseLog.With("repo", "RepositionEventRepo")}
}

func (r *repositionEventRepo) Append(ctx context.Context, tx *gorm.DB, row *types.RepositionEvent) (*types.RepositionEvent, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if row == nil {
		return nil, nil
	}
	if err := t.WithContext(ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (r *repositionEventRepo) ListByUserAndStitch(ctx context.Context, tx *gorm.DB, userID, stitchID uuid.UUID, limit int) ([]*types.RepositionEvent, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.RepositionEvent
	if userID == uuid.Nil || stitchID == uuid.Nil {
		return out, nil
	}
	if limit <= 0 {
		limit = 50
	}
	if limit > 500 {
		limit = 500
	}
	if err := t.WithContext(ctx).
		Where("user_id = ? AND stitch_id = ?", userID, stitchID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *repositionEventRepo) CountByUserAndPath(ctx context.Context, tx *gorm.DB, userID, pathID uuid.UUID) (int64, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if userID == uuid.Nil || pathID == uuid.Nil {
		return 0, nil
	}
	var count int64
	if err := t.WithContext(ctx).
		Model(&types.RepositionEvent{}).
		Where("user_id = ? AND learning_path_id = ?", userID, pathID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
