package progress

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	types "github.com/numberloom/numberloom-backend/internal/domain"
	"github.com/numberloom/numberloom-backend/internal/platform/logger"
)

// ErrVersionConflict reports that an optimistic-concurrency write lost the
// race: the stored queue version no longer matches the one that was read.
var ErrVersionConflict = errors.New("stitch queue version conflict")

type StitchQueueRepo interface {
	Create(ctx context.Context, tx *gorm.DB, row *types.StitchQueue) (*types.StitchQueue, error)
	GetByUserAndPath(ctx context.Context, tx *gorm.DB, userID, pathID uuid.UUID) (*types.StitchQueue, error)
	// UpdatePositions replaces the position array iff the stored version still
	// equals expectedVersion; otherwise it returns ErrVersionConflict.
	UpdatePositions(ctx context.Context, tx *gorm.DB, id uuid.UUID, positions datatypes.JSON, expectedVersion int64) error
	DeleteByUserAndPath(ctx context.Context, tx *gorm.DB, userID, pathID uuid.UUID) error
}

type stitchQueueRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewStitchQueueRepo(db *gorm.DB, baseLog *logger.Logger) StitchQueueRepo {
	return &stitchQueueRepo{db: db, log: baseLog.With("repo", "StitchQueueRepo")}
}

func (r *stitchQueueRepo) Create(ctx context.Context, tx *gorm.DB, row *types.StitchQueue) (*types.StitchQueue, error) {
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

func (r *stitchQueueRepo) GetByUserAndPath(ctx context.Context, tx *gorm.DB, userID, pathID uuid.UUID) (*types.StitchQueue, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if userID == uuid.Nil || pathID == uuid.Nil {
		return nil, nil
	}
	var row types.StitchQueue
	err := t.WithContext(ctx).
		Where("user_id = ? AND learning_path_id = ?", userID, pathID).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *stitchQueueRepo) UpdatePositions(ctx context.Context, tx *gorm.DB, id uuid.UUID, positions datatypes.JSON, expectedVersion int64) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if id == uuid.Nil {
		return nil
	}
	res := t.WithContext(ctx).
		Model(&types.StitchQueue{}).
		Where("id = ? AND version = ?", id, expectedVersion).
		Updates(map[string]any{
			"positions":  positions,
			"version":    expectedVersion + 1,
			"updated_at": time.Now().UTC(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrVersionConflict
	}
	return nil
}

func (r *stitchQueueRepo) DeleteByUserAndPath(ctx context.Context, tx *gorm.DB, userID, pathID uuid.UUID) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if userID == uuid.Nil || pathID == uuid.Nil {
		return nil
	}
	return t.WithContext(ctx).
		Where("user_id = ? AND learning_path_id = ?", userID, pathID).
		Delete(&types.StitchQueue{}).Error
}
