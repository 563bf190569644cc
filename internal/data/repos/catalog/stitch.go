package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/numberloom/numberloom-backend/internal/domain"
	"github.com/numberloom/numberloom-backend/internal/platform/logger"
)

type StitchRepo interface {
	Create(ctx context.Context, tx *gorm.DB, rows []*types.Stitch) ([]*types.Stitch, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Stitch, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.Stitch, error)
	// ListByPathID returns a path's stitches in catalog seed order.
	ListByPathID(ctx context.Context, tx *gorm.DB, pathID uuid.UUID) ([]*types.Stitch, error)
}

type stitchRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewStitchRepo(db *gorm.DB, baseLog *logger.Logger) StitchRepo {
	return &stitchRepo{db: db, log: baseLog.With("repo", "StitchRepo")}
}

func (r *stitchRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.Stitch) ([]*types.Stitch, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if len(rows) == 0 {
		return []*types.Stitch{}, nil
	}
	if err := t.WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *stitchRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Stitch, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if id == uuid.Nil {
		return nil, nil
	}
	var row types.Stitch
	err := t.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *stitchRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.Stitch, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.Stitch
	if len(ids) == 0 {
		return out, nil
	}
	if err := t.WithContext(ctx).Where("id IN ?", ids).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *stitchRepo) ListByPathID(ctx context.Context, tx *gorm.DB, pathID uuid.UUID) ([]*types.Stitch, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.Stitch
	if pathID == uuid.Nil {
		return out, nil
	}
	if err := t.WithContext(ctx).
		Where("learning_path_id = ?", pathID).
		Order("seed_position ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
