package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/numberloom/numberloom-backend/internal/domain"
	"github.com/numberloom/numberloom-backend/internal/platform/logger"
)

type LearningPathRepo interface {
	Create(ctx context.Context, tx *gorm.DB, rows []*types.LearningPath) ([]*types.LearningPath, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.LearningPath, error)
	GetBySlug(ctx context.Context, tx *gorm.DB, slug string) (*types.LearningPath, error)
	ListActive(ctx context.Context, tx *gorm.DB) ([]*types.LearningPath, error)
}

type learningPathRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewLearningPathRepo(db *gorm.DB, baseLog *logger.Logger) LearningPathRepo {
	return &learningPathRepo{db: db, log: baseLog.With("repo", "LearningPathRepo")}
}

func (r *learningPathRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.LearningPath) ([]*types.LearningPath, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if len(rows) == 0 {
		return []*types.LearningPath{}, nil
	}
	if err := t.WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *learningPathRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.LearningPath, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if id == uuid.Nil {
		return nil, nil
	}
	var row types.LearningPath
	err := t.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *learningPathRepo) GetBySlug(ctx context.Context, tx *gorm.DB, slug string) (*types.LearningPath, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if slug == "" {
		return nil, nil
	}
	var row types.LearningPath
	err := t.WithContext(ctx).Where("slug = ?", slug).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *learningPathRepo) ListActive(ctx context.Context, tx *gorm.DB) ([]*types.LearningPath, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.LearningPath
	if err := t.WithContext(ctx).
		Where("active = ?", true).
		Order("slug ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
