package catalog

import (
	"time"

	"github.com/google/uuid"
)

// LearningPath is one of the parallel content tracks a learner progresses
// through. Authored upstream; read-only here.
type LearningPath struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Slug   string    `gorm:"column:slug;type:text;not null;uniqueIndex" json:"slug"`
	Name   string    `gorm:"column:name;type:text;not null" json:"name"`
	Active bool      `gorm:"column:active;not null;default:true" json:"active"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

func (LearningPath) TableName() string { return "learning_path" }
