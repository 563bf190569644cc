package catalog

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Stitch is an atomic learning unit: a small batch of practice questions
// over a set of math facts. Content authoring owns these rows; the scheduler
// never mutates them.
type Stitch struct {
	ID             uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	LearningPathID uuid.UUID     `gorm:"type:uuid;not null;index:idx_stitch_path_seed,unique,priority:1" json:"learning_path_id"`
	LearningPath   *LearningPath `gorm:"constraint:OnDelete:CASCADE;foreignKey:LearningPathID;references:ID" json:"learning_path,omitempty"`

	Name       string `gorm:"column:name;type:text;not null" json:"name"`
	Difficulty int    `gorm:"column:difficulty;not null;default:1" json:"difficulty"`

	// FactIDs and Prerequisites are id arrays owned by the content model.
	FactIDs       datatypes.JSON `gorm:"type:jsonb;column:fact_ids" json:"fact_ids,omitempty"`
	Prerequisites datatypes.JSON `gorm:"type:jsonb;column:prerequisites" json:"prerequisites,omitempty"`

	// SeedPosition is the 1..N catalog order used when a learner's queue for
	// this path is first initialized.
	SeedPosition int `gorm:"column:seed_position;not null;index:idx_stitch_path_seed,unique,priority:2" json:"seed_position"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

func (Stitch) TableName() string { return "stitch" }
