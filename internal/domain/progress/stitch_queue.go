package progress

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/numberloom/numberloom-backend/internal/scheduler"
)

// StitchQueue is one learner's ordered queue on one learning path: the only
// aggregate the scheduler mutates. Positions holds the ordering as a JSON
// array of stitch ids, array index i being position i+1. Version guards
// optimistic concurrency across service replicas.
type StitchQueue struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index:idx_queue_user_path,unique,priority:1" json:"user_id"`
	LearningPathID uuid.UUID `gorm:"type:uuid;not null;index:idx_queue_user_path,unique,priority:2" json:"learning_path_id"`

	Positions datatypes.JSON `gorm:"type:jsonb;column:positions;not null" json:"positions"`
	Version   int64          `gorm:"column:version;not null;default:0" json:"version"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

func (StitchQueue) TableName() string { return "stitch_queue" }

// Order decodes the stored position array.
func (q *StitchQueue) Order() (scheduler.Order, error) {
	var ids []uuid.UUID
	if err := json.Unmarshal(q.Positions, &ids); err != nil {
		return nil, fmt.Errorf("decode queue positions: %w", err)
	}
	return scheduler.Order(ids), nil
}

// EncodeOrder serializes an ordering for storage.
func EncodeOrder(order scheduler.Order) (datatypes.JSON, error) {
	raw, err := json.Marshal([]uuid.UUID(order))
	if err != nil {
		return nil, fmt.Errorf("encode queue positions: %w", err)
	}
	return datatypes.JSON(raw), nil
}
