package progress

import (
	"time"

	"github.com/google/uuid"
)

// RepositionEvent is one append-only ledger row recording a committed
// repositioning. Rows are never updated or deleted; the audit trail for a
// stitch is the events ordered by (created_at, id).
type RepositionEvent struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index:idx_event_user_stitch,priority:1" json:"user_id"`
	LearningPathID uuid.UUID `gorm:"type:uuid;not null;index" json:"learning_path_id"`
	StitchID       uuid.UUID `gorm:"type:uuid;not null;index:idx_event_user_stitch,priority:2" json:"stitch_id"`

	PreviousPosition int `gorm:"column:previous_position;not null" json:"previous_position"`
	NewPosition      int `gorm:"column:new_position;not null" json:"new_position"`
	SkipNumber       int `gorm:"column:skip_number;not null" json:"skip_number"`
	QueueLength      int `gorm:"column:queue_length;not null" json:"queue_length"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime;index" json:"created_at"`
}

func (RepositionEvent) TableName() string { return "reposition_event" }
