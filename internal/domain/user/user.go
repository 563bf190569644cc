package user

import (
	"time"

	"github.com/google/uuid"
)

// User is the minimal learner record the scheduler needs: enough to tell a
// missing user apart from a missing learning path. Profile, auth, and billing
// live in other services.
type User struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	DisplayName string    `gorm:"column:display_name;type:text;not null" json:"display_name"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string { return "app_user" }
