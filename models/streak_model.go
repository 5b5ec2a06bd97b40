package models

import (
	"time"

	"github.com/google/uuid"
)

type Streak struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID        uuid.UUID  `gorm:"type:uuid;not null;unique" json:"user_id"`
	Count         int        `gorm:"not null;default:0" json:"count"`
	StreakStartAt time.Time  `gorm:"not null" json:"streak_start_at"`
	StreakResetAt *time.Time `json:"streak_reset_at"`

	User User `gorm:"foreignkey:UserID" json:"user,omitempty"`

	UpdatedAt time.Time `json:"updated_at"`
}
