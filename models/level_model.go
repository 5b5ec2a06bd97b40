package models

import (
	"time"

	"github.com/google/uuid"
)

// Level is an admin-authored XP band. Levels form a contiguous ascending
// partition; the next level is looked up by level_number + 1.
type Level struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	LevelNumber int       `gorm:"not null;unique" json:"level_number"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	MinXP       int       `gorm:"not null" json:"min_xp"`
	MaxXP       int       `gorm:"not null" json:"max_xp"`
	Rewards     *string   `gorm:"type:text" json:"rewards"`

	CreatedAt time.Time `json:"created_at"`
}

// UserLevel is one user's progression row, created lazily at level 1.
type UserLevel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;unique" json:"user_id"`
	LevelID   uuid.UUID `gorm:"type:uuid;not null" json:"level_id"`
	CurrentXP int       `gorm:"not null;default:0" json:"current_xp"`

	Level Level `gorm:"foreignkey:LevelID" json:"level,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
