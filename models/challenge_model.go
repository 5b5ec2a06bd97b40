package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	ChallengeTypeDaily  = "daily"
	ChallengeTypeGlobal = "global"
)

type Challenge struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title              string     `gorm:"size:255;not null" json:"title"`
	Description        string     `gorm:"type:text;not null" json:"description"`
	ChallengeType      string     `gorm:"size:20;not null" json:"challenge_type"`
	Points             int        `gorm:"not null;default:0" json:"points"`
	XP                 int        `gorm:"not null;default:0" json:"xp"`
	StartDate          time.Time  `gorm:"not null" json:"start_date"`
	EndDate            *time.Time `json:"end_date"`
	CompletionCriteria string     `gorm:"type:text;not null" json:"completion_criteria"`
	Difficulty         string     `gorm:"size:20;not null" json:"difficulty"`
	IsActive           bool       `gorm:"not null;default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
}

type UserChallenge struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID       uuid.UUID  `gorm:"type:uuid;not null" json:"user_id"`
	ChallengeID  uuid.UUID  `gorm:"type:uuid;not null" json:"challenge_id"`
	Progress     int        `gorm:"not null;default:0" json:"progress"`
	Completed    bool       `gorm:"not null;default:false" json:"completed"`
	CompletedAt  *time.Time `json:"completed_at"`
	PointsEarned int        `gorm:"not null;default:0" json:"points_earned"`
	XPEarned     int        `gorm:"not null;default:0" json:"xp_earned"`

	Challenge Challenge `gorm:"foreignkey:ChallengeID" json:"challenge,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
