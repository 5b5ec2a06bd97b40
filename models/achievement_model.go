package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	CriteriaCoursesCompleted    = "courses_completed"
	CriteriaChallengesCompleted = "challenges_completed"
	CriteriaLevelReached        = "level_reached"
)

// AchievementCriteria is the tagged union stored as a JSON string in the
// criteria column: {"type":"courses_completed","count":5},
// {"type":"challenges_completed","count":3} or
// {"type":"level_reached","level":10}. An unrecognized type is treated as
// never satisfied by the evaluator.
type AchievementCriteria struct {
	Type  string `json:"type"`
	Count int    `json:"count,omitempty"`
	Level int    `json:"level,omitempty"`
}

func ParseCriteria(raw string) (AchievementCriteria, error) {
	var criteria AchievementCriteria
	err := json.Unmarshal([]byte(raw), &criteria)
	return criteria, err
}

type Achievement struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Description string    `gorm:"type:text;not null" json:"description"`
	IconURL     string    `gorm:"size:255;not null" json:"icon_url"`
	Points      int       `gorm:"not null;default:0" json:"points"`
	XP          int       `gorm:"not null;default:0" json:"xp"`
	Criteria    string    `gorm:"type:text;not null" json:"criteria"`

	CreatedAt time.Time `json:"created_at"`
}

type UserAchievement struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_achievement" json:"user_id"`
	AchievementID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_achievement" json:"achievement_id"`
	UnlockedAt    time.Time `gorm:"not null" json:"unlocked_at"`

	Achievement Achievement `gorm:"foreignkey:AchievementID" json:"achievement,omitempty"`
}
