package models

import (
	"time"

	"github.com/google/uuid"
)

// RankSeason is a time-boxed competitive period. At most one season is
// active at a time; activation deactivates all others in one transaction.
type RankSeason struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	StartDate time.Time `gorm:"not null" json:"start_date"`
	EndDate   time.Time `gorm:"not null" json:"end_date"`
	IsActive  bool      `gorm:"not null;default:false" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Rank is one tier of a season's ladder. Name and MinPoints are unique
// within a season.
type Rank struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	MinPoints int       `gorm:"not null" json:"min_points"`
	SeasonID  uuid.UUID `gorm:"type:uuid;not null" json:"season_id"`

	Season RankSeason `gorm:"foreignkey:SeasonID" json:"season,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// UserRank is one user's standing in one season, created lazily at the
// season's lowest rank with zero points.
type UserRank struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_season" json:"user_id"`
	SeasonID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_season" json:"season_id"`
	RankID   uuid.UUID `gorm:"type:uuid;not null" json:"rank_id"`
	Points   int       `gorm:"not null;default:0" json:"points"`

	Rank   Rank       `gorm:"foreignkey:RankID" json:"rank,omitempty"`
	Season RankSeason `gorm:"foreignkey:SeasonID" json:"season,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
