package models

import (
	"time"

	"github.com/google/uuid"
)

type Tournament struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Game      string    `gorm:"size:100;not null" json:"game"`
	Date      time.Time `gorm:"not null" json:"date"`
	Organizer string    `gorm:"size:255;not null" json:"organizer"`
	PrizePool float64   `gorm:"type:numeric(12,2);not null;default:0" json:"prize_pool"`

	CreatedAt time.Time `json:"created_at"`
}

type TournamentResult struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_tournament" json:"user_id"`
	TournamentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_tournament" json:"tournament_id"`
	Placement    int       `gorm:"not null" json:"placement"`
	TeamName     *string   `gorm:"size:255" json:"team_name"`
	PrizeEarned  float64   `gorm:"type:numeric(12,2);not null;default:0" json:"prize_earned"`

	User       User       `gorm:"foreignkey:UserID" json:"user,omitempty"`
	Tournament Tournament `gorm:"foreignkey:TournamentID" json:"tournament,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
