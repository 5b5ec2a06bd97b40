package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	QuestionStatusActive   = "active"
	QuestionStatusInactive = "inactive"
)

// QuizQuestion is a yes/no question in the career quiz. Tags holds the
// comma-separated career tags a "yes" answer votes for.
type QuizQuestion struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Question string    `gorm:"type:text;not null" json:"question"`
	Tags     string    `gorm:"size:255;not null" json:"-"`
	Status   string    `gorm:"size:20;not null;default:'active'" json:"-"`

	CreatedAt time.Time `json:"-"`
}

// Career is one recommendable occupation. Tags mirror the question tags so
// the recommender can score answers against it.
type Career struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title       string    `gorm:"size:255;not null;unique" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Tags        string    `gorm:"size:255;not null" json:"-"`

	CreatedAt time.Time `json:"-"`
}
