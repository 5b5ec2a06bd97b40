package models

import (
	"time"

	"github.com/google/uuid"
)

type Certificate struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID         uuid.UUID `gorm:"type:uuid;not null" json:"user_id"`
	CourseID       uuid.UUID `gorm:"type:uuid;not null" json:"course_id"`
	CourseTitle    string    `gorm:"size:255;not null" json:"course_title"`
	CompletionDate time.Time `gorm:"not null" json:"completion_date"`
	CertificateURL string    `gorm:"size:255;not null" json:"certificate_url"`

	CreatedAt time.Time `json:"created_at"`
}
