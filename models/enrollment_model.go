package models

import (
	"time"

	"github.com/google/uuid"
)

type Enrollment struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_course" json:"user_id"`
	CourseID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_course" json:"course_id"`
	Progress  int       `gorm:"not null;default:0" json:"progress"`
	Completed bool      `gorm:"not null;default:false" json:"completed"`

	User   User   `gorm:"foreignkey:UserID" json:"user,omitempty"`
	Course Course `gorm:"foreignkey:CourseID" json:"course,omitempty"`

	EnrolledAt time.Time `gorm:"not null" json:"enrolled_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
