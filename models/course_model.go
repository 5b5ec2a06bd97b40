package models

import (
	"time"

	"github.com/google/uuid"
)

type Course struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title        string    `gorm:"size:255;not null" json:"title"`
	Description  string    `gorm:"type:text;not null" json:"description"`
	InstructorID uuid.UUID `gorm:"type:uuid;not null" json:"instructor_id"`
	Category     string    `gorm:"size:100;not null" json:"category"`
	Price        float64   `gorm:"type:numeric(10,2);not null;default:0" json:"price"`
	ThumbnailURL *string   `gorm:"size:255" json:"thumbnail_url"`

	Instructor User     `gorm:"foreignkey:InstructorID" json:"instructor,omitempty"`
	Lessons    []Lesson `gorm:"foreignkey:CourseID" json:"lessons,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Lesson struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CourseID    uuid.UUID `gorm:"type:uuid;not null" json:"course_id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	OrderNumber int       `gorm:"not null" json:"order_number"`

	CreatedAt time.Time `json:"created_at"`
}
