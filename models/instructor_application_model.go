package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	ApplicationStatusPending  = "pending"
	ApplicationStatusApproved = "approved"
	ApplicationStatusRejected = "rejected"
)

type InstructorApplication struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID          uuid.UUID `gorm:"type:uuid;not null" json:"user_id"`
	ApplicationText string    `gorm:"type:text;not null" json:"application_text"`
	Experience      string    `gorm:"type:text;not null" json:"experience"`
	Status          string    `gorm:"size:20;not null;default:'pending'" json:"status"`
	AppliedAt       time.Time `gorm:"not null" json:"applied_at"`

	User User `gorm:"foreignkey:UserID" json:"user,omitempty"`
}
