package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
	PaymentStatusRefunded  = "refunded"
)

type Payment struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID        uuid.UUID `gorm:"type:uuid;not null" json:"user_id"`
	CourseID      uuid.UUID `gorm:"type:uuid;not null" json:"course_id"`
	Amount        float64   `gorm:"type:numeric(10,2);not null" json:"amount"`
	PaymentMethod string    `gorm:"size:50;not null" json:"payment_method"`
	PaymentStatus string    `gorm:"size:20;not null;default:'pending'" json:"payment_status"`
	Reference     string    `gorm:"size:20;not null;unique" json:"reference"`
	PaidAt        time.Time `gorm:"not null" json:"paid_at"`

	User   User   `gorm:"foreignkey:UserID" json:"user,omitempty"`
	Course Course `gorm:"foreignkey:CourseID" json:"course,omitempty"`
}
