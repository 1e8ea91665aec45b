package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	MinRating = 1
	MaxRating = 5
)

// Review is unique per booking; the index backs the AlreadyReviewed check.
type Review struct {
	ID         uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	BookingID  uuid.UUID      `json:"bookingId" gorm:"type:uuid;not null;uniqueIndex"`
	Booking    *Booking       `json:"booking,omitempty" gorm:"foreignKey:BookingID"`
	CustomerID uuid.UUID      `json:"customerId" gorm:"type:uuid;not null;index"`
	Customer   User           `json:"customer" gorm:"foreignKey:CustomerID"`
	WorkerID   uuid.UUID      `json:"workerId" gorm:"type:uuid;not null;index"`
	Worker     *WorkerProfile `json:"worker,omitempty" gorm:"foreignKey:WorkerID"`
	Rating     int            `json:"rating" gorm:"not null"`
	Comment    *string        `json:"comment" gorm:"type:text"`
	CreatedAt  time.Time      `json:"createdAt" gorm:"index"`
	UpdatedAt  time.Time      `json:"updatedAt"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

func ValidRating(r int) bool {
	return r >= MinRating && r <= MaxRating
}
