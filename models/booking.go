package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingStatus string

const (
	BookingPending    BookingStatus = "PENDING"
	BookingConfirmed  BookingStatus = "CONFIRMED"
	BookingInProgress BookingStatus = "IN_PROGRESS"
	BookingCompleted  BookingStatus = "COMPLETED"
	BookingCancelled  BookingStatus = "CANCELLED"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "PENDING"
	PaymentPaid     PaymentStatus = "PAID"
	PaymentRefunded PaymentStatus = "REFUNDED"
)

var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingPending:    {BookingConfirmed, BookingCancelled},
	BookingConfirmed:  {BookingInProgress, BookingCompleted, BookingCancelled},
	BookingInProgress: {BookingCompleted, BookingCancelled},
	BookingCompleted:  nil,
	BookingCancelled:  nil,
}

func (s BookingStatus) Valid() bool {
	_, ok := bookingTransitions[s]
	return ok
}

func (s BookingStatus) IsTerminal() bool {
	return s == BookingCompleted || s == BookingCancelled
}

// CanTransitionTo reports whether next is a legal successor of s.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, n := range bookingTransitions[s] {
		if n == next {
			return true
		}
	}
	return false
}

// Booking.Amount is the worker's hourly rate at creation and is never repriced.
type Booking struct {
	ID            uuid.UUID     `json:"id" gorm:"type:uuid;primaryKey"`
	CustomerID    uuid.UUID     `json:"customerId" gorm:"type:uuid;not null;index"`
	Customer      User          `json:"customer" gorm:"foreignKey:CustomerID"`
	WorkerID      uuid.UUID     `json:"workerId" gorm:"type:uuid;not null;index"`
	Worker        WorkerProfile `json:"worker" gorm:"foreignKey:WorkerID"`
	Service       string        `json:"service" gorm:"size:100;not null"`
	Description   string        `json:"description" gorm:"type:text"`
	ScheduledDate time.Time     `json:"scheduledDate" gorm:"type:date;not null"`
	ScheduledTime string        `json:"scheduledTime" gorm:"size:5;not null"`
	Address       string        `json:"address" gorm:"type:text;not null"`
	Status        BookingStatus `json:"status" gorm:"size:20;not null;default:'PENDING';index"`
	Amount        float64       `json:"amount" gorm:"type:numeric(10,2);not null"`
	PaymentStatus PaymentStatus `json:"paymentStatus" gorm:"size:20;not null;default:'PENDING'"`
	Review        *Review       `json:"review,omitempty" gorm:"foreignKey:BookingID"`
	CreatedAt     time.Time     `json:"createdAt" gorm:"index"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if b.Status == "" {
		b.Status = BookingPending
	}
	if b.PaymentStatus == "" {
		b.PaymentStatus = PaymentPending
	}
	return nil
}
