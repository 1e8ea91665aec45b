package dtos

import (
	"time"

	"github.com/google/uuid"
	"github.com/meinhoongagan/skillverify/models"
	"github.com/meinhoongagan/skillverify/utils"
)

type CreateBookingRequest struct {
	WorkerID      string `json:"workerId" validate:"required,uuid"`
	Service       string `json:"service" validate:"required,max=100"`
	Description   string `json:"description" validate:"max=2000"`
	ScheduledDate string `json:"scheduledDate" validate:"required"`
	ScheduledTime string `json:"scheduledTime" validate:"required,clock"`
	Address       string `json:"address" validate:"required,max=500"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=PENDING CONFIRMED IN_PROGRESS COMPLETED CANCELLED"`
}

// PartySummary is the counterpart shown on a booking card.
type PartySummary struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"userId"`
	FullName       string    `json:"fullName"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	ProfilePicture *string   `json:"profilePicture"`
	PrimarySkill   string    `json:"primarySkill,omitempty"`
	Rating         *float64  `json:"rating,omitempty"`
}

type BookingResponse struct {
	ID            uuid.UUID            `json:"id"`
	CustomerID    uuid.UUID            `json:"customerId"`
	WorkerID      uuid.UUID            `json:"workerId"`
	Service       string               `json:"service"`
	Description   string               `json:"description"`
	ScheduledDate string               `json:"scheduledDate"`
	ScheduledTime string               `json:"scheduledTime"`
	Address       string               `json:"address"`
	Status        models.BookingStatus `json:"status"`
	Amount        float64              `json:"amount"`
	PaymentStatus models.PaymentStatus `json:"paymentStatus"`
	Worker        *PartySummary        `json:"worker,omitempty"`
	Customer      *PartySummary        `json:"customer,omitempty"`
	HasReview     *bool                `json:"hasReview,omitempty"`
	CreatedAt     time.Time            `json:"createdAt"`
	UpdatedAt     time.Time            `json:"updatedAt"`
}

func NewBookingResponse(b *models.Booking) *BookingResponse {
	return &BookingResponse{
		ID:            b.ID,
		CustomerID:    b.CustomerID,
		WorkerID:      b.WorkerID,
		Service:       b.Service,
		Description:   b.Description,
		ScheduledDate: b.ScheduledDate.Format(utils.DateLayout),
		ScheduledTime: b.ScheduledTime,
		Address:       b.Address,
		Status:        b.Status,
		Amount:        b.Amount,
		PaymentStatus: b.PaymentStatus,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

// WithWorker attaches the worker card; it needs Worker.User loaded.
func (r *BookingResponse) WithWorker(w *models.WorkerProfile) *BookingResponse {
	if w == nil || w.User == nil {
		return r
	}
	rating := w.Rating
	r.Worker = &PartySummary{
		ID:             w.ID,
		UserID:         w.UserID,
		FullName:       w.User.FullName,
		Email:          w.User.Email,
		Phone:          w.User.Phone,
		ProfilePicture: w.User.ProfilePicture,
		PrimarySkill:   w.PrimarySkill(),
		Rating:         &rating,
	}
	return r
}

func (r *BookingResponse) WithCustomer(u *models.User) *BookingResponse {
	if u == nil || u.ID == uuid.Nil {
		return r
	}
	r.Customer = &PartySummary{
		ID:             u.ID,
		UserID:         u.ID,
		FullName:       u.FullName,
		Email:          u.Email,
		Phone:          u.Phone,
		ProfilePicture: u.ProfilePicture,
	}
	return r
}

func (r *BookingResponse) WithReviewFlag(b *models.Booking) *BookingResponse {
	has := b.Review != nil
	r.HasReview = &has
	return r
}
