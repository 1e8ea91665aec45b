package dtos

import (
	"time"

	"github.com/google/uuid"
	"github.com/meinhoongagan/skillverify/models"
)

type WorkerListQuery struct {
	Service string `query:"service"`
	Search  string `query:"search"`
}

type AvailabilityRequest struct {
	IsAvailable *bool `json:"isAvailable" validate:"required"`
}

type VerificationRequest struct {
	Status string `json:"status" validate:"required,oneof=PENDING VERIFIED REJECTED"`
}

// WorkerSummary is one row of the public worker directory.
type WorkerSummary struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"userId"`
	FullName       string    `json:"fullName"`
	ProfilePicture *string   `json:"profilePicture"`
	City           *string   `json:"city"`
	PrimarySkill   string    `json:"primarySkill"`
	Skills         []string  `json:"skills"`
	Experience     string    `json:"experience"`
	HourlyRate     float64   `json:"hourlyRate"`
	Rating         float64   `json:"rating"`
	TotalReviews   int       `json:"totalReviews"`
	TotalBookings  int       `json:"totalBookings"`
	IsAvailable    bool      `json:"isAvailable"`
	Verified       bool      `json:"verified"`
}

func NewWorkerSummary(w *models.WorkerProfile) WorkerSummary {
	s := WorkerSummary{
		ID:            w.ID,
		UserID:        w.UserID,
		PrimarySkill:  w.PrimarySkill(),
		Skills:        []string(w.Skills),
		Experience:    w.Experience,
		HourlyRate:    w.HourlyRate,
		Rating:        w.Rating,
		TotalReviews:  w.TotalReviews,
		TotalBookings: w.TotalBookings,
		IsAvailable:   w.IsAvailable,
		Verified:      w.VerificationStatus == models.VerificationVerified,
	}
	if s.Skills == nil {
		s.Skills = []string{}
	}
	if w.User != nil {
		s.FullName = w.User.FullName
		s.ProfilePicture = w.User.ProfilePicture
		s.City = w.User.City
	}
	return s
}

type WorkerContact struct {
	Email   string  `json:"email"`
	Phone   string  `json:"phone"`
	Address *string `json:"address"`
	City    *string `json:"city"`
	Pincode *string `json:"pincode"`
}

type WorkerReview struct {
	ID              uuid.UUID `json:"id"`
	Rating          int       `json:"rating"`
	Comment         *string   `json:"comment"`
	CustomerName    string    `json:"customerName"`
	CustomerPicture *string   `json:"customerPicture"`
	CreatedAt       time.Time `json:"createdAt"`
}

// WorkerDetail is the public profile page.
type WorkerDetail struct {
	WorkerSummary
	Bio                string                    `json:"bio"`
	VerificationStatus models.VerificationStatus `json:"verificationStatus"`
	Contact            WorkerContact             `json:"contact"`
	Reviews            []WorkerReview            `json:"reviews"`
	MemberSince        time.Time                 `json:"memberSince"`
}

func NewWorkerDetail(w *models.WorkerProfile) *WorkerDetail {
	d := &WorkerDetail{
		WorkerSummary:      NewWorkerSummary(w),
		Bio:                w.Bio,
		VerificationStatus: w.VerificationStatus,
		Reviews:            make([]WorkerReview, 0, len(w.Reviews)),
		MemberSince:        w.CreatedAt,
	}
	if w.User != nil {
		d.Contact = WorkerContact{
			Email:   w.User.Email,
			Phone:   w.User.Phone,
			Address: w.User.Address,
			City:    w.User.City,
			Pincode: w.User.Pincode,
		}
	}
	for _, r := range w.Reviews {
		d.Reviews = append(d.Reviews, WorkerReview{
			ID:              r.ID,
			Rating:          r.Rating,
			Comment:         r.Comment,
			CustomerName:    r.Customer.FullName,
			CustomerPicture: r.Customer.ProfilePicture,
			CreatedAt:       r.CreatedAt,
		})
	}
	return d
}
