package dtos

import (
	"time"

	"github.com/google/uuid"
)

type CreateReviewRequest struct {
	BookingID string  `json:"bookingId" validate:"required,uuid"`
	Rating    int     `json:"rating"`
	Comment   *string `json:"comment" validate:"omitempty,max=1000"`
}

type ReviewResponse struct {
	ID        uuid.UUID `json:"id"`
	Rating    int       `json:"rating"`
	Comment   *string   `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

type ReviewListItem struct {
	ID              uuid.UUID `json:"id"`
	Rating          int       `json:"rating"`
	Comment         *string   `json:"comment"`
	CustomerName    string    `json:"customerName"`
	CustomerPicture *string   `json:"customerPicture"`
	Service         string    `json:"service"`
	CreatedAt       time.Time `json:"createdAt"`
}

type ReviewPage struct {
	Reviews []ReviewListItem `json:"reviews"`
	Total   int64            `json:"total"`
	Page    int              `json:"page"`
	Limit   int              `json:"limit"`
	Pages   int              `json:"pages"`
}

type ReviewStats struct {
	WorkerID      uuid.UUID     `json:"workerId"`
	TotalReviews  int64         `json:"totalReviews"`
	AverageRating float64       `json:"averageRating"`
	Breakdown     map[int]int64 `json:"breakdown"`
}
