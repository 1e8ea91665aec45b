package services

import (
	"context"
	"errors"
	"math"

	"github.com/google/uuid"
	"github.com/meinhoongagan/skillverify/dtos"
	"github.com/meinhoongagan/skillverify/models"
	"github.com/meinhoongagan/skillverify/repositories"
	"github.com/meinhoongagan/skillverify/utils"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	DefaultReviewPageSize = 10
	MaxReviewPageSize     = 50
	MaxReviewPage         = 100000
)

type ReviewService struct {
	store *repositories.Store
}

func NewReviewService(store *repositories.Store) *ReviewService {
	return &ReviewService{store: store}
}

// CreateReview records the customer's review of a completed booking and
// recomputes the worker's rating from every review it has, in one
// transaction.
func (s *ReviewService) CreateReview(ctx context.Context, customerID uuid.UUID, req *dtos.CreateReviewRequest) (*dtos.ReviewResponse, error) {
	if !models.ValidRating(req.Rating) {
		return nil, ErrInvalidRating
	}

	bookingID, err := uuid.Parse(req.BookingID)
	if err != nil {
		return nil, ErrBookingNotFound
	}
	booking, err := s.store.Bookings.FindByID(ctx, bookingID)
	if err != nil {
		return nil, utils.Internal(err)
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	if booking.CustomerID != customerID {
		return nil, ErrNotYourBooking
	}
	if booking.Status != models.BookingCompleted {
		return nil, ErrBookingNotCompleted
	}
	if booking.Review != nil {
		return nil, ErrAlreadyReviewed
	}

	review := &models.Review{
		BookingID:  booking.ID,
		CustomerID: customerID,
		WorkerID:   booking.WorkerID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}

	var rating float64
	var total int
	err = s.store.Transaction(ctx, func(tx *repositories.Store) error {
		if err := tx.Reviews.Create(ctx, review); err != nil {
			return err
		}
		ratings, err := tx.Reviews.RatingsForWorker(ctx, booking.WorkerID)
		if err != nil {
			return err
		}
		rating, total = averageRating(ratings), len(ratings)
		return tx.Workers.SetRating(ctx, booking.WorkerID, rating, total)
	})
	if err != nil {
		// Unique booking_id: a concurrent review won.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyReviewed
		}
		return nil, utils.Internal(err)
	}

	utils.Logger.WithFields(logrus.Fields{
		"review_id":     review.ID,
		"booking_id":    booking.ID,
		"worker_id":     booking.WorkerID,
		"rating":        review.Rating,
		"worker_rating": rating,
		"total_reviews": total,
	}).Info("review created")

	return &dtos.ReviewResponse{
		ID:        review.ID,
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt,
	}, nil
}

// GetWorkerReviews returns one page of reviews, newest first. page and limit
// fall back to 1 and DefaultReviewPageSize; both are capped.
func (s *ReviewService) GetWorkerReviews(ctx context.Context, workerID uuid.UUID, page, limit int) (*dtos.ReviewPage, error) {
	if page < 1 {
		page = 1
	}
	if page > MaxReviewPage {
		page = MaxReviewPage
	}
	if limit < 1 {
		limit = DefaultReviewPageSize
	}
	if limit > MaxReviewPageSize {
		limit = MaxReviewPageSize
	}

	reviews, total, err := s.store.Reviews.ListByWorker(ctx, workerID, limit, (page-1)*limit)
	if err != nil {
		return nil, utils.Internal(err)
	}

	items := make([]dtos.ReviewListItem, 0, len(reviews))
	for _, r := range reviews {
		item := dtos.ReviewListItem{
			ID:              r.ID,
			Rating:          r.Rating,
			Comment:         r.Comment,
			CustomerName:    r.Customer.FullName,
			CustomerPicture: r.Customer.ProfilePicture,
			CreatedAt:       r.CreatedAt,
		}
		if r.Booking != nil {
			item.Service = r.Booking.Service
		}
		items = append(items, item)
	}

	return &dtos.ReviewPage{
		Reviews: items,
		Total:   total,
		Page:    page,
		Limit:   limit,
		Pages:   int((total + int64(limit) - 1) / int64(limit)),
	}, nil
}

// GetWorkerReviewStats reports the review count, mean rating and how many
// reviews gave each star value.
func (s *ReviewService) GetWorkerReviewStats(ctx context.Context, workerID uuid.UUID) (*dtos.ReviewStats, error) {
	counts, err := s.store.Reviews.CountByRating(ctx, workerID)
	if err != nil {
		return nil, utils.Internal(err)
	}

	stats := &dtos.ReviewStats{
		WorkerID:  workerID,
		Breakdown: make(map[int]int64, models.MaxRating),
	}
	for r := models.MinRating; r <= models.MaxRating; r++ {
		stats.Breakdown[r] = 0
	}

	var sum int64
	for _, c := range counts {
		stats.Breakdown[c.Rating] = c.Count
		stats.TotalReviews += c.Count
		sum += int64(c.Rating) * c.Count
	}
	if stats.TotalReviews > 0 {
		stats.AverageRating = roundRating(float64(sum) / float64(stats.TotalReviews))
	}
	return stats, nil
}

// averageRating is the mean rounded to two decimals, 0 for no ratings.
func averageRating(ratings []int) float64 {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	return roundRating(float64(sum) / float64(len(ratings)))
}

func roundRating(v float64) float64 {
	return math.Round(v*100) / 100
}
