package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/meinhoongagan/skillverify/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReviewRepository struct {
	db *gorm.DB
}

func (r *ReviewRepository) Create(ctx context.Context, review *models.Review) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(review).Error
}

func (r *ReviewRepository) ExistsForBooking(ctx context.Context, bookingID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Review{}).Where("booking_id = ?", bookingID).Count(&count).Error
	return count > 0, err
}

// RatingsForWorker returns every rating the worker has received.
func (r *ReviewRepository) RatingsForWorker(ctx context.Context, workerID uuid.UUID) ([]int, error) {
	var ratings []int
	err := r.db.WithContext(ctx).Model(&models.Review{}).Where("worker_id = ?", workerID).Pluck("rating", &ratings).Error
	return ratings, err
}

// ListByWorker pages through a worker's reviews, newest first, with the
// author and the booking loaded.
func (r *ReviewRepository) ListByWorker(ctx context.Context, workerID uuid.UUID, limit, offset int) ([]models.Review, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Review{}).Where("worker_id = ?", workerID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reviews []models.Review
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Booking").
		Where("worker_id = ?", workerID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&reviews).Error
	return reviews, total, err
}

type RatingCount struct {
	Rating int
	Count  int64
}

func (r *ReviewRepository) CountByRating(ctx context.Context, workerID uuid.UUID) ([]RatingCount, error) {
	var counts []RatingCount
	err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Select("rating, COUNT(*) AS count").
		Where("worker_id = ?", workerID).
		Group("rating").
		Scan(&counts).Error
	return counts, err
}
