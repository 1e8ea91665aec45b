package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/meinhoongagan/skillverify/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BookingRepository struct {
	db *gorm.DB
}

func (r *BookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(booking).Error
}

// FindByID returns nil when the booking does not exist. The worker profile
// and any review are loaded; they drive authorization and review checks.
func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.WithContext(ctx).
		Preload("Worker").
		Preload("Review").
		First(&booking, "id = ?", id).Error
	return found(&booking, err)
}

// FindWithParties loads both sides' contact details.
func (r *BookingRepository) FindWithParties(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Worker.User").
		Preload("Review").
		First(&booking, "id = ?", id).Error
	return found(&booking, err)
}

func (r *BookingRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.WithContext(ctx).
		Preload("Worker.User").
		Preload("Review").
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&bookings).Error
	return bookings, err
}

func (r *BookingRepository) ListByWorker(ctx context.Context, workerID uuid.UUID) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Review").
		Where("worker_id = ?", workerID).
		Order("created_at DESC").
		Find(&bookings).Error
	return bookings, err
}

// UpdateStatus moves the booking from one status to another. It reports false
// when the stored status was no longer from.
func (r *BookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to models.BookingStatus) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
