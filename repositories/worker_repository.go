package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/meinhoongagan/skillverify/models"
	"gorm.io/gorm"
)

type WorkerRepository struct {
	db *gorm.DB
}

func (r *WorkerRepository) Create(ctx context.Context, profile *models.WorkerProfile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

// FindByID returns nil when the profile does not exist.
func (r *WorkerRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.WorkerProfile, error) {
	var profile models.WorkerProfile
	err := r.db.WithContext(ctx).Preload("User").First(&profile, "id = ?", id).Error
	return found(&profile, err)
}

func (r *WorkerRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*models.WorkerProfile, error) {
	var profile models.WorkerProfile
	err := r.db.WithContext(ctx).Preload("User").First(&profile, "user_id = ?", userID).Error
	return found(&profile, err)
}

// FindDetail loads the profile with its owner and every review, newest first,
// each with its author.
func (r *WorkerRepository) FindDetail(ctx context.Context, id uuid.UUID) (*models.WorkerProfile, error) {
	var profile models.WorkerProfile
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Reviews", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Preload("Reviews.Customer").
		First(&profile, "id = ?", id).Error
	return found(&profile, err)
}

// ListPublic returns available, verified workers, best rated first. A
// non-empty search matches a substring of the owner's full name, ignoring case.
func (r *WorkerRepository) ListPublic(ctx context.Context, search string) ([]models.WorkerProfile, error) {
	q := r.db.WithContext(ctx).
		Preload("User").
		Where("is_available = ? AND verification_status = ?", true, models.VerificationVerified)

	if search != "" {
		q = q.Where(
			"user_id IN (?)",
			r.db.Model(&models.User{}).Select("id").Where(`LOWER(full_name) LIKE ? ESCAPE '\'`, containsPattern(search)),
		)
	}

	var profiles []models.WorkerProfile
	err := q.Order("rating DESC").Order("total_reviews DESC").Order("created_at ASC").Find(&profiles).Error
	return profiles, err
}

func (r *WorkerRepository) ListByVerification(ctx context.Context, status models.VerificationStatus) ([]models.WorkerProfile, error) {
	var profiles []models.WorkerProfile
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("verification_status = ?", status).
		Order("created_at ASC").
		Find(&profiles).Error
	return profiles, err
}

// Update writes only the given columns. Callers never pass the derived
// rating, totalReviews or totalBookings columns.
func (r *WorkerRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	res := r.db.WithContext(ctx).Model(&models.WorkerProfile{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *WorkerRepository) IncrementBookings(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&models.WorkerProfile{}).
		Where("id = ?", id).
		UpdateColumn("total_bookings", gorm.Expr("total_bookings + ?", 1)).Error
}

func (r *WorkerRepository) SetRating(ctx context.Context, id uuid.UUID, rating float64, totalReviews int) error {
	return r.db.WithContext(ctx).
		Model(&models.WorkerProfile{}).
		Where("id = ?", id).
		UpdateColumns(map[string]any{
			"rating":        rating,
			"total_reviews": totalReviews,
		}).Error
}
