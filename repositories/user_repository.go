package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/meinhoongagan/skillverify/models"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, "email = ?", email)
}

func (r *UserRepository) ExistsByPhone(ctx context.Context, phone string) (bool, error) {
	return r.exists(ctx, "phone = ?", phone)
}

// PhoneUsedByOther reports whether a user other than userID owns phone.
func (r *UserRepository) PhoneUsedByOther(ctx context.Context, phone string, userID uuid.UUID) (bool, error) {
	return r.exists(ctx, "phone = ? AND id <> ?", phone, userID)
}

func (r *UserRepository) exists(ctx context.Context, query string, args ...any) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.User{}).Where(query, args...).Count(&count).Error
	return count > 0, err
}

// FindByEmail returns nil when no user has the email.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	return found(&user, err)
}

// FindByID returns nil when the user does not exist. The worker profile is
// loaded when there is one.
func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Preload("WorkerProfile").First(&user, "id = ?", id).Error
	return found(&user, err)
}

func (r *UserRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Updates(fields).Error
}

func found[T any](v *T, err error) (*T, error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}
