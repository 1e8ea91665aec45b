package testutil

import (
	"testing"

	"github.com/meinhoongagan/skillverify/models"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Password is the plain-text password of every fixture user.
const Password = "secret123"

func hash(t *testing.T) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(Password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func CreateUser(t *testing.T, gdb *gorm.DB, role models.Role, name, email, phone string) *models.User {
	t.Helper()
	user := &models.User{
		FullName: name,
		Email:    email,
		Phone:    phone,
		Password: hash(t),
		Role:     role,
		IsActive: true,
	}
	require.NoError(t, gdb.Create(user).Error)
	return user
}

type WorkerOptions struct {
	Name         string
	Email        string
	Phone        string
	City         string
	Skills       []string
	HourlyRate   float64
	Verification models.VerificationStatus
	Unavailable  bool
}

// CreateWorker inserts a worker user and profile. Verification defaults to
// VERIFIED so the worker is publicly listed.
func CreateWorker(t *testing.T, gdb *gorm.DB, opts WorkerOptions) *models.WorkerProfile {
	t.Helper()
	user := CreateUser(t, gdb, models.RoleWorker, opts.Name, opts.Email, opts.Phone)
	if opts.City != "" {
		city := opts.City
		require.NoError(t, gdb.Model(user).Update("city", city).Error)
		user.City = &city
	}

	if opts.Verification == "" {
		opts.Verification = models.VerificationVerified
	}
	profile := &models.WorkerProfile{
		UserID:             user.ID,
		Skills:             datatypes.JSONSlice[string](opts.Skills),
		HourlyRate:         opts.HourlyRate,
		VerificationStatus: opts.Verification,
		IsAvailable:        !opts.Unavailable,
	}
	require.NoError(t, gdb.Omit("User").Create(profile).Error)
	profile.User = user
	return profile
}
