package services_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/meinhoongagan/skillverify/dtos"
	"github.com/meinhoongagan/skillverify/models"
	"github.com/meinhoongagan/skillverify/repositories"
	"github.com/meinhoongagan/skillverify/services"
	"github.com/meinhoongagan/skillverify/testutil"
	"github.com/meinhoongagan/skillverify/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func registerReq(name, email, phone string, role models.Role) *dtos.RegisterRequest {
	return &dtos.RegisterRequest{
		FullName: name,
		Email:    email,
		Phone:    phone,
		Password: "secret123",
		Role:     string(role),
	}
}

func TestRegisterCustomer(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	res, err := e.auth.Register(ctx, registerReq("Asha Patil", "Asha@Example.com ", "9876543210", models.RoleCustomer))
	require.NoError(t, err)

	assert.Equal(t, "asha@example.com", res.User.Email)
	assert.Equal(t, models.RoleCustomer, res.User.Role)
	assert.True(t, res.User.IsActive)
	assert.Nil(t, res.User.WorkerProfile)

	session, err := e.tokens.Parse(res.Token)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, session.UserID)
	assert.Equal(t, "asha@example.com", session.Email)
	assert.Equal(t, models.RoleCustomer, session.Role)

	var stored models.User
	require.NoError(t, e.db.First(&stored, "id = ?", res.User.ID).Error)
	assert.NotEqual(t, "secret123", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret123")))
}

func TestRegisterWorkerWithSkillsCreatesProfile(t *testing.T) {
	e := newEnv(t)

	req := registerReq("Ramesh Kumar", "ramesh@example.com", "9876500001", models.RoleWorker)
	req.Skills = []string{"Plumbing", " pipe fitting ", "plumbing", ""}
	req.HourlyRate = floatPtr(299)

	res, err := e.auth.Register(context.Background(), req)
	require.NoError(t, err)

	profile, err := e.store.Workers.FindByUserID(context.Background(), res.User.ID)
	require.NoError(t, err)
	require.NotNil(t, profile)

	assert.Equal(t, []string{"Plumbing", "pipe fitting"}, []string(profile.Skills))
	assert.Equal(t, models.Experience0To1, profile.Experience)
	assert.Equal(t, "", profile.Bio)
	assert.Equal(t, 299.0, profile.HourlyRate)
	assert.Equal(t, models.VerificationPending, profile.VerificationStatus)
	assert.True(t, profile.IsAvailable)
	assert.Zero(t, profile.Rating)
	assert.Zero(t, profile.TotalReviews)
}

func TestRegisterWorkerWithoutSkillsHasNoProfile(t *testing.T) {
	e := newEnv(t)

	res, err := e.auth.Register(context.Background(), registerReq("Suresh", "suresh@example.com", "9876500002", models.RoleWorker))
	require.NoError(t, err)

	profile, err := e.store.Workers.FindByUserID(context.Background(), res.User.ID)
	require.NoError(t, err)
	assert.Nil(t, profile)
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	_, err := e.auth.Register(ctx, registerReq("Asha", "asha@example.com", "9876543210", models.RoleCustomer))
	require.NoError(t, err)

	t.Run("email", func(t *testing.T) {
		_, err := e.auth.Register(ctx, registerReq("Other", "ASHA@example.com", "9876543211", models.RoleWorker))
		require.ErrorIs(t, err, services.ErrEmailTaken)
	})

	t.Run("phone", func(t *testing.T) {
		_, err := e.auth.Register(ctx, registerReq("Other", "other@example.com", "9876543210", models.RoleCustomer))
		require.ErrorIs(t, err, services.ErrPhoneTaken)
	})

	var users int64
	require.NoError(t, e.db.Model(&models.User{}).Count(&users).Error)
	assert.EqualValues(t, 1, users)
}

func TestPhoneNumbersAreStoredInTenDigitForm(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	res, err := e.auth.Register(ctx, registerReq("Asha", "asha@example.com", "9876543210", models.RoleCustomer))
	require.NoError(t, err)
	assert.Equal(t, "9876543210", res.User.Phone)

	_, err = e.auth.Register(ctx, registerReq("Other", "other@example.com", "+919876543210", models.RoleCustomer))
	require.ErrorIs(t, err, services.ErrPhoneTaken)

	res, err = e.auth.Register(ctx, registerReq("Ravi", "ravi@example.com", " +919876543220", models.RoleCustomer))
	require.NoError(t, err)
	assert.Equal(t, "9876543220", res.User.Phone)

	_, err = e.auth.Register(ctx, registerReq("Other", "other@example.com", "9876543220", models.RoleCustomer))
	require.ErrorIs(t, err, services.ErrPhoneTaken)

	exists, err := e.auth.CheckPhone(ctx, "+919876543210")
	require.NoError(t, err)
	assert.True(t, exists)

	other := e.customer(t, "Other", "other@example.com", "9876543299")
	_, err = e.auth.UpdateProfile(ctx, customerSession(other), &dtos.UpdateProfileRequest{Phone: strPtr("+919876543210")})
	require.ErrorIs(t, err, services.ErrPhoneTaken)

	updated, err := e.auth.UpdateProfile(ctx, customerSession(other), &dtos.UpdateProfileRequest{Phone: strPtr("+919876543298")})
	require.NoError(t, err)
	assert.Equal(t, "9876543298", updated.Phone)

	var users int64
	require.NoError(t, e.db.Model(&models.User{}).Count(&users).Error)
	assert.EqualValues(t, 3, users)
}

// A rival signup can land between the existence checks and the insert; the
// unique indexes still decide which field was taken.
func TestRegisterConcurrentDuplicate(t *testing.T) {
	tests := []struct {
		name  string
		email string
		phone string
		want  error
	}{
		{name: "same email", email: "asha@example.com", phone: "9876543211", want: services.ErrEmailTaken},
		{name: "same phone", email: "rival@example.com", phone: "9876543210", want: services.ErrPhoneTaken},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := newEnv(t)
			testutil.AfterQueryOnce(t, e.db, "users", "phone = ?", func(conn *gorm.DB) {
				testutil.CreateUser(t, conn, models.RoleCustomer, "Rival", tc.email, tc.phone)
			})

			_, err := e.auth.Register(context.Background(), registerReq("Asha", "asha@example.com", "9876543210", models.RoleWorker))
			require.ErrorIs(t, err, tc.want)

			var users, profiles int64
			require.NoError(t, e.db.Model(&models.User{}).Count(&users).Error)
			require.NoError(t, e.db.Model(&models.WorkerProfile{}).Count(&profiles).Error)
			assert.EqualValues(t, 1, users)
			assert.Zero(t, profiles)
		})
	}
}

func TestUpdateProfileConcurrentPhoneClaim(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	customer := e.customer(t, "Asha", "asha@example.com", "9876543210")

	testutil.AfterQueryOnce(t, e.db, "users", "id <> ?", func(conn *gorm.DB) {
		testutil.CreateUser(t, conn, models.RoleCustomer, "Rival", "rival@example.com", "9876543299")
	})

	_, err := e.auth.UpdateProfile(ctx, customerSession(customer), &dtos.UpdateProfileRequest{
		Phone: strPtr("9876543299"),
		City:  strPtr("Pune"),
	})
	require.ErrorIs(t, err, services.ErrPhoneTaken)

	stored, err := e.store.Users.FindByID(ctx, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, "9876543210", stored.Phone)
	assert.Nil(t, stored.City)
}

func TestRegisterRejectsAdminRole(t *testing.T) {
	e := newEnv(t)

	_, err := e.auth.Register(context.Background(), registerReq("Mallory", "m@example.com", "9876543210", models.RoleAdmin))
	require.ErrorIs(t, err, services.ErrInvalidRole)

	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Status)
}

func TestLogin(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	worker := e.worker(t, testutil.WorkerOptions{Name: "Ramesh", Email: "ramesh@example.com", Phone: "9876500001", Skills: []string{"plumbing"}})

	t.Run("success", func(t *testing.T) {
		res, err := e.auth.Login(ctx, &dtos.LoginRequest{Email: "Ramesh@example.com", Password: testutil.Password, Role: "WORKER"})
		require.NoError(t, err)
		assert.Equal(t, worker.UserID, res.User.ID)
		require.NotNil(t, res.User.WorkerProfile)
		assert.Equal(t, worker.ID, res.User.WorkerProfile.ID)
		assert.NotEmpty(t, res.Token)
	})

	failures := map[string]*dtos.LoginRequest{
		"role mismatch":  {Email: "ramesh@example.com", Password: testutil.Password, Role: "CUSTOMER"},
		"wrong password": {Email: "ramesh@example.com", Password: "nope", Role: "WORKER"},
		"unknown email":  {Email: "nobody@example.com", Password: testutil.Password, Role: "WORKER"},
	}
	for name, req := range failures {
		t.Run(name, func(t *testing.T) {
			_, err := e.auth.Login(ctx, req)
			require.ErrorIs(t, err, services.ErrInvalidCredentials)

			var appErr *utils.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, 401, appErr.Status)
		})
	}

	t.Run("inactive account", func(t *testing.T) {
		require.NoError(t, e.db.Model(&models.User{}).Where("id = ?", worker.UserID).Update("is_active", false).Error)
		_, err := e.auth.Login(ctx, &dtos.LoginRequest{Email: "ramesh@example.com", Password: testutil.Password, Role: "WORKER"})
		require.ErrorIs(t, err, services.ErrInvalidCredentials)
	})
}

func TestCheckEmailAndPhone(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	e.customer(t, "Asha", "asha@example.com", "9876543210")

	exists, err := e.auth.CheckEmail(ctx, " ASHA@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = e.auth.CheckEmail(ctx, "new@example.com")
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = e.auth.CheckPhone(ctx, "9876543210")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = e.auth.CheckPhone(ctx, "9000000000")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestGetProfileNotFound(t *testing.T) {
	e := newEnv(t)

	_, err := e.auth.GetProfile(context.Background(), testutil.CreateUser(t, e.db, models.RoleCustomer, "A", "a@example.com", "9876543210").ID)
	require.NoError(t, err)

	_, err = e.auth.GetProfile(context.Background(), uuid.New())
	require.ErrorIs(t, err, services.ErrNotFound)
}

func TestUpdateProfile(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	customer := e.customer(t, "Asha", "asha@example.com", "9876543210")
	e.customer(t, "Other", "other@example.com", "9876543299")
	worker := e.worker(t, testutil.WorkerOptions{Name: "Ramesh", Email: "ramesh@example.com", Phone: "9876500001", Skills: []string{"plumbing"}, HourlyRate: 299})

	t.Run("customer fields only", func(t *testing.T) {
		res, err := e.auth.UpdateProfile(ctx, customerSession(customer), &dtos.UpdateProfileRequest{
			City:   strPtr("Pune"),
			Skills: &[]string{"ignored"},
		})
		require.NoError(t, err)
		require.NotNil(t, res.City)
		assert.Equal(t, "Pune", *res.City)
		assert.Equal(t, "Asha", res.FullName)
		assert.Nil(t, res.WorkerProfile)

		profile, err := e.store.Workers.FindByUserID(ctx, customer.ID)
		require.NoError(t, err)
		assert.Nil(t, profile)
	})

	t.Run("phone taken", func(t *testing.T) {
		_, err := e.auth.UpdateProfile(ctx, customerSession(customer), &dtos.UpdateProfileRequest{Phone: strPtr("9876543299")})
		require.ErrorIs(t, err, services.ErrPhoneTaken)
	})

	t.Run("worker fields", func(t *testing.T) {
		res, err := e.auth.UpdateProfile(ctx, workerSession(worker), &dtos.UpdateProfileRequest{
			FullName:   strPtr("Ramesh K"),
			Skills:     &[]string{"Electrical", "plumbing"},
			Experience: strPtr(models.Experience3To5),
			Bio:        strPtr("Ten years on the tools"),
			HourlyRate: floatPtr(350),
		})
		require.NoError(t, err)
		assert.Equal(t, "Ramesh K", res.FullName)
		require.NotNil(t, res.WorkerProfile)
		assert.Equal(t, []string{"Electrical", "plumbing"}, []string(res.WorkerProfile.Skills))
		assert.Equal(t, models.Experience3To5, res.WorkerProfile.Experience)
		assert.Equal(t, "Ten years on the tools", res.WorkerProfile.Bio)
		assert.Equal(t, 350.0, res.WorkerProfile.HourlyRate)
		assert.Equal(t, models.VerificationVerified, res.WorkerProfile.VerificationStatus)
	})
}

func TestUpdateProfileCreatesMissingWorkerProfile(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	res, err := e.auth.Register(ctx, registerReq("Suresh", "suresh@example.com", "9876500002", models.RoleWorker))
	require.NoError(t, err)

	session := &models.Session{UserID: res.User.ID, Role: models.RoleWorker}
	updated, err := e.auth.UpdateProfile(ctx, session, &dtos.UpdateProfileRequest{Skills: &[]string{"carpentry"}})
	require.NoError(t, err)
	require.NotNil(t, updated.WorkerProfile)
	assert.Equal(t, []string{"carpentry"}, []string(updated.WorkerProfile.Skills))
	assert.True(t, updated.WorkerProfile.IsAvailable)
}

func TestUploadProfilePicture(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	customer := e.customer(t, "Asha", "asha@example.com", "9876543210")

	res, err := e.auth.UploadProfilePicture(ctx, customer.ID, bytes.NewReader([]byte("img")))
	require.NoError(t, err)
	require.NotNil(t, res.ProfilePicture)
	assert.Contains(t, *res.ProfilePicture, "user_"+customer.ID.String())
	assert.Equal(t, "user_"+customer.ID.String(), e.uploader.publicID)

	disabled := services.NewAuthService(repositories.NewStore(e.db), e.tokens, utils.DisabledUploader{}, bcrypt.MinCost)
	_, err = disabled.UploadProfilePicture(ctx, customer.ID, bytes.NewReader([]byte("img")))
	require.ErrorIs(t, err, services.ErrUploadUnavailable)
}

func TestLogoutRevokesToken(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	res, err := e.auth.Register(ctx, registerReq("Asha", "asha@example.com", "9876543210", models.RoleCustomer))
	require.NoError(t, err)

	session, err := e.tokens.Parse(res.Token)
	require.NoError(t, err)
	require.NotEmpty(t, session.TokenID)

	revoked, err := e.tokens.IsRevoked(ctx, session)
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, e.auth.Logout(ctx, session))

	revoked, err = e.tokens.IsRevoked(ctx, session)
	require.NoError(t, err)
	assert.True(t, revoked)
	assert.Greater(t, e.revoker.revoked[session.TokenID], time.Duration(0))
}
