package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/meinhoongagan/skillverify/dtos"
	"github.com/meinhoongagan/skillverify/models"
	"github.com/meinhoongagan/skillverify/repositories"
	"github.com/meinhoongagan/skillverify/utils"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AuthService struct {
	store      *repositories.Store
	tokens     *TokenService
	uploader   utils.ImageUploader
	bcryptCost int
}

func NewAuthService(store *repositories.Store, tokens *TokenService, uploader utils.ImageUploader, bcryptCost int) *AuthService {
	if uploader == nil {
		uploader = utils.DisabledUploader{}
	}
	return &AuthService{
		store:      store,
		tokens:     tokens,
		uploader:   uploader,
		bcryptCost: bcryptCost,
	}
}

// Register creates the user and, for a worker who listed skills, the worker
// profile in one transaction.
func (s *AuthService) Register(ctx context.Context, req *dtos.RegisterRequest) (*dtos.AuthResponse, error) {
	email := normalizeEmail(req.Email)
	phone := utils.NormalizePhone(req.Phone)

	role, ok := models.ParseRole(req.Role)
	if !ok || role == models.RoleAdmin {
		return nil, ErrInvalidRole
	}

	if taken, err := s.store.Users.ExistsByEmail(ctx, email); err != nil {
		return nil, utils.Internal(err)
	} else if taken {
		return nil, ErrEmailTaken
	}
	if taken, err := s.store.Users.ExistsByPhone(ctx, phone); err != nil {
		return nil, utils.Internal(err)
	} else if taken {
		return nil, ErrPhoneTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return nil, utils.Internal(fmt.Errorf("hash password: %w", err))
	}

	user := &models.User{
		FullName: strings.TrimSpace(req.FullName),
		Email:    email,
		Phone:    phone,
		Password: string(hash),
		Role:     role,
		Address:  req.Address,
		City:     req.City,
		Pincode:  req.Pincode,
		IsActive: true,
	}

	err = s.store.Transaction(ctx, func(tx *repositories.Store) error {
		if err := tx.Users.Create(ctx, user); err != nil {
			return err
		}
		if role != models.RoleWorker || len(req.Skills) == 0 {
			return nil
		}

		profile := &models.WorkerProfile{
			UserID:      user.ID,
			Skills:      datatypes.JSONSlice[string](cleanSkills(req.Skills)),
			Experience:  models.Experience0To1,
			IsAvailable: true,
		}
		if req.Experience != nil {
			profile.Experience = *req.Experience
		}
		if req.Bio != nil {
			profile.Bio = *req.Bio
		}
		if req.HourlyRate != nil {
			profile.HourlyRate = *req.HourlyRate
		}
		if err := tx.Workers.Create(ctx, profile); err != nil {
			return err
		}
		user.WorkerProfile = profile
		return nil
	})
	if err != nil {
		// Lost a race with a concurrent registration.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, s.duplicateCause(ctx, email)
		}
		return nil, utils.Internal(err)
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, utils.Internal(err)
	}

	utils.Logger.WithFields(logrus.Fields{
		"user_id": user.ID,
		"role":    user.Role,
	}).Info("user registered")

	return &dtos.AuthResponse{User: dtos.NewUserResponse(user), Token: token}, nil
}

func (s *AuthService) duplicateCause(ctx context.Context, email string) error {
	if taken, err := s.store.Users.ExistsByEmail(ctx, email); err == nil && taken {
		return ErrEmailTaken
	}
	return ErrPhoneTaken
}

// Login requires the stored role to equal the requested one, so a worker
// cannot sign in through the customer form. Every failure looks the same.
func (s *AuthService) Login(ctx context.Context, req *dtos.LoginRequest) (*dtos.AuthResponse, error) {
	user, err := s.store.Users.FindByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		return nil, utils.Internal(err)
	}

	role, _ := models.ParseRole(req.Role)
	if user == nil || user.Role != role || !user.IsActive {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, utils.Internal(err)
	}

	full, err := s.store.Users.FindByID(ctx, user.ID)
	if err != nil {
		return nil, utils.Internal(err)
	}
	return &dtos.AuthResponse{User: dtos.NewUserResponse(full), Token: token}, nil
}

func (s *AuthService) Logout(ctx context.Context, session *models.Session) error {
	if err := s.tokens.Revoke(ctx, session); err != nil {
		return utils.Internal(err)
	}
	return nil
}

func (s *AuthService) CheckEmail(ctx context.Context, email string) (bool, error) {
	exists, err := s.store.Users.ExistsByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return false, utils.Internal(err)
	}
	return exists, nil
}

func (s *AuthService) CheckPhone(ctx context.Context, phone string) (bool, error) {
	exists, err := s.store.Users.ExistsByPhone(ctx, utils.NormalizePhone(phone))
	if err != nil {
		return false, utils.Internal(err)
	}
	return exists, nil
}

func (s *AuthService) GetProfile(ctx context.Context, userID uuid.UUID) (*dtos.UserResponse, error) {
	user, err := s.store.Users.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.Internal(err)
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return dtos.NewUserResponse(user), nil
}

// UpdateProfile writes only the supplied fields. Worker-profile fields are
// applied only when the caller is a worker.
func (s *AuthService) UpdateProfile(ctx context.Context, session *models.Session, req *dtos.UpdateProfileRequest) (*dtos.UserResponse, error) {
	user, err := s.store.Users.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, utils.Internal(err)
	}
	if user == nil {
		return nil, ErrNotFound
	}

	userFields := map[string]any{}
	if req.FullName != nil {
		userFields["full_name"] = strings.TrimSpace(*req.FullName)
	}
	if req.Phone != nil {
		phone := utils.NormalizePhone(*req.Phone)
		if phone != user.Phone {
			taken, err := s.store.Users.PhoneUsedByOther(ctx, phone, user.ID)
			if err != nil {
				return nil, utils.Internal(err)
			}
			if taken {
				return nil, ErrPhoneTaken
			}
			userFields["phone"] = phone
			userFields["is_phone_verified"] = false
		}
	}
	if req.Address != nil {
		userFields["address"] = *req.Address
	}
	if req.City != nil {
		userFields["city"] = *req.City
	}
	if req.Pincode != nil {
		userFields["pincode"] = *req.Pincode
	}
	if req.ProfilePicture != nil {
		userFields["profile_picture"] = *req.ProfilePicture
	}

	workerFields := map[string]any{}
	if session.Is(models.RoleWorker) && req.HasWorkerFields() {
		if req.Skills != nil {
			workerFields["skills"] = datatypes.JSONSlice[string](cleanSkills(*req.Skills))
		}
		if req.Experience != nil {
			workerFields["experience"] = *req.Experience
		}
		if req.Bio != nil {
			workerFields["bio"] = *req.Bio
		}
		if req.HourlyRate != nil {
			workerFields["hourly_rate"] = *req.HourlyRate
		}
	}

	err = s.store.Transaction(ctx, func(tx *repositories.Store) error {
		if err := tx.Users.Update(ctx, user.ID, userFields); err != nil {
			return err
		}
		if len(workerFields) == 0 {
			return nil
		}
		if user.WorkerProfile != nil {
			return tx.Workers.Update(ctx, user.WorkerProfile.ID, workerFields)
		}
		// Worker registered without skills: the first profile edit creates it.
		profile := &models.WorkerProfile{UserID: user.ID, IsAvailable: true}
		applyWorkerFields(profile, req)
		return tx.Workers.Create(ctx, profile)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrPhoneTaken
		}
		return nil, utils.Internal(err)
	}

	return s.GetProfile(ctx, user.ID)
}

// UploadProfilePicture stores the image and records its URL on the user.
func (s *AuthService) UploadProfilePicture(ctx context.Context, userID uuid.UUID, file io.Reader) (*dtos.UserResponse, error) {
	url, err := s.uploader.UploadImage(ctx, file, "user_"+userID.String())
	if err != nil {
		if errors.Is(err, utils.ErrUploadDisabled) {
			return nil, ErrUploadUnavailable
		}
		return nil, utils.Internal(fmt.Errorf("upload profile picture: %w", err))
	}
	if err := s.store.Users.Update(ctx, userID, map[string]any{"profile_picture": url}); err != nil {
		return nil, utils.Internal(err)
	}
	return s.GetProfile(ctx, userID)
}

func applyWorkerFields(p *models.WorkerProfile, req *dtos.UpdateProfileRequest) {
	if req.Skills != nil {
		p.Skills = datatypes.JSONSlice[string](cleanSkills(*req.Skills))
	}
	if req.Experience != nil {
		p.Experience = *req.Experience
	}
	if req.Bio != nil {
		p.Bio = *req.Bio
	}
	if req.HourlyRate != nil {
		p.HourlyRate = *req.HourlyRate
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// cleanSkills trims entries and drops blanks and case-insensitive repeats,
// keeping the first spelling so the primary skill is preserved.
func cleanSkills(skills []string) []string {
	seen := make(map[string]bool, len(skills))
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		trimmed := strings.TrimSpace(s)
		key := models.NormalizeSkill(trimmed)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, trimmed)
	}
	return out
}
