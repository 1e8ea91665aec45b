package dtos

import (
	"time"

	"github.com/google/uuid"
	"github.com/meinhoongagan/skillverify/models"
)

type RegisterRequest struct {
	FullName   string   `json:"fullName" validate:"required,min=2,max=100"`
	Email      string   `json:"email" validate:"required,email"`
	Phone      string   `json:"phone" validate:"required,phone"`
	Password   string   `json:"password" validate:"required,min=6,max=72"`
	Role       string   `json:"role" validate:"required,oneof=CUSTOMER WORKER"`
	Address    *string  `json:"address" validate:"omitempty,max=500"`
	City       *string  `json:"city" validate:"omitempty,max=100"`
	Pincode    *string  `json:"pincode" validate:"omitempty,numeric,len=6"`
	Skills     []string `json:"skills" validate:"omitempty,max=20,dive,required,max=50"`
	HourlyRate *float64 `json:"hourlyRate" validate:"omitempty,gte=0"`
	Experience *string  `json:"experience" validate:"omitempty,experience"`
	Bio        *string  `json:"bio" validate:"omitempty,max=1000"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=CUSTOMER WORKER ADMIN"`
}

type CheckEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type CheckPhoneRequest struct {
	Phone string `json:"phone" validate:"required,phone"`
}

// UpdateProfileRequest leaves a field untouched when it is omitted.
type UpdateProfileRequest struct {
	FullName       *string   `json:"fullName" validate:"omitempty,min=2,max=100"`
	Phone          *string   `json:"phone" validate:"omitempty,phone"`
	Address        *string   `json:"address" validate:"omitempty,max=500"`
	City           *string   `json:"city" validate:"omitempty,max=100"`
	Pincode        *string   `json:"pincode" validate:"omitempty,numeric,len=6"`
	ProfilePicture *string   `json:"profilePicture" validate:"omitempty,url"`
	Skills         *[]string `json:"skills" validate:"omitempty,max=20,dive,required,max=50"`
	Experience     *string   `json:"experience" validate:"omitempty,experience"`
	Bio            *string   `json:"bio" validate:"omitempty,max=1000"`
	HourlyRate     *float64  `json:"hourlyRate" validate:"omitempty,gte=0"`
}

// HasWorkerFields reports whether any worker-profile field was supplied.
func (r *UpdateProfileRequest) HasWorkerFields() bool {
	return r.Skills != nil || r.Experience != nil || r.Bio != nil || r.HourlyRate != nil
}

type ExistsResponse struct {
	Exists bool `json:"exists"`
}

type UserResponse struct {
	ID              uuid.UUID             `json:"id"`
	FullName        string                `json:"fullName"`
	Email           string                `json:"email"`
	Phone           string                `json:"phone"`
	Role            models.Role           `json:"role"`
	ProfilePicture  *string               `json:"profilePicture"`
	Address         *string               `json:"address"`
	City            *string               `json:"city"`
	Pincode         *string               `json:"pincode"`
	IsActive        bool                  `json:"isActive"`
	IsEmailVerified bool                  `json:"isEmailVerified"`
	IsPhoneVerified bool                  `json:"isPhoneVerified"`
	WorkerProfile   *models.WorkerProfile `json:"workerProfile,omitempty"`
	CreatedAt       time.Time             `json:"createdAt"`
	UpdatedAt       time.Time             `json:"updatedAt"`
}

// NewUserResponse never carries the password hash.
func NewUserResponse(u *models.User) *UserResponse {
	return &UserResponse{
		ID:              u.ID,
		FullName:        u.FullName,
		Email:           u.Email,
		Phone:           u.Phone,
		Role:            u.Role,
		ProfilePicture:  u.ProfilePicture,
		Address:         u.Address,
		City:            u.City,
		Pincode:         u.Pincode,
		IsActive:        u.IsActive,
		IsEmailVerified: u.IsEmailVerified,
		IsPhoneVerified: u.IsPhoneVerified,
		WorkerProfile:   u.WorkerProfile,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}

type AuthResponse struct {
	User  *UserResponse `json:"user"`
	Token string        `json:"token"`
}
