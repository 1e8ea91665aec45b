package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID              uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	FullName        string         `json:"fullName" gorm:"size:255;not null"`
	Email           string         `json:"email" gorm:"size:255;not null;uniqueIndex"`
	Phone           string         `json:"phone" gorm:"size:20;not null;uniqueIndex"`
	Password        string         `json:"-" gorm:"not null"`
	Role            Role           `json:"role" gorm:"size:20;not null;default:'CUSTOMER';index"`
	ProfilePicture  *string        `json:"profilePicture"`
	Address         *string        `json:"address" gorm:"type:text"`
	City            *string        `json:"city" gorm:"size:100"`
	Pincode         *string        `json:"pincode" gorm:"size:10"`
	IsActive        bool           `json:"isActive" gorm:"not null"`
	IsEmailVerified bool           `json:"isEmailVerified" gorm:"not null;default:false"`
	IsPhoneVerified bool           `json:"isPhoneVerified" gorm:"not null;default:false"`
	WorkerProfile   *WorkerProfile `json:"workerProfile,omitempty" gorm:"foreignKey:UserID"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.Role == "" {
		u.Role = RoleCustomer
	}
	return nil
}
