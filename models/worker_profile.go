package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "PENDING"
	VerificationVerified VerificationStatus = "VERIFIED"
	VerificationRejected VerificationStatus = "REJECTED"
)

func (s VerificationStatus) Valid() bool {
	switch s {
	case VerificationPending, VerificationVerified, VerificationRejected:
		return true
	}
	return false
}

// Experience brackets, lowest first.
const (
	Experience0To1  = "0-1"
	Experience1To3  = "1-3"
	Experience3To5  = "3-5"
	Experience5Plus = "5+"
)

var ExperienceBrackets = []string{Experience0To1, Experience1To3, Experience3To5, Experience5Plus}

// WorkerProfile carries the derived Rating/TotalReviews aggregate over the
// worker's reviews and a TotalBookings counter; both are only written by the
// review and booking repositories.
type WorkerProfile struct {
	ID                 uuid.UUID                   `json:"id" gorm:"type:uuid;primaryKey"`
	UserID             uuid.UUID                   `json:"userId" gorm:"type:uuid;not null;uniqueIndex"`
	User               *User                       `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Skills             datatypes.JSONSlice[string] `json:"skills"`
	Experience         string                      `json:"experience" gorm:"size:20;not null;default:'0-1'"`
	Bio                string                      `json:"bio" gorm:"type:text"`
	HourlyRate         float64                     `json:"hourlyRate" gorm:"type:numeric(10,2);not null;default:0"`
	VerificationStatus VerificationStatus          `json:"verificationStatus" gorm:"size:20;not null;default:'PENDING';index"`
	Rating             float64                     `json:"rating" gorm:"not null;default:0"`
	TotalReviews       int                         `json:"totalReviews" gorm:"not null;default:0"`
	TotalBookings      int                         `json:"totalBookings" gorm:"not null;default:0"`
	IsAvailable        bool                        `json:"isAvailable" gorm:"not null;index"`
	Reviews            []Review                    `json:"reviews,omitempty" gorm:"foreignKey:WorkerID"`
	CreatedAt          time.Time                   `json:"createdAt"`
	UpdatedAt          time.Time                   `json:"updatedAt"`
}

func (w *WorkerProfile) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	if w.Skills == nil {
		w.Skills = datatypes.JSONSlice[string]{}
	}
	if w.Experience == "" {
		w.Experience = Experience0To1
	}
	if w.VerificationStatus == "" {
		w.VerificationStatus = VerificationPending
	}
	return nil
}

// PrimarySkill is the first listed skill, or "" when none are set.
func (w *WorkerProfile) PrimarySkill() string {
	if len(w.Skills) == 0 {
		return ""
	}
	return w.Skills[0]
}

// HasSkill compares case-insensitively and ignores surrounding space.
func (w *WorkerProfile) HasSkill(skill string) bool {
	want := NormalizeSkill(skill)
	for _, s := range w.Skills {
		if NormalizeSkill(s) == want {
			return true
		}
	}
	return false
}

func NormalizeSkill(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
