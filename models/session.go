package models

import (
	"time"

	"github.com/google/uuid"
)

// Session is the authenticated caller, decoded from the bearer token once
// per request and handed to handlers explicitly.
type Session struct {
	UserID    uuid.UUID
	Email     string
	Role      Role
	TokenID   string
	ExpiresAt time.Time
}

func (s *Session) Is(role Role) bool {
	return s != nil && s.Role == role
}
