package services

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/meinhoongagan/skillverify/models"
)

// TokenRevoker persists logged-out token IDs. A nil revoker disables
// server-side logout.
type TokenRevoker interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type TokenService struct {
	secret  []byte
	expiry  time.Duration
	revoker TokenRevoker
	now     func() time.Time
}

func NewTokenService(secret string, expiry time.Duration, revoker TokenRevoker) *TokenService {
	return &TokenService{
		secret:  []byte(secret),
		expiry:  expiry,
		revoker: revoker,
		now:     time.Now,
	}
}

func (s *TokenService) Secret() []byte {
	return s.secret
}

// Issue signs {id, email, role} plus jti/iat/exp with HS256.
func (s *TokenService) Issue(user *models.User) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"id":    user.ID.String(),
		"email": user.Email,
		"role":  string(user.Role),
		"jti":   uuid.NewString(),
		"iat":   now.Unix(),
		"exp":   now.Add(s.expiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Parse verifies a raw token; used outside the fiber middleware (tests, tools).
func (s *TokenService) Parse(raw string) (*models.Session, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrUnauthorized
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrUnauthorized
	}
	return SessionFromClaims(claims)
}

// SessionFromClaims converts verified claims into a Session.
func SessionFromClaims(claims jwt.MapClaims) (*models.Session, error) {
	idStr, _ := claims["id"].(string)
	userID, err := uuid.Parse(idStr)
	if err != nil {
		return nil, ErrUnauthorized
	}

	roleStr, _ := claims["role"].(string)
	role, ok := models.ParseRole(roleStr)
	if !ok {
		return nil, ErrUnauthorized
	}

	session := &models.Session{UserID: userID, Role: role}
	session.Email, _ = claims["email"].(string)
	session.TokenID, _ = claims["jti"].(string)
	if exp, ok := claims["exp"].(float64); ok {
		session.ExpiresAt = time.Unix(int64(exp), 0)
	}
	return session, nil
}

// Revoke blacklists the session's token for the rest of its lifetime.
func (s *TokenService) Revoke(ctx context.Context, session *models.Session) error {
	if s.revoker == nil || session.TokenID == "" {
		return nil
	}
	return s.revoker.Revoke(ctx, session.TokenID, session.ExpiresAt.Sub(s.now()))
}

func (s *TokenService) IsRevoked(ctx context.Context, session *models.Session) (bool, error) {
	if s.revoker == nil || session.TokenID == "" {
		return false, nil
	}
	return s.revoker.IsRevoked(ctx, session.TokenID)
}
