package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/meinhoongagan/skillverify/models"
	"github.com/meinhoongagan/skillverify/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	tokens := services.NewTokenService("secret", time.Hour, nil)
	user := &models.User{ID: uuid.New(), Email: "asha@example.com", Role: models.RoleCustomer}

	raw, err := tokens.Issue(user)
	require.NoError(t, err)

	session, err := tokens.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, user.ID, session.UserID)
	assert.Equal(t, user.Email, session.Email)
	assert.Equal(t, models.RoleCustomer, session.Role)
	assert.NotEmpty(t, session.TokenID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), session.ExpiresAt, 5*time.Second)
}

func TestTokenRejected(t *testing.T) {
	user := &models.User{ID: uuid.New(), Email: "asha@example.com", Role: models.RoleWorker}

	t.Run("wrong secret", func(t *testing.T) {
		raw, err := services.NewTokenService("one", time.Hour, nil).Issue(user)
		require.NoError(t, err)
		_, err = services.NewTokenService("two", time.Hour, nil).Parse(raw)
		require.ErrorIs(t, err, services.ErrUnauthorized)
	})

	t.Run("expired", func(t *testing.T) {
		tokens := services.NewTokenService("secret", -time.Minute, nil)
		raw, err := tokens.Issue(user)
		require.NoError(t, err)
		_, err = tokens.Parse(raw)
		require.ErrorIs(t, err, services.ErrUnauthorized)
	})

	t.Run("unknown role", func(t *testing.T) {
		_, err := services.SessionFromClaims(jwt.MapClaims{"id": user.ID.String(), "role": "ROOT"})
		require.ErrorIs(t, err, services.ErrUnauthorized)
	})

	t.Run("bad id", func(t *testing.T) {
		_, err := services.SessionFromClaims(jwt.MapClaims{"id": 42.0, "role": "WORKER"})
		require.ErrorIs(t, err, services.ErrUnauthorized)
	})
}

func TestRevokeWithoutStoreIsNoop(t *testing.T) {
	tokens := services.NewTokenService("secret", time.Hour, nil)
	session := &models.Session{UserID: uuid.New(), TokenID: "abc", ExpiresAt: time.Now().Add(time.Hour)}

	require.NoError(t, tokens.Revoke(context.Background(), session))
	revoked, err := tokens.IsRevoked(context.Background(), session)
	require.NoError(t, err)
	assert.False(t, revoked)
}
