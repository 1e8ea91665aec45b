package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExpiry(t *testing.T) {
	tests := map[string]time.Duration{
		"7d":   7 * 24 * time.Hour,
		"1d":   24 * time.Hour,
		"168h": 168 * time.Hour,
		"90m":  90 * time.Minute,
		" 2d ": 48 * time.Hour,
	}
	for in, want := range tests {
		got, err := ParseExpiry(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, bad := range []string{"", "d", "0d", "-1d", "xd", "-5m", "0s", "week"} {
		_, err := ParseExpiry(bad)
		assert.Error(t, err, bad)
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_EXPIRES_IN", "")
	t.Setenv("BCRYPT_COST", "")
	t.Setenv("PORT", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, 7*24*time.Hour, cfg.JWTExpiresIn)
	assert.Equal(t, 12, cfg.BcryptCost)
	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, EnvProduction, cfg.AppEnv)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
}

func TestLoadRequiresJWTSecretOutsideDevelopment(t *testing.T) {
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "postgres://db.internal/skillverify")
	t.Setenv("JWT_SECRET", "")

	for _, env := range []string{"", "production", "staging"} {
		t.Setenv("APP_ENV", env)
		cfg, err := Load()
		require.Error(t, err, env)
		assert.Nil(t, cfg, env)
	}

	t.Setenv("APP_ENV", "Development")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, EnvDevelopment, cfg.AppEnv)
	assert.Equal(t, devJWTSecret, cfg.JWTSecret)
}

func TestLoadRejectsBadDriver(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("DB_DRIVER", "mysql")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "")
	_, err = Load()
	assert.Error(t, err)
}
