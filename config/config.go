package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/meinhoongagan/skillverify/utils"
)

// Config holds every setting the API reads from the environment.
type Config struct {
	AppName  string
	AppEnv   string
	Port     string
	LogLevel string

	DBDriver    string
	DatabaseURL string
	DBPath      string
	AutoMigrate bool

	JWTSecret    string
	JWTExpiresIn time.Duration
	BcryptCost   int

	RedisAddr     string
	RedisPassword string

	SMTPHost  string
	SMTPPort  int
	EmailUser string
	EmailPass string
	EmailFrom string

	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string
	CloudinaryFolder    string

	AdminEmail    string
	AdminPassword string
	AdminPhone    string
	AdminFullName string

	CORSOrigins        string
	RateLimitPerMinute int
}

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	devJWTSecret = "skillverify_dev_secret"
)

// Load reads .env (if present) and the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		utils.Logger.Warn(".env file not found, reading from system environment variables")
	}

	expiresIn, err := ParseExpiry(get("JWT_EXPIRES_IN", "7d"))
	if err != nil {
		return nil, fmt.Errorf("JWT_EXPIRES_IN: %w", err)
	}

	cfg := &Config{
		AppName:  get("APP_NAME", "SkillVerify"),
		AppEnv:   strings.ToLower(get("APP_ENV", EnvProduction)),
		Port:     get("PORT", "8000"),
		LogLevel: get("LOG_LEVEL", "info"),

		DBDriver:    strings.ToLower(get("DB_DRIVER", "postgres")),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		DBPath:      get("DB_PATH", "skillverify.db"),
		AutoMigrate: getBool("AUTO_MIGRATE", true),

		JWTSecret:    os.Getenv("JWT_SECRET"),
		JWTExpiresIn: expiresIn,
		BcryptCost:   getInt("BCRYPT_COST", 12),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		SMTPHost:  os.Getenv("SMTP_HOST"),
		SMTPPort:  getInt("SMTP_PORT", 587),
		EmailUser: os.Getenv("EMAIL_USER"),
		EmailPass: os.Getenv("EMAIL_PASS"),
		EmailFrom: get("EMAIL_FROM", os.Getenv("EMAIL_USER")),

		CloudinaryCloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:    os.Getenv("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret: os.Getenv("CLOUDINARY_API_SECRET"),
		CloudinaryFolder:    get("CLOUDINARY_FOLDER", "skillverify/profile_pictures"),

		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		AdminPhone:    get("ADMIN_PHONE", "0000000000"),
		AdminFullName: get("ADMIN_FULL_NAME", "SkillVerify Admin"),

		CORSOrigins:        get("CORS_ORIGINS", "*"),
		RateLimitPerMinute: getInt("RATE_LIMIT_PER_MINUTE", 100),
	}

	switch cfg.DBDriver {
	case "postgres":
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is not set")
		}
	case "sqlite":
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	if cfg.JWTSecret == "" {
		if cfg.AppEnv != EnvDevelopment {
			return nil, fmt.Errorf("JWT_SECRET is required when APP_ENV=%s", cfg.AppEnv)
		}
		utils.Logger.Warn("JWT_SECRET is not set, using development secret")
		cfg.JWTSecret = devJWTSecret
	}

	return cfg, nil
}

// ParseExpiry accepts Go durations ("168h") and whole days ("7d").
func ParseExpiry(v string) (time.Duration, error) {
	v = strings.TrimSpace(v)
	if days, ok := strings.CutSuffix(v, "d"); ok {
		n, err := strconv.Atoi(days)
		if err != nil || n <= 0 {
			return 0, fmt.Errorf("invalid day count %q", v)
		}
		return time.Duration(n) * 24 * time.Hour, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("expiry must be positive, got %q", v)
	}
	return d, nil
}

func get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		utils.Logger.Warnf("invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}

func getBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		utils.Logger.Warnf("invalid %s=%q, using %t", key, v, fallback)
		return fallback
	}
	return b
}
