package app

import (
	"os"
	"strconv"
	"time"

	"github.com/aisleworks/doorkey/internal/auth/mail"
	"github.com/aisleworks/doorkey/internal/auth/service"
	"github.com/aisleworks/doorkey/pkg/jwtx"
)

type Config struct {
	SessionSecret string // Required: HMAC secret for session tokens (min 32 bytes)
	Issuer        string // Optional: issuer claim for session tokens (default: doorkey)
	BaseURL       string // Optional: web client base URL for reset links (default: http://localhost:3000)

	DatabaseFile    string        // Optional: path to SQLite database file (default: ./auth.db)
	PepperFile      string        // Optional: path to file containing pepper for password hashing (default: ./pepper)
	SessionTTL      time.Duration // Optional: session token lifetime (default: 7 days)
	VerificationTTL time.Duration // Optional: email verification code lifetime (default: 10m)
	ResetTTL        time.Duration // Optional: password reset token lifetime (default: 1h)

	SMTP mail.SMTPConfig // Optional: unset host means emails are logged, not sent

	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Expired token sweep interval (default: 1h)
}

func LoadConfig() Config {
	return Config{
		SessionSecret:        os.Getenv("AUTH_SESSION_SECRET"),
		Issuer:               getEnvOrDefault("AUTH_ISSUER", "doorkey"),
		BaseURL:              getEnvOrDefault("AUTH_BASE_URL", "http://localhost:3000"),
		DatabaseFile:         getEnvOrDefault("AUTH_DATABASE_FILE", "auth.db"),
		PepperFile:           getEnvOrDefault("AUTH_PEPPER_FILE", "pepper"),
		SessionTTL:           getEnvDurationOrDefault("AUTH_SESSION_TTL", jwtx.DefaultSessionTTL),
		VerificationTTL:      getEnvDurationOrDefault("AUTH_VERIFICATION_TTL", service.DefaultVerificationTTL),
		ResetTTL:             getEnvDurationOrDefault("AUTH_RESET_TTL", service.DefaultResetTTL),
		SMTP: mail.SMTPConfig{
			Host:     os.Getenv("SMTP_HOST"),
			Port:     getEnvIntOrDefault("SMTP_PORT", 587),
			Username: os.Getenv("SMTP_USERNAME"),
			Password: os.Getenv("SMTP_PASSWORD"),
			From:     getEnvOrDefault("SMTP_FROM", "no-reply@localhost"),
		},
		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Duration strings first (e.g. "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are taken as minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
