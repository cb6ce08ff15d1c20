// Package config loads and validates process configuration from
// environment variables.
//
// Validation is aggregating rather than fail-fast: every invalid or
// missing field is reported in a single error so operators can fix a
// broken deployment in one pass.
package config

import (
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	// MinSecretLength is the minimum byte length for JWT_SECRET and
	// API_SECRET_KEY.
	MinSecretLength = 32

	// EncryptionKeyHexLength is the required length of ENCRYPTION_KEY
	// (hex-encoded 32-byte AES-256 key).
	EncryptionKeyHexLength = 64
)

// Environment names recognized in APP_ENV.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTest        = "test"
)

// Config holds all process configuration.
type Config struct {
	Port        int
	Environment string

	DatabaseURL string
	RedisURL    string

	JWTSecret     string
	APISecretKey  string
	EncryptionKey []byte

	AllowedOrigins []string

	RateLimitWindow      time.Duration
	RateLimitMaxRequests int
	AuthRateLimitMax     int

	MaxExecutionTime        time.Duration
	MaxConcurrentExecutions int
	MaxConcurrentPerUser    int

	ShutdownGrace time.Duration
}

// Load reads configuration from the environment and validates it.
// All field errors are collected into a single aggregated error.
func Load() (*Config, error) {
	var errs []string

	cfg := &Config{
		Port:                    envInt(&errs, "PORT", 8080),
		Environment:             getEnvOrDefault("APP_ENV", EnvDevelopment),
		DatabaseURL:             os.Getenv("DATABASE_URL"),
		RedisURL:                os.Getenv("REDIS_URL"),
		JWTSecret:               os.Getenv("JWT_SECRET"),
		APISecretKey:            os.Getenv("API_SECRET_KEY"),
		AllowedOrigins:          splitCSV(os.Getenv("ALLOWED_ORIGINS")),
		RateLimitWindow:         envMillis(&errs, "RATE_LIMIT_WINDOW_MS", 15*time.Minute),
		RateLimitMaxRequests:    envInt(&errs, "RATE_LIMIT_MAX_REQUESTS", 100),
		AuthRateLimitMax:        envInt(&errs, "AUTH_RATE_LIMIT_MAX_REQUESTS", 5),
		MaxExecutionTime:        envMillis(&errs, "MAX_EXECUTION_TIME", 5*time.Minute),
		MaxConcurrentExecutions: envInt(&errs, "MAX_CONCURRENT_EXECUTIONS", 50),
		MaxConcurrentPerUser:    envInt(&errs, "MAX_CONCURRENT_PER_USER", 10),
		ShutdownGrace:           envMillis(&errs, "SHUTDOWN_GRACE_MS", 30*time.Second),
	}

	switch cfg.Environment {
	case EnvDevelopment, EnvProduction, EnvTest:
	default:
		errs = append(errs, fmt.Sprintf("APP_ENV: unknown environment %q", cfg.Environment))
	}

	if cfg.Port < 1 || cfg.Port > 65535 {
		errs = append(errs, fmt.Sprintf("PORT: %d outside [1, 65535]", cfg.Port))
	}

	if cfg.DatabaseURL == "" {
		errs = append(errs, "DATABASE_URL: required")
	} else if !strings.HasPrefix(cfg.DatabaseURL, "postgres://") && !strings.HasPrefix(cfg.DatabaseURL, "postgresql://") {
		errs = append(errs, "DATABASE_URL: must be a postgres:// URL")
	}

	if cfg.RedisURL == "" {
		errs = append(errs, "REDIS_URL: required")
	} else if !strings.HasPrefix(cfg.RedisURL, "redis://") && !strings.HasPrefix(cfg.RedisURL, "rediss://") {
		errs = append(errs, "REDIS_URL: must be a redis:// URL")
	}

	if len(cfg.JWTSecret) < MinSecretLength {
		errs = append(errs, fmt.Sprintf("JWT_SECRET: required, at least %d bytes", MinSecretLength))
	}
	if len(cfg.APISecretKey) < MinSecretLength {
		errs = append(errs, fmt.Sprintf("API_SECRET_KEY: required, at least %d bytes", MinSecretLength))
	}

	if raw := os.Getenv("ENCRYPTION_KEY"); len(raw) != EncryptionKeyHexLength {
		errs = append(errs, fmt.Sprintf("ENCRYPTION_KEY: required, %d hex characters", EncryptionKeyHexLength))
	} else if key, err := hex.DecodeString(raw); err != nil {
		errs = append(errs, "ENCRYPTION_KEY: not valid hex")
	} else {
		cfg.EncryptionKey = key
	}

	if cfg.RateLimitWindow < time.Second {
		errs = append(errs, "RATE_LIMIT_WINDOW_MS: must be at least 1000")
	}
	if cfg.RateLimitMaxRequests < 1 {
		errs = append(errs, "RATE_LIMIT_MAX_REQUESTS: must be positive")
	}
	if cfg.AuthRateLimitMax < 1 {
		errs = append(errs, "AUTH_RATE_LIMIT_MAX_REQUESTS: must be positive")
	}
	if cfg.MaxExecutionTime < time.Second {
		errs = append(errs, "MAX_EXECUTION_TIME: must be at least 1000 (ms)")
	}
	if cfg.MaxConcurrentExecutions < 1 {
		errs = append(errs, "MAX_CONCURRENT_EXECUTIONS: must be positive")
	}
	if cfg.MaxConcurrentPerUser < 1 {
		errs = append(errs, "MAX_CONCURRENT_PER_USER: must be positive")
	}
	if cfg.ShutdownGrace < time.Second {
		errs = append(errs, "SHUTDOWN_GRACE_MS: must be at least 1000")
	}

	if len(errs) > 0 {
		return nil, &AggregateError{Fields: errs}
	}
	return cfg, nil
}

// IsProduction reports whether the process runs with APP_ENV=production.
// The webhook localhost registration exception is disabled in production.
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

// AggregateError reports every invalid configuration field at once.
type AggregateError struct {
	Fields []string
}

func (e *AggregateError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "invalid configuration (%d error(s)):", len(e.Fields))
	for _, f := range e.Fields {
		b.WriteString("\n  - ")
		b.WriteString(f)
	}
	return b.String()
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func envInt(errs *[]string, key string, defaultVal int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		*errs = append(*errs, fmt.Sprintf("%s: not an integer: %q", key, raw))
		return defaultVal
	}
	return v
}

// envMillis reads an integer number of milliseconds.
func envMillis(errs *[]string, key string, defaultVal time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultVal
	}
	ms, err := strconv.Atoi(raw)
	if err != nil {
		*errs = append(*errs, fmt.Sprintf("%s: not an integer: %q", key, raw))
		return defaultVal
	}
	return time.Duration(ms) * time.Millisecond
}

func splitCSV(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
