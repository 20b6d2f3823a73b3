// File: internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultJWTSecret is a development fallback. Running with it in production
// is a deployment misconfiguration; run() logs a warning when it is in use.
const DefaultJWTSecret = "change-me-to-something-very-strong"

// Config holds everything the service needs, read from the environment once
// at startup and injected into components. Nothing reads env mid-request.
type Config struct {
	Port              string
	DatabaseURL       string
	JWTSecret         string
	AdminPassword     string
	AdminPasswordHash string
	TokenTTL          time.Duration
	PhoneCountryCode  string
	CORSOrigins       []string
}

// Load reads configuration from the environment. DATABASE_URL is required;
// everything else falls back to a sane default.
func Load() (Config, error) {
	cfg := Config{
		Port:              fallback(os.Getenv("PORT"), "8080"),
		DatabaseURL:       strings.TrimSpace(os.Getenv("DATABASE_URL")),
		JWTSecret:         fallback(os.Getenv("ADMIN_JWT_SECRET"), DefaultJWTSecret),
		AdminPassword:     os.Getenv("ADMIN_PASSWORD"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		PhoneCountryCode:  fallback(os.Getenv("PHONE_COUNTRY_CODE"), "+256"),
		CORSOrigins:       parseCSV(fallback(os.Getenv("CORS_ORIGINS"), "http://localhost:8080")),
	}

	minutes := fallback(os.Getenv("ADMIN_TOKEN_EXPIRE_MINUTES"), "240")
	ttlMinutes, err := strconv.Atoi(minutes)
	if err != nil || ttlMinutes <= 0 {
		return Config{}, fmt.Errorf("無效的 ADMIN_TOKEN_EXPIRE_MINUTES: %q", minutes)
	}
	cfg.TokenTTL = time.Duration(ttlMinutes) * time.Minute

	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("環境變數 DATABASE_URL 未設定")
	}

	return cfg, nil
}

// HTTPAddress returns the host:port pair the HTTP server binds to.
func (c Config) HTTPAddress() string {
	return ":" + c.Port
}

// UsesDefaultSecret reports whether the signing secret was left at its
// development fallback.
func (c Config) UsesDefaultSecret() bool {
	return c.JWTSecret == DefaultJWTSecret
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return strings.TrimSpace(value)
}

func parseCSV(input string) []string {
	var out []string
	for _, part := range strings.Split(input, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
