// Package config loads service configuration from the environment into
// an explicit struct. Nothing else in the codebase reads env vars.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port string

	MongoURI string
	MongoDB  string

	JWTSecret string
	TokenTTL  time.Duration
	OTPTTL    time.Duration

	SMTPHost string
	SMTPPort string
	SMTPUser string
	SMTPPass string
}

// Load reads configuration from the environment. JWT_SECRET, MONGO_URI
// and MONGO_DB are required; the rest have defaults (SMTP settings may be
// left empty, in which case sending mail fails at call time).
func Load() (*Config, error) {
	cfg := &Config{
		Port:      getenv("PORT", "8080"),
		MongoURI:  os.Getenv("MONGO_URI"),
		MongoDB:   os.Getenv("MONGO_DB"),
		JWTSecret: os.Getenv("JWT_SECRET"),
		TokenTTL:  time.Duration(getenvInt("JWT_EXP_MIN", 60)) * time.Minute,
		OTPTTL:    time.Duration(getenvInt("OTP_TTL_MIN", 5)) * time.Minute,
		SMTPHost:  os.Getenv("SMTP_HOST"),
		SMTPPort:  os.Getenv("SMTP_PORT"),
		SMTPUser:  os.Getenv("SMTP_USER"),
		SMTPPass:  os.Getenv("SMTP_PASS"),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET not set in env")
	}
	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("MONGO_URI not set in env")
	}
	if cfg.MongoDB == "" {
		return nil, fmt.Errorf("MONGO_DB not set in env")
	}
	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
