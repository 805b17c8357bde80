// Package config holds process-wide configuration for the LaporPak backend.
// Values are loaded once at startup from the environment and are immutable
// for the lifetime of the process.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"
)

const (
	// Pagination defaults for the complaint list endpoint.
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100

	// StatsCacheTTL is how long dashboard statistics stay cached in Redis.
	StatsCacheTTL = 60 * time.Second

	// Login throttling per client IP.
	LoginRateLimit  = 10
	LoginRateWindow = 15 * time.Minute

	// TokenTTL is the lifetime of an issued staff JWT.
	TokenTTL = 24 * time.Hour
)

// Config carries everything the binaries need to start.
type Config struct {
	ListenAddr    string
	DatabaseDSN   string
	RedisAddr     string
	RedisPassword string
	JWTSecret     string
	FonnteToken   string
	UploadDir     string
}

// Load reads configuration from the environment. JWT_SECRET is the only
// value without a usable default.
func Load() (*Config, error) {
	cfg := &Config{
		ListenAddr:    getEnv("LISTEN_ADDR", ":8080"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		FonnteToken:   os.Getenv("FONNTE_TOKEN"),
		UploadDir:     getEnv("UPLOAD_DIR", "./uploads"),
	}

	cfg.DatabaseDSN = fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_USER", "laporpak"),
		getEnv("DB_PASSWORD", "laporpak"),
		getEnv("DB_NAME", "laporpakdb"),
		getEnv("DB_PORT", "5432"),
	)

	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
