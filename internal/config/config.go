package config

import (
	"os"
	"strconv"
	"time"

	"github.com/soundwave-labs/soundwave/internal/database"
)

// Config holds all configuration for the application.
type Config struct {
	Server    ServerConfig
	Database  database.PostgresConfig
	Redis     database.RedisConfig
	RateLimit RateLimitConfig
	Migration MigrationConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host           string
	Port           string
	AllowedOrigins string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
}

// RateLimitConfig holds the rate limiter knobs: at most MaxRequests per
// Window per client, with a temporary Ban once a client keeps hammering a
// saturated window.
type RateLimitConfig struct {
	MaxRequests int
	Window      time.Duration
	Ban         time.Duration
}

// MigrationConfig controls startup schema migrations.
type MigrationConfig struct {
	Path string
	Auto bool
}

// Load reads configuration from environment variables.
func Load() Config {
	return Config{
		Server: ServerConfig{
			Host:           getEnv("HOST", ""),
			Port:           getEnv("PORT", "8080"),
			AllowedOrigins: getEnv("ALLOWED_ORIGINS", "http://localhost:4200"),
			ReadTimeout:    parseDuration(getEnv("REQUEST_TIMEOUT", "15s"), 15*time.Second),
			WriteTimeout:   parseDuration(getEnv("RESPONSE_TIMEOUT", "15s"), 15*time.Second),
		},
		Database: database.PostgresConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "soundwave"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: database.RedisConfig{
			Host:     getEnv("REDIS_HOST", ""),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       0,
		},
		RateLimit: RateLimitConfig{
			MaxRequests: parseInt(getEnv("RATE_LIMIT_MAX_REQUESTS", "100"), 100),
			Window:      parseDuration(getEnv("RATE_LIMIT_TIME_WINDOW", "1m"), time.Minute),
			Ban:         parseDuration(getEnv("RATE_LIMIT_BAN", "5m"), 5*time.Minute),
		},
		Migration: MigrationConfig{
			Path: getEnv("MIGRATIONS_PATH", "./migrations"),
			Auto: getEnv("AUTO_MIGRATE", "true") == "true",
		},
	}
}

// getEnv reads an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// parseDuration parses a duration string or returns a default value.
func parseDuration(value string, defaultValue time.Duration) time.Duration {
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}
	return defaultValue
}

// parseInt parses an integer string or returns a default value.
func parseInt(value string, defaultValue int) int {
	if n, err := strconv.Atoi(value); err == nil {
		return n
	}
	return defaultValue
}
