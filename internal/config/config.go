package config

import (
	"fmt"
	"os"
	"time"
)

// Config is the single snapshot of environment-derived settings, built
// once in main and passed by reference into the components that need it.
type Config struct {
	DatabaseURL   string
	SessionSecret string
	SessionTTL    time.Duration
	AdminEmail    string
	AdminPassword string
	ListenAddr    string
	MigrationsDir string
}

func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		SessionTTL:    12 * time.Hour,
		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@example.com"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "ChangeMe_12345"),
		ListenAddr:    getEnv("LISTEN_ADDR", ":8080"),
		MigrationsDir: getEnv("MIGRATIONS_DIR", "./migrations"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is not set")
	}
	if cfg.SessionSecret == "" {
		return nil, fmt.Errorf("SESSION_SECRET environment variable is not set")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
