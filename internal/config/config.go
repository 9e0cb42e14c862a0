package config

import (
	"fmt"
	"os"
)

// Config holds all application configuration.
type Config struct {
	// DatabaseURL is the Postgres DSN for the shared logbook store.
	DatabaseURL string
	// HTTPPort is the port the JSON API listens on.
	HTTPPort string
}

// Load reads configuration from environment variables with sensible defaults.
// The JWT settings (JWT_SECRET, JWT_EXPIRES_IN) are read by the auth package.
func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL: getEnv("DATABASE_URL", ""),
		HTTPPort:    getEnv("HTTP_PORT", "8080"),
	}
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is not set")
	}
	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
