package config

import (
	"os"
	"strconv"

	"selfchart/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Geo      GeoConfig
	Store    StoreConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	URL     string
	SSLMode string
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	OpsPort string
	GinMode string
}

// GeoConfig holds birth-place geocoding settings
type GeoConfig struct {
	Enabled bool
	BaseURL string
}

// StoreConfig selects the reading store backend.
type StoreConfig struct {
	// Backend is "postgres" or "sqlite". SQLite is the local/dev store.
	Backend string
	// SQLitePath is the database file for the sqlite backend.
	SQLitePath string
	// MaxPendingSaves bounds concurrent background persistence.
	MaxPendingSaves int
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	cfg := &Config{
		Database: DatabaseConfig{
			URL:     os.Getenv("DATABASE_URL"),
			SSLMode: getEnvOrDefault("SSL_MODE", "disable"),
		},
		Server: ServerConfig{
			Port:    getEnvOrDefault("PORT", "8080"),
			OpsPort: getEnvOrDefault("OPS_PORT", "9090"),
			GinMode: getEnvOrDefault("GIN_MODE", "debug"),
		},
		Geo: GeoConfig{
			Enabled: getEnvBoolOrDefault("GEOCODER_ENABLED", false),
			BaseURL: getEnvOrDefault("GEOCODER_URL", "https://nominatim.openstreetmap.org/search"),
		},
		Store: StoreConfig{
			Backend:         getEnvOrDefault("STORE_BACKEND", "postgres"),
			SQLitePath:      getEnvOrDefault("SQLITE_PATH", "selfchart.db"),
			MaxPendingSaves: getEnvIntOrDefault("MAX_PENDING_SAVES", 8),
		},
	}

	if err := validate(cfg); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	switch cfg.Store.Backend {
	case "postgres":
		if cfg.Database.URL == "" {
			return errors.ConfigInvalid("DATABASE_URL is required for the postgres backend")
		}
	case "sqlite":
		if cfg.Store.SQLitePath == "" {
			return errors.ConfigInvalid("SQLITE_PATH is required for the sqlite backend")
		}
	default:
		return errors.ConfigInvalid("STORE_BACKEND must be postgres or sqlite")
	}
	if cfg.Store.MaxPendingSaves < 1 {
		return errors.ConfigInvalid("MAX_PENDING_SAVES must be at least 1")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
