package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const PROD_STRING = "prod"

// Config holds all application configuration loaded from environment.
type Config struct {
	IsProduction   bool
	ProdOrigins    string
	HTTPAddr       string
	DBDSN          string
	MigrationsDir  string
	LogLevel       string
	RedisAddr      string
	SearchCacheTTL time.Duration
	PhotoDir       string
}

// Load loads configuration from .env (optional) and environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		log.Printf("failed to load .env file: %v", err)
	}

	cfg := &Config{}

	// Production origin (default: empty)
	cfg.ProdOrigins = getEnv("PROD_ORIGINS", "")

	// Application environment (default: dev)
	appEnvStr := getEnv("APP_ENV", "dev")
	cfg.IsProduction = appEnvStr == PROD_STRING

	// HTTP listen address (default: :9090, the server port behind the gateway)
	cfg.HTTPAddr = getEnv("HTTP_ADDR", ":9090")

	// Database DSN is required
	cfg.DBDSN = os.Getenv("DB_DSN")
	if cfg.DBDSN == "" {
		return nil, fmt.Errorf("DB_DSN is required")
	}

	// Schema migrations directory (default: migrations)
	cfg.MigrationsDir = getEnv("MIGRATIONS_DIR", "migrations")

	// Log level for zerolog (default: info)
	cfg.LogLevel = getEnv("LOG_LEVEL", "info")

	// Redis address for the item search cache. Empty disables caching.
	cfg.RedisAddr = getEnv("REDIS_ADDR", "")

	// Search cache TTL, parse as time.Duration (e.g. "30s", "5m").
	ttlStr := getEnv("SEARCH_CACHE_TTL", "1m")
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SEARCH_CACHE_TTL: %w", err)
	}
	cfg.SearchCacheTTL = ttl

	// Directory for stored item photos (default: data/photos)
	cfg.PhotoDir = getEnv("PHOTO_DIR", "data/photos")

	return cfg, nil
}

// getEnv returns the value of the environment variable if set,
// otherwise returns the provided default value.
func getEnv(key, defaultValue string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return defaultValue
}

