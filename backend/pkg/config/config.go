package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	apperrors "toolshelf/backend/pkg/errors"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// App
	Port     string
	Env      string
	LogLevel string

	// Catalog
	CatalogFile   string // optional YAML/JSON registry replacing the built-in one
	PublicBaseURL string

	// Notes
	NotesDBPath string // empty disables the notes API

	// Neo4j (optional graph mirror)
	Neo4jURI      string
	Neo4jUser     string
	Neo4jPassword string

	// Discord
	DiscordBotToken      string
	DiscordCommandPrefix string

	// Route checker
	RouteCheckConcurrency int
	RouteCheckTimeout     time.Duration
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file, but don't fail if it doesn't exist
	_ = godotenv.Load()

	cfg := &Config{
		Port:                  getEnv("PORT", "8080"),
		Env:                   getEnv("ENV", "development"),
		LogLevel:              getEnv("LOG_LEVEL", ""),
		CatalogFile:           getEnv("CATALOG_FILE", ""),
		PublicBaseURL:         strings.TrimRight(getEnv("PUBLIC_BASE_URL", "http://localhost:8080"), "/"),
		NotesDBPath:           getEnv("NOTES_DB_PATH", ""),
		Neo4jURI:              getEnv("NEO4J_URI", ""),
		Neo4jUser:             getEnv("NEO4J_USER", ""),
		Neo4jPassword:         getEnv("NEO4J_PASSWORD", ""),
		DiscordBotToken:       getEnv("DISCORD_BOT_TOKEN", ""),
		DiscordCommandPrefix:  getEnv("DISCORD_COMMAND_PREFIX", "!tools"),
		RouteCheckConcurrency: getEnvInt("ROUTE_CHECK_CONCURRENCY", 8),
		RouteCheckTimeout:     time.Duration(getEnvInt("ROUTE_CHECK_TIMEOUT_MS", 5000)) * time.Millisecond,
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that required configuration values are set
func (c *Config) Validate() error {
	if c.Port == "" {
		return apperrors.NewConfigMissingRequired("PORT")
	}
	if c.Env != "development" && c.Env != "production" && c.Env != "test" {
		return apperrors.NewConfigValidationFailed("ENV", "must be development, production or test")
	}
	if c.Neo4jURI != "" {
		if c.Neo4jUser == "" {
			return apperrors.NewConfigMissingRequired("NEO4J_USER")
		}
		if c.Neo4jPassword == "" {
			return apperrors.NewConfigMissingRequired("NEO4J_PASSWORD")
		}
	}
	if c.DiscordCommandPrefix == "" {
		return apperrors.NewConfigMissingRequired("DISCORD_COMMAND_PREFIX")
	}
	if c.RouteCheckConcurrency < 1 {
		return apperrors.NewConfigValidationFailed("ROUTE_CHECK_CONCURRENCY", "must be at least 1")
	}
	if c.RouteCheckTimeout <= 0 {
		return apperrors.NewConfigValidationFailed("ROUTE_CHECK_TIMEOUT_MS", "must be positive")
	}
	return nil
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// GraphEnabled reports whether the Neo4j mirror is configured
func (c *Config) GraphEnabled() bool {
	return c.Neo4jURI != ""
}

// NotesEnabled reports whether the notes store is configured
func (c *Config) NotesEnabled() bool {
	return c.NotesDBPath != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		var result int
		if _, err := fmt.Sscanf(value, "%d", &result); err == nil {
			return result
		}
	}
	return defaultValue
}
