package config

import (
	"fmt"
	"log"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/bbnwebby/beyondbeauty/internal/site"
)

// Config holds all configuration for the application. It is built once at
// startup and passed explicitly to the server; nothing reads the
// environment after this point.
type Config struct {
	Addr          string `validate:"required"`
	BaseURL       string `validate:"required,url"`
	SessionSecret string `validate:"required,min=16"`
	Env           string `validate:"oneof=development production"`
}

// New loads configuration from environment variables and validates it.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// We may not have slog configured yet, so the standard logger is
		// acceptable for this one startup message.
		log.Println("No .env file found, relying on environment variables")
	}

	cfg := &Config{
		Addr:          getenv("APP_ADDR", ":8080"),
		BaseURL:       getenv("APP_BASE_URL", site.BaseURL),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		Env:           getenv("APP_ENV", "development"),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// IsProduction reports whether the app runs with production settings.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
