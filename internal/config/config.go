// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds everything the web front end needs at startup.
type Config struct {
	// Addr is the listen address of the HTTP server.
	Addr string
	// BackendURL is the absolute base address of the shift-tracking backend.
	BackendURL string
	// BotUsername configures the Telegram login widget on the login page.
	BotUsername string
	// AllowedOrigins are the origins allowed to call the JSON endpoints
	// during development.
	AllowedOrigins []string
}

// Load reads a .env file if present, then the environment. BACKEND_URL and
// BOT_USERNAME are required.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Addr:        env("ADDR", ":3000"),
		BackendURL:  strings.TrimRight(os.Getenv("BACKEND_URL"), "/"),
		BotUsername: os.Getenv("BOT_USERNAME"),
	}

	if cfg.BackendURL == "" {
		return nil, fmt.Errorf("BACKEND_URL is required")
	}
	if cfg.BotUsername == "" {
		return nil, fmt.Errorf("BOT_USERNAME is required")
	}

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
			}
		}
	}

	return cfg, nil
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
