package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config keeps runtime settings for the web service and the bot. Both
// binaries read the same set; fields a binary cannot run without are
// checked in its main.
type Config struct {
	TelegramToken      string
	APIBaseURL         string
	PublicBaseURL      string
	ServerAddr         string
	DatabaseURL        string
	OrderSweepInterval time.Duration
}

// Load reads configuration from environment variables, with .env as a
// fallback, and applies defaults.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		TelegramToken:      strings.TrimSpace(os.Getenv("TG_BOT_TOKEN")),
		APIBaseURL:         strings.TrimSpace(os.Getenv("API_BASE_URL")),
		PublicBaseURL:      strings.TrimSpace(os.Getenv("PUBLIC_BASE_URL")),
		ServerAddr:         strings.TrimSpace(os.Getenv("SERVER_ADDR")),
		DatabaseURL:        strings.TrimSpace(os.Getenv("DATABASE_URL")),
		OrderSweepInterval: parseMinutes(strings.TrimSpace(os.Getenv("ORDER_SWEEP_INTERVAL_MINUTES"))),
	}

	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = "http://127.0.0.1:8000"
	}
	cfg.APIBaseURL = strings.TrimRight(cfg.APIBaseURL, "/")
	cfg.PublicBaseURL = strings.TrimRight(cfg.PublicBaseURL, "/")

	if cfg.ServerAddr == "" {
		cfg.ServerAddr = "127.0.0.1:8000"
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "db.sqlite3"
	}
	if cfg.OrderSweepInterval == 0 {
		cfg.OrderSweepInterval = 15 * time.Minute
	}

	return cfg, nil
}

func parseMinutes(raw string) time.Duration {
	if raw == "" {
		return 0
	}
	minutes, err := strconv.Atoi(raw)
	if err != nil || minutes <= 0 {
		return 0
	}
	return time.Duration(minutes) * time.Minute
}
