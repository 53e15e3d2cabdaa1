package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TG_BOT_TOKEN", "")
	t.Setenv("API_BASE_URL", "")
	t.Setenv("PUBLIC_BASE_URL", "")
	t.Setenv("SERVER_ADDR", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("ORDER_SWEEP_INTERVAL_MINUTES", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "http://127.0.0.1:8000", cfg.APIBaseURL)
	require.Equal(t, "127.0.0.1:8000", cfg.ServerAddr)
	require.Equal(t, "db.sqlite3", cfg.DatabaseURL)
	require.Equal(t, 15*time.Minute, cfg.OrderSweepInterval)
}

func TestLoadTrimsAndStripsTrailingSlash(t *testing.T) {
	t.Setenv("API_BASE_URL", " http://api.example.com/ ")
	t.Setenv("PUBLIC_BASE_URL", "https://tunnel.example.com/")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "http://api.example.com", cfg.APIBaseURL)
	require.Equal(t, "https://tunnel.example.com", cfg.PublicBaseURL)
}

func TestLoadSweepInterval(t *testing.T) {
	t.Setenv("ORDER_SWEEP_INTERVAL_MINUTES", "5")
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 5*time.Minute, cfg.OrderSweepInterval)

	// Garbage falls back to the default.
	t.Setenv("ORDER_SWEEP_INTERVAL_MINUTES", "soon")
	cfg, err = Load()
	require.NoError(t, err)
	require.Equal(t, 15*time.Minute, cfg.OrderSweepInterval)
}
