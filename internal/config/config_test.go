package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	t.Setenv("ANALYTICS_BASE_URL", "http://backend:5000")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "http://backend:5000", cfg.Analytics.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Analytics.Timeout)
	assert.Equal(t, time.Second, cfg.Analytics.PredictionDelay)
	assert.Equal(t, 5*time.Second, cfg.Analytics.AlertTTL)
	assert.Equal(t, 30*time.Minute, cfg.Analytics.ViewTTL)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSOrigins)
	assert.Equal(t, "Brasileirão Série A", cfg.Server.Leagues["71"])
	assert.True(t, cfg.Scheduler.Enabled)
	assert.Equal(t, "America/Sao_Paulo", cfg.Scheduler.Location)
	assert.Zero(t, cfg.Scheduler.RefreshInterval)
	assert.False(t, cfg.TelegramBot.Enabled())
}

func TestNewOverrides(t *testing.T) {
	t.Setenv("ANALYTICS_BASE_URL", "http://backend:5000")
	t.Setenv("PREDICTION_DELAY", "250ms")
	t.Setenv("CORS_ORIGINS", "http://a.test,http://b.test")
	t.Setenv("TELEGRAM_TOKEN", "token")
	t.Setenv("CHAT_ID", "42")
	t.Setenv("REFRESH_INTERVAL", "15m")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, 250*time.Millisecond, cfg.Analytics.PredictionDelay)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Server.CORSOrigins)
	assert.True(t, cfg.TelegramBot.Enabled())
	assert.Equal(t, int64(42), cfg.TelegramBot.ChatID)
	assert.Equal(t, 15*time.Minute, cfg.Scheduler.RefreshInterval)
}

func TestNewRequiresBaseURL(t *testing.T) {
	t.Setenv("ANALYTICS_BASE_URL", "unused")
	require.NoError(t, os.Unsetenv("ANALYTICS_BASE_URL"))

	_, err := New()
	assert.Error(t, err)
}
