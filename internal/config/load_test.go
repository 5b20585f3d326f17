package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nc-news/internal/config"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("NCNEWS_DATABASE_URL", "postgres://localhost:5432/nc_news_test")
	t.Setenv("NCNEWS_AUTH_JWT_SECRET", testSecret)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost:5432/nc_news_test", cfg.Database.URL)
	assert.Equal(t, testSecret, cfg.Auth.JWTSecret)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("NCNEWS_DATABASE_URL", "postgres://localhost:5432/nc_news_test")
	t.Setenv("NCNEWS_AUTH_JWT_SECRET", testSecret)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenLifetime)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	assert.Equal(t, 100, cfg.RateLimit.GlobalRequests)
	assert.Equal(t, 15*time.Minute, cfg.RateLimit.GlobalWindow)
	assert.Equal(t, 5, cfg.RateLimit.AuthRequests)
	assert.Equal(t, time.Hour, cfg.RateLimit.AuthWindow)
}

func TestLoadOverridesDefaults(t *testing.T) {
	t.Setenv("NCNEWS_DATABASE_URL", "postgres://localhost:5432/nc_news_test")
	t.Setenv("NCNEWS_AUTH_JWT_SECRET", testSecret)
	t.Setenv("NCNEWS_SERVER_PORT", "8181")
	t.Setenv("NCNEWS_SERVER_LOG_LEVEL", "debug")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8181, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
}

func TestLoadRejectsMissingSecret(t *testing.T) {
	t.Setenv("NCNEWS_DATABASE_URL", "postgres://localhost:5432/nc_news_test")
	t.Setenv("NCNEWS_AUTH_JWT_SECRET", "")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestLoadRejectsShortSecret(t *testing.T) {
	t.Setenv("NCNEWS_DATABASE_URL", "postgres://localhost:5432/nc_news_test")
	t.Setenv("NCNEWS_AUTH_JWT_SECRET", "too-short")

	_, err := config.Load()
	require.Error(t, err)
}

func TestLoadRejectsInvalidLogLevel(t *testing.T) {
	t.Setenv("NCNEWS_DATABASE_URL", "postgres://localhost:5432/nc_news_test")
	t.Setenv("NCNEWS_AUTH_JWT_SECRET", testSecret)
	t.Setenv("NCNEWS_SERVER_LOG_LEVEL", "loud")

	_, err := config.Load()
	require.Error(t, err)
}
