package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/job-portal/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("CORS_ORIGINS", "")
	t.Setenv("ACCESS_TOKEN_SECRET", "")
	t.Setenv("AUTH_JWT_SECRET", "")
	t.Setenv("AUTH_ACCESS_TOKEN_TTL_MINUTES", "")
	t.Setenv("APP_TRUSTED_PROXIES", "")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, "token", cfg.Auth.CookieName)
	require.Equal(t, 10*time.Hour, cfg.Auth.AccessTokenTTL())
	require.Empty(t, cfg.CORS.AllowedOrigins)
	require.True(t, cfg.App.TrustProxy)
	require.Contains(t, cfg.App.TrustedProxies, "10.0.0.0/8")
	require.Equal(t, "jobs", cfg.Store.JobsTable)
}

func TestLoadSplitsOrigins(t *testing.T) {
	t.Setenv("CORS_ORIGINS", "http://localhost:5173, https://jobs.example.com,,")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, []string{"http://localhost:5173", "https://jobs.example.com"}, cfg.CORS.AllowedOrigins)
}

func TestLoadRejectsDefaultSecretInProduction(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("ACCESS_TOKEN_SECRET", "")
	t.Setenv("AUTH_JWT_SECRET", "")

	_, err := config.Load()
	require.Error(t, err)
}

func TestLoadInvalidRedisDB(t *testing.T) {
	t.Setenv("REDIS_DB", "zero")

	_, err := config.Load()
	require.Error(t, err)
}
