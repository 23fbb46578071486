package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("DOTENV_PATH", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":5000", cfg.HTTP.Address)
	require.True(t, cfg.HTTP.RateLimit.Enabled)
	require.Equal(t, 24*time.Hour, cfg.Session.TTL)
	require.False(t, cfg.Dataset.ObjectStore.Enabled())
}

func TestLoadFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
http:
  address: ":9090"
  allowedOrigins: ["https://sunsafe.example"]
dataset:
  path: /srv/dataset.yaml
session:
  ttl: 30m
`), 0o600))
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("DOTENV_PATH", "")
	t.Setenv("HTTP_ADDRESS", ":7070")
	t.Setenv("SESSION_REDIS_ENABLED", "true")
	t.Setenv("SESSION_REDIS_ADDR", "redis://localhost:6379")
	t.Setenv("DATASET_S3_ENDPOINT", "https://r2.example")
	t.Setenv("DATASET_S3_BUCKET", "datasets")
	t.Setenv("DATASET_S3_KEY", "sunsafe.yaml")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":7070", cfg.HTTP.Address)
	require.Equal(t, []string{"https://sunsafe.example"}, cfg.HTTP.AllowedOrigins)
	require.Equal(t, "/srv/dataset.yaml", cfg.Dataset.Path)
	require.Equal(t, 30*time.Minute, cfg.Session.TTL)
	require.True(t, cfg.Session.Redis.Enabled)
	require.True(t, cfg.Dataset.ObjectStore.Enabled())
}

func TestValidateRejectsRedisWithoutAddr(t *testing.T) {
	cfg := defaultConfig()
	cfg.Session.Redis.Enabled = true
	require.Error(t, cfg.Validate())
}

func TestValidateRejectsBadRateLimit(t *testing.T) {
	cfg := defaultConfig()
	cfg.HTTP.RateLimit.Burst = 0
	require.Error(t, cfg.Validate())

	cfg.HTTP.RateLimit.Enabled = false
	require.NoError(t, cfg.Validate())
}

func TestLoadClientReadsDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("SUNSAFE_API_BASE_URL=https://gateway.example/prod/\n"), 0o600))
	t.Setenv("DOTENV_PATH", path)
	require.NoError(t, os.Unsetenv("SUNSAFE_API_BASE_URL"))
	t.Cleanup(func() { _ = os.Unsetenv("SUNSAFE_API_BASE_URL") })
	t.Setenv("SUNSAFE_API_RETRY_MAX_ATTEMPTS", "5")

	cfg, err := LoadClient()
	require.NoError(t, err)
	require.Equal(t, "https://gateway.example/prod/", cfg.BaseURL)
	require.Equal(t, 10*time.Second, cfg.Timeout)
	require.Equal(t, 5, cfg.Retry.MaxAttempts)
}

func TestLoadClientMissingDotEnvFile(t *testing.T) {
	t.Setenv("DOTENV_PATH", filepath.Join(t.TempDir(), "missing.env"))
	_, err := LoadClient()
	require.Error(t, err)
}

func TestSplitList(t *testing.T) {
	require.Equal(t, []string{"a", "b"}, splitList(" a, ,b "))
}
