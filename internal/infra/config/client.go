package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// ClientConfig configures the outbound API client used by sunctl.
type ClientConfig struct {
	BaseURL string
	Timeout time.Duration
	Retry   RetryConfig
}

// RetryConfig configures best-effort retries for idempotent requests.
type RetryConfig struct {
	MaxAttempts int
	BaseBackoff time.Duration
}

// LoadClient reads client settings from the environment (and .env). A missing
// base URL is not an error here: the client rejects every call instead.
func LoadClient() (ClientConfig, error) {
	if err := loadDotEnv(); err != nil {
		return ClientConfig{}, err
	}
	cfg := ClientConfig{
		BaseURL: os.Getenv("SUNSAFE_API_BASE_URL"),
		Timeout: 10 * time.Second,
		Retry: RetryConfig{
			MaxAttempts: 3,
			BaseBackoff: 150 * time.Millisecond,
		},
	}
	if v := os.Getenv("SUNSAFE_API_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Timeout = parsed
		}
	}
	if v := os.Getenv("SUNSAFE_API_RETRY_MAX_ATTEMPTS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Retry.MaxAttempts = parsed
		}
	}
	if v := os.Getenv("SUNSAFE_API_RETRY_BASE_BACKOFF"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Retry.BaseBackoff = parsed
		}
	}
	if cfg.Timeout <= 0 {
		return ClientConfig{}, errors.New("client timeout must be positive")
	}
	if cfg.Retry.MaxAttempts <= 0 {
		return ClientConfig{}, errors.New("client retry max attempts must be positive")
	}
	return cfg, nil
}
