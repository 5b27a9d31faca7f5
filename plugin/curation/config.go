package curation

import (
	"time"

	"github.com/pkg/errors"

	"github.com/athathhq/curator/internal/profile"
)

// Default remote client behavior. Background workers with a larger
// latency budget may override the timeout (45s is common there).
const (
	DefaultTimeout    = 30 * time.Second
	DefaultMaxRetries = 2
	DefaultRetryDelay = 1 * time.Second
)

// Config holds the immutable configuration of a curation service.
// Each call site constructs its own service with the timeout and retry
// values appropriate to its latency budget; there is no shared global
// instance.
type Config struct {
	// ServiceURL is the base URL of the remote AI service. Empty means
	// fallback-only mode.
	ServiceURL string

	// Timeout bounds a single remote attempt.
	Timeout time.Duration

	// MaxRetries is the number of additional attempts after the first.
	MaxRetries int

	// RetryDelay is the base backoff delay; attempt n waits
	// RetryDelay * 2^(n-1).
	RetryDelay time.Duration
}

// DefaultConfig returns a fallback-only configuration with default
// remote client behavior.
func DefaultConfig() *Config {
	return &Config{
		Timeout:    DefaultTimeout,
		MaxRetries: DefaultMaxRetries,
		RetryDelay: DefaultRetryDelay,
	}
}

// NewConfigFromProfile creates curation config from the runtime profile.
func NewConfigFromProfile(p *profile.Profile) *Config {
	cfg := DefaultConfig()
	cfg.ServiceURL = p.AIServiceURL
	if p.AITimeoutMs > 0 {
		cfg.Timeout = time.Duration(p.AITimeoutMs) * time.Millisecond
	}
	if p.AIMaxRetries >= 0 {
		cfg.MaxRetries = p.AIMaxRetries
	}
	if p.AIRetryDelayMs > 0 {
		cfg.RetryDelay = time.Duration(p.AIRetryDelayMs) * time.Millisecond
	}
	return cfg
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return errors.New("timeout must be positive")
	}
	if c.MaxRetries < 0 {
		return errors.New("max retries must not be negative")
	}
	if c.RetryDelay <= 0 {
		return errors.New("retry delay must be positive")
	}
	return nil
}
