package curation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/athathhq/curator/internal/profile"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Empty(t, cfg.ServiceURL)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, 2, cfg.MaxRetries)
	assert.Equal(t, time.Second, cfg.RetryDelay)
	assert.NoError(t, cfg.Validate())
}

func TestNewConfigFromProfile(t *testing.T) {
	p := &profile.Profile{
		AIServiceURL:   "https://ai.athath.internal",
		AITimeoutMs:    45000,
		AIMaxRetries:   3,
		AIRetryDelayMs: 500,
	}

	cfg := NewConfigFromProfile(p)

	assert.Equal(t, "https://ai.athath.internal", cfg.ServiceURL)
	assert.Equal(t, 45*time.Second, cfg.Timeout)
	assert.Equal(t, 3, cfg.MaxRetries)
	assert.Equal(t, 500*time.Millisecond, cfg.RetryDelay)
}

func TestNewConfigFromProfile_ZeroValuesKeepDefaults(t *testing.T) {
	cfg := NewConfigFromProfile(&profile.Profile{})

	assert.Empty(t, cfg.ServiceURL)
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
	// MaxRetries 0 is a valid explicit choice (no retries).
	assert.Equal(t, 0, cfg.MaxRetries)
	assert.Equal(t, DefaultRetryDelay, cfg.RetryDelay)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"Defaults", func(*Config) {}, false},
		{"ZeroTimeout", func(c *Config) { c.Timeout = 0 }, true},
		{"NegativeRetries", func(c *Config) { c.MaxRetries = -1 }, true},
		{"ZeroRetryDelay", func(c *Config) { c.RetryDelay = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
