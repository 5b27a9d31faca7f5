package profile

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Profile is the runtime configuration of the curation service.
type Profile struct {
	// Mode can be "prod" or "dev" or "demo"
	Mode string
	// Addr is the binding address for the server
	Addr string
	// Port is the binding port for the server
	Port int
	// Version is the current version of the service
	Version string

	// AI Configuration
	AIServiceURL   string // CURATOR_AI_SERVICE_URL (unset: fallback-only mode)
	AITimeoutMs    int    // CURATOR_AI_TIMEOUT_MS (default: 30000)
	AIMaxRetries   int    // CURATOR_AI_MAX_RETRIES (default: 2)
	AIRetryDelayMs int    // CURATOR_AI_RETRY_DELAY_MS (default: 1000)
}

func (p *Profile) IsDev() bool {
	return p.Mode != "prod"
}

// IsAIEnabled returns true if a remote AI service URL is configured.
func (p *Profile) IsAIEnabled() bool {
	return p.AIServiceURL != ""
}

// FromEnv loads configuration from CURATOR_* environment variables.
func FromEnv(version string) *Profile {
	v := viper.New()
	v.SetEnvPrefix("curator")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("mode", "demo")
	v.SetDefault("addr", "")
	v.SetDefault("port", 8091)
	v.SetDefault("ai_timeout_ms", 30000)
	v.SetDefault("ai_max_retries", 2)
	v.SetDefault("ai_retry_delay_ms", 1000)

	return &Profile{
		Mode:           v.GetString("mode"),
		Addr:           v.GetString("addr"),
		Port:           v.GetInt("port"),
		Version:        version,
		AIServiceURL:   v.GetString("ai_service_url"),
		AITimeoutMs:    v.GetInt("ai_timeout_ms"),
		AIMaxRetries:   v.GetInt("ai_max_retries"),
		AIRetryDelayMs: v.GetInt("ai_retry_delay_ms"),
	}
}

func (p *Profile) Validate() error {
	if p.Mode != "demo" && p.Mode != "dev" && p.Mode != "prod" {
		p.Mode = "demo"
	}

	if p.Port < 0 || p.Port > 65535 {
		return errors.Errorf("invalid port %d", p.Port)
	}
	if p.AITimeoutMs <= 0 {
		return errors.New("ai timeout must be positive")
	}
	if p.AIMaxRetries < 0 {
		return errors.New("ai max retries must not be negative")
	}
	if p.AIRetryDelayMs <= 0 {
		return errors.New("ai retry delay must be positive")
	}
	return nil
}
