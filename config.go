package erold

import (
	"os"
	"strconv"
	"time"
)

// DefaultBaseURL is the production Erold API endpoint.
const DefaultBaseURL = "https://api.erold.dev/v1"

// defaultTimeout bounds a single request attempt.
const defaultTimeout = 30 * time.Second

// Config configures the Erold client.
type Config struct {
	// APIKey authenticates with the Erold API.
	APIKey string

	// TenantID is the workspace tenant identifier.
	// Most API paths are scoped under /tenants/{TenantID}.
	TenantID string

	// BaseURL is the root of the Erold API.
	// Defaults to DefaultBaseURL.
	BaseURL string

	// Timeout bounds each request attempt.
	// Defaults to 30 seconds.
	Timeout time.Duration

	// Debug enables verbose logging of all API communications.
	// When enabled, requests, responses, and full error details are logged.
	Debug bool

	// DebugLogPath is the path to write debug logs.
	// Defaults to stderr if empty.
	DebugLogPath string
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		BaseURL: DefaultBaseURL,
		Timeout: defaultTimeout,
	}
}

// ConfigFromEnv reads configuration from environment variables.
//
//	EROLD_API_KEY    → APIKey (required)
//	EROLD_TENANT_ID  → TenantID (required)
//	EROLD_API_URL    → BaseURL
//	EROLD_TIMEOUT    → Timeout, in seconds
//	EROLD_DEBUG      → Debug (any non-empty value enables)
//	EROLD_DEBUG_LOG  → DebugLogPath
//
// Returns *ConfigError naming the offending variable when a required
// value is missing or a value cannot be parsed. The environment is read
// on every call so key rotation takes effect without a restart.
func ConfigFromEnv() (Config, error) {
	cfg := Config{
		APIKey:       os.Getenv("EROLD_API_KEY"),
		TenantID:     os.Getenv("EROLD_TENANT_ID"),
		BaseURL:      os.Getenv("EROLD_API_URL"),
		Debug:        os.Getenv("EROLD_DEBUG") != "",
		DebugLogPath: os.Getenv("EROLD_DEBUG_LOG"),
	}

	if cfg.APIKey == "" {
		return Config{}, &ConfigError{
			Field:   "EROLD_API_KEY",
			Message: "required: create an API key under Workspace Settings > API Keys",
		}
	}
	if cfg.TenantID == "" {
		return Config{}, &ConfigError{
			Field:   "EROLD_TENANT_ID",
			Message: "required: workspace tenant identifier",
		}
	}

	if raw := os.Getenv("EROLD_TIMEOUT"); raw != "" {
		seconds, err := strconv.Atoi(raw)
		if err != nil || seconds <= 0 {
			return Config{}, &ConfigError{
				Field:   "EROLD_TIMEOUT",
				Message: "must be a positive number of seconds",
			}
		}
		cfg.Timeout = time.Duration(seconds) * time.Second
	}

	return cfg.WithDefaults(), nil
}

// Validate checks the configuration for errors.
// Returns *ConfigError for invalid fields.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return &ConfigError{Field: "APIKey", Message: "required: create an API key under Workspace Settings > API Keys"}
	}
	if c.TenantID == "" {
		return &ConfigError{Field: "TenantID", Message: "required: workspace tenant identifier"}
	}
	if c.Timeout < 0 {
		return &ConfigError{Field: "Timeout", Message: "must be non-negative"}
	}
	return nil
}

// WithDefaults fills in default values for unset fields.
func (c Config) WithDefaults() Config {
	defaults := DefaultConfig()

	if c.BaseURL == "" {
		c.BaseURL = defaults.BaseURL
	}
	if c.Timeout == 0 {
		c.Timeout = defaults.Timeout
	}

	return c
}
