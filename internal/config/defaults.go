package config

import "time"

// Default values for optional configuration fields.
const (
	DefaultBaseURL    = "https://api.tdameritrade.com/v1"
	DefaultTokenURL   = "https://api.tdameritrade.com/v1/oauth2/token"
	DefaultAPITimeout = 30 * time.Second
	DefaultLogLevel   = "info"
	DefaultLogFormat  = "text"
)

func (c *Config) applyDefaults() {
	// API defaults
	if c.API.BaseURL == "" {
		c.API.BaseURL = DefaultBaseURL
	}
	if c.API.TokenURL == "" {
		c.API.TokenURL = DefaultTokenURL
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = DefaultAPITimeout
	}

	// Logging defaults
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
	if c.Logging.Format == "" {
		c.Logging.Format = DefaultLogFormat
	}
}
