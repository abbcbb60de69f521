package config

import "time"

// Config is the root configuration of the markethours tool.
type Config struct {
	API     APIConfig     `yaml:"api"`
	Logging LoggingConfig `yaml:"logging"`

	// UnsetEnv names environment variables the file referenced that were
	// not set at load time.
	UnsetEnv []string `yaml:"-"`
}

// APIConfig holds TD Ameritrade API settings.
type APIConfig struct {
	BaseURL      string        `yaml:"base_url"`
	TokenURL     string        `yaml:"token_url"`
	ClientID     string        `yaml:"client_id"`     // public application key, sent as apikey
	RefreshToken string        `yaml:"refresh_token"` // optional default credential
	Timeout      time.Duration `yaml:"timeout"`
	MaxRetries   int           `yaml:"max_retries"`
	RateLimit    float64       `yaml:"rate_limit"` // requests per second, 0 = unlimited
}

// LoggingConfig selects the slog handler.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}
