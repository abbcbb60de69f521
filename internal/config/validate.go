package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
)

// Validate checks that all required fields are set and values are valid.
func (c *Config) Validate() error {
	if c.API.ClientID == "" {
		return errors.New("api.client_id is required")
	}
	if err := validateURL("api.base_url", c.API.BaseURL); err != nil {
		return err
	}
	if err := validateURL("api.token_url", c.API.TokenURL); err != nil {
		return err
	}
	if c.API.Timeout < 0 {
		return fmt.Errorf("api.timeout must be >= 0, got %v", c.API.Timeout)
	}
	if c.API.MaxRetries < 0 {
		return fmt.Errorf("api.max_retries must be >= 0, got %d", c.API.MaxRetries)
	}
	if c.API.RateLimit < 0 {
		return fmt.Errorf("api.rate_limit must be >= 0, got %g", c.API.RateLimit)
	}

	if _, err := c.Logging.SlogLevel(); err != nil {
		return err
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("logging.format must be text or json, got %q", c.Logging.Format)
	}

	return nil
}

// SlogLevel converts the configured level name.
func (l LoggingConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("logging.level %q is invalid", l.Level)
	}
	return level, nil
}

func validateURL(field, raw string) error {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%s must be an absolute URL, got %q", field, raw)
	}
	return nil
}
