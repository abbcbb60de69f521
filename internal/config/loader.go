package config

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads the markethours YAML file. ${VAR} and $VAR references are
// replaced from the environment; references to unset variables become empty
// strings and their names are kept in Config.UnsetEnv.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	expanded, unset := expandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config yaml: %w", err)
	}
	cfg.UnsetEnv = unset

	return &cfg, nil
}

// expandEnv is os.ExpandEnv that also reports the distinct unset names in
// order of first reference.
func expandEnv(s string) (string, []string) {
	var unset []string
	expanded := os.Expand(s, func(name string) string {
		v, ok := os.LookupEnv(name)
		if !ok && !slices.Contains(unset, name) {
			unset = append(unset, name)
		}
		return v
	})
	return expanded, unset
}

// LoadWithDefaults loads config and fills in the public API endpoints,
// timeout and logging defaults.
func LoadWithDefaults(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return cfg, nil
}

// LoadAndValidate loads config, applies defaults, and validates. A
// validation failure names any unset environment variables, since an empty
// client_id usually means TDA_CLIENT_ID was never exported.
func LoadAndValidate(path string) (*Config, error) {
	cfg, err := LoadWithDefaults(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		if len(cfg.UnsetEnv) > 0 {
			return nil, fmt.Errorf("validate config (unset environment variables: %s): %w",
				strings.Join(cfg.UnsetEnv, ", "), err)
		}
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}
