// Package config handles YAML configuration loading with environment variable substitution.
//
// Configuration files support ${VAR} syntax for environment variable interpolation,
// which keeps client ids and refresh tokens out of the file itself.
package config
