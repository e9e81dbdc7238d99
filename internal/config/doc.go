// Package config loads runtime configuration from multiple sources (YAML files,
// environment variables, CLI flags) with precedence: CLI flags > YAML config >
// Environment variables > Defaults. It resolves the list of files to rewrite,
// fallback marker values and the log level.
package config
