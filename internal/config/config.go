package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/legolabs/envreplacer/internal/logging"
)

const (
	envFiles    = "ENVREPLACER_FILES"
	envLogLevel = "ENVREPLACER_LOG_LEVEL"
)

// Config aggregates runtime configuration resolved from multiple sources.
// Precedence: CLI flags > YAML config > Environment variables > Defaults
type Config struct {
	// Files are processed one at a time, in order.
	Files []string
	// Defaults supply values for keys missing from the process environment.
	Defaults map[string]string
	LogLevel string
}

// yamlConfig represents the YAML configuration file structure.
type yamlConfig struct {
	Files    []string          `yaml:"files"`
	Defaults map[string]string `yaml:"defaults"`
	LogLevel string            `yaml:"log_level"`
}

// CLIOverrides holds command-line flag overrides.
type CLIOverrides struct {
	ConfigFile string
	Files      []string
	LogLevel   *string
}

// Load extracts configuration from multiple sources with precedence:
// CLI flags > YAML config > Environment variables > Defaults
func Load(overrides *CLIOverrides) (Config, error) {
	cfg := defaultConfig()

	// Apply environment variables
	applyEnvConfig(&cfg)

	// Load from YAML file if specified (overrides environment)
	if overrides != nil && overrides.ConfigFile != "" {
		yamlCfg, err := loadFromFile(overrides.ConfigFile)
		if err != nil {
			return Config{}, fmt.Errorf("load YAML config: %w", err)
		}
		applyYAMLConfig(&cfg, yamlCfg)
	}

	// Apply CLI overrides (highest precedence)
	if overrides != nil {
		applyCLIOverrides(&cfg, overrides)
	}

	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// defaultConfig returns a Config with default values.
func defaultConfig() Config {
	return Config{
		Defaults: map[string]string{},
		LogLevel: logging.DefaultLevel,
	}
}

// loadFromFile loads configuration from a YAML file.
func loadFromFile(path string) (*yamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	return &yamlCfg, nil
}

// applyYAMLConfig applies YAML configuration to the Config struct.
func applyYAMLConfig(cfg *Config, yamlCfg *yamlConfig) {
	if files := cleanPaths(yamlCfg.Files); len(files) > 0 {
		cfg.Files = files
	}

	for key, value := range yamlCfg.Defaults {
		cfg.Defaults[key] = value
	}

	if level := strings.TrimSpace(yamlCfg.LogLevel); level != "" {
		cfg.LogLevel = level
	}
}

// applyEnvConfig applies environment variable configuration.
func applyEnvConfig(cfg *Config) {
	if rawFiles := strings.TrimSpace(os.Getenv(envFiles)); rawFiles != "" {
		if files := cleanPaths(strings.Split(rawFiles, ",")); len(files) > 0 {
			cfg.Files = files
		}
	}

	if level := strings.TrimSpace(os.Getenv(envLogLevel)); level != "" {
		cfg.LogLevel = level
	}
}

// applyCLIOverrides applies command-line flag overrides.
func applyCLIOverrides(cfg *Config, overrides *CLIOverrides) {
	if files := cleanPaths(overrides.Files); len(files) > 0 {
		cfg.Files = files
	}

	if overrides.LogLevel != nil && *overrides.LogLevel != "" {
		cfg.LogLevel = *overrides.LogLevel
	}
}

// validateConfig validates the final configuration.
func validateConfig(cfg Config) error {
	if len(cfg.Files) == 0 {
		return fmt.Errorf("no files to process")
	}
	if !logging.ValidLevel(cfg.LogLevel) {
		return fmt.Errorf("unknown log level %q", cfg.LogLevel)
	}
	return nil
}

// cleanPaths trims each entry and drops empty ones.
func cleanPaths(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, path := range raw {
		path = strings.TrimSpace(path)
		if path == "" {
			continue
		}
		out = append(out, path)
	}
	return out
}
