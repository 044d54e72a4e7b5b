package config

import (
	"os"
	"strings"

	"semgen/adapters/output"
	"semgen/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Paths  PathConfig
	Output OutputConfig
	Log    LogConfig
}

// PathConfig holds input locations
type PathConfig struct {
	InputDir string
	Workbook string
}

// OutputConfig holds the output file settings
type OutputConfig struct {
	File   string
	Format output.Format
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	format, err := output.ParseFormat(getEnvOrDefault("SEM_OUTPUT_FORMAT", string(output.FormatJSON)))
	if err != nil {
		return nil, &errors.AppError{Code: errors.CodeConfigInvalid, Message: "invalid SEM_OUTPUT_FORMAT", Cause: err}
	}

	config := &Config{
		Paths: PathConfig{
			InputDir: getEnvOrDefault("SEM_INPUT_DIR", "."),
			Workbook: getEnvOrDefault("SEM_WORKBOOK", ""),
		},
		Output: OutputConfig{
			File:   getEnvOrDefault("SEM_OUTPUT_FILE", ""),
			Format: format,
		},
		Log: LogConfig{
			Level: getEnvOrDefault("LOG_LEVEL", "WARN"),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

// Default returns the configuration used when no environment is set
func Default() *Config {
	return &Config{
		Paths:  PathConfig{InputDir: "."},
		Output: OutputConfig{Format: output.FormatJSON},
		Log:    LogConfig{Level: "WARN"},
	}
}

// OutputPath returns the configured output file or the format's default name
func (c *Config) OutputPath() string {
	if c.Output.File != "" {
		return c.Output.File
	}
	return c.Output.Format.DefaultPath()
}

func validateConfig(config *Config) error {
	if strings.TrimSpace(config.Paths.InputDir) == "" {
		return errors.ConfigInvalid("input directory is required")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
