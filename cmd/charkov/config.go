package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"
	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration for the charkov CLI. Command-line
// flags override these values only when they are explicitly set.
type Config struct {
	DatabasePath     string `json:"database_path" yaml:"database_path"`
	LogLevel         string `json:"log_level" yaml:"log_level"`
	Order            int    `json:"order" yaml:"order"`
	Seed             int64  `json:"seed" yaml:"seed"`
	MaxLength        int    `json:"max_length" yaml:"max_length"`
	EarlyTermination bool   `json:"early_termination" yaml:"early_termination"`
}

// DefaultConfig creates a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		DatabasePath:     "./data/charkov.db",
		LogLevel:         "info",
		Order:            3,
		Seed:             42,
		MaxLength:        500,
		EarlyTermination: true,
	}
}

// isYAML reports whether path should be read and written as YAML instead of JSON.
func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

func marshalConfig(path string, config *Config) ([]byte, error) {
	if isYAML(path) {
		return yaml.Marshal(config)
	}
	return json.MarshalIndent(config, "", "  ")
}

func unmarshalConfig(path string, data []byte, config *Config) error {
	if isYAML(path) {
		return yaml.Unmarshal(data, config)
	}
	return json.Unmarshal(data, config)
}

// LoadConfig reads the configuration from a JSON or YAML file at the given path.
// If the file doesn't exist, it creates one with default values.
func LoadConfig(path string, logger *slog.Logger) (*Config, error) {
	config := DefaultConfig()

	file, err := os.ReadFile(path)
	if err != nil {
		// If the file doesn't exist, create it with the default config.
		if os.IsNotExist(err) {
			var data []byte
			data, err = marshalConfig(path, config)
			if err != nil {
				return nil, fmt.Errorf("failed to marshal default config: %w", err)
			}
			if err = atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
				// The CLI can still run with defaults.
				logger.Warn("Failed to write default config file", "path", path, "error", err)
			}
			return config, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err = unmarshalConfig(path, file, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return config, nil
}

// parseLogLevel maps a config or flag string to a slog level, defaulting to info.
func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
