// Package common provides shared utilities for Aivo
package common

import (
	"fmt"
	"os"
	"strconv"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds all configuration for the Aivo state engine.
type Config struct {
	Environment string        `toml:"environment"`
	Storage     StorageConfig `toml:"storage"`
	Clients     ClientsConfig `toml:"clients"`
	Logging     LoggingConfig `toml:"logging"`
}

// StorageConfig selects and configures the remote document store.
type StorageConfig struct {
	// Backend is "memory" (simulated remote store) or "gcs".
	Backend string       `toml:"backend"`
	GCS     GCSConfig    `toml:"gcs"`
	Memory  MemoryConfig `toml:"memory"`
}

// GCSConfig holds Google Cloud Storage configuration. Credentials come from
// Application Default Credentials.
type GCSConfig struct {
	Bucket       string `toml:"bucket"`
	Prefix       string `toml:"prefix"`         // optional key prefix within bucket
	WritesPerMin int    `toml:"writes_per_min"` // save-path rate limit, 0 = default
}

// MemoryConfig holds configuration for the simulated remote store.
type MemoryConfig struct {
	Latency string `toml:"latency"` // simulated network delay, e.g. "500ms"
}

// GetLatency parses and returns the simulated latency duration.
func (c *MemoryConfig) GetLatency() time.Duration {
	d, err := time.ParseDuration(c.Latency)
	if err != nil {
		return 0
	}
	return d
}

// ClientsConfig holds API client configurations
type ClientsConfig struct {
	Gemini GeminiConfig `toml:"gemini"`
}

// GeminiConfig holds Gemini API configuration
type GeminiConfig struct {
	APIKey string `toml:"api_key"`
	Model  string `toml:"model"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string `toml:"level"`
}

// NewDefaultConfig returns a Config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Storage: StorageConfig{
			Backend: "memory",
			Memory:  MemoryConfig{Latency: "0s"},
			GCS:     GCSConfig{Prefix: "aivo"},
		},
		Clients: ClientsConfig{
			Gemini: GeminiConfig{
				Model: "gemini-2.5-flash",
			},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadConfig loads configuration from files with environment overrides.
// Later files override earlier ones; missing files are skipped.
func LoadConfig(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for _, path := range paths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("AIVO_ENV"); env != "" {
		config.Environment = env
	}

	if level := os.Getenv("AIVO_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}

	if backend := os.Getenv("AIVO_STORAGE_BACKEND"); backend != "" {
		config.Storage.Backend = backend
	}

	if bucket := os.Getenv("AIVO_GCS_BUCKET"); bucket != "" {
		config.Storage.GCS.Bucket = bucket
	}

	if wpm := os.Getenv("AIVO_GCS_WRITES_PER_MIN"); wpm != "" {
		if n, err := strconv.Atoi(wpm); err == nil {
			config.Storage.GCS.WritesPerMin = n
		}
	}

	if key := os.Getenv("GEMINI_API_KEY"); key != "" && config.Clients.Gemini.APIKey == "" {
		config.Clients.Gemini.APIKey = key
	}
}
