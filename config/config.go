// Package config loads runtime configuration from a YAML file with
// environment variable overrides. A local .env file, when present, is folded
// into the environment first so development setups need no shell exports.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPageLimit bounds list operations when the caller passes no limit.
const DefaultPageLimit = 20

// Config is the root runtime configuration.
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
	Page    PageConfig    `yaml:"page"`
	Assets  AssetsConfig  `yaml:"assets"`
}

// StorageConfig selects and locates the persistence backend.
type StorageConfig struct {
	// Backend is "memory" or "pebble".
	Backend string `yaml:"backend"`
	// Path is the pebble database directory. Ignored for the memory backend.
	Path string `yaml:"path"`
}

// LogConfig controls structured log output.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json or text
}

// PageConfig bounds list pagination.
type PageConfig struct {
	DefaultLimit int `yaml:"default_limit"`
}

// AssetsConfig locates static assets referenced by rendered widgets.
type AssetsConfig struct {
	// BaseURL prefixes image and favicon paths in rendered trees.
	BaseURL string `yaml:"base_url"`
}

// Default returns the baseline configuration used when no file is given.
func Default() Config {
	return Config{
		Storage: StorageConfig{Backend: "memory", Path: "./data"},
		Log:     LogConfig{Level: "info", Format: "json"},
		Page:    PageConfig{DefaultLimit: DefaultPageLimit},
	}
}

// Load reads the YAML file at path (skipped when path is empty), then applies
// environment overrides. A .env file in the working directory is loaded
// best-effort before overrides are read.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file: %w", err)
		}
	}
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Environment override variables. Each one, when set and non-empty, replaces
// the corresponding file/default value.
const (
	EnvStorageBackend = "THREADKIT_STORAGE_BACKEND"
	EnvStoragePath    = "THREADKIT_STORAGE_PATH"
	EnvLogLevel       = "THREADKIT_LOG_LEVEL"
	EnvLogFormat      = "THREADKIT_LOG_FORMAT"
	EnvPageLimit      = "THREADKIT_PAGE_LIMIT"
	EnvAssetsBaseURL  = "THREADKIT_ASSETS_BASE_URL"
)

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvStorageBackend); v != "" {
		c.Storage.Backend = v
	}
	if v := os.Getenv(EnvStoragePath); v != "" {
		c.Storage.Path = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Log.Format = v
	}
	if v := os.Getenv(EnvPageLimit); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Page.DefaultLimit = n
		}
	}
	if v := os.Getenv(EnvAssetsBaseURL); v != "" {
		c.Assets.BaseURL = v
	}
}

// Validate checks cross-field consistency.
func (c Config) Validate() error {
	switch c.Storage.Backend {
	case "memory", "pebble":
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}
	if c.Storage.Backend == "pebble" && c.Storage.Path == "" {
		return fmt.Errorf("storage path required for pebble backend")
	}
	switch c.Log.Format {
	case "", "json", "text":
	default:
		return fmt.Errorf("unknown log format %q", c.Log.Format)
	}
	if c.Page.DefaultLimit <= 0 {
		return fmt.Errorf("page default_limit must be positive, got %d", c.Page.DefaultLimit)
	}
	return nil
}
