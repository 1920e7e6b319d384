package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix prefixes every environment override, e.g. WORKERHUB_DB_PATH.
const EnvPrefix = "WORKERHUB"

// DirName is the per-user directory holding config.json and the database.
const DirName = ".workerhub"

// Config represents the WorkerHub configuration.
type Config struct {
	AuthBaseURL        string   `json:"auth_base_url" envconfig:"AUTH_BASE_URL"`
	DBPath             string   `json:"db_path,omitempty" envconfig:"DB_PATH"` // empty means ~/.workerhub/workerhub.db
	MaxRate            int      `json:"max_rate" envconfig:"MAX_RATE"`         // default rate ceiling for worker searches
	ServeAddr          string   `json:"serve_addr" envconfig:"SERVE_ADDR"`
	AllowedOrigins     []string `json:"allowed_origins" envconfig:"ALLOWED_ORIGINS"`
	LogLevel           string   `json:"log_level" envconfig:"LOG_LEVEL"`   // debug, info, warn, error
	LogFormat          string   `json:"log_format" envconfig:"LOG_FORMAT"` // text or json
	AuthTimeoutSeconds int      `json:"auth_timeout_seconds" envconfig:"AUTH_TIMEOUT_SECONDS"`
}

// DefaultConfig returns the configuration used when nothing overrides it.
func DefaultConfig() *Config {
	return &Config{
		AuthBaseURL:    "http://localhost:8080/api/auth",
		MaxRate:        1000,
		ServeAddr:      ":8080",
		AllowedOrigins: []string{"http://localhost:3000"},
		LogLevel:       "info",
		LogFormat:      "text",
	}
}

// Load builds the effective configuration for dir (normally the home directory):
// defaults, then <dir>/.workerhub/config.json if present, then a .env file in
// the working directory if present, then WORKERHUB_* environment variables.
func Load(dir string) (*Config, error) {
	cfg, err := LoadConfig(dir)
	if errors.Is(err, os.ErrNotExist) {
		cfg = DefaultConfig()
	} else if err != nil {
		return nil, err
	}

	// .env never overrides variables already set in the environment.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfig reads .workerhub/config.json from the specified directory on top
// of the defaults. Returns an error wrapping os.ErrNotExist if no config file exists.
func LoadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, DirName, "config.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// SaveConfig writes config.json to directory
func SaveConfig(dir string, cfg *Config) error {
	cfgDir := filepath.Join(dir, DirName)
	if err := os.MkdirAll(cfgDir, 0755); err != nil {
		return fmt.Errorf("failed to create %s dir: %w", DirName, err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(cfgDir, "config.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Validate checks that every setting is usable.
func (c *Config) Validate() error {
	u, err := url.Parse(c.AuthBaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid auth_base_url %q: must be an http(s) URL", c.AuthBaseURL)
	}
	if c.MaxRate <= 0 {
		return fmt.Errorf("invalid max_rate %d: must be positive", c.MaxRate)
	}
	if c.ServeAddr == "" {
		return fmt.Errorf("serve_addr is required")
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("invalid log_format %q: must be text or json", c.LogFormat)
	}
	if c.AuthTimeoutSeconds < 0 {
		return fmt.Errorf("invalid auth_timeout_seconds %d: must not be negative", c.AuthTimeoutSeconds)
	}
	return nil
}

// SlogLevel converts LogLevel to a slog.Level.
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log_level %q: must be debug, info, warn or error", c.LogLevel)
	}
	return level, nil
}

// AuthTimeout returns the auth request timeout. Zero means no timeout.
func (c *Config) AuthTimeout() time.Duration {
	return time.Duration(c.AuthTimeoutSeconds) * time.Second
}
