package config

import (
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// envPrefix namespaces the environment overrides, e.g.
// BOOKSDESK_SESSION_TIMEOUT_MINUTES.
const envPrefix = "booksdesk"

// Config represents the top-level booksdesk.yaml configuration.
type Config struct {
	Session SessionConfig `yaml:"session"`
	Books   BooksConfig   `yaml:"books"`
	Data    DataConfig    `yaml:"data"`
}

// SessionConfig controls login policy and idle expiry.
type SessionConfig struct {
	TimeoutMinutes   int `yaml:"timeout_minutes" envconfig:"SESSION_TIMEOUT_MINUTES"`
	MaxLoginAttempts int `yaml:"max_login_attempts" envconfig:"MAX_LOGIN_ATTEMPTS"`
}

// BooksConfig identifies the reporting setup.
type BooksConfig struct {
	HomeCurrency string `yaml:"home_currency" envconfig:"HOME_CURRENCY"`
}

// DataConfig locates on-disk data (activity log, CSV exports).
type DataConfig struct {
	Dir string `yaml:"dir" envconfig:"DATA_DIR"`
}

// Load reads a booksdesk.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// FromEnv overlays environment variables onto cfg.
func FromEnv(cfg *Config) error {
	if err := envconfig.Process(envPrefix, cfg); err != nil {
		return fmt.Errorf("reading environment: %w", err)
	}
	return nil
}

// Default returns a Config with the stock policy: a 30 minute idle
// timeout and a ceiling of 3 failed login attempts.
func Default() *Config {
	return &Config{
		Session: SessionConfig{
			TimeoutMinutes:   30,
			MaxLoginAttempts: 3,
		},
		Books: BooksConfig{
			HomeCurrency: "MUR",
		},
		Data: DataConfig{
			Dir: ".",
		},
	}
}

// IdleTimeout returns the session timeout as a duration.
func (c *Config) IdleTimeout() time.Duration {
	return time.Duration(c.Session.TimeoutMinutes) * time.Minute
}
