package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	DefaultVersion   = 1
	DefaultThreshold = 10
)

// Config defines user configuration stored in the tally config file.
type Config struct {
	Version int `json:"version"`

	// Threshold is the default alert threshold (default 10).
	Threshold *int `json:"threshold,omitempty"`
}

// GetThreshold returns the default alert threshold (default 10).
func (c Config) GetThreshold() int {
	if c.Threshold == nil {
		return DefaultThreshold
	}
	return *c.Threshold
}

// Default returns the default config.
func Default() Config {
	return Config{
		Version: DefaultVersion,
	}
}

// Path returns the config file location. The TALLY_CONFIG environment
// variable overrides the default of <user config dir>/tally/config.json.
func Path() (string, error) {
	if path := strings.TrimSpace(os.Getenv("TALLY_CONFIG")); path != "" {
		return path, nil
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate user config dir: %w", err)
	}
	return filepath.Join(dir, "tally", "config.json"), nil
}

// Load reads config from disk and applies defaults for zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("config not found: %w", err)
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if cfg.Version == 0 {
		cfg.Version = DefaultVersion
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadOrDefault reads config from disk, returning defaults if file doesn't exist.
func LoadOrDefault(path string) (Config, error) {
	cfg, err := Load(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, err
	}
	return cfg, nil
}

// Save writes a config to disk, creating the parent directory if needed.
func Save(path string, cfg Config) error {
	if cfg.Version == 0 {
		cfg.Version = DefaultVersion
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	return nil
}

// Validate ensures config values are within supported ranges.
func (c Config) Validate() error {
	if c.Version != DefaultVersion {
		return fmt.Errorf("unsupported config version: %d", c.Version)
	}
	return nil
}
