// Package config handles persistent user configuration for wlsync.
//
// Configuration is stored as JSON at ~/.config/wlsync/config.json (or the
// platform-equivalent path returned by os.UserConfigDir). The WLSYNC_CONFIG
// environment variable points at a different file.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"nathanbeddoewebdev/wlsync/internal/source"
	"nathanbeddoewebdev/wlsync/internal/whitelist"
)

const (
	appDir   = "wlsync"
	fileName = "config.json"

	// EnvPath names the environment variable that overrides the config path.
	EnvPath = "WLSYNC_CONFIG"
)

// pathOverride, when non-empty, replaces the default config file path.
// Intended for testing. Use SetPath / ResetPath to manage.
var pathOverride string

// SetPath overrides the config file path. Intended for testing.
func SetPath(p string) { pathOverride = p }

// ResetPath clears the path override, reverting to the default. Intended for testing.
func ResetPath() { pathOverride = "" }

// Config holds user preferences that persist across invocations.
// Empty fields fall back to the built-in defaults.
type Config struct {
	Source    string `json:"source,omitempty"`
	Whitelist string `json:"whitelist,omitempty"`
	Column    string `json:"column,omitempty"`
	LogLevel  string `json:"log_level,omitempty"`
}

// SourcePath returns the configured source path or the default.
func (c *Config) SourcePath() string {
	return orDefault(c.Source, source.DefaultPath)
}

// WhitelistPath returns the configured allow-list path or the default.
func (c *Config) WhitelistPath() string {
	return orDefault(c.Whitelist, whitelist.DefaultPath)
}

// ColumnName returns the configured serial column header or the default.
func (c *Config) ColumnName() string {
	return orDefault(c.Column, source.DefaultColumn)
}

func orDefault(v, def string) string {
	if v != "" {
		return v
	}
	return def
}

// Path returns the absolute path to the config file.
// SetPath takes precedence, then WLSYNC_CONFIG. Otherwise it uses
// os.UserConfigDir which resolves to ~/Library/Application Support on
// macOS, ~/.config on Linux, and %AppData% on Windows.
func Path() (string, error) {
	if pathOverride != "" {
		return pathOverride, nil
	}
	if env := os.Getenv(EnvPath); env != "" {
		return env, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config: unable to determine config directory: %w", err)
	}
	return filepath.Join(base, appDir, fileName), nil
}

// Load reads the config file from disk and returns the parsed Config.
// If the file does not exist, a zero-value Config is returned (not an error).
func Load() (*Config, error) {
	return loadFrom("")
}

func loadFrom(path string) (*Config, error) {
	if path == "" {
		var err error
		path, err = Path()
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}

	return &cfg, nil
}

// Save writes the config to disk, creating the parent directory if needed.
func (c *Config) Save() error {
	return c.saveTo("")
}

func (c *Config) saveTo(path string) error {
	if path == "" {
		var err error
		path, err = Path()
		if err != nil {
			return err
		}
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("config: failed to create directory %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("config: failed to marshal config: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: failed to write %s: %w", path, err)
	}

	return nil
}

// LoadFrom reads the config from the given path. Intended for testing.
func LoadFrom(path string) (*Config, error) {
	return loadFrom(path)
}

// SaveTo writes the config to the given path. Intended for testing.
func (c *Config) SaveTo(path string) error {
	return c.saveTo(path)
}
