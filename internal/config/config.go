// Package config handles the XDG configuration directory and the optional
// settings file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// AppName is the application directory name.
	AppName = "ttask"

	// SettingsFile is the optional YAML settings filename.
	SettingsFile = "config.yaml"

	// DataFile is the default task store filename.
	DataFile = "tasks.json"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// DataFile is the task store file path.
	DataFile string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool
}

// settings mirrors config.yaml.
type settings struct {
	DataFile string `yaml:"data_file"`
	Quiet    bool   `yaml:"quiet"`
}

// New creates a Config rooted at the given directory and applies
// config.yaml if present. If configDir is empty, uses XDG_CONFIG_HOME/ttask
// or $HOME/.config/ttask. Flag overrides are applied by the caller
// afterwards, so precedence is flags > settings file > defaults.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	cfg := &Config{
		Dir:      dir,
		DataFile: filepath.Join(dir, DataFile),
	}
	if err := cfg.loadSettings(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// SettingsPath returns the path to the settings file.
func (c *Config) SettingsPath() string {
	return filepath.Join(c.Dir, SettingsFile)
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}

// loadSettings reads config.yaml if it exists. A missing file is not an
// error; a malformed one is.
func (c *Config) loadSettings() error {
	data, err := os.ReadFile(c.SettingsPath())
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", c.SettingsPath(), err)
	}
	var s settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("parse %s: %w", c.SettingsPath(), err)
	}
	if s.DataFile != "" {
		c.DataFile = s.DataFile
	}
	c.Quiet = s.Quiet
	return nil
}
