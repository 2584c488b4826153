// Package config resolves the data directory and reads config.yaml.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// AppName names the dot-directory under $HOME.
	AppName = "ihft"

	FileName           = "config.yaml"
	DefaultThingsFile  = "things"
	DefaultHistoryFile = "hist"
	DefaultTheme       = "classic"
	DefaultLogLevel    = "info"

	EnvDir   = "IHFT_DIR"
	EnvTheme = "IHFT_THEME"
)

// Config holds user settings. Dir is never read from the file.
type Config struct {
	Dir         string `yaml:"-"`
	Theme       string `yaml:"theme"`
	LogLevel    string `yaml:"log_level"`
	Locking     bool   `yaml:"locking"`
	ThingsFile  string `yaml:"things_file"`
	HistoryFile string `yaml:"history_file"`
}

// Default returns the settings used when config.yaml is absent.
func Default(dir string) *Config {
	return &Config{
		Dir:         dir,
		Theme:       DefaultTheme,
		LogLevel:    DefaultLogLevel,
		ThingsFile:  DefaultThingsFile,
		HistoryFile: DefaultHistoryFile,
	}
}

// DefaultDir returns $IHFT_DIR, or ~/.ihft.
func DefaultDir() (string, error) {
	if d := strings.TrimSpace(os.Getenv(EnvDir)); d != "" {
		return d, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home: %w", err)
	}
	return filepath.Join(home, "."+AppName), nil
}

// Load reads dir/config.yaml. An empty dir means DefaultDir.
// A missing file yields defaults; IHFT_THEME overrides the theme.
func Load(dir string) (*Config, error) {
	if dir == "" {
		d, err := DefaultDir()
		if err != nil {
			return nil, err
		}
		dir = d
	}

	cfg := Default(dir)
	data, err := os.ReadFile(cfg.Path())
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
		cfg.Dir = dir
	}

	if theme := strings.TrimSpace(os.Getenv(EnvTheme)); theme != "" {
		cfg.Theme = theme
	}
	cfg.applyDefaults()
	return cfg, nil
}

// Marshal renders the config in its file form.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return data, nil
}

// Save writes the config back to dir/config.yaml.
func (c *Config) Save() error {
	if err := os.MkdirAll(c.Dir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	data, err := c.Marshal()
	if err != nil {
		return err
	}
	return os.WriteFile(c.Path(), data, 0o644)
}

func (c *Config) applyDefaults() {
	if c.Theme == "" {
		c.Theme = DefaultTheme
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.ThingsFile == "" {
		c.ThingsFile = DefaultThingsFile
	}
	if c.HistoryFile == "" {
		c.HistoryFile = DefaultHistoryFile
	}
}

// Path returns the config file location.
func (c *Config) Path() string { return filepath.Join(c.Dir, FileName) }

// ThingsPath returns the things list location.
func (c *Config) ThingsPath() string { return filepath.Join(c.Dir, c.ThingsFile) }

// HistoryPath returns the history log location.
func (c *Config) HistoryPath() string { return filepath.Join(c.Dir, c.HistoryFile) }

// LogDir returns the directory log files go to.
func (c *Config) LogDir() string { return filepath.Join(c.Dir, "logs") }

// Level maps LogLevel to a slog level; unknown values mean info.
func (c *Config) Level() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
