package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	AppName    = "datepicker"
	ConfigName = "config.yaml"
)

// Theme holds the lipgloss colors used to draw the picker.
type Theme struct {
	Accent   string `yaml:"accent"`
	Muted    string `yaml:"muted"`
	Error    string `yaml:"error"`
	Focus    string `yaml:"focus"`
	Selected string `yaml:"selected"`
}

// Config is the user configuration read from config.yaml.
type Config struct {
	Theme Theme `yaml:"theme"`

	// ShowStatus shows the status announcements under the calendar.
	ShowStatus bool `yaml:"show_status"`

	// InitialValue seeds the input when no value is given on the command line.
	InitialValue string `yaml:"initial_value"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Theme: Theme{
			Accent:   "39",
			Muted:    "240",
			Error:    "196",
			Focus:    "205",
			Selected: "40",
		},
		ShowStatus: true,
	}
}

// DataDir returns the path to the data directory (~/.datepicker/)
// Creates the directory if it doesn't exist
// Can be overridden with DATEPICKER_DATA_DIR environment variable (primarily for testing)
func DataDir() (string, error) {
	if dataDir := os.Getenv("DATEPICKER_DATA_DIR"); dataDir != "" {
		if err := os.MkdirAll(dataDir, 0755); err != nil {
			return "", err
		}
		return dataDir, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	dataDir := filepath.Join(home, "."+AppName)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}

	return dataDir, nil
}

// LogDir returns the path to the log directory (~/.datepicker/logs/)
// Creates the directory if it doesn't exist
func LogDir() (string, error) {
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}

	logDir := filepath.Join(dataDir, "logs")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return "", err
	}

	return logDir, nil
}

// ConfigPath returns the path to the config file (~/.datepicker/config.yaml)
func ConfigPath() (string, error) {
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(dataDir, ConfigName), nil
}

// Load reads the config file from the data directory.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config path: %w", err)
	}
	return LoadFrom(path)
}

// LoadFrom reads the config at path. A missing file yields Default; fields
// absent from the file keep their defaults.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return cfg, nil
}

// Save writes cfg to path as YAML.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
