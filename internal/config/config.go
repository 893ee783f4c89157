// Package config loads the swaynav configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the name of the swaynav configuration file
const ConfigFileName = "config.yaml"

// ConfigDirName is the directory under the user config dir holding the file
const ConfigDirName = "swaynav"

// Config holds all swaynav configuration
type Config struct {
	Navigation NavigationConfig `yaml:"navigation"`
	IPC        IPCConfig        `yaml:"ipc"`
	Log        LogConfig        `yaml:"log"`
}

// NavigationConfig controls the workspace range owned by an output
type NavigationConfig struct {
	DecadeWidth    int  `yaml:"decade_width"`
	DecadeRelative bool `yaml:"decade_relative"`
}

// IPCConfig holds compositor connection settings
type IPCConfig struct {
	// SocketPath overrides $SWAYSOCK / $I3SOCK when set.
	SocketPath string        `yaml:"socket_path"`
	Timeout    time.Duration `yaml:"timeout"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string `yaml:"level"`
}

// ErrInvalidConfig is returned when config validation fails
var ErrInvalidConfig = errors.New("invalid configuration")

// DefaultPath returns $XDG_CONFIG_HOME/swaynav/config.yaml, falling back to
// ~/.config/swaynav/config.yaml.
func DefaultPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(ConfigDirName, ConfigFileName)
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, ConfigDirName, ConfigFileName)
}

// Load reads config from path, or from DefaultPath when path is empty.
// A missing file yields defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}
	return LoadFromPath(path)
}

// LoadFromPath reads config from a specific path.
// Merges loaded config with defaults and validates the result.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	loaded := &Config{}
	if err := yaml.Unmarshal(data, loaded); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	merged := Merge(loaded, DefaultConfig())

	if err := Validate(merged); err != nil {
		return nil, err
	}

	return merged, nil
}

// Validate checks that config values are valid.
func Validate(cfg *Config) error {
	if cfg.Navigation.DecadeWidth <= 0 {
		return fmt.Errorf("%w: decade_width must be positive, got %d",
			ErrInvalidConfig, cfg.Navigation.DecadeWidth)
	}

	if cfg.IPC.Timeout <= 0 {
		return fmt.Errorf("%w: timeout must be positive, got %s",
			ErrInvalidConfig, cfg.IPC.Timeout)
	}

	if !IsValidLogLevel(cfg.Log.Level) {
		return fmt.Errorf("%w: level must be one of %v, got %q",
			ErrInvalidConfig, ValidLogLevels, cfg.Log.Level)
	}

	return nil
}

// SaveDefault writes the default configuration to path, or to DefaultPath
// when path is empty. An existing file is never overwritten.
func SaveDefault(path string) (string, error) {
	if path == "" {
		path = DefaultPath()
	}

	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("config file already exists: %s", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return "", fmt.Errorf("marshaling config: %w", err)
	}

	header := "# swaynav configuration\n# socket_path is empty to use $SWAYSOCK or $I3SOCK\n\n"
	data = append([]byte(header), data...)

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing config file: %w", err)
	}

	return path, nil
}
