package config

import (
	"log/slog"
	"time"
)

// DefaultConfig returns configuration with sensible defaults.
// These defaults are used when no config file exists or when
// config file is missing specific fields.
func DefaultConfig() *Config {
	return &Config{
		Navigation: NavigationConfig{
			DecadeWidth:    10,
			DecadeRelative: false,
		},
		IPC: IPCConfig{
			SocketPath: "",
			Timeout:    2 * time.Second,
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// Merge merges loaded config with defaults.
// Values from loaded config take precedence over defaults.
// Returns a new Config with merged values.
func Merge(loaded, defaults *Config) *Config {
	result := &Config{}

	result.Navigation = mergeNavigationConfig(loaded.Navigation, defaults.Navigation)
	result.IPC = mergeIPCConfig(loaded.IPC, defaults.IPC)
	result.Log = mergeLogConfig(loaded.Log, defaults.Log)

	return result
}

func mergeNavigationConfig(loaded, defaults NavigationConfig) NavigationConfig {
	result := NavigationConfig{}

	// DecadeWidth: use loaded if non-zero
	if loaded.DecadeWidth != 0 {
		result.DecadeWidth = loaded.DecadeWidth
	} else {
		result.DecadeWidth = defaults.DecadeWidth
	}

	// The default is false, so a missing key and an explicit false agree
	result.DecadeRelative = loaded.DecadeRelative

	return result
}

func mergeIPCConfig(loaded, defaults IPCConfig) IPCConfig {
	result := IPCConfig{}

	if loaded.SocketPath != "" {
		result.SocketPath = loaded.SocketPath
	} else {
		result.SocketPath = defaults.SocketPath
	}

	if loaded.Timeout != 0 {
		result.Timeout = loaded.Timeout
	} else {
		result.Timeout = defaults.Timeout
	}

	return result
}

func mergeLogConfig(loaded, defaults LogConfig) LogConfig {
	result := LogConfig{}

	if loaded.Level != "" {
		result.Level = loaded.Level
	} else {
		result.Level = defaults.Level
	}

	return result
}

// ValidLogLevels lists the valid values for log.level
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// IsValidLogLevel checks if the given level is valid
func IsValidLogLevel(level string) bool {
	for _, valid := range ValidLogLevels {
		if level == valid {
			return true
		}
	}
	return false
}

// SlogLevel converts the configured level to a slog.Level.
// Unknown values map to warn.
func (c LogConfig) SlogLevel() slog.Level {
	switch c.Level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
