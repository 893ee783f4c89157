package cmd

import (
	"io"
	"log/slog"
	"time"

	"github.com/swaynav/swaynav/internal/config"
	"github.com/swaynav/swaynav/internal/ipc"
	"github.com/swaynav/swaynav/internal/nav"
)

// compositor is everything the commands need from the IPC connection.
type compositor interface {
	nav.StateSource
	nav.Switcher
	io.Closer
}

// dialCompositor opens the compositor connection. Tests replace it.
var dialCompositor = func(path string, timeout time.Duration) (compositor, error) {
	client, err := ipc.Dial(path, timeout)
	if err != nil {
		return nil, err
	}
	return client, nil
}

// connect resolves the socket path from --socket, the config file and the
// environment, then dials it. The caller closes the returned connection.
func connect(cfg *config.Config, logger *slog.Logger) (compositor, error) {
	explicit := socketPath
	if explicit == "" {
		explicit = cfg.IPC.SocketPath
	}
	path, err := ipc.SocketPath(explicit)
	if err != nil {
		return nil, err
	}

	logger.Debug("connecting", "socket", path, "timeout", cfg.IPC.Timeout)
	return dialCompositor(path, cfg.IPC.Timeout)
}

// newLogger builds the stderr logger. --verbose forces debug level.
func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	level := cfg.SlogLevel()
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// loadConfig reads the config file named by --config or the default location.
func loadConfig() (*config.Config, error) {
	return config.Load(configPath)
}
