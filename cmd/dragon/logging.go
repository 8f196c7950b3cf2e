package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// nopCloser is returned when logging is disabled.
type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// openLogger opens the game log. The TUI owns the terminal, so logs go to a
// file; "-" or an empty path discards them.
func openLogger(path, level string) (*log.Logger, io.Closer, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	if path == "" || path == "-" {
		return log.New(io.Discard), nopCloser{}, nil
	}

	if path[0] == '~' {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, nil, fmt.Errorf("cannot expand home directory: %w", homeErr)
		}
		path = filepath.Join(home, path[1:])
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "dragon",
		Level:           lvl,
	})
	return logger, f, nil
}
