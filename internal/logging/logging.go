// Package logging configures the console's structured diagnostics log.
//
// The TUI owns the terminal while running, so nothing may write to stdout or
// stderr; all diagnostics go to a JSON log file instead.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// Open creates a zerolog logger writing to the given file, creating parent
// directories as needed. The returned closer must be called on shutdown.
func Open(path string) (zerolog.Logger, func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("create log dir: %w", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
	}

	logger := zerolog.New(file).With().Timestamp().Logger()
	closer := func() { _ = file.Close() }
	return logger, closer, nil
}
