// Package logging configures the global zerolog logger.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/loadout-gg/loadout/internal/config"
)

// Setup points the global logger at a console writer on stderr and, when
// configured, a JSON log file. The returned func closes the file.
func Setup(cfg config.LoggingConfig) (func() error, error) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", cfg.Level, err)
	}
	zerolog.SetGlobalLevel(level)

	console := zerolog.ConsoleWriter{Out: os.Stderr}

	var writer io.Writer = console
	closeFn := func() error { return nil }

	if cfg.File != "" {
		file, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file %s: %w", cfg.File, err)
		}
		writer = zerolog.MultiLevelWriter(console, file)
		closeFn = file.Close
	}

	log.Logger = zerolog.New(writer).With().Timestamp().Logger()
	return closeFn, nil
}
