// Package logging builds the process logger: a colored console handler on
// stderr, fanned out to a JSON file when one is configured.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	slogmulti "github.com/samber/slog-multi"

	"github.com/rotj-game/rotj/internal/config"
)

// New returns a logger for cfg writing to console. The returned close
// function releases the log file, if any.
func New(cfg config.LogConfig, console io.Writer) (*slog.Logger, func() error, error) {
	level := cfg.SlogLevel()
	handlers := []slog.Handler{
		log.NewWithOptions(console, log.Options{
			ReportTimestamp: true,
			Prefix:          "rotj",
			Level:           log.Level(level),
		}),
	}

	closeFn := func() error { return nil }
	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
			return nil, nil, fmt.Errorf("logging: cannot create directory for %s: %w", cfg.File, err)
		}
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("logging: cannot open %s: %w", cfg.File, err)
		}
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level}))
		closeFn = f.Close
	}

	return slog.New(slogmulti.Fanout(handlers...)), closeFn, nil
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
