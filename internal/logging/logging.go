// Package logging builds the structured logger. The terminal belongs to
// the game, so log output goes to a rotated file or nowhere.
package logging

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/vovakirdan/tui-minesweeper/internal/config"
)

// Prefix is attached to every log line.
const Prefix = "minesweeper"

// New creates a logger from cfg. With an empty cfg.File the logger
// discards everything. The returned closer releases the log file.
func New(cfg config.LogConfig) (*log.Logger, io.Closer, error) {
	level := log.InfoLevel
	if cfg.Level != "" {
		parsed, err := log.ParseLevel(cfg.Level)
		if err != nil {
			return nil, nil, fmt.Errorf("logging: invalid level %q: %w", cfg.Level, err)
		}
		level = parsed
	}

	if cfg.File == "" {
		return NewWithWriter(io.Discard, level), nopCloser{}, nil
	}

	file := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
	}
	return NewWithWriter(file, level), file, nil
}

// NewWithWriter creates a logger writing to w.
func NewWithWriter(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          Prefix,
		Level:           level,
	})
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return NewWithWriter(io.Discard, log.FatalLevel)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
