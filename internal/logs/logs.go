// Package logs builds the slog loggers used by the demo binaries.
package logs

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	slogmulti "github.com/samber/slog-multi"
)

// Options selects the log sinks. Nil writers are skipped.
type Options struct {
	Level slog.Level
	Text  io.Writer
	JSON  io.Writer
}

// New fans records out to every configured sink. With no sinks the logger
// discards everything.
func New(opts Options) *slog.Logger {
	hopts := &slog.HandlerOptions{Level: opts.Level}

	var handlers []slog.Handler
	if opts.Text != nil {
		handlers = append(handlers, slog.NewTextHandler(opts.Text, hopts))
	}
	if opts.JSON != nil {
		handlers = append(handlers, slog.NewJSONHandler(opts.JSON, hopts))
	}
	if len(handlers) == 0 {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slogmulti.Fanout(handlers...))
}

// ParseLevel accepts debug, info, warn and error, case-insensitively.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("logs: parse level %q: %w", s, err)
	}
	return level, nil
}

// OpenFile opens path for appending. The terminal belongs to the TUI, so
// the demo logs to a file instead.
func OpenFile(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("logs: open %s: %w", path, err)
	}
	return f, nil
}
