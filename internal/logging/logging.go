// Package logging builds the slog loggers used by the priceform commands.
package logging

import (
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/goliatone/go-priceform/internal/config"
)

// New returns a logger writing to w. The json format uses slog's JSON handler;
// anything else gets the human-friendly handler, colorized when w is a
// terminal.
func New(w io.Writer, format string, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if format == config.FormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(NewHumanHandler(w, opts, isTerminal(w)))
}

// FromConfig builds the stderr logger described by cfg.
func FromConfig(cfg config.Log) (*slog.Logger, error) {
	level, err := config.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	return New(os.Stderr, cfg.Format, level), nil
}

// Discard drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
