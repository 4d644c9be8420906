package tui

import (
	"log/slog"

	"github.com/goliatone/go-priceform/pkg/render"
)

// Option configures a Session.
type Option func(*Session)

// WithPromptDriver overrides the prompt driver used by the session.
func WithPromptDriver(driver PromptDriver) Option {
	return func(s *Session) {
		if driver != nil {
			s.driver = driver
		}
	}
}

// WithPanelRenderer overrides how the outcome of a submission is printed.
// The default is the plain text renderer.
func WithPanelRenderer(renderer render.Renderer) Option {
	return func(s *Session) {
		if renderer != nil {
			s.panel = renderer
		}
	}
}

// WithRepeat controls whether the session offers another prediction after
// each outcome. Enabled by default.
func WithRepeat(enabled bool) Option {
	return func(s *Session) {
		s.repeat = enabled
	}
}

// WithLogger sets the session logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}
