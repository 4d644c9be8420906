package form

import "log/slog"

// Option configures the Controller.
type Option func(*Controller)

// WithLogger attaches a structured logger for lifecycle transitions.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithObserver registers a callback invoked after every lifecycle
// transition, typically to re-render. Observers run on the goroutine that
// caused the transition.
func WithObserver(observer Observer) Option {
	return func(c *Controller) {
		if observer != nil {
			c.observers = append(c.observers, observer)
		}
	}
}
