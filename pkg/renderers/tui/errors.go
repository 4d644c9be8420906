package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrNoController is returned when a session is built without a form
	// controller.
	ErrNoController = errors.New("tui: form controller is nil")
	// ErrInvalidChoice is returned when a driver reports a selection outside
	// the offered options.
	ErrInvalidChoice = errors.New("tui: selection out of range")
)
