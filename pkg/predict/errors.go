package predict

import (
	"errors"
	"fmt"
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// User-facing messages shown on the form's error line.
const (
	MessageConnection       = "Error connecting to server"
	MessagePredictionFailed = "Prediction failed"
)

var errEmptyNumber = errors.New("empty value")

// ParseError reports a numeric field whose raw text is not a whole number.
// It is raised before any request is issued.
type ParseError struct {
	Field string
	Raw   string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("predict: parse %s=%q: %v", e.Field, e.Raw, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// UserMessage names the offending field.
func (e *ParseError) UserMessage() string {
	return fmt.Sprintf("%s must be a whole number", e.Field)
}

// TransportError covers failures where no usable response was obtained:
// connection errors, cancelled contexts, unreadable or non-JSON bodies.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("predict: transport: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// UserMessage is always the generic connection message.
func (e *TransportError) UserMessage() string {
	return MessageConnection
}

// ServiceError reports a non-2xx response from the prediction service.
// Message holds the service-provided text, already stripped of markup, or the
// generic fallback when the service supplied none.
type ServiceError struct {
	Status  int
	Message string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("predict: service status %d: %s", e.Status, e.Message)
}

// UserMessage returns the service message.
func (e *ServiceError) UserMessage() string {
	return e.Message
}

var (
	messagePolicyOnce sync.Once
	messagePolicy     *bluemonday.Policy
)

// serviceMessage turns the decoded "error" member into display text. Only
// non-empty strings count; markup is removed since upstream frameworks like
// to wrap errors in HTML.
func serviceMessage(raw any) string {
	text, ok := raw.(string)
	if !ok {
		return MessagePredictionFailed
	}
	cleaned := strings.TrimSpace(html.UnescapeString(messageSanitizer().Sanitize(text)))
	if cleaned == "" {
		return MessagePredictionFailed
	}
	return cleaned
}

func messageSanitizer() *bluemonday.Policy {
	messagePolicyOnce.Do(func() {
		messagePolicy = bluemonday.StrictPolicy()
	})
	return messagePolicy
}
