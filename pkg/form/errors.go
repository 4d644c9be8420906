package form

import (
	"errors"

	"github.com/goliatone/go-priceform/pkg/predict"
)

// MessageMissingFields is shown whenever any field is unset at submit time.
const MessageMissingFields = "Please fill in all fields"

var (
	// ErrMissingFields is the single validation failure: at least one field is
	// unset. It never names which one.
	ErrMissingFields = errors.New("form: missing fields")
	// ErrUnknownField is returned by SetField for names outside the schema.
	ErrUnknownField = errors.New("form: unknown field")
	// ErrSubmitInFlight rejects a submit while another is outstanding.
	ErrSubmitInFlight = errors.New("form: submission already in flight")
	// ErrNoPredictor signals a controller built without a predictor.
	ErrNoPredictor = errors.New("form: predictor is nil")
	// ErrStaleResponse is returned by Submit when the session was
	// re-initialized while the request was outstanding; its outcome is dropped.
	ErrStaleResponse = errors.New("form: response arrived after reset")
)

// Message converts a lifecycle error into the text shown on the error line.
// Errors that know their own wording (predict.ParseError, TransportError,
// ServiceError) provide it through UserMessage; anything else is reported like
// a failed connection.
func Message(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, ErrMissingFields) {
		return MessageMissingFields
	}
	var userFacing interface{ UserMessage() string }
	if errors.As(err, &userFacing) {
		return userFacing.UserMessage()
	}
	return predict.MessageConnection
}
