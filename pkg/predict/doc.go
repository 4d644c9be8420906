// Package predict talks to the house price prediction service. It converts
// raw form values into a typed Payload, performs a single POST /predict and
// maps the outcome into a Result or one of ParseError, TransportError and
// ServiceError. Every error type exposes UserMessage for the form's error
// line.
package predict
