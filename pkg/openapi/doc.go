// Package openapi exposes the loader, parser and contract check used to
// compare the prediction service's OpenAPI description with the form schema.
// Implementations live under internal/openapi so kin-openapi types stay out of
// the public API.
package openapi
