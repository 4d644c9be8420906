package model

import internalmodel "github.com/goliatone/go-priceform/internal/model"

// NewSchema validates the definitions and returns an ordered Schema. Names
// must be unique, bounded integers need both bounds, and categorical fields
// need options that include their default.
func NewSchema(defs ...FieldDefinition) (Schema, error) {
	return internalmodel.NewSchema(defs...)
}

// MustNewSchema panics if the schema cannot be created.
func MustNewSchema(defs ...FieldDefinition) Schema {
	return internalmodel.MustNewSchema(defs...)
}

// Bound returns a pointer to v for Min/Max hints.
func Bound(v int) *int {
	return internalmodel.Bound(v)
}
