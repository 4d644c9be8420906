package model

import internalmodel "github.com/goliatone/go-priceform/internal/model"

// FieldKind re-exports the internal FieldKind enumeration.
type FieldKind = internalmodel.FieldKind

const (
	FieldKindInteger        = internalmodel.FieldKindInteger
	FieldKindBoundedInteger = internalmodel.FieldKindBoundedInteger
	FieldKindCategorical    = internalmodel.FieldKindCategorical
)

type FieldDefinition = internalmodel.FieldDefinition
type Schema = internalmodel.Schema
type Value = internalmodel.Value
type Values = internalmodel.Values

// Unset returns the empty sentinel value.
func Unset() Value {
	return internalmodel.Unset()
}

// Raw wraps user input verbatim; empty input is Unset.
func Raw(text string) Value {
	return internalmodel.Raw(text)
}

// NewValues seeds values for every schema field.
func NewValues(schema Schema) Values {
	return internalmodel.NewValues(schema)
}
