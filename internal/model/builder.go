package model

import (
	"errors"
	"fmt"
	"strings"
)

// NewSchema validates the definitions and freezes them into a Schema.
func NewSchema(defs ...FieldDefinition) (Schema, error) {
	if len(defs) == 0 {
		return Schema{}, errors.New("model: schema requires at least one field")
	}

	schema := Schema{
		fields: make([]FieldDefinition, 0, len(defs)),
		index:  make(map[string]int, len(defs)),
	}
	for _, def := range defs {
		if err := validateDefinition(def); err != nil {
			return Schema{}, err
		}
		if _, exists := schema.index[def.Name]; exists {
			return Schema{}, fmt.Errorf("model: duplicate field %q", def.Name)
		}
		schema.index[def.Name] = len(schema.fields)
		schema.fields = append(schema.fields, cloneDefinition(def))
	}
	return schema, nil
}

// MustNewSchema panics if the schema cannot be created. Useful for the static
// definitions built at package init.
func MustNewSchema(defs ...FieldDefinition) Schema {
	schema, err := NewSchema(defs...)
	if err != nil {
		panic(err)
	}
	return schema
}

func validateDefinition(def FieldDefinition) error {
	if strings.TrimSpace(def.Name) == "" {
		return errors.New("model: field name is required")
	}

	switch def.Kind {
	case FieldKindInteger:
		if def.Max != nil {
			return fmt.Errorf("model: field %q: unbounded integer declares a max", def.Name)
		}
	case FieldKindBoundedInteger:
		if def.Min == nil || def.Max == nil {
			return fmt.Errorf("model: field %q: bounded integer needs min and max", def.Name)
		}
		if *def.Min > *def.Max {
			return fmt.Errorf("model: field %q: min %d above max %d", def.Name, *def.Min, *def.Max)
		}
	case FieldKindCategorical:
		if len(def.Options) == 0 {
			return fmt.Errorf("model: field %q: categorical field has no options", def.Name)
		}
		if !def.HasOption(def.Default) {
			return fmt.Errorf("model: field %q: default %q is not an option", def.Name, def.Default)
		}
	default:
		return fmt.Errorf("model: field %q: unsupported kind %q", def.Name, def.Kind)
	}
	return nil
}

// Bound is a small helper for declaring Min/Max hints inline.
func Bound(v int) *int {
	return &v
}
