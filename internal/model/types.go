package model

// FieldKind is the simplified enum for the input kinds the form supports.
type FieldKind string

const (
	// FieldKindInteger is a whole number with a lower bound only.
	FieldKindInteger FieldKind = "integer"
	// FieldKindBoundedInteger is a whole number with both bounds.
	FieldKindBoundedInteger FieldKind = "bounded-integer"
	// FieldKindCategorical is a string drawn from a fixed option set.
	FieldKindCategorical FieldKind = "categorical"
)

// Numeric reports whether values of this kind are parsed as integers before
// they are sent to the prediction service.
func (k FieldKind) Numeric() bool {
	return k == FieldKindInteger || k == FieldKindBoundedInteger
}

// FieldDefinition describes one form input. Min and Max are UI hints only;
// nothing in the submit path enforces them. Categorical definitions carry the
// allowed Options and the Default selected when a session starts.
type FieldDefinition struct {
	Name        string    `json:"name"`
	Kind        FieldKind `json:"kind"`
	Label       string    `json:"label,omitempty"`
	Placeholder string    `json:"placeholder,omitempty"`
	Min         *int      `json:"min,omitempty"`
	Max         *int      `json:"max,omitempty"`
	Options     []string  `json:"options,omitempty"`
	Default     string    `json:"default,omitempty"`
}

// HasOption reports whether value is one of the definition's options.
func (d FieldDefinition) HasOption(value string) bool {
	for _, option := range d.Options {
		if option == value {
			return true
		}
	}
	return false
}

// Initial returns the value a field holds right after a session starts.
func (d FieldDefinition) Initial() Value {
	if d.Kind == FieldKindCategorical {
		return Raw(d.Default)
	}
	return Unset()
}

// Schema is an ordered, immutable list of field definitions. Construct it
// with NewSchema so names are guaranteed unique.
type Schema struct {
	fields []FieldDefinition
	index  map[string]int
}

// Fields returns a copy of the definitions in declaration order.
func (s Schema) Fields() []FieldDefinition {
	out := make([]FieldDefinition, len(s.fields))
	for i, field := range s.fields {
		out[i] = cloneDefinition(field)
	}
	return out
}

// Names returns the field names in declaration order.
func (s Schema) Names() []string {
	out := make([]string, len(s.fields))
	for i, field := range s.fields {
		out[i] = field.Name
	}
	return out
}

// Lookup returns the definition registered under name.
func (s Schema) Lookup(name string) (FieldDefinition, bool) {
	idx, ok := s.index[name]
	if !ok {
		return FieldDefinition{}, false
	}
	return cloneDefinition(s.fields[idx]), true
}

// Has reports whether name is part of the schema.
func (s Schema) Has(name string) bool {
	_, ok := s.index[name]
	return ok
}

// Len reports the number of fields.
func (s Schema) Len() int {
	return len(s.fields)
}

// Value is the raw text currently held by a field. The zero Value is unset.
type Value struct {
	raw string
	set bool
}

// Unset returns the empty sentinel used by numeric fields nobody filled in.
func Unset() Value {
	return Value{}
}

// Raw wraps user input verbatim. Empty input is the unset sentinel, so a
// cleared widget and an untouched widget look the same.
func Raw(text string) Value {
	if text == "" {
		return Value{}
	}
	return Value{raw: text, set: true}
}

// IsSet reports whether the field holds any text.
func (v Value) IsSet() bool {
	return v.set
}

// String returns the raw text, or "" when unset.
func (v Value) String() string {
	return v.raw
}

// Values maps every schema field to its current value. Values are snapshots:
// mutating one never affects the controller it came from.
type Values struct {
	schema Schema
	data   map[string]Value
}

// NewValues seeds a Values with each field's initial value.
func NewValues(schema Schema) Values {
	data := make(map[string]Value, schema.Len())
	for _, field := range schema.fields {
		data[field.Name] = field.Initial()
	}
	return Values{schema: schema, data: data}
}

// Schema returns the schema the values were built for.
func (v Values) Schema() Schema {
	return v.schema
}

// Get returns the value stored for name.
func (v Values) Get(name string) (Value, bool) {
	value, ok := v.data[name]
	return value, ok
}

// With returns a copy of v with name set to value. It reports false, and
// returns v unchanged, when name is not part of the schema.
func (v Values) With(name string, value Value) (Values, bool) {
	if !v.schema.Has(name) {
		return v, false
	}
	clone := v.Clone()
	clone.data[name] = value
	return clone, true
}

// Clone returns a deep copy.
func (v Values) Clone() Values {
	data := make(map[string]Value, len(v.data))
	for name, value := range v.data {
		data[name] = value
	}
	return Values{schema: v.schema, data: data}
}

// Keys returns the stored names in schema order.
func (v Values) Keys() []string {
	out := make([]string, 0, len(v.data))
	for _, name := range v.schema.Names() {
		if _, ok := v.data[name]; ok {
			out = append(out, name)
		}
	}
	return out
}

// Len reports the number of stored entries.
func (v Values) Len() int {
	return len(v.data)
}

// Map flattens the values into raw strings keyed by field name.
func (v Values) Map() map[string]string {
	out := make(map[string]string, len(v.data))
	for name, value := range v.data {
		out[name] = value.String()
	}
	return out
}

func cloneDefinition(def FieldDefinition) FieldDefinition {
	clone := def
	if def.Min != nil {
		lo := *def.Min
		clone.Min = &lo
	}
	if def.Max != nil {
		hi := *def.Max
		clone.Max = &hi
	}
	if def.Options != nil {
		clone.Options = append([]string(nil), def.Options...)
	}
	return clone
}
