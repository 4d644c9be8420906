package stub

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/goliatone/go-priceform/pkg/schema"
)

// QualityScale maps grade codes to their ordinal value.
var QualityScale = map[string]float64{"Ex": 5, "Gd": 4, "TA": 3, "Fa": 2, "Po": 1}

var qualityKeys = []string{schema.FieldExterQual, schema.FieldBsmtQual, schema.FieldKitchenQual}

// UnknownNeighborhood is the code of neighborhoods outside the known list.
const UnknownNeighborhood = -1

// MissingKeyError reports the first absent request key.
type MissingKeyError struct {
	Key string
}

func (e *MissingKeyError) Error() string {
	return "Missing key: " + e.Key
}

// InputError reports a value the model cannot encode. Its message is sent
// to clients verbatim.
type InputError struct {
	message string
}

func (e *InputError) Error() string {
	return e.message
}

func inputErrorf(format string, args ...any) error {
	return &InputError{message: fmt.Sprintf(format, args...)}
}

// firstMissing returns the first key of RequestKeys absent from data.
func firstMissing(data map[string]any) error {
	for _, key := range RequestKeys {
		if _, ok := data[key]; !ok {
			return &MissingKeyError{Key: key}
		}
	}
	return nil
}

// NeighborhoodCode is the position of name in schema.Neighborhoods, or
// UnknownNeighborhood.
func NeighborhoodCode(name any) float64 {
	s, ok := name.(string)
	if !ok {
		return UnknownNeighborhood
	}
	idx := slices.Index(schema.Neighborhoods, s)
	if idx < 0 {
		return UnknownNeighborhood
	}
	return float64(idx)
}

// Encode turns a request object into the model's feature vector. Quality
// grades are checked first, in form order; other values must be numbers.
func Encode(data map[string]any) ([]float64, error) {
	encoded := make(map[string]float64, len(RequestKeys))
	for _, key := range qualityKeys {
		grade, _ := data[key].(string)
		score, ok := QualityScale[grade]
		if !ok {
			return nil, inputErrorf("Invalid quality value for %s: %s", key, display(data[key]))
		}
		encoded[key] = score
	}
	encoded[schema.FieldNeighborhood] = NeighborhoodCode(data[schema.FieldNeighborhood])

	features := make([]float64, 0, len(RequestKeys))
	for _, key := range RequestKeys {
		if value, ok := encoded[key]; ok {
			features = append(features, value)
			continue
		}
		value, err := number(data[key])
		if err != nil {
			return nil, inputErrorf("could not convert %s value %s to a number", key, display(data[key]))
		}
		features = append(features, value)
	}
	return features, nil
}

func number(v any) (float64, error) {
	switch n := v.(type) {
	case json.Number:
		return n.Float64()
	case float64:
		return n, nil
	case bool:
		if n {
			return 1, nil
		}
		return 0, nil
	default:
		return 0, fmt.Errorf("not a number: %T", v)
	}
}

func display(v any) string {
	if v == nil {
		return "None"
	}
	return fmt.Sprint(v)
}
