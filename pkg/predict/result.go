package predict

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Result is a successful prediction.
type Result struct {
	PredictedPrice    float64           `json:"predictedPrice"`
	FeatureImportance FeatureImportance `json:"featureImportance"`
}

// Importance is one feature's contribution score.
type Importance struct {
	Feature string
	Score   float64
}

// FeatureImportance keeps the feature order exactly as the service sent it.
// A plain map would lose that order, so the JSON object is walked token by
// token.
type FeatureImportance []Importance

// UnmarshalJSON decodes a JSON object into ordered pairs. null decodes to nil.
func (f *FeatureImportance) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*f = nil
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errors.New("predict: featureImportance must be an object")
	}

	out := FeatureImportance{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("predict: unexpected featureImportance key %v", tok)
		}
		var score float64
		if err := dec.Decode(&score); err != nil {
			return fmt.Errorf("predict: featureImportance %q: %w", key, err)
		}
		out = append(out, Importance{Feature: key, Score: score})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*f = out
	return nil
}

// MarshalJSON writes the pairs back as a JSON object in slice order.
func (f FeatureImportance) MarshalJSON() ([]byte, error) {
	if f == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, item := range f {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(item.Feature)
		if err != nil {
			return nil, err
		}
		score, err := json.Marshal(item.Score)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(score)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
