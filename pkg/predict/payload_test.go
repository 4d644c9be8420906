package predict_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-priceform/pkg/model"
	"github.com/goliatone/go-priceform/pkg/predict"
	"github.com/goliatone/go-priceform/pkg/schema"
	"github.com/goliatone/go-priceform/pkg/testsupport"
)

func scenarioValues(t *testing.T) model.Values {
	t.Helper()
	return testsupport.ScenarioValues(t)
}

func TestBuildPayload_TypedKeys(t *testing.T) {
	payload, err := predict.BuildPayload(scenarioValues(t))
	if err != nil {
		t.Fatalf("build payload: %v", err)
	}

	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var wire map[string]any
	if err := json.Unmarshal(data, &wire); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	want := map[string]any{
		"overallQual":  float64(7),
		"grLivArea":    float64(1800),
		"garageCars":   float64(2),
		"totalBsmtSF":  float64(900),
		"fullBath":     float64(2),
		"yearBuilt":    float64(2005),
		"yearRemodAdd": float64(2010),
		"lotArea":      float64(8500),
		"fireplaces":   float64(1),
		"garageArea":   float64(480),
		"neighborhood": "NAmes",
		"exterQual":    "Gd",
		"bsmtQual":     "TA",
		"kitchenQual":  "Gd",
	}
	if diff := cmp.Diff(want, wire); diff != "" {
		t.Fatalf("wire payload mismatch (-want +got):\n%s", diff)
	}

	keys := make([]string, 0, len(payload.Fields()))
	for key := range payload.Fields() {
		keys = append(keys, key)
	}
	if len(keys) != schema.Housing().Len() {
		t.Fatalf("payload has %d keys, schema has %d", len(keys), schema.Housing().Len())
	}
}

func TestBuildPayload_ParseError(t *testing.T) {
	for _, raw := range []string{"1.5", "abc", "12abc"} {
		values, _ := scenarioValues(t).With(schema.FieldGrLivArea, model.Raw(raw))
		_, err := predict.BuildPayload(values)

		var parseErr *predict.ParseError
		if !errors.As(err, &parseErr) {
			t.Fatalf("%q: expected ParseError, got %v", raw, err)
		}
		if parseErr.Field != schema.FieldGrLivArea || parseErr.Raw != raw {
			t.Fatalf("%q: unexpected error detail %+v", raw, parseErr)
		}
	}
}

func TestBuildPayload_TrimsWhitespace(t *testing.T) {
	values, _ := scenarioValues(t).With(schema.FieldLotArea, model.Raw(" 9000 "))
	payload, err := predict.BuildPayload(values)
	if err != nil {
		t.Fatalf("build payload: %v", err)
	}
	if payload.LotArea != 9000 {
		t.Fatalf("lotArea = %d", payload.LotArea)
	}
}

func TestBuildPayload_UnsetNumberIsParseError(t *testing.T) {
	values, _ := scenarioValues(t).With(schema.FieldFireplaces, model.Unset())
	_, err := predict.BuildPayload(values)
	var parseErr *predict.ParseError
	if !errors.As(err, &parseErr) || parseErr.Field != schema.FieldFireplaces {
		t.Fatalf("expected ParseError for fireplaces, got %v", err)
	}
}

func TestBuildPayload_RejectsForeignSchema(t *testing.T) {
	other := model.MustNewSchema(model.FieldDefinition{Name: "rooms", Kind: model.FieldKindInteger})
	values, _ := model.NewValues(other).With("rooms", model.Raw("3"))
	if _, err := predict.BuildPayload(values); err == nil {
		t.Fatalf("expected error for a schema without payload slots")
	}
}
