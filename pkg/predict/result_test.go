package predict_test

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-priceform/pkg/predict"
)

func TestFeatureImportance_PreservesOrder(t *testing.T) {
	body := `{"predictedPrice": 215000, "featureImportance": {"overallQual": 0.32, "grLivArea": 0.21, "bsmtQual": 0.05}}`

	var result predict.Result
	if err := json.Unmarshal([]byte(body), &result); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	want := predict.Result{
		PredictedPrice: 215000,
		FeatureImportance: predict.FeatureImportance{
			{Feature: "overallQual", Score: 0.32},
			{Feature: "grLivArea", Score: 0.21},
			{Feature: "bsmtQual", Score: 0.05},
		},
	}
	if diff := cmp.Diff(want, result); diff != "" {
		t.Fatalf("result mismatch (-want +got):\n%s", diff)
	}

	out, err := json.Marshal(result.FeatureImportance)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if got := string(out); got != `{"overallQual":0.32,"grLivArea":0.21,"bsmtQual":0.05}` {
		t.Fatalf("marshal order = %s", got)
	}
}

func TestFeatureImportance_RejectsNonObject(t *testing.T) {
	var fi predict.FeatureImportance
	if err := json.Unmarshal([]byte(`[1,2]`), &fi); err == nil {
		t.Fatalf("expected error for array input")
	}
	if err := json.Unmarshal([]byte(`{"a": "high"}`), &fi); err == nil {
		t.Fatalf("expected error for non-numeric score")
	}
}

func TestFeatureImportance_Null(t *testing.T) {
	var result predict.Result
	if err := json.Unmarshal([]byte(`{"predictedPrice": 1, "featureImportance": null}`), &result); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if result.FeatureImportance != nil {
		t.Fatalf("expected nil importance, got %v", result.FeatureImportance)
	}
}
