package jsonview_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-priceform/pkg/render"
	"github.com/goliatone/go-priceform/pkg/renderers/jsonview"
)

func TestRenderer_RoundTripsView(t *testing.T) {
	view := render.View{
		Title:       "House Price Predictor",
		Status:      "succeeded",
		SubmitLabel: "Predict Price",
		Result: &render.ResultView{
			Price:    "$215000",
			Features: []render.FeatureView{{Name: "overallQual", Score: "0.32"}},
		},
	}

	out, err := jsonview.New().Render(context.Background(), view, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	var got render.View
	if err := json.Unmarshal(out, &got); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if diff := cmp.Diff(view, got); diff != "" {
		t.Fatalf("view mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderer_OmitsEmptyOutcome(t *testing.T) {
	out, err := jsonview.New().Render(context.Background(), render.View{Status: "idle"}, render.RenderOptions{Title: "T"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	var raw map[string]any
	if err := json.Unmarshal(out, &raw); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, ok := raw["error"]; ok {
		t.Fatalf("error key must be omitted: %s", out)
	}
	if _, ok := raw["result"]; ok {
		t.Fatalf("result key must be omitted: %s", out)
	}
	if raw["title"] != "T" {
		t.Fatalf("title = %v", raw["title"])
	}
}
