package render_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-priceform/pkg/form"
	"github.com/goliatone/go-priceform/pkg/model"
	"github.com/goliatone/go-priceform/pkg/predict"
	"github.com/goliatone/go-priceform/pkg/render"
	"github.com/goliatone/go-priceform/pkg/schema"
)

var scenario = map[string]string{
	"overallQual":  "7",
	"grLivArea":    "1800",
	"garageCars":   "2",
	"totalBsmtSF":  "900",
	"fullBath":     "2",
	"yearBuilt":    "2005",
	"yearRemodAdd": "2010",
	"lotArea":      "8500",
	"fireplaces":   "1",
	"garageArea":   "480",
	"neighborhood": "NAmes",
	"exterQual":    "Gd",
	"bsmtQual":     "TA",
	"kitchenQual":  "Gd",
}

func filledController(t *testing.T, predictor form.Predictor) *form.Controller {
	t.Helper()
	c := form.New(schema.Housing(), predictor)
	for name, raw := range scenario {
		if err := c.SetField(name, raw); err != nil {
			t.Fatalf("set %s: %v", name, err)
		}
	}
	return c
}

func TestFormatPrice(t *testing.T) {
	cases := map[float64]string{
		215000:    "$215000",
		199999.5:  "$199999.5",
		0:         "$0",
		123456.78: "$123456.78",
	}
	for in, want := range cases {
		if got := render.FormatPrice(in); got != want {
			t.Fatalf("FormatPrice(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestNewView_Idle(t *testing.T) {
	c := form.New(schema.Housing(), nil)
	view := render.FromController(c)

	if view.Title != render.DefaultTitle || view.Status != "idle" {
		t.Fatalf("unexpected header: %q %q", view.Title, view.Status)
	}
	if view.SubmitLabel != form.LabelSubmit || view.Disabled {
		t.Fatalf("submit = %q disabled=%v", view.SubmitLabel, view.Disabled)
	}
	if view.Error != "" || view.Result != nil {
		t.Fatalf("expected no error or result, got %+v", view)
	}
	if len(view.Fields) != 14 {
		t.Fatalf("expected 14 fields, got %d", len(view.Fields))
	}

	first := view.Fields[0]
	if first.Name != "overallQual" || !first.Numeric || first.Value != "" || first.Min != "1" || first.Max != "10" {
		t.Fatalf("unexpected first field: %+v", first)
	}

	var neighborhood render.FieldView
	for _, field := range view.Fields {
		if field.Name == schema.FieldNeighborhood {
			neighborhood = field
		}
	}
	if neighborhood.Value != "NAmes" || len(neighborhood.Options) != len(schema.Neighborhoods) {
		t.Fatalf("unexpected neighborhood: %+v", neighborhood)
	}
	selected := 0
	for _, opt := range neighborhood.Options {
		if opt.Selected {
			selected++
			if opt.Value != "NAmes" {
				t.Fatalf("selected %q", opt.Value)
			}
		}
	}
	if selected != 1 {
		t.Fatalf("expected one selected option, got %d", selected)
	}
}

func TestNewView_Succeeded(t *testing.T) {
	c := filledController(t, form.PredictorFunc(func(context.Context, model.Values) (predict.Result, error) {
		return predict.Result{
			PredictedPrice: 215000,
			FeatureImportance: predict.FeatureImportance{
				{Feature: "overallQual", Score: 0.32},
				{Feature: "grLivArea", Score: 0.21},
			},
		}, nil
	}))
	if err := c.Submit(context.Background()); err != nil {
		t.Fatalf("submit: %v", err)
	}

	view := render.FromController(c)
	want := &render.ResultView{
		Price: "$215000",
		Features: []render.FeatureView{
			{Name: "overallQual", Score: "0.32"},
			{Name: "grLivArea", Score: "0.21"},
		},
	}
	if diff := cmp.Diff(want, view.Result); diff != "" {
		t.Fatalf("result mismatch (-want +got):\n%s", diff)
	}
	if view.Error != "" {
		t.Fatalf("error line must be empty, got %q", view.Error)
	}
}

func TestNewView_Failed(t *testing.T) {
	c := filledController(t, form.PredictorFunc(func(context.Context, model.Values) (predict.Result, error) {
		return predict.Result{}, &predict.TransportError{Err: errors.New("dial tcp: refused")}
	}))
	_ = c.Submit(context.Background())

	view := render.FromController(c)
	if view.Error != predict.MessageConnection {
		t.Fatalf("error = %q", view.Error)
	}
	if view.Result != nil {
		t.Fatalf("result panel must be empty, got %+v", view.Result)
	}
	if view.SubmitLabel != form.LabelSubmit || view.Disabled {
		t.Fatalf("submit must be re-enabled, got %q disabled=%v", view.SubmitLabel, view.Disabled)
	}
}

func TestNewView_Loading(t *testing.T) {
	values := model.NewValues(schema.Housing())
	view := render.NewView(values, form.Lifecycle{Status: form.StatusLoading})
	if view.SubmitLabel != form.LabelLoading || !view.Disabled {
		t.Fatalf("submit = %q disabled=%v", view.SubmitLabel, view.Disabled)
	}
}
