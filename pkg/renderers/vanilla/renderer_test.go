package vanilla_test

import (
	"context"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-priceform/pkg/form"
	"github.com/goliatone/go-priceform/pkg/model"
	"github.com/goliatone/go-priceform/pkg/predict"
	"github.com/goliatone/go-priceform/pkg/render"
	"github.com/goliatone/go-priceform/pkg/renderers/vanilla"
	"github.com/goliatone/go-priceform/pkg/schema"
)

func renderView(t *testing.T, view render.View, opts render.RenderOptions, options ...vanilla.Option) string {
	t.Helper()
	renderer, err := vanilla.New(options...)
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	out, err := renderer.Render(context.Background(), view, opts)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return string(out)
}

func idleView() render.View {
	return render.NewView(model.NewValues(schema.Housing()), form.Lifecycle{Status: form.StatusIdle})
}

func assertContains(t *testing.T, html string, fragments ...string) {
	t.Helper()
	for _, fragment := range fragments {
		if !strings.Contains(html, fragment) {
			t.Fatalf("expected output to contain %q\n%s", fragment, html)
		}
	}
}

func TestRenderer_IdleForm(t *testing.T) {
	html := renderView(t, idleView(), render.RenderOptions{Action: "/predict-form"})

	assertContains(t, html,
		`<title>House Price Predictor</title>`,
		`action="/predict-form"`,
		`name="overallQual" value="" min="1" max="10"`,
		`name="grLivArea" value="" min="100" placeholder=`,
		`<option value="NAmes" selected>NAmes</option>`,
		`<option value="TA" selected>TA</option>`,
		`<button type="submit">Predict Price</button>`,
	)
	if strings.Contains(html, `class="error"`) || strings.Contains(html, `class="result"`) {
		t.Fatalf("idle form must not show error or result\n%s", html)
	}
	if got := strings.Count(html, `class="pf-field"`); got != 14 {
		t.Fatalf("expected 14 fields, got %d", got)
	}
}

func TestRenderer_FieldOrder(t *testing.T) {
	html := renderView(t, idleView(), render.RenderOptions{})
	last := -1
	for _, name := range schema.Housing().Names() {
		idx := strings.Index(html, `name="`+name+`"`)
		if idx < 0 {
			t.Fatalf("field %s missing", name)
		}
		if idx < last {
			t.Fatalf("field %s rendered out of order", name)
		}
		last = idx
	}
}

func TestRenderer_ResultPanel(t *testing.T) {
	result := predict.Result{
		PredictedPrice: 215000,
		FeatureImportance: predict.FeatureImportance{
			{Feature: "overallQual", Score: 0.32},
			{Feature: "grLivArea", Score: 0.21},
		},
	}
	view := render.NewView(model.NewValues(schema.Housing()), form.Lifecycle{Status: form.StatusSucceeded, Result: &result})
	html := renderView(t, view, render.RenderOptions{})

	assertContains(t, html,
		`<span class="price">$215000</span>`,
		`<li><b>overallQual</b>: 0.32</li>`,
		`<li><b>grLivArea</b>: 0.21</li>`,
	)
	if strings.Index(html, "<b>overallQual</b>") > strings.Index(html, "<b>grLivArea</b>") {
		t.Fatalf("features must keep received order")
	}
	if strings.Contains(html, `class="error"`) {
		t.Fatalf("result and error are exclusive")
	}
}

func TestRenderer_ErrorLineEscaped(t *testing.T) {
	view := idleView()
	view.Status = "failed"
	view.Error = `<script>alert(1)</script>`
	html := renderView(t, view, render.RenderOptions{})

	if strings.Contains(html, "<script>") {
		t.Fatalf("error line must be escaped\n%s", html)
	}
	assertContains(t, html, `<p class="error">&lt;script&gt;`)
}

func TestRenderer_LoadingDisablesSubmit(t *testing.T) {
	view := render.NewView(model.NewValues(schema.Housing()), form.Lifecycle{Status: form.StatusLoading})
	html := renderView(t, view, render.RenderOptions{})
	assertContains(t, html, `<button type="submit" disabled>Predicting...</button>`)
}

func TestRenderer_HiddenFieldsAndTitle(t *testing.T) {
	html := renderView(t, idleView(), render.RenderOptions{
		Title:  "Estimate",
		Hidden: []render.HiddenField{{Name: "_csrf", Value: "tok"}},
	})
	assertContains(t, html, `<h1>Estimate</h1>`, `<input type="hidden" name="_csrf" value="tok">`)
}

func TestRenderer_CustomTemplatesAndStylesheet(t *testing.T) {
	files := fstest.MapFS{
		"templates/form.tmpl": {Data: []byte(`{{ form.submitLabel }}|{{ stylesheet }}`)},
	}
	html := renderView(t, idleView(), render.RenderOptions{},
		vanilla.WithTemplatesFS(files),
		vanilla.WithStylesheet(""),
	)
	if html != "Predict Price|" {
		t.Fatalf("unexpected output %q", html)
	}
}

func TestRenderer_Metadata(t *testing.T) {
	renderer, err := vanilla.New()
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if renderer.Name() != "vanilla" || !strings.HasPrefix(renderer.ContentType(), "text/html") {
		t.Fatalf("unexpected metadata %q %q", renderer.Name(), renderer.ContentType())
	}
}
