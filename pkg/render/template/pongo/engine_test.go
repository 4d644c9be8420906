package pongo_test

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"testing"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-priceform/pkg/render/template/pongo"
)

//go:embed testdata/templates/*.tpl
var embeddedTemplates embed.FS

func newEngine(t *testing.T, opts ...pongo.Option) *pongo.Engine {
	t.Helper()
	sub, err := fs.Sub(embeddedTemplates, "testdata/templates")
	if err != nil {
		t.Fatalf("sub fs: %v", err)
	}
	engine, err := pongo.New(append([]pongo.Option{pongo.WithFS(sub)}, opts...)...)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}

func TestEngine_RenderTemplate(t *testing.T) {
	engine := newEngine(t)

	var buf bytes.Buffer
	got, err := engine.RenderTemplate("hello", map[string]any{"name": "Ada"}, &buf)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "Hello Ada!\n" {
		t.Fatalf("result = %q", got)
	}
	if buf.String() != got {
		t.Fatalf("writer = %q, want %q", buf.String(), got)
	}
}

func TestEngine_EscapesByDefault(t *testing.T) {
	engine := newEngine(t)
	got, err := engine.RenderTemplate("hello.tpl", map[string]any{"name": "<b>Ada</b>"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(got, "<b>") {
		t.Fatalf("expected escaped output, got %q", got)
	}
}

func TestEngine_StructsUseJSONNames(t *testing.T) {
	type item struct {
		Name  string `json:"name"`
		Score string `json:"score"`
	}
	type view struct {
		Title string `json:"title"`
		Items []item `json:"items"`
	}

	engine := newEngine(t)
	got, err := engine.RenderTemplate("view", view{
		Title: "Importance",
		Items: []item{{Name: "overallQual", Score: "0.32"}, {Name: "grLivArea", Score: "0.21"}},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := "Importance: overallQual=0.32 grLivArea=0.21\n"
	if got != want {
		t.Fatalf("result = %q, want %q", got, want)
	}
}

func TestEngine_GlobalContext(t *testing.T) {
	engine := newEngine(t, pongo.WithGlobalData(map[string]any{
		"settings": map[string]any{"env": "staging"},
	}))
	got, err := engine.RenderTemplate("use-global", nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "staging\n" {
		t.Fatalf("result = %q", got)
	}
}

func TestEngine_RegisterFilter(t *testing.T) {
	engine := newEngine(t)
	if !pongo2.FilterExists("shout") {
		err := engine.RegisterFilter("shout", func(input any, _ any) (any, error) {
			return fmt.Sprintf("%s!", strings.ToUpper(fmt.Sprint(input))), nil
		})
		if err != nil {
			t.Fatalf("register filter: %v", err)
		}
	}
	if err := engine.RegisterFilter("shout", func(input any, _ any) (any, error) { return input, nil }); err == nil {
		t.Fatalf("expected duplicate filter error")
	}

	got, err := engine.RenderTemplate("use-filter", map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "ADA!\n" {
		t.Fatalf("result = %q", got)
	}
}

func TestEngine_RenderString(t *testing.T) {
	engine := newEngine(t)
	got, err := engine.RenderString("{{ price }}", map[string]any{"price": "$215000"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "$215000" {
		t.Fatalf("result = %q", got)
	}
}

func TestEngine_Errors(t *testing.T) {
	if _, err := pongo.New(); err == nil {
		t.Fatalf("expected error without template source")
	}

	engine := newEngine(t)
	if _, err := engine.RenderTemplate("missing", nil); err == nil {
		t.Fatalf("expected error for missing template")
	}
	if _, err := engine.RenderTemplate("hello", 42); err == nil {
		t.Fatalf("expected error for non-object data")
	}
}
