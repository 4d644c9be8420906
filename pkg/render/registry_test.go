package render_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-priceform/pkg/render"
)

type stubRenderer struct {
	name string
}

func (s stubRenderer) Name() string        { return s.name }
func (s stubRenderer) ContentType() string { return "text/plain" }
func (s stubRenderer) Render(_ context.Context, view render.View, opts render.RenderOptions) ([]byte, error) {
	return []byte(s.name + ":" + view.Status + ":" + opts.Title), nil
}

func TestRegistry_RegisterAndList(t *testing.T) {
	reg := render.NewRegistry(stubRenderer{name: "text"}, stubRenderer{name: "JSON"})

	if diff := cmp.Diff([]string{"json", "text"}, reg.List()); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
	if !reg.Has("Json") {
		t.Fatalf("lookup must be case-insensitive")
	}
	if err := reg.Register(stubRenderer{name: "text"}); err == nil {
		t.Fatalf("expected duplicate error")
	}
	if err := reg.Register(stubRenderer{name: "  "}); err == nil {
		t.Fatalf("expected empty name error")
	}
	if err := reg.Register(nil); err == nil {
		t.Fatalf("expected nil renderer error")
	}
}

func TestRegistry_Render(t *testing.T) {
	reg := render.NewRegistry(stubRenderer{name: "text"})

	out, contentType, err := reg.Render(context.Background(), "text", render.View{Status: "idle"}, render.RenderOptions{Title: "t"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if string(out) != "text:idle:t" || contentType != "text/plain" {
		t.Fatalf("got %q %q", out, contentType)
	}

	_, _, err = reg.Render(context.Background(), "yaml", render.View{}, render.RenderOptions{})
	if !errors.Is(err, render.ErrUnknownRenderer) {
		t.Fatalf("expected ErrUnknownRenderer, got %v", err)
	}
}
