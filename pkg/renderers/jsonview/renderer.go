// Package jsonview renders a form view as indented JSON for scripting.
package jsonview

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/goliatone/go-priceform/pkg/render"
)

// Renderer marshals the whole View. Title overrides the view title when set.
type Renderer struct {
	indent string
}

var _ render.Renderer = (*Renderer)(nil)

// New returns a renderer indenting with two spaces.
func New() *Renderer {
	return &Renderer{indent: "  "}
}

func (r *Renderer) Name() string {
	return "json"
}

func (r *Renderer) ContentType() string {
	return "application/json"
}

func (r *Renderer) Render(_ context.Context, view render.View, options render.RenderOptions) ([]byte, error) {
	if options.Title != "" {
		view.Title = options.Title
	}
	out, err := json.MarshalIndent(view, "", r.indent)
	if err != nil {
		return nil, fmt.Errorf("json renderer: %w", err)
	}
	return append(out, '\n'), nil
}
