// Package text renders the error line and result panel as plain text for
// terminals and logs.
package text

import (
	"context"
	"embed"
	"errors"
	"fmt"

	"github.com/goliatone/go-priceform/pkg/render"
	rendertemplate "github.com/goliatone/go-priceform/pkg/render/template"
	"github.com/goliatone/go-priceform/pkg/render/template/pongo"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

// Renderer prints only the outcome of the last submission; an idle or loading
// view renders as nothing unless a title is requested.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
}

var _ render.Renderer = (*Renderer)(nil)

// New builds the renderer over the embedded panel template.
func New() (*Renderer, error) {
	engine, err := pongo.New(pongo.WithFS(embeddedTemplates), pongo.WithExtension(".tmpl"))
	if err != nil {
		return nil, fmt.Errorf("text renderer: configure template renderer: %w", err)
	}
	return &Renderer{templates: engine}, nil
}

func (r *Renderer) Name() string {
	return "text"
}

func (r *Renderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

func (r *Renderer) Render(_ context.Context, view render.View, options render.RenderOptions) ([]byte, error) {
	if r.templates == nil {
		return nil, errors.New("text renderer: template renderer is nil")
	}
	out, err := r.templates.RenderTemplate("templates/panel", map[string]any{
		"form":  view,
		"title": options.Title,
	})
	if err != nil {
		return nil, fmt.Errorf("text renderer: render template: %w", err)
	}
	return []byte(out), nil
}
