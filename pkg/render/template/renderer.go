package template

import (
	"io"
)

// TemplateRenderer is the seam concrete renderers depend on. Engines resolve
// names against their own template source and write the output to any
// writers supplied as well as returning it.
type TemplateRenderer interface {
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data any) error
}
