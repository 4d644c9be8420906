// Package template defines the engine contract shared by template-backed
// renderers. The pongo subpackage provides the pongo2 implementation.
package template
