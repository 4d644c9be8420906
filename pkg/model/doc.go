// Package model defines the typed field schema and the value snapshots the
// form controller, prediction client and renderers share. Definitions live in
// internal/model; this package re-exports them so callers outside the module
// never import internal paths.
//
// A Schema is ordered and immutable. Min/Max on numeric definitions are UI
// hints (HTML min/max attributes, terminal help text) and are never enforced
// on submit. Values always holds exactly one entry per schema field; numeric
// fields start Unset and categorical fields start at their Default.
package model
