// Package choices serves the option lists of the form's categorical fields as
// JSON, with case-insensitive search, for typeahead inputs.
//
// Each categorical field is mounted at <base>/<field name> and answers GET and
// HEAD with {"data": [{"value": ..., "label": ..., "default": ...}]}.
package choices
