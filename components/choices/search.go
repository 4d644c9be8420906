package choices

import (
	"sort"
	"strings"

	"github.com/goliatone/go-priceform/pkg/model"
)

// Choice is one entry of a categorical field's option list.
type Choice struct {
	Value   string `json:"value"`
	Label   string `json:"label"`
	Default bool   `json:"default,omitempty"`
}

// Search filters values by a case-insensitive substring. Prefix matches come
// first; within each group the original order is kept.
func Search(values []string, query string, limit int, opts Options) []string {
	limit = clampLimit(limit, opts)
	if limit == 0 {
		return nil
	}

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		if opts.EmptySearchMode != EmptySearchAll {
			return nil
		}
		if len(values) > limit {
			values = values[:limit]
		}
		return append([]string{}, values...)
	}

	type match struct {
		value    string
		isPrefix bool
	}
	matches := make([]match, 0, len(values))
	for _, value := range values {
		lower := strings.ToLower(value)
		if !strings.Contains(lower, query) {
			continue
		}
		matches = append(matches, match{value: value, isPrefix: strings.HasPrefix(lower, query)})
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].isPrefix && !matches[j].isPrefix
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.value)
	}
	return out
}

// SearchField runs Search over a categorical field's options and marks its
// default.
func SearchField(def model.FieldDefinition, query string, limit int, opts Options) []Choice {
	results := Search(def.Options, query, limit, opts)
	out := make([]Choice, 0, len(results))
	for _, value := range results {
		out = append(out, Choice{Value: value, Label: value, Default: value == def.Default})
	}
	return out
}
