package openapi_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-priceform/pkg/model"
	"github.com/goliatone/go-priceform/pkg/openapi"
)

func float(v float64) *float64 { return &v }

func smallSchema() model.Schema {
	return model.MustNewSchema(
		model.FieldDefinition{Name: "rooms", Kind: model.FieldKindBoundedInteger, Min: model.Bound(1), Max: model.Bound(9)},
		model.FieldDefinition{Name: "grade", Kind: model.FieldKindCategorical, Options: []string{"A", "B"}, Default: "A"},
	)
}

func okResponses() map[string]openapi.Schema {
	return map[string]openapi.Schema{
		"200": {
			Type: "object",
			Properties: map[string]openapi.Schema{
				"predictedPrice":    {Type: "number"},
				"featureImportance": {Type: "object", AdditionalProperties: &openapi.Schema{Type: "number"}},
			},
		},
	}
}

func TestCheck_Clean(t *testing.T) {
	op := openapi.MustNewOperation("predict", "post", "/predict", openapi.Schema{
		Type:     "object",
		Required: []string{"rooms", "grade"},
		Properties: map[string]openapi.Schema{
			"rooms": {Type: "integer", Minimum: float(1), Maximum: float(9)},
			"grade": {Type: "string", Enum: []any{"A", "B"}},
		},
	}, okResponses())

	report := openapi.Check(smallSchema(), op)
	if !report.OK() {
		t.Fatalf("expected clean report, got %v", report.Issues)
	}
	if op.Method != "POST" {
		t.Fatalf("method must be upper-cased, got %q", op.Method)
	}
}

func TestCheck_BoundsAndEnumDrift(t *testing.T) {
	op := openapi.MustNewOperation("predict", "POST", "/predict", openapi.Schema{
		Type:     "object",
		Required: []string{"rooms", "grade"},
		Properties: map[string]openapi.Schema{
			"rooms": {Type: "number", Minimum: float(0)},
			"grade": {Type: "string", Enum: []any{"A", "C"}},
		},
	}, nil)

	got := openapi.Check(smallSchema(), op).Issues
	want := []openapi.Issue{
		{Kind: openapi.IssueBoundsDrift, Field: "rooms", Detail: "form minimum 1, contract 0"},
		{Kind: openapi.IssueBoundsDrift, Field: "rooms", Detail: "form maximum 9 is not in the contract"},
		{Kind: openapi.IssueEnumDrift, Field: "grade", Detail: "form offers values the contract rejects: B"},
		{Kind: openapi.IssueEnumDrift, Field: "grade", Detail: "contract accepts values the form does not offer: C"},
		{Kind: openapi.IssueResponseShape, Detail: "no 200 response schema"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("issues mismatch (-want +got):\n%s", diff)
	}
}

func TestIssue_String(t *testing.T) {
	issue := openapi.Issue{Kind: openapi.IssueMissingProperty, Field: "rooms", Detail: "not declared by the request body"}
	if got := issue.String(); got != "missing-property rooms: not declared by the request body" {
		t.Fatalf("String() = %q", got)
	}
}
