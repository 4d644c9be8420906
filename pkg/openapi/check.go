package openapi

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/goliatone/go-priceform/pkg/model"
)

// ErrContractDrift is wrapped by Report.Err when any issue was found.
var ErrContractDrift = errors.New("openapi: contract drift")

// IssueKind classifies a difference between the form schema and a contract.
type IssueKind string

const (
	IssueMissingProperty IssueKind = "missing-property"
	IssueExtraProperty   IssueKind = "extra-property"
	IssueNotRequired     IssueKind = "not-required"
	IssueTypeMismatch    IssueKind = "type-mismatch"
	IssueEnumDrift       IssueKind = "enum-drift"
	IssueBoundsDrift     IssueKind = "bounds-drift"
	IssueResponseShape   IssueKind = "response-shape"
)

// Issue is one difference. Field is empty for operation-level issues.
type Issue struct {
	Kind   IssueKind
	Field  string
	Detail string
}

func (i Issue) String() string {
	if i.Field == "" {
		return fmt.Sprintf("%s: %s", i.Kind, i.Detail)
	}
	return fmt.Sprintf("%s %s: %s", i.Kind, i.Field, i.Detail)
}

// Report collects the issues of one check, schema fields first in form order,
// then extra contract properties sorted by name.
type Report struct {
	Operation string
	Issues    []Issue
}

// OK reports whether the contract matches the form.
func (r Report) OK() bool {
	return len(r.Issues) == 0
}

// Err returns nil when OK, else an error wrapping ErrContractDrift.
func (r Report) Err() error {
	if r.OK() {
		return nil
	}
	return fmt.Errorf("%w: %s has %d issue(s)", ErrContractDrift, r.Operation, len(r.Issues))
}

// Check compares the request body of op with the form schema and verifies the
// success response carries a price and an importance object.
func Check(schema model.Schema, op Operation) Report {
	report := Report{Operation: op.ID}
	add := func(kind IssueKind, field, format string, args ...any) {
		report.Issues = append(report.Issues, Issue{Kind: kind, Field: field, Detail: fmt.Sprintf(format, args...)})
	}

	body := op.RequestBody
	for _, def := range schema.Fields() {
		prop, ok := body.Properties[def.Name]
		if !ok {
			add(IssueMissingProperty, def.Name, "not declared by the request body")
			continue
		}
		if !body.IsRequired(def.Name) {
			add(IssueNotRequired, def.Name, "form always sends it but the contract marks it optional")
		}
		if def.Kind.Numeric() {
			checkNumeric(def, prop, add)
		} else {
			checkCategorical(def, prop, add)
		}
	}

	extras := make([]string, 0)
	for name := range body.Properties {
		if !schema.Has(name) {
			extras = append(extras, name)
		}
	}
	slices.Sort(extras)
	for _, name := range extras {
		kind := "optional"
		if body.IsRequired(name) {
			kind = "required"
		}
		add(IssueExtraProperty, name, "%s by the contract but not collected by the form", kind)
	}

	checkResponse(op, add)
	return report
}

type addFunc func(kind IssueKind, field, format string, args ...any)

func checkNumeric(def model.FieldDefinition, prop Schema, add addFunc) {
	if prop.Type != "integer" && prop.Type != "number" {
		add(IssueTypeMismatch, def.Name, "form sends an integer, contract declares %q", prop.Type)
		return
	}
	if detail := boundDrift("minimum", def.Min, prop.Minimum); detail != "" {
		add(IssueBoundsDrift, def.Name, "%s", detail)
	}
	if detail := boundDrift("maximum", def.Max, prop.Maximum); detail != "" {
		add(IssueBoundsDrift, def.Name, "%s", detail)
	}
}

func checkCategorical(def model.FieldDefinition, prop Schema, add addFunc) {
	if prop.Type != "string" {
		add(IssueTypeMismatch, def.Name, "form sends a string, contract declares %q", prop.Type)
		return
	}
	enum := prop.EnumStrings()
	if len(enum) == 0 {
		return
	}
	var rejected, unoffered []string
	for _, option := range def.Options {
		if !slices.Contains(enum, option) {
			rejected = append(rejected, option)
		}
	}
	for _, value := range enum {
		if !def.HasOption(value) {
			unoffered = append(unoffered, value)
		}
	}
	if len(rejected) > 0 {
		add(IssueEnumDrift, def.Name, "form offers values the contract rejects: %s", strings.Join(rejected, ", "))
	}
	if len(unoffered) > 0 {
		add(IssueEnumDrift, def.Name, "contract accepts values the form does not offer: %s", strings.Join(unoffered, ", "))
	}
}

func boundDrift(which string, form *int, contract *float64) string {
	switch {
	case form == nil && contract == nil:
		return ""
	case form == nil:
		return fmt.Sprintf("contract %s %g has no form hint", which, *contract)
	case contract == nil:
		return fmt.Sprintf("form %s %d is not in the contract", which, *form)
	case float64(*form) != *contract:
		return fmt.Sprintf("form %s %d, contract %g", which, *form, *contract)
	default:
		return ""
	}
}

func checkResponse(op Operation, add addFunc) {
	success, ok := op.Response("200")
	if !ok {
		add(IssueResponseShape, "", "no 200 response schema")
		return
	}
	price, ok := success.Properties["predictedPrice"]
	switch {
	case !ok:
		add(IssueResponseShape, "predictedPrice", "missing from the 200 response")
	case price.Type != "number" && price.Type != "integer":
		add(IssueResponseShape, "predictedPrice", "declared %q, want a number", price.Type)
	}
	importance, ok := success.Properties["featureImportance"]
	switch {
	case !ok:
		add(IssueResponseShape, "featureImportance", "missing from the 200 response")
	case importance.Type != "object":
		add(IssueResponseShape, "featureImportance", "declared %q, want an object", importance.Type)
	}
}
