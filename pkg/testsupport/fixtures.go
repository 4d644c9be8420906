// Package testsupport holds the fixtures shared by the priceform tests: the
// canonical filled-in form and helpers to load contract documents.
package testsupport

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"testing"

	"github.com/goliatone/go-priceform/pkg/model"
	pkgopenapi "github.com/goliatone/go-priceform/pkg/openapi"
	"github.com/goliatone/go-priceform/pkg/schema"
)

// Scenario returns the raw inputs of a fully filled housing form.
func Scenario() map[string]string {
	return map[string]string{
		schema.FieldOverallQual:  "7",
		schema.FieldGrLivArea:    "1800",
		schema.FieldGarageCars:   "2",
		schema.FieldTotalBsmtSF:  "900",
		schema.FieldFullBath:     "2",
		schema.FieldYearBuilt:    "2005",
		schema.FieldYearRemodAdd: "2010",
		schema.FieldLotArea:      "8500",
		schema.FieldNeighborhood: "NAmes",
		schema.FieldExterQual:    "Gd",
		schema.FieldBsmtQual:     "TA",
		schema.FieldKitchenQual:  "Gd",
		schema.FieldFireplaces:   "1",
		schema.FieldGarageArea:   "480",
	}
}

// ScenarioValues returns Scenario as form values over the housing schema.
func ScenarioValues(t *testing.T) model.Values {
	t.Helper()
	values := model.NewValues(schema.Housing())
	for name, text := range Scenario() {
		var ok bool
		values, ok = values.With(name, model.Raw(text))
		if !ok {
			t.Fatalf("testsupport: field %q rejected", name)
		}
	}
	return values
}

// ScenarioForm returns Scenario as an urlencoded form post.
func ScenarioForm() url.Values {
	form := url.Values{}
	for name, text := range Scenario() {
		form.Set(name, text)
	}
	return form
}

// ScenarioNumericInputs returns the numeric answers of Scenario in schema
// order, the order a terminal session prompts for them.
func ScenarioNumericInputs() []string {
	raw := Scenario()
	var out []string
	for _, def := range schema.Housing().Fields() {
		if def.Kind == model.FieldKindCategorical {
			continue
		}
		out = append(out, raw[def.Name])
	}
	return out
}

// LoadDocument reads a contract fixture and builds a Document with a file
// source.
func LoadDocument(t *testing.T, path string) pkgopenapi.Document {
	t.Helper()
	doc, err := LoadDocumentFromPath(path)
	if err != nil {
		t.Fatalf("load document: %v", err)
	}
	return doc
}

// LoadDocumentFromPath returns a Document without requiring testing.T.
func LoadDocumentFromPath(path string) (pkgopenapi.Document, error) {
	if path == "" {
		return pkgopenapi.Document{}, errors.New("testsupport: document path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return pkgopenapi.Document{}, fmt.Errorf("testsupport: read document: %w", err)
	}
	doc, err := pkgopenapi.NewDocument(pkgopenapi.SourceFromFile(path), data)
	if err != nil {
		return pkgopenapi.Document{}, fmt.Errorf("testsupport: new document: %w", err)
	}
	return doc, nil
}
