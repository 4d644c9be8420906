package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-priceform/pkg/schema"
)

func TestScenarioCoversSchema(t *testing.T) {
	values := ScenarioValues(t)
	for _, name := range schema.Housing().Names() {
		value, ok := values.Get(name)
		if !ok || !value.IsSet() {
			t.Fatalf("field %s unset", name)
		}
	}
	if got := len(ScenarioForm()); got != schema.Housing().Len() {
		t.Fatalf("form has %d keys", got)
	}
}

func TestScenarioNumericInputsOrder(t *testing.T) {
	want := []string{"7", "1800", "2", "900", "2", "2005", "2010", "8500", "1", "480"}
	if diff := cmp.Diff(want, ScenarioNumericInputs()); diff != "" {
		t.Fatalf("inputs mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadDocumentFromPath(t *testing.T) {
	if _, err := LoadDocumentFromPath(""); err == nil {
		t.Fatal("expected error for empty path")
	}
	path := filepath.Join(t.TempDir(), "contract.yaml")
	if err := os.WriteFile(path, []byte("openapi: 3.0.3\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	doc := LoadDocument(t, path)
	if doc.Location() != path {
		t.Fatalf("location = %q", doc.Location())
	}
}
