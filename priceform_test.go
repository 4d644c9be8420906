package priceform

import (
	"context"
	"io/fs"
	"strings"
	"testing"

	"github.com/goliatone/go-priceform/pkg/renderers/vanilla"
)

func TestAssetsFSContainsStylesheet(t *testing.T) {
	data, err := fs.ReadFile(AssetsFS(), vanilla.StylesheetName)
	if err != nil {
		t.Fatalf("expected stylesheet to be readable: %v", err)
	}
	if !strings.Contains(string(data), ".pf-form") {
		t.Fatalf("stylesheet does not style the form")
	}
}

func TestEmbeddedTemplatesContainsForm(t *testing.T) {
	if _, err := fs.Stat(EmbeddedTemplates(), "templates/form.tmpl"); err != nil {
		t.Fatalf("expected form template: %v", err)
	}
}

func TestNewControllerRendersHTML(t *testing.T) {
	controller, err := NewController("http://localhost:5000", nil)
	if err != nil {
		t.Fatalf("new controller: %v", err)
	}
	out, err := RenderHTML(context.Background(), controller, RenderOptions{Action: "/predict-form"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(out), `action="/predict-form"`) {
		t.Fatalf("unexpected html\n%s", out)
	}
}

func TestNewControllerRejectsBadEndpoint(t *testing.T) {
	if _, err := NewController("ftp://host", nil); err == nil {
		t.Fatal("expected endpoint error")
	}
}

func TestCheckContractEmbedded(t *testing.T) {
	report, err := CheckContract(context.Background(), nil)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !report.OK() {
		t.Fatalf("embedded contract drifted: %v", report.Issues)
	}
}
