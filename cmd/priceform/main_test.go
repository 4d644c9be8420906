package main

import (
	"bytes"
	"context"
	"errors"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/goliatone/go-priceform/internal/stub"
	pkgopenapi "github.com/goliatone/go-priceform/pkg/openapi"
	"github.com/goliatone/go-priceform/pkg/renderers/tui"
	"github.com/goliatone/go-priceform/pkg/testsupport"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// scriptedDriver answers numeric prompts from a queue, keeps every select at
// its default and declines to repeat.
type scriptedDriver struct {
	inputs []string
	info   []string
}

func (d *scriptedDriver) Input(_ context.Context, cfg tui.InputConfig) (string, error) {
	if len(d.inputs) == 0 {
		return cfg.Default, nil
	}
	next := d.inputs[0]
	d.inputs = d.inputs[1:]
	return next, nil
}

func (d *scriptedDriver) Confirm(context.Context, tui.ConfirmConfig) (bool, error) {
	return false, nil
}

func (d *scriptedDriver) Select(_ context.Context, cfg tui.SelectConfig) (int, error) {
	return cfg.DefaultIndex, nil
}

func (d *scriptedDriver) Info(_ context.Context, msg string) error {
	d.info = append(d.info, msg)
	return nil
}

type harness struct {
	app    *app
	stdout *bytes.Buffer
	stderr *bytes.Buffer
	dir    string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	var stdout, stderr bytes.Buffer
	a := newApp(&stdout, &stderr)
	dir := t.TempDir()
	a.manager.SetGlobalPath(filepath.Join(dir, "global", "config.yaml"))
	a.manager.SetLocalPath(filepath.Join(dir, "local", "config.yaml"))
	return &harness{app: a, stdout: &stdout, stderr: &stderr, dir: dir}
}

func (h *harness) run(args ...string) error {
	return newRootCommand(h.app).Run(context.Background(), append([]string{"priceform"}, args...))
}

func TestPredict_AgainstStub(t *testing.T) {
	srv := httptest.NewServer(stub.NewRouter(stub.NewHandler(stub.DefaultModel(), nil)))
	defer srv.Close()

	h := newHarness(t)
	driver := &scriptedDriver{inputs: testsupport.ScenarioNumericInputs()}
	h.app.driver = driver

	if err := h.run("--endpoint", srv.URL, "predict", "--once"); err != nil {
		t.Fatalf("predict: %v", err)
	}
	if len(driver.info) != 2 {
		t.Fatalf("info = %q", driver.info)
	}
	panel := driver.info[1]
	if !strings.HasPrefix(panel, "Predicted Price: $") || !strings.Contains(panel, "Overall Qual: ") {
		t.Fatalf("panel = %q", panel)
	}
}

func TestPredict_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(nil)
	endpoint := srv.URL
	srv.Close()

	h := newHarness(t)
	driver := &scriptedDriver{inputs: testsupport.ScenarioNumericInputs()}
	h.app.driver = driver

	if err := h.run("--endpoint", endpoint, "predict", "--once"); err != nil {
		t.Fatalf("predict: %v", err)
	}
	if got := driver.info[len(driver.info)-1]; got != "Error: Error connecting to server" {
		t.Fatalf("panel = %q", got)
	}
}

func TestPredict_UnknownOutput(t *testing.T) {
	h := newHarness(t)
	h.app.driver = &scriptedDriver{}
	if err := h.run("predict", "--output", "yaml"); err == nil {
		t.Fatal("expected unknown renderer error")
	}
}

func TestRender_WritesFile(t *testing.T) {
	h := newHarness(t)
	path := filepath.Join(h.dir, "form.html")

	if err := h.run("render", "--action", "/estimate", "--output", path); err != nil {
		t.Fatalf("render: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	html := string(data)
	if !strings.Contains(html, `action="/estimate"`) || strings.Count(html, `class="pf-field"`) != 14 {
		t.Fatalf("unexpected form\n%s", html)
	}
}

func TestRender_JSONToStdout(t *testing.T) {
	h := newHarness(t)
	if err := h.run("render", "--format", "json"); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(h.stdout.String(), `"submitLabel": "Predict Price"`) {
		t.Fatalf("stdout = %s", h.stdout.String())
	}
}

func TestContract_Embedded(t *testing.T) {
	h := newHarness(t)
	if err := h.run("contract"); err != nil {
		t.Fatalf("contract: %v", err)
	}
	if !strings.Contains(h.stdout.String(), "predictPrice matches the form") {
		t.Fatalf("stdout = %q", h.stdout.String())
	}
}

func TestContract_Drift(t *testing.T) {
	h := newHarness(t)
	path := filepath.Join(h.dir, "drift.yaml")
	doc := `openapi: 3.0.3
info:
  title: drift
  version: "1"
paths:
  /predict:
    post:
      operationId: predictPrice
      requestBody:
        content:
          application/json:
            schema:
              type: object
              required: [overallQual]
              properties:
                overallQual: {type: integer, minimum: 1, maximum: 10}
      responses:
        '200':
          description: ok
          content:
            application/json:
              schema:
                type: object
                properties:
                  predictedPrice: {type: number}
                  featureImportance: {type: object, additionalProperties: {type: number}}
`
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	err := h.run("contract", "--source", path)
	if !errors.Is(err, pkgopenapi.ErrContractDrift) {
		t.Fatalf("expected drift, got %v", err)
	}
	if !strings.Contains(h.stdout.String(), "missing-property grLivArea") {
		t.Fatalf("stdout = %q", h.stdout.String())
	}
}

func TestConfig_InitAndShow(t *testing.T) {
	h := newHarness(t)
	if err := h.run("config", "init"); err != nil {
		t.Fatalf("init: %v", err)
	}
	if err := h.run("config", "init"); err == nil {
		t.Fatal("second init without --replace should fail")
	}

	h.stdout.Reset()
	if err := h.run("--endpoint", "http://models:9000", "config", "show"); err != nil {
		t.Fatalf("show: %v", err)
	}
	out := h.stdout.String()
	if !strings.Contains(out, "endpoint: http://models:9000") || !strings.Contains(out, "format: text") {
		t.Fatalf("show = %s", out)
	}
}

func TestSetup_RejectsInvalidConfig(t *testing.T) {
	h := newHarness(t)
	if err := h.run("--log-format", "xml", "render"); err == nil {
		t.Fatal("expected invalid log format error")
	}
}
