// Package priceform is the entry point for embedding the house price form:
// build a controller bound to a prediction service, render it, and check
// service contracts against the form.
package priceform

import (
	"context"

	"github.com/goliatone/go-priceform/pkg/form"
	pkgopenapi "github.com/goliatone/go-priceform/pkg/openapi"
	"github.com/goliatone/go-priceform/pkg/orchestrator"
	"github.com/goliatone/go-priceform/pkg/predict"
	"github.com/goliatone/go-priceform/pkg/render"
	"github.com/goliatone/go-priceform/pkg/schema"
)

// RenderOptions carries per-render overrides such as the form action.
type RenderOptions = render.RenderOptions

// View is the presentation snapshot renderers consume.
type View = render.View

// Report lists the differences between a contract and the form.
type Report = pkgopenapi.Report

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// NewController returns a housing form controller that submits to the
// prediction service at endpoint.
func NewController(endpoint string, clientOptions []predict.Option, options ...form.Option) (*form.Controller, error) {
	client, err := predict.New(endpoint, clientOptions...)
	if err != nil {
		return nil, err
	}
	return form.New(schema.Housing(), client, options...), nil
}

// RenderHTML renders controller with the default HTML renderer.
func RenderHTML(ctx context.Context, controller *form.Controller, options RenderOptions) ([]byte, error) {
	out, _, err := orchestrator.New().Render(ctx, controller, "", options)
	return out, err
}

// CheckContract compares the predict operation of the document at source with
// the form. A nil source checks the embedded contract.
func CheckContract(ctx context.Context, source pkgopenapi.Source, options ...orchestrator.Option) (Report, error) {
	return orchestrator.New(options...).CheckContract(ctx, orchestrator.ContractRequest{Source: source})
}
