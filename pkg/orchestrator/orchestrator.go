package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	internalLoader "github.com/goliatone/go-priceform/internal/openapi/loader"
	internalParser "github.com/goliatone/go-priceform/internal/openapi/parser"
	"github.com/goliatone/go-priceform/pkg/form"
	"github.com/goliatone/go-priceform/pkg/model"
	pkgopenapi "github.com/goliatone/go-priceform/pkg/openapi"
	"github.com/goliatone/go-priceform/pkg/render"
	"github.com/goliatone/go-priceform/pkg/renderers/jsonview"
	"github.com/goliatone/go-priceform/pkg/renderers/text"
	"github.com/goliatone/go-priceform/pkg/renderers/vanilla"
	"github.com/goliatone/go-priceform/pkg/schema"
)

const defaultRendererName = "vanilla"

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom OpenAPI loader.
func WithLoader(loader pkgopenapi.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithLoaderOptions configures the built-in loader, for example to enable
// HTTP sources. Ignored when WithLoader is also given.
func WithLoaderOptions(options ...pkgopenapi.LoaderOption) Option {
	return func(o *Orchestrator) {
		o.loaderOptions = append(o.loaderOptions, options...)
	}
}

// WithParser injects a custom OpenAPI parser.
func WithParser(parser pkgopenapi.Parser) Option {
	return func(o *Orchestrator) {
		o.parser = parser
	}
}

// WithSchema replaces the housing schema contracts are checked against.
func WithSchema(s model.Schema) Option {
	return func(o *Orchestrator) {
		o.schema = s
		o.schemaSet = true
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when Render gets no name.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Orchestrator coordinates contract checks and rendering. Missing
// dependencies are filled with the built-in implementations.
type Orchestrator struct {
	loader          pkgopenapi.Loader
	loaderOptions   []pkgopenapi.LoaderOption
	parser          pkgopenapi.Parser
	schema          model.Schema
	schemaSet       bool
	registry        *render.Registry
	defaultRenderer string
	logger          *slog.Logger
	initialiseErr   error
}

// New constructs an Orchestrator applying any provided options.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
		logger:          slog.New(slog.DiscardHandler),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// ContractRequest selects the document and operation to check. The zero value
// checks the embedded predict contract.
type ContractRequest struct {
	// Source identifies where the document lives. Optional when Document is
	// supplied.
	Source pkgopenapi.Source

	// Document bypasses the loader.
	Document *pkgopenapi.Document

	// OperationID defaults to pkgopenapi.PredictOperationID.
	OperationID string
}

// CheckContract loads and parses the document, then compares the selected
// operation with the form schema. A drifted contract is reported through the
// Report, not the error; errors mean the check could not run.
func (o *Orchestrator) CheckContract(ctx context.Context, req ContractRequest) (pkgopenapi.Report, error) {
	if o.initialiseErr != nil {
		return pkgopenapi.Report{}, o.initialiseErr
	}

	doc, err := o.resolveDocument(ctx, req)
	if err != nil {
		return pkgopenapi.Report{}, err
	}

	operationID := req.OperationID
	if operationID == "" {
		operationID = pkgopenapi.PredictOperationID
	}

	operations, err := o.parser.Operations(ctx, doc)
	if err != nil {
		return pkgopenapi.Report{}, fmt.Errorf("orchestrator: parse %s: %w", doc.Location(), err)
	}
	op, ok := operations[operationID]
	if !ok {
		return pkgopenapi.Report{}, fmt.Errorf("orchestrator: operation %q not found in %s", operationID, doc.Location())
	}

	report := pkgopenapi.Check(o.schema, op)
	o.logger.Debug("contract checked", "location", doc.Location(), "operation", operationID, "issues", len(report.Issues))
	return report, nil
}

// Render snapshots the controller and renders it with the named renderer, or
// the default renderer when name is empty. It returns the content type too.
func (o *Orchestrator) Render(ctx context.Context, controller *form.Controller, name string, options render.RenderOptions) ([]byte, string, error) {
	if o.initialiseErr != nil {
		return nil, "", o.initialiseErr
	}
	if controller == nil {
		return nil, "", errors.New("orchestrator: controller is nil")
	}
	if name == "" {
		name = o.defaultRenderer
	}
	return o.registry.Render(ctx, name, render.FromController(controller), options)
}

// Registry exposes the renderer registry.
func (o *Orchestrator) Registry() *render.Registry {
	return o.registry
}

// Schema returns the form schema in use.
func (o *Orchestrator) Schema() model.Schema {
	return o.schema
}

func (o *Orchestrator) resolveDocument(ctx context.Context, req ContractRequest) (pkgopenapi.Document, error) {
	if req.Document != nil {
		return *req.Document, nil
	}
	src := req.Source
	if src == nil {
		src = pkgopenapi.SourceFromFS(pkgopenapi.PredictContract)
	}
	doc, err := o.loader.Load(ctx, src)
	if err != nil {
		return pkgopenapi.Document{}, fmt.Errorf("orchestrator: load %s: %w", src.Location(), err)
	}
	return doc, nil
}

func (o *Orchestrator) applyDefaults() {
	if o.loader == nil {
		o.loader = internalLoader.New(pkgopenapi.NewLoaderOptions(o.loaderOptions...))
	}
	if o.parser == nil {
		o.parser = internalParser.New(pkgopenapi.NewParserOptions())
	}
	if !o.schemaSet {
		o.schema = schema.Housing()
	}
	if o.registry == nil {
		registry, err := DefaultRegistry()
		if err != nil {
			o.initialiseErr = err
			return
		}
		o.registry = registry
	}
}

// DefaultRegistry returns a registry holding the vanilla HTML, text and JSON
// renderers.
func DefaultRegistry() (*render.Registry, error) {
	html, err := vanilla.New()
	if err != nil {
		return nil, fmt.Errorf("orchestrator: vanilla renderer: %w", err)
	}
	plain, err := text.New()
	if err != nil {
		return nil, fmt.Errorf("orchestrator: text renderer: %w", err)
	}
	return render.NewRegistry(html, plain, jsonview.New()), nil
}
