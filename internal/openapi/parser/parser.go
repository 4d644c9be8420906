package parser

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	pkgopenapi "github.com/goliatone/go-priceform/pkg/openapi"
)

// Parser implements pkgopenapi.Parser using kin-openapi.
type Parser struct {
	options pkgopenapi.ParserOptions
}

var _ pkgopenapi.Parser = (*Parser)(nil)

// New constructs a Parser with the given options.
func New(options pkgopenapi.ParserOptions) *Parser {
	return &Parser{options: options}
}

var methods = []string{
	http.MethodGet, http.MethodPut, http.MethodPost, http.MethodDelete,
	http.MethodPatch, http.MethodHead, http.MethodOptions, http.MethodTrace,
}

// Operations converts a Document into a map keyed by operationId. Operations
// without an id are keyed "<method>:<path>" in lower-case method.
func (p *Parser) Operations(ctx context.Context, doc pkgopenapi.Document) (map[string]pkgopenapi.Operation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw := doc.Raw()
	if len(raw) == 0 {
		return nil, errors.New("openapi parser: document payload is empty")
	}

	loader := &openapi3.Loader{
		Context:               ctx,
		IsExternalRefsAllowed: p.options.AllowExternalRefs,
	}
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi parser: load document: %w", err)
	}
	if p.options.ValidateDocument {
		if err := spec.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
			return nil, fmt.Errorf("openapi parser: validate: %w", err)
		}
	}
	if spec.Paths == nil || spec.Paths.Len() == 0 {
		return nil, errors.New("openapi parser: document does not contain any paths")
	}

	operations := make(map[string]pkgopenapi.Operation)
	for path, item := range spec.Paths.Map() {
		if item == nil {
			continue
		}
		for _, method := range methods {
			operation := item.GetOperation(method)
			if operation == nil {
				continue
			}
			op, err := convertOperation(method, path, operation)
			if err != nil {
				return nil, err
			}
			operations[op.ID] = op
		}
	}
	if len(operations) == 0 {
		return nil, errors.New("openapi parser: no operations extracted")
	}
	return operations, nil
}

// Operation returns the operation with the given id.
func (p *Parser) Operation(ctx context.Context, doc pkgopenapi.Document, id string) (pkgopenapi.Operation, error) {
	operations, err := p.Operations(ctx, doc)
	if err != nil {
		return pkgopenapi.Operation{}, err
	}
	op, ok := operations[id]
	if !ok {
		return pkgopenapi.Operation{}, fmt.Errorf("openapi parser: operation %q not found in %s", id, doc.Location())
	}
	return op, nil
}

func convertOperation(method, path string, operation *openapi3.Operation) (pkgopenapi.Operation, error) {
	id := operation.OperationID
	if id == "" {
		id = strings.ToLower(method) + ":" + path
	}
	op, err := pkgopenapi.NewOperation(id, method, path, requestSchema(operation.RequestBody), responseSchemas(operation.Responses))
	if err != nil {
		return pkgopenapi.Operation{}, fmt.Errorf("openapi parser: %s %s: %w", method, path, err)
	}
	op.Summary = operation.Summary
	return op, nil
}

func requestSchema(body *openapi3.RequestBodyRef) pkgopenapi.Schema {
	if body == nil {
		return pkgopenapi.Schema{}
	}
	if body.Value == nil {
		return pkgopenapi.Schema{Ref: body.Ref}
	}
	return jsonSchema(body.Value.Content)
}

func responseSchemas(responses *openapi3.Responses) map[string]pkgopenapi.Schema {
	if responses == nil || responses.Len() == 0 {
		return nil
	}
	out := make(map[string]pkgopenapi.Schema)
	for status, ref := range responses.Map() {
		if ref == nil || ref.Value == nil {
			continue
		}
		schema := jsonSchema(ref.Value.Content)
		if schema.Type == "" && len(schema.Properties) == 0 {
			continue
		}
		out[status] = schema
	}
	return out
}

// jsonSchema prefers application/json and falls back to any other media type.
func jsonSchema(content openapi3.Content) pkgopenapi.Schema {
	if mt, ok := content["application/json"]; ok && mt != nil {
		return convertSchema(mt.Schema)
	}
	for _, mt := range content {
		if mt != nil {
			return convertSchema(mt.Schema)
		}
	}
	return pkgopenapi.Schema{}
}
