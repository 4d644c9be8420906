package openapi

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-priceform/pkg/model"
)

// ContractInfo fills the document header of a generated contract.
type ContractInfo struct {
	Title     string
	Version   string
	ServerURL string
}

// DefaultContractInfo describes the service the form talks to by default.
func DefaultContractInfo() ContractInfo {
	return ContractInfo{
		Title:     "House price prediction service",
		Version:   "1.0.0",
		ServerURL: "http://localhost:5000",
	}
}

type contractDoc struct {
	OpenAPI    string                            `yaml:"openapi"`
	Info       contractHeader                    `yaml:"info"`
	Servers    []contractServer                  `yaml:"servers,omitempty"`
	Paths      map[string]map[string]contractOp  `yaml:"paths"`
	Components map[string]map[string]*schemaNode `yaml:"components"`
}

type contractHeader struct {
	Title   string `yaml:"title"`
	Version string `yaml:"version"`
}

type contractServer struct {
	URL string `yaml:"url"`
}

type contractOp struct {
	OperationID string                      `yaml:"operationId"`
	Summary     string                      `yaml:"summary,omitempty"`
	RequestBody contractBody                `yaml:"requestBody"`
	Responses   map[string]contractResponse `yaml:"responses"`
}

type contractBody struct {
	Required bool                    `yaml:"required"`
	Content  map[string]contentEntry `yaml:"content"`
}

type contractResponse struct {
	Description string                  `yaml:"description"`
	Content     map[string]contentEntry `yaml:"content,omitempty"`
}

type contentEntry struct {
	Schema *schemaNode `yaml:"schema"`
}

type schemaNode struct {
	Ref                  string                 `yaml:"$ref,omitempty"`
	Type                 string                 `yaml:"type,omitempty"`
	Description          string                 `yaml:"description,omitempty"`
	Required             []string               `yaml:"required,omitempty"`
	Properties           map[string]*schemaNode `yaml:"properties,omitempty"`
	Enum                 []string               `yaml:"enum,omitempty"`
	Minimum              *int                   `yaml:"minimum,omitempty"`
	Maximum              *int                   `yaml:"maximum,omitempty"`
	AdditionalProperties *schemaNode            `yaml:"additionalProperties,omitempty"`
}

func ref(name string) *schemaNode {
	return &schemaNode{Ref: "#/components/schemas/" + name}
}

func jsonContent(schema *schemaNode) map[string]contentEntry {
	return map[string]contentEntry{"application/json": {Schema: schema}}
}

// GenerateContract renders the OpenAPI description of POST /predict for s as
// YAML. Every field is a required property: numeric kinds become integers
// with the field's bounds, categorical kinds become string enums.
func GenerateContract(s model.Schema, info ContractInfo) ([]byte, error) {
	if s.Len() == 0 {
		return nil, errors.New("openapi: cannot generate a contract for an empty schema")
	}

	request := &schemaNode{Type: "object", Properties: make(map[string]*schemaNode, s.Len())}
	for _, def := range s.Fields() {
		request.Required = append(request.Required, def.Name)
		prop := &schemaNode{Description: def.Label}
		if def.Kind == model.FieldKindCategorical {
			prop.Type = "string"
			prop.Enum = append([]string(nil), def.Options...)
		} else {
			prop.Type = "integer"
			prop.Minimum = def.Min
			prop.Maximum = def.Max
		}
		request.Properties[def.Name] = prop
	}

	doc := contractDoc{
		OpenAPI: "3.0.3",
		Info:    contractHeader{Title: info.Title, Version: info.Version},
		Paths: map[string]map[string]contractOp{
			"/predict": {
				"post": {
					OperationID: PredictOperationID,
					Summary:     "Predict a sale price from house features",
					RequestBody: contractBody{Required: true, Content: jsonContent(ref("PredictRequest"))},
					Responses: map[string]contractResponse{
						"200": {Description: "Predicted price and per-feature importance.", Content: jsonContent(ref("PredictResponse"))},
						"400": {Description: "A required key is missing.", Content: jsonContent(ref("ErrorResponse"))},
						"500": {Description: "The request could not be scored.", Content: jsonContent(ref("ErrorResponse"))},
					},
				},
			},
		},
		Components: map[string]map[string]*schemaNode{
			"schemas": {
				"PredictRequest": request,
				"PredictResponse": {
					Type:     "object",
					Required: []string{"predictedPrice", "featureImportance"},
					Properties: map[string]*schemaNode{
						"predictedPrice":    {Type: "number"},
						"featureImportance": {Type: "object", AdditionalProperties: &schemaNode{Type: "number"}},
					},
				},
				"ErrorResponse": {
					Type:       "object",
					Properties: map[string]*schemaNode{"error": {Type: "string"}},
				},
			},
		},
	}
	if info.ServerURL != "" {
		doc.Servers = []contractServer{{URL: info.ServerURL}}
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("openapi: marshal contract: %w", err)
	}
	return out, nil
}
