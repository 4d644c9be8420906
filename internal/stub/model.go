package stub

import (
	"math"

	"github.com/goliatone/go-priceform/pkg/predict"
	"github.com/goliatone/go-priceform/pkg/schema"
)

// RequestKeys is the order the service checks for missing keys and the order
// features are fed to the model.
var RequestKeys = []string{
	schema.FieldOverallQual,
	schema.FieldGrLivArea,
	schema.FieldGarageCars,
	schema.FieldTotalBsmtSF,
	schema.FieldFullBath,
	schema.FieldYearBuilt,
	schema.FieldYearRemodAdd,
	schema.FieldLotArea,
	schema.FieldNeighborhood,
	schema.FieldExterQual,
	schema.FieldBsmtQual,
	schema.FieldKitchenQual,
	schema.FieldFireplaces,
	schema.FieldGarageArea,
}

// FeatureLabels names the model features in RequestKeys order, as the model
// was trained on them. Importance scores are keyed by these labels.
var FeatureLabels = []string{
	"Overall Qual", "Gr Liv Area", "Garage Cars", "Total Bsmt SF",
	"Full Bath", "Year Built", "Year Remod/Add", "Lot Area",
	"Neighborhood", "Exter Qual", "Bsmt Qual", "Kitchen Qual",
	"Fireplaces", "Garage Area",
}

// Model scores an encoded feature vector.
type Model interface {
	Predict(features []float64) float64
	Importances() []float64
}

// LinearModel is a fixed linear scorer standing in for the trained forest.
// It is deterministic so clients can be exercised end to end.
type LinearModel struct {
	Intercept    float64
	Coefficients []float64
	Weights      []float64
}

// DefaultModel returns the built-in scorer. Weights sum to one.
func DefaultModel() *LinearModel {
	return &LinearModel{
		Intercept: -1_450_000,
		Coefficients: []float64{
			18_000, 48, 7_500, 22, 3_000, 420, 230, 0.9,
			150, 9_000, 6_500, 8_000, 4_200, 30,
		},
		Weights: []float64{
			0.58, 0.14, 0.04, 0.06, 0.01, 0.03, 0.02, 0.03,
			0.01, 0.01, 0.01, 0.02, 0.01, 0.03,
		},
	}
}

// Predict returns the linear combination. Vectors shorter than the
// coefficient list contribute nothing for the missing positions.
func (m *LinearModel) Predict(features []float64) float64 {
	total := m.Intercept
	for i, coefficient := range m.Coefficients {
		if i >= len(features) {
			break
		}
		total += coefficient * features[i]
	}
	return total
}

// Importances returns a copy of the importance weights.
func (m *LinearModel) Importances() []float64 {
	return append([]float64(nil), m.Weights...)
}

// explain pairs labels with rounded scores in feature order.
func explain(labels []string, scores []float64) predict.FeatureImportance {
	out := make(predict.FeatureImportance, 0, len(labels))
	for i, label := range labels {
		if i >= len(scores) {
			break
		}
		out = append(out, predict.Importance{Feature: label, Score: round(scores[i], 3)})
	}
	return out
}

func round(v float64, places int) float64 {
	scale := math.Pow10(places)
	return math.Round(v*scale) / scale
}
