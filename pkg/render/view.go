package render

import (
	"strconv"

	"github.com/goliatone/go-priceform/pkg/form"
	"github.com/goliatone/go-priceform/pkg/model"
	"github.com/goliatone/go-priceform/pkg/predict"
)

// DefaultTitle heads every rendered form.
const DefaultTitle = "House Price Predictor"

// View is the presentation snapshot of one form session. Renderers only read
// from it; it carries no behaviour.
type View struct {
	Title       string      `json:"title"`
	Status      string      `json:"status"`
	Fields      []FieldView `json:"fields"`
	SubmitLabel string      `json:"submitLabel"`
	Disabled    bool        `json:"disabled"`
	Error       string      `json:"error,omitempty"`
	Result      *ResultView `json:"result,omitempty"`
}

// FieldView is one control with its current value and hints. Numeric bounds
// are advisory and rendered as strings so templates can emit them directly.
type FieldView struct {
	Name        string   `json:"name"`
	Label       string   `json:"label"`
	Placeholder string   `json:"placeholder,omitempty"`
	Kind        string   `json:"kind"`
	Numeric     bool     `json:"numeric"`
	Value       string   `json:"value"`
	Min         string   `json:"min,omitempty"`
	Max         string   `json:"max,omitempty"`
	Options     []Option `json:"options,omitempty"`
}

// Option is one entry of a categorical control.
type Option struct {
	Value    string `json:"value"`
	Selected bool   `json:"selected"`
}

// ResultView is the result panel: the formatted price and the importance
// breakdown in the order the service sent it.
type ResultView struct {
	Price    string        `json:"price"`
	Features []FeatureView `json:"features"`
}

// FeatureView is one line of the importance breakdown.
type FeatureView struct {
	Name  string `json:"name"`
	Score string `json:"score"`
}

// FromController snapshots a controller into a View.
func FromController(c *form.Controller) View {
	return NewView(c.Values(), c.Lifecycle())
}

// NewView builds a View from field values and a lifecycle snapshot. The error
// line and the result panel are never both populated.
func NewView(values model.Values, state form.Lifecycle) View {
	schema := values.Schema()
	view := View{
		Title:       DefaultTitle,
		Status:      state.Status.String(),
		Fields:      make([]FieldView, 0, schema.Len()),
		SubmitLabel: state.SubmitLabel(),
		Disabled:    state.Loading(),
	}

	for _, def := range schema.Fields() {
		value, _ := values.Get(def.Name)
		view.Fields = append(view.Fields, fieldView(def, value))
	}

	switch state.Status {
	case form.StatusFailed:
		view.Error = state.Message()
	case form.StatusSucceeded:
		if state.Result != nil {
			result := resultView(*state.Result)
			view.Result = &result
		}
	}
	return view
}

func fieldView(def model.FieldDefinition, value model.Value) FieldView {
	label := def.Label
	if label == "" {
		label = def.Name
	}
	out := FieldView{
		Name:        def.Name,
		Label:       label,
		Placeholder: def.Placeholder,
		Kind:        string(def.Kind),
		Numeric:     def.Kind.Numeric(),
		Value:       value.String(),
		Min:         formatBound(def.Min),
		Max:         formatBound(def.Max),
	}
	if len(def.Options) > 0 {
		out.Options = make([]Option, 0, len(def.Options))
		for _, opt := range def.Options {
			out.Options = append(out.Options, Option{Value: opt, Selected: opt == out.Value})
		}
	}
	return out
}

func resultView(result predict.Result) ResultView {
	out := ResultView{
		Price:    FormatPrice(result.PredictedPrice),
		Features: make([]FeatureView, 0, len(result.FeatureImportance)),
	}
	for _, item := range result.FeatureImportance {
		out.Features = append(out.Features, FeatureView{
			Name:  item.Feature,
			Score: FormatScore(item.Score),
		})
	}
	return out
}

// FormatPrice renders a price as a dollar sign followed by the number with no
// grouping and no forced decimals: 215000 becomes "$215000".
func FormatPrice(price float64) string {
	return "$" + strconv.FormatFloat(price, 'f', -1, 64)
}

// FormatScore renders an importance score with the shortest exact digits.
func FormatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', -1, 64)
}

func formatBound(bound *int) string {
	if bound == nil {
		return ""
	}
	return strconv.Itoa(*bound)
}
