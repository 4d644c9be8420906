package predict

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-priceform/pkg/model"
	"github.com/goliatone/go-priceform/pkg/schema"
)

// Payload is the typed /predict request body. Every field of the housing
// schema has exactly one slot here.
type Payload struct {
	OverallQual  int    `json:"overallQual"`
	GrLivArea    int    `json:"grLivArea"`
	GarageCars   int    `json:"garageCars"`
	TotalBsmtSF  int    `json:"totalBsmtSF"`
	FullBath     int    `json:"fullBath"`
	YearBuilt    int    `json:"yearBuilt"`
	YearRemodAdd int    `json:"yearRemodAdd"`
	LotArea      int    `json:"lotArea"`
	Neighborhood string `json:"neighborhood"`
	ExterQual    string `json:"exterQual"`
	BsmtQual     string `json:"bsmtQual"`
	KitchenQual  string `json:"kitchenQual"`
	Fireplaces   int    `json:"fireplaces"`
	GarageArea   int    `json:"garageArea"`
}

// BuildPayload converts raw form values into the typed request body. Numeric
// fields must hold a base-10 integer; anything else yields a *ParseError
// naming the first offending field in schema order. Categorical values are
// copied verbatim.
func BuildPayload(values model.Values) (Payload, error) {
	var p Payload
	ints := p.intSlots()
	strs := p.stringSlots()

	filled := 0
	for _, def := range values.Schema().Fields() {
		value, ok := values.Get(def.Name)
		if !ok {
			return Payload{}, fmt.Errorf("predict: value for %q missing", def.Name)
		}

		if def.Kind.Numeric() {
			slot, ok := ints[def.Name]
			if !ok {
				return Payload{}, fmt.Errorf("predict: field %q has no numeric payload slot", def.Name)
			}
			n, err := parseInt(value)
			if err != nil {
				return Payload{}, &ParseError{Field: def.Name, Raw: value.String(), Err: err}
			}
			*slot = n
		} else {
			slot, ok := strs[def.Name]
			if !ok {
				return Payload{}, fmt.Errorf("predict: field %q has no text payload slot", def.Name)
			}
			*slot = value.String()
		}
		filled++
	}

	if want := len(ints) + len(strs); filled != want {
		return Payload{}, fmt.Errorf("predict: payload has %d of %d fields", filled, want)
	}
	return p, nil
}

// Fields returns the payload as a generic map keyed by wire name.
func (p Payload) Fields() map[string]any {
	out := make(map[string]any, 14)
	for name, slot := range p.intSlots() {
		out[name] = *slot
	}
	for name, slot := range p.stringSlots() {
		out[name] = *slot
	}
	return out
}

func (p *Payload) intSlots() map[string]*int {
	return map[string]*int{
		schema.FieldOverallQual:  &p.OverallQual,
		schema.FieldGrLivArea:    &p.GrLivArea,
		schema.FieldGarageCars:   &p.GarageCars,
		schema.FieldTotalBsmtSF:  &p.TotalBsmtSF,
		schema.FieldFullBath:     &p.FullBath,
		schema.FieldYearBuilt:    &p.YearBuilt,
		schema.FieldYearRemodAdd: &p.YearRemodAdd,
		schema.FieldLotArea:      &p.LotArea,
		schema.FieldFireplaces:   &p.Fireplaces,
		schema.FieldGarageArea:   &p.GarageArea,
	}
}

func (p *Payload) stringSlots() map[string]*string {
	return map[string]*string{
		schema.FieldNeighborhood: &p.Neighborhood,
		schema.FieldExterQual:    &p.ExterQual,
		schema.FieldBsmtQual:     &p.BsmtQual,
		schema.FieldKitchenQual:  &p.KitchenQual,
	}
}

func parseInt(value model.Value) (int, error) {
	if !value.IsSet() {
		return 0, errEmptyNumber
	}
	return strconv.Atoi(strings.TrimSpace(value.String()))
}
