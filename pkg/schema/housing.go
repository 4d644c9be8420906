package schema

import "github.com/goliatone/go-priceform/pkg/model"

// Field names double as JSON keys in the /predict request body.
const (
	FieldOverallQual  = "overallQual"
	FieldGrLivArea    = "grLivArea"
	FieldGarageCars   = "garageCars"
	FieldTotalBsmtSF  = "totalBsmtSF"
	FieldFullBath     = "fullBath"
	FieldYearBuilt    = "yearBuilt"
	FieldYearRemodAdd = "yearRemodAdd"
	FieldLotArea      = "lotArea"
	FieldNeighborhood = "neighborhood"
	FieldExterQual    = "exterQual"
	FieldBsmtQual     = "bsmtQual"
	FieldKitchenQual  = "kitchenQual"
	FieldFireplaces   = "fireplaces"
	FieldGarageArea   = "garageArea"
)

// Neighborhoods lists the 30 neighborhood codes the service understands.
var Neighborhoods = []string{
	"NAmes", "CollgCr", "OldTown", "Edwards", "Somerville",
	"Gilbert", "Sawyer", "NWAmes", "SawyerW", "BrkSide",
	"Crawfor", "Mitchel", "Timber", "StoneBr", "ClearCr",
	"NoRidge", "NPkVill", "Blmngtn", "BrDale", "SWISU",
	"IDOTRR", "MeadowV", "Blueste", "Veenker", "MtVer",
	"Central", "GraVey", "Logan", "Walnut", "Landmrk",
}

// QualityGrades is the ordinal grade scale, best first.
var QualityGrades = []string{"Ex", "Gd", "TA", "Fa", "Po"}

const (
	defaultNeighborhood = "NAmes"
	defaultQuality      = "TA"
)

var housing = model.MustNewSchema(
	boundedInt(FieldOverallQual, "Overall Quality (1-10)", 1, 10),
	minInt(FieldGrLivArea, "Ground Living Area (sq ft)", 100),
	boundedInt(FieldGarageCars, "Garage Cars", 0, 5),
	minInt(FieldTotalBsmtSF, "Total Basement Area (sq ft)", 0),
	boundedInt(FieldFullBath, "Full Bathrooms", 0, 10),
	boundedInt(FieldYearBuilt, "Year Built", 1800, 2025),
	boundedInt(FieldYearRemodAdd, "Year Remodeled", 1800, 2025),
	minInt(FieldLotArea, "Lot Area (sq ft)", 100),
	categorical(FieldNeighborhood, "Neighborhood", Neighborhoods, defaultNeighborhood),
	categorical(FieldExterQual, "Exterior Quality", QualityGrades, defaultQuality),
	categorical(FieldBsmtQual, "Basement Quality", QualityGrades, defaultQuality),
	categorical(FieldKitchenQual, "Kitchen Quality", QualityGrades, defaultQuality),
	boundedInt(FieldFireplaces, "Fireplaces", 0, 5),
	minInt(FieldGarageArea, "Garage Area (sq ft)", 0),
)

// Housing returns the 14-field schema of the price prediction form.
func Housing() model.Schema {
	return housing
}

func boundedInt(name, label string, lo, hi int) model.FieldDefinition {
	return model.FieldDefinition{
		Name:        name,
		Kind:        model.FieldKindBoundedInteger,
		Label:       label,
		Placeholder: label,
		Min:         model.Bound(lo),
		Max:         model.Bound(hi),
	}
}

func minInt(name, label string, lo int) model.FieldDefinition {
	return model.FieldDefinition{
		Name:        name,
		Kind:        model.FieldKindInteger,
		Label:       label,
		Placeholder: label,
		Min:         model.Bound(lo),
	}
}

func categorical(name, label string, options []string, def string) model.FieldDefinition {
	return model.FieldDefinition{
		Name:    name,
		Kind:    model.FieldKindCategorical,
		Label:   label,
		Options: options,
		Default: def,
	}
}
