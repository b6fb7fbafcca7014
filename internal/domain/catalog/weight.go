package catalog

import (
	"strings"

	"github.com/campaign/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// WeightUnit is the unit a product's weight value is expressed in.
type WeightUnit string

const (
	WeightUnitKilogram   WeightUnit = "kg"
	WeightUnitGram       WeightUnit = "g"
	WeightUnitLiter      WeightUnit = "l"
	WeightUnitMilliliter WeightUnit = "ml"
	WeightUnitUnit       WeightUnit = "unit"
)

// CanonicalUnit is the unit every normalized weight is expressed in.
const CanonicalUnit = WeightUnitGram

// Volume units share the mass scale factors (1 l sums as 1 kg); there is no
// density conversion.
var unitFactors = map[WeightUnit]decimal.Decimal{
	WeightUnitKilogram:   decimal.NewFromInt(1000),
	WeightUnitGram:       decimal.NewFromInt(1),
	WeightUnitLiter:      decimal.NewFromInt(1000),
	WeightUnitMilliliter: decimal.NewFromInt(1),
	WeightUnitUnit:       decimal.NewFromInt(1),
}

var unitAliases = map[string]WeightUnit{
	"kg":         WeightUnitKilogram,
	"kgs":        WeightUnitKilogram,
	"kilogram":   WeightUnitKilogram,
	"kilograms":  WeightUnitKilogram,
	"g":          WeightUnitGram,
	"gr":         WeightUnitGram,
	"gram":       WeightUnitGram,
	"grams":      WeightUnitGram,
	"l":          WeightUnitLiter,
	"lt":         WeightUnitLiter,
	"liter":      WeightUnitLiter,
	"litre":      WeightUnitLiter,
	"ml":         WeightUnitMilliliter,
	"milliliter": WeightUnitMilliliter,
	"millilitre": WeightUnitMilliliter,
	"unit":       WeightUnitUnit,
	"un":         WeightUnitUnit,
	"pcs":        WeightUnitUnit,
}

// IsValid reports whether u is one of the supported units.
func (u WeightUnit) IsValid() bool {
	_, ok := unitFactors[u]
	return ok
}

func (u WeightUnit) String() string {
	return string(u)
}

// ParseWeightUnit resolves a unit name, case-insensitively and including the
// spellings the open food catalog uses, to a WeightUnit.
func ParseWeightUnit(s string) (WeightUnit, error) {
	if u, ok := unitAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return u, nil
	}
	return "", shared.NewValidationError("Unknown weight unit: " + s)
}

// Normalize converts value expressed in unit to CanonicalUnit.
func Normalize(value decimal.Decimal, unit WeightUnit) (decimal.Decimal, error) {
	factor, ok := unitFactors[unit]
	if !ok {
		return decimal.Zero, shared.NewValidationError("Unknown weight unit: " + string(unit))
	}
	return value.Mul(factor), nil
}
