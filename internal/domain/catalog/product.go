package catalog

import (
	"strings"

	"github.com/campaign/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ProductSource records how a product entered the local catalog
type ProductSource string

const (
	ProductSourceManual        ProductSource = "manual"
	ProductSourceOpenFoodFacts ProductSource = "openfoodfacts"
)

// Product is a barcode-identified item that campaigns can include
type Product struct {
	shared.BaseEntity
	Barcode     string
	Name        string
	WeightValue decimal.Decimal
	WeightUnit  WeightUnit
	Source      ProductSource
	ExternalID  string
}

// NewProduct creates a manually registered product
func NewProduct(barcode, name string, weightValue decimal.Decimal, weightUnit WeightUnit) (*Product, error) {
	barcode = strings.TrimSpace(barcode)
	if err := ValidateBarcode(barcode); err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if err := validateProductName(name); err != nil {
		return nil, err
	}
	if err := validateWeight(weightValue, weightUnit); err != nil {
		return nil, err
	}

	return &Product{
		BaseEntity:  shared.NewBaseEntity(),
		Barcode:     barcode,
		Name:        name,
		WeightValue: weightValue,
		WeightUnit:  weightUnit,
		Source:      ProductSourceManual,
	}, nil
}

// Update replaces the mutable fields. The barcode never changes.
func (p *Product) Update(name string, weightValue decimal.Decimal, weightUnit WeightUnit) error {
	name = strings.TrimSpace(name)
	if err := validateProductName(name); err != nil {
		return err
	}
	if err := validateWeight(weightValue, weightUnit); err != nil {
		return err
	}

	p.Name = name
	p.WeightValue = weightValue
	p.WeightUnit = weightUnit
	p.Touch()
	return nil
}

// NormalizedWeight returns the weight of one unit of the product in CanonicalUnit
func (p *Product) NormalizedWeight() (decimal.Decimal, error) {
	return Normalize(p.WeightValue, p.WeightUnit)
}

// ValidateBarcode checks that a barcode is usable as a product key
func ValidateBarcode(barcode string) error {
	if barcode == "" {
		return shared.NewValidationError("Barcode cannot be empty")
	}
	if len(barcode) > 64 {
		return shared.NewValidationError("Barcode cannot exceed 64 characters")
	}
	return nil
}

func validateProductName(name string) error {
	if name == "" {
		return shared.NewValidationError("Product name cannot be empty")
	}
	if len([]rune(name)) > 255 {
		return shared.NewValidationError("Product name cannot exceed 255 characters")
	}
	return nil
}

func validateWeight(value decimal.Decimal, unit WeightUnit) error {
	if value.IsNegative() {
		return shared.NewValidationError("Weight value cannot be negative")
	}
	if !unit.IsValid() {
		return shared.NewValidationError("Unknown weight unit: " + string(unit))
	}
	return nil
}
