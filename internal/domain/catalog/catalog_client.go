package catalog

import (
	"context"
	"errors"
	"strings"

	"github.com/campaign/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

var (
	// ErrCatalogNotFound is returned when the catalog has no entry for a barcode
	ErrCatalogNotFound = errors.New("product not found in catalog")
	// ErrCatalogUnavailable is returned when the catalog cannot be reached or answers with an error
	ErrCatalogUnavailable = errors.New("catalog unavailable")
)

// FallbackWeightUnit is assumed when the catalog omits a quantity unit.
const FallbackWeightUnit = WeightUnitGram

// CatalogProduct is the subset of an external catalog entry used locally
type CatalogProduct struct {
	ExternalID   string `json:"external_id"`
	Barcode      string `json:"barcode"`
	Name         string `json:"name"`
	GenericName  string `json:"generic_name,omitempty"`
	Quantity     string `json:"quantity"`
	QuantityUnit string `json:"quantity_unit"`
}

// CatalogClient looks products up in an external catalog by barcode
type CatalogClient interface {
	// Lookup returns ErrCatalogNotFound on a miss and an error wrapping
	// ErrCatalogUnavailable when the catalog fails.
	Lookup(ctx context.Context, barcode string) (*CatalogProduct, error)
}

// NewProductFromCatalog maps a catalog entry into a local product.
// A missing unit falls back to FallbackWeightUnit; an unrecognised unit is
// kept as a counted unit; an unparseable quantity becomes zero.
func NewProductFromCatalog(barcode string, cp *CatalogProduct) (*Product, error) {
	name := strings.TrimSpace(cp.Name)
	if name == "" {
		name = strings.TrimSpace(cp.GenericName)
	}
	if name == "" {
		name = barcode
	}

	value := ParseCatalogQuantity(cp.Quantity)

	unit := FallbackWeightUnit
	if strings.TrimSpace(cp.QuantityUnit) != "" {
		parsed, err := ParseWeightUnit(cp.QuantityUnit)
		if err != nil {
			parsed = WeightUnitUnit
		}
		unit = parsed
	}

	product, err := NewProduct(barcode, name, value, unit)
	if err != nil {
		return nil, err
	}
	product.Source = ProductSourceOpenFoodFacts
	product.ExternalID = cp.ExternalID
	return product, nil
}

// ParseCatalogQuantity parses the free-form quantity string of a catalog
// entry ("100", "1,5", " 250 ") into a non-negative decimal, or zero.
func ParseCatalogQuantity(s string) decimal.Decimal {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// IsCatalogNotFound reports whether err is a catalog miss
func IsCatalogNotFound(err error) bool {
	return errors.Is(err, ErrCatalogNotFound)
}

// ToDomainError converts a catalog client failure into the matching domain error
func ToDomainError(err error) error {
	if IsCatalogNotFound(err) {
		return shared.NewNotFoundError(ErrCatalogNotFound.Error())
	}
	return shared.NewUpstreamError("catalog lookup failed", err)
}
