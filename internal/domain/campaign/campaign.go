package campaign

import (
	"strings"

	"github.com/campaign/backend/internal/domain/catalog"
	"github.com/campaign/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Campaign is a named grouping of products with per-product quantities
type Campaign struct {
	shared.BaseEntity
	Name        string
	Description string
	Products    []CampaignProduct
}

// CampaignProduct associates one product with one campaign under a quantity.
// At most one exists per (campaign, product) pair.
type CampaignProduct struct {
	shared.BaseEntity
	CampaignID uuid.UUID
	ProductID  uuid.UUID
	Quantity   int
	Product    *catalog.Product
}

// NewCampaign creates an empty campaign
func NewCampaign(name, description string) (*Campaign, error) {
	name = strings.TrimSpace(name)
	if err := validateCampaignName(name); err != nil {
		return nil, err
	}
	return &Campaign{
		BaseEntity:  shared.NewBaseEntity(),
		Name:        name,
		Description: strings.TrimSpace(description),
	}, nil
}

// Rename changes the campaign name and description
func (c *Campaign) Rename(name, description string) error {
	name = strings.TrimSpace(name)
	if err := validateCampaignName(name); err != nil {
		return err
	}
	c.Name = name
	c.Description = strings.TrimSpace(description)
	c.Touch()
	return nil
}

// NewCampaignProduct creates an association; quantity must be positive
func NewCampaignProduct(campaignID uuid.UUID, product *catalog.Product, quantity int) (*CampaignProduct, error) {
	if err := ValidateQuantity(quantity); err != nil {
		return nil, err
	}
	if product == nil {
		return nil, shared.NewValidationError("Product is required")
	}
	return &CampaignProduct{
		BaseEntity: shared.NewBaseEntity(),
		CampaignID: campaignID,
		ProductID:  product.ID,
		Quantity:   quantity,
		Product:    product,
	}, nil
}

// NormalizedWeight is the association's total weight in catalog.CanonicalUnit
func (cp *CampaignProduct) NormalizedWeight() (decimal.Decimal, error) {
	if cp.Product == nil {
		return decimal.Zero, shared.NewValidationError("Association has no product loaded")
	}
	unitWeight, err := cp.Product.NormalizedWeight()
	if err != nil {
		return decimal.Zero, err
	}
	return unitWeight.Mul(decimal.NewFromInt(int64(cp.Quantity))), nil
}

// ValidateQuantity checks that a quantity is a positive integer
func ValidateQuantity(quantity int) error {
	if quantity <= 0 {
		return shared.NewValidationError("Quantity must be a positive integer")
	}
	return nil
}

func validateCampaignName(name string) error {
	if name == "" {
		return shared.NewValidationError("Campaign name cannot be empty")
	}
	if len([]rune(name)) > 200 {
		return shared.NewValidationError("Campaign name cannot exceed 200 characters")
	}
	return nil
}
