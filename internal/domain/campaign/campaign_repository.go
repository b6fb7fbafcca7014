package campaign

import (
	"context"

	"github.com/campaign/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CampaignSummary is the id and name of a campaign
type CampaignSummary struct {
	ID   uuid.UUID
	Name string
}

// CampaignRepository defines the interface for campaign persistence
type CampaignRepository interface {
	// FindByID finds a campaign without its associations
	FindByID(ctx context.Context, id uuid.UUID) (*Campaign, error)

	// FindWithProducts finds a campaign with its associations and their
	// products, associations ordered by creation
	FindWithProducts(ctx context.Context, id uuid.UUID) (*Campaign, error)

	// FindAll lists campaigns with their associations and products
	FindAll(ctx context.Context, filter shared.Filter) ([]Campaign, error)

	// FindNames lists the id and name of every campaign
	FindNames(ctx context.Context) ([]CampaignSummary, error)

	// Save creates or updates a campaign (not its associations)
	Save(ctx context.Context, campaign *Campaign) error

	// Delete deletes a campaign together with its associations
	Delete(ctx context.Context, id uuid.UUID) error
}

// CampaignProductRepository defines the interface for association persistence
type CampaignProductRepository interface {
	// FindByCampaignAndProduct finds the association for a pair
	FindByCampaignAndProduct(ctx context.Context, campaignID, productID uuid.UUID) (*CampaignProduct, error)

	// Upsert inserts the association, or replaces the quantity of the
	// existing one for the same pair, and returns the stored record
	Upsert(ctx context.Context, cp *CampaignProduct) (*CampaignProduct, error)

	// Delete removes the association for a pair
	Delete(ctx context.Context, campaignID, productID uuid.UUID) error
}
