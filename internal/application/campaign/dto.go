package campaign

import (
	"encoding/json"
	"time"

	catalogapp "github.com/campaign/backend/internal/application/catalog"
	"github.com/campaign/backend/internal/domain/campaign"
	"github.com/google/uuid"
)

// CreateCampaignRequest represents a request to create a campaign
type CreateCampaignRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=200"`
	Description string `json:"description" binding:"max=2000"`
}

// UpdateCampaignRequest represents a request to rename a campaign
type UpdateCampaignRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=200"`
	Description string `json:"description" binding:"max=2000"`
}

// AddProductRequest adds a product to a campaign by barcode.
// Quantity is checked by the service so that a non-positive value is a
// validation error rather than a binding failure.
type AddProductRequest struct {
	Codebar  string `json:"codebar" binding:"required,max=64"`
	Quantity int    `json:"quantity"`
}

// CampaignResponse represents a campaign with its associations
type CampaignResponse struct {
	ID          uuid.UUID                 `json:"id"`
	Name        string                    `json:"name"`
	Description string                    `json:"description,omitempty"`
	Products    []CampaignProductResponse `json:"products"`
	CreatedAt   time.Time                 `json:"created_at"`
	UpdatedAt   time.Time                 `json:"updated_at"`
}

// CampaignProductResponse represents one product of a campaign
type CampaignProductResponse struct {
	ID         uuid.UUID                   `json:"id"`
	CampaignID uuid.UUID                   `json:"campaign_id"`
	Product    *catalogapp.ProductResponse `json:"product,omitempty"`
	Quantity   int                         `json:"quantity"`
	CreatedAt  time.Time                   `json:"created_at"`
	UpdatedAt  time.Time                   `json:"updated_at"`
}

// CampaignNameResponse is the id and name of a campaign
type CampaignNameResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// DashboardResponse summarises a campaign's products and total weight
type DashboardResponse struct {
	CampaignID    uuid.UUID               `json:"campaign_id"`
	CampaignName  string                  `json:"campaign_name"`
	TotalProducts int                     `json:"total_products"`
	TotalWeight   json.Number             `json:"total_weight" swaggertype:"number"`
	WeightUnit    string                  `json:"weight_unit"`
	Products      []DashboardLineResponse `json:"products"`
}

// DashboardLineResponse is one product line of a dashboard
type DashboardLineResponse struct {
	ProductID        uuid.UUID   `json:"product_id"`
	Barcode          string      `json:"barcode"`
	Name             string      `json:"name"`
	Quantity         int         `json:"quantity"`
	NormalizedWeight json.Number `json:"normalized_weight" swaggertype:"number"`
}

// ToCampaignResponse converts a domain campaign to a response
func ToCampaignResponse(c *campaign.Campaign) CampaignResponse {
	products := make([]CampaignProductResponse, len(c.Products))
	for i := range c.Products {
		products[i] = ToCampaignProductResponse(&c.Products[i])
	}
	return CampaignResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Products:    products,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// ToCampaignProductResponse converts an association to a response
func ToCampaignProductResponse(cp *campaign.CampaignProduct) CampaignProductResponse {
	resp := CampaignProductResponse{
		ID:         cp.ID,
		CampaignID: cp.CampaignID,
		Quantity:   cp.Quantity,
		CreatedAt:  cp.CreatedAt,
		UpdatedAt:  cp.UpdatedAt,
	}
	if cp.Product != nil {
		p := catalogapp.ToProductResponse(cp.Product)
		resp.Product = &p
	}
	return resp
}

// ToDashboardResponse converts a dashboard to a response
func ToDashboardResponse(d *campaign.Dashboard) DashboardResponse {
	lines := make([]DashboardLineResponse, len(d.Lines))
	for i, l := range d.Lines {
		lines[i] = DashboardLineResponse{
			ProductID:        l.ProductID,
			Barcode:          l.Barcode,
			Name:             l.Name,
			Quantity:         l.Quantity,
			NormalizedWeight: catalogapp.DecimalNumber(l.NormalizedWeight),
		}
	}
	return DashboardResponse{
		CampaignID:    d.CampaignID,
		CampaignName:  d.CampaignName,
		TotalProducts: d.TotalProducts,
		TotalWeight:   catalogapp.DecimalNumber(d.TotalWeight),
		WeightUnit:    d.WeightUnit.String(),
		Products:      lines,
	}
}
