package campaign

import (
	"github.com/campaign/backend/internal/domain/catalog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DashboardLine is one association in a campaign dashboard
type DashboardLine struct {
	ProductID        uuid.UUID
	Barcode          string
	Name             string
	Quantity         int
	NormalizedWeight decimal.Decimal
}

// Dashboard summarises a campaign's associations
type Dashboard struct {
	CampaignID    uuid.UUID
	CampaignName  string
	TotalProducts int
	TotalWeight   decimal.Decimal
	WeightUnit    catalog.WeightUnit
	Lines         []DashboardLine
}

// BuildDashboard aggregates the campaign's loaded associations in order.
// TotalProducts counts associations, not quantities.
func BuildDashboard(c *Campaign) (*Dashboard, error) {
	d := &Dashboard{
		CampaignID:    c.ID,
		CampaignName:  c.Name,
		TotalProducts: len(c.Products),
		TotalWeight:   decimal.Zero,
		WeightUnit:    catalog.CanonicalUnit,
		Lines:         make([]DashboardLine, 0, len(c.Products)),
	}
	for i := range c.Products {
		cp := &c.Products[i]
		weight, err := cp.NormalizedWeight()
		if err != nil {
			return nil, err
		}
		d.TotalWeight = d.TotalWeight.Add(weight)
		d.Lines = append(d.Lines, DashboardLine{
			ProductID:        cp.ProductID,
			Barcode:          cp.Product.Barcode,
			Name:             cp.Product.Name,
			Quantity:         cp.Quantity,
			NormalizedWeight: weight,
		})
	}
	return d, nil
}
