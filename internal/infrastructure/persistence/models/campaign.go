package models

import (
	"github.com/campaign/backend/internal/domain/campaign"
	"github.com/google/uuid"
)

// CampaignModel is the persistence model for the Campaign domain entity.
type CampaignModel struct {
	BaseModel
	Name        string                 `gorm:"type:varchar(200);not null"`
	Description string                 `gorm:"type:text"`
	Products    []CampaignProductModel `gorm:"foreignKey:CampaignID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (CampaignModel) TableName() string {
	return "campaigns"
}

// ToDomain converts the persistence model, and any preloaded associations,
// to a domain Campaign entity.
func (m *CampaignModel) ToDomain() *campaign.Campaign {
	c := &campaign.Campaign{
		BaseEntity:  m.BaseModel.ToDomain(),
		Name:        m.Name,
		Description: m.Description,
		Products:    make([]campaign.CampaignProduct, 0, len(m.Products)),
	}
	for i := range m.Products {
		c.Products = append(c.Products, *m.Products[i].ToDomain())
	}
	return c
}

// FromDomain populates the persistence model from a domain Campaign entity.
// Associations are persisted through their own repository.
func (m *CampaignModel) FromDomain(c *campaign.Campaign) {
	m.FromDomainBaseEntity(c.BaseEntity)
	m.Name = c.Name
	m.Description = c.Description
}

// CampaignModelFromDomain creates a new persistence model from a domain Campaign entity.
func CampaignModelFromDomain(c *campaign.Campaign) *CampaignModel {
	m := &CampaignModel{}
	m.FromDomain(c)
	return m
}

// CampaignProductModel is the persistence model for the CampaignProduct association.
type CampaignProductModel struct {
	BaseModel
	CampaignID uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex:idx_campaign_products_pair,priority:1"`
	ProductID  uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex:idx_campaign_products_pair,priority:2;index"`
	Quantity   int           `gorm:"not null"`
	Product    *ProductModel `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (CampaignProductModel) TableName() string {
	return "campaign_products"
}

// ToDomain converts the persistence model to a domain CampaignProduct.
func (m *CampaignProductModel) ToDomain() *campaign.CampaignProduct {
	cp := &campaign.CampaignProduct{
		BaseEntity: m.BaseModel.ToDomain(),
		CampaignID: m.CampaignID,
		ProductID:  m.ProductID,
		Quantity:   m.Quantity,
	}
	if m.Product != nil {
		cp.Product = m.Product.ToDomain()
	}
	return cp
}

// FromDomain populates the persistence model from a domain CampaignProduct.
// The product reference is not copied; it is never written through the association.
func (m *CampaignProductModel) FromDomain(cp *campaign.CampaignProduct) {
	m.FromDomainBaseEntity(cp.BaseEntity)
	m.CampaignID = cp.CampaignID
	m.ProductID = cp.ProductID
	m.Quantity = cp.Quantity
}

// CampaignProductModelFromDomain creates a new persistence model from a domain CampaignProduct.
func CampaignProductModelFromDomain(cp *campaign.CampaignProduct) *CampaignProductModel {
	m := &CampaignProductModel{}
	m.FromDomain(cp)
	return m
}
