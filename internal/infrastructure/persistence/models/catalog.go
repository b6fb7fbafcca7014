package models

import (
	"github.com/campaign/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// ProductModel is the persistence model for the Product domain entity.
type ProductModel struct {
	BaseModel
	Barcode     string                `gorm:"type:varchar(64);not null;uniqueIndex:idx_products_barcode"`
	Name        string                `gorm:"type:varchar(255);not null"`
	WeightValue decimal.Decimal       `gorm:"type:decimal(18,4);not null"`
	WeightUnit  catalog.WeightUnit    `gorm:"type:varchar(10);not null"`
	Source      catalog.ProductSource `gorm:"type:varchar(20);not null"`
	ExternalID  string                `gorm:"type:varchar(64)"`
}

// TableName returns the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain converts the persistence model to a domain Product entity.
func (m *ProductModel) ToDomain() *catalog.Product {
	return &catalog.Product{
		BaseEntity:  m.BaseModel.ToDomain(),
		Barcode:     m.Barcode,
		Name:        m.Name,
		WeightValue: m.WeightValue,
		WeightUnit:  m.WeightUnit,
		Source:      m.Source,
		ExternalID:  m.ExternalID,
	}
}

// FromDomain populates the persistence model from a domain Product entity.
func (m *ProductModel) FromDomain(p *catalog.Product) {
	m.FromDomainBaseEntity(p.BaseEntity)
	m.Barcode = p.Barcode
	m.Name = p.Name
	m.WeightValue = p.WeightValue
	m.WeightUnit = p.WeightUnit
	m.Source = p.Source
	m.ExternalID = p.ExternalID
}

// ProductModelFromDomain creates a new persistence model from a domain Product entity.
func ProductModelFromDomain(p *catalog.Product) *ProductModel {
	m := &ProductModel{}
	m.FromDomain(p)
	return m
}
