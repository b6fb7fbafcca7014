package catalog

import (
	"encoding/json"
	"time"

	"github.com/campaign/backend/internal/domain/catalog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateProductRequest represents a request to register a product manually
type CreateProductRequest struct {
	Codebar     string          `json:"codebar" binding:"required,max=64"`
	Name        string          `json:"name" binding:"required,min=1,max=200"`
	WeightValue decimal.Decimal `json:"weight_value"`
	WeightUnit  string          `json:"weight_unit" binding:"required,max=10"`
}

// UpdateProductRequest represents a partial product update; the barcode cannot change
type UpdateProductRequest struct {
	Name        *string          `json:"name" binding:"omitempty,min=1,max=200"`
	WeightValue *decimal.Decimal `json:"weight_value"`
	WeightUnit  *string          `json:"weight_unit" binding:"omitempty,max=10"`
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID          uuid.UUID   `json:"id"`
	Codebar     string      `json:"codebar"`
	Name        string      `json:"name"`
	WeightValue json.Number `json:"weight_value" swaggertype:"number"`
	WeightUnit  string      `json:"weight_unit"`
	Source      string      `json:"source"`
	ExternalID  string      `json:"external_id,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// ToProductResponse converts a domain product to a response
func ToProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Codebar:     p.Barcode,
		Name:        p.Name,
		WeightValue: DecimalNumber(p.WeightValue),
		WeightUnit:  p.WeightUnit.String(),
		Source:      string(p.Source),
		ExternalID:  p.ExternalID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ToProductResponses converts a list of domain products to responses
func ToProductResponses(products []catalog.Product) []ProductResponse {
	out := make([]ProductResponse, len(products))
	for i := range products {
		out[i] = ToProductResponse(&products[i])
	}
	return out
}

// DecimalNumber renders d as an exact JSON number
func DecimalNumber(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}
