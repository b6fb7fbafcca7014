package catalog

import (
	"context"

	"github.com/campaign/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ProductRepository defines the interface for product persistence
type ProductRepository interface {
	// FindByID finds a product by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)

	// FindByBarcode finds a product by its unique barcode
	FindByBarcode(ctx context.Context, barcode string) (*Product, error)

	// FindAll lists products matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Product, error)

	// Create inserts a new product; a duplicate barcode is a conflict
	Create(ctx context.Context, product *Product) error

	// CreateOrGet inserts the product unless one with the same barcode
	// already exists, and returns whichever record is stored.
	CreateOrGet(ctx context.Context, product *Product) (*Product, error)

	// Save updates an existing product
	Save(ctx context.Context, product *Product) error

	// Delete deletes a product and its campaign associations
	Delete(ctx context.Context, id uuid.UUID) error
}
