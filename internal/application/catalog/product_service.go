package catalog

import (
	"context"
	"strings"

	"github.com/campaign/backend/internal/domain/catalog"
	"github.com/campaign/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ProductService handles product-related business operations
type ProductService struct {
	productRepo catalog.ProductRepository
	resolver    *ProductResolver
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository, resolver *ProductResolver) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		resolver:    resolver,
	}
}

// Create registers a product by hand
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	unit, err := catalog.ParseWeightUnit(req.WeightUnit)
	if err != nil {
		return nil, err
	}
	product, err := catalog.NewProduct(req.Codebar, req.Name, req.WeightValue, unit)
	if err != nil {
		return nil, err
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	resp := ToProductResponse(product)
	return &resp, nil
}

// GetByID returns a product by ID
func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToProductResponse(product)
	return &resp, nil
}

// GetByBarcode returns the locally stored product for a barcode
func (s *ProductService) GetByBarcode(ctx context.Context, codebar string) (*ProductResponse, error) {
	codebar = strings.TrimSpace(codebar)
	if err := catalog.ValidateBarcode(codebar); err != nil {
		return nil, err
	}
	product, err := s.productRepo.FindByBarcode(ctx, codebar)
	if err != nil {
		return nil, err
	}
	resp := ToProductResponse(product)
	return &resp, nil
}

// Resolve returns the product for a barcode, importing it from the catalog if needed
func (s *ProductService) Resolve(ctx context.Context, codebar string) (*ProductResponse, error) {
	product, err := s.resolver.Resolve(ctx, codebar)
	if err != nil {
		return nil, err
	}
	resp := ToProductResponse(product)
	return &resp, nil
}

// List returns products matching filter
func (s *ProductService) List(ctx context.Context, filter shared.Filter) ([]ProductResponse, error) {
	products, err := s.productRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	return ToProductResponses(products), nil
}

// Update applies a partial update to a product
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name := product.Name
	if req.Name != nil {
		name = *req.Name
	}
	value := product.WeightValue
	if req.WeightValue != nil {
		value = *req.WeightValue
	}
	unit := product.WeightUnit
	if req.WeightUnit != nil {
		if unit, err = catalog.ParseWeightUnit(*req.WeightUnit); err != nil {
			return nil, err
		}
	}

	if err := product.Update(name, value, unit); err != nil {
		return nil, err
	}
	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}
	resp := ToProductResponse(product)
	return &resp, nil
}

// Delete removes a product and its campaign associations
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.productRepo.Delete(ctx, id)
}
