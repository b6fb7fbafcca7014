package persistence

import (
	"context"

	"github.com/campaign/backend/internal/domain/catalog"
	"github.com/campaign/backend/internal/domain/shared"
	"github.com/campaign/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const productNotFound = "product not found"

// GormProductRepository implements ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// FindByID finds a product by its ID
func (r *GormProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	var model models.ProductModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, notFound(err, productNotFound)
	}
	return model.ToDomain(), nil
}

// FindByBarcode finds a product by its barcode
func (r *GormProductRepository) FindByBarcode(ctx context.Context, barcode string) (*catalog.Product, error) {
	if barcode == "" {
		return nil, shared.NewValidationError("Barcode cannot be empty")
	}
	var model models.ProductModel
	if err := r.db.WithContext(ctx).Where("barcode = ?", barcode).First(&model).Error; err != nil {
		return nil, notFound(err, productNotFound)
	}
	return model.ToDomain(), nil
}

// FindAll lists products ordered by the filter
func (r *GormProductRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Product, error) {
	var rows []models.ProductModel
	query := r.db.WithContext(ctx).Model(&models.ProductModel{})
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name LIKE ? OR barcode LIKE ?", pattern, pattern)
	}
	if err := applyFilter(query, filter, productSort, "created_at").Find(&rows).Error; err != nil {
		return nil, err
	}
	products := make([]catalog.Product, 0, len(rows))
	for i := range rows {
		products = append(products, *rows[i].ToDomain())
	}
	return products, nil
}

// Create inserts a new product
func (r *GormProductRepository) Create(ctx context.Context, product *catalog.Product) error {
	if err := r.db.WithContext(ctx).Create(models.ProductModelFromDomain(product)).Error; err != nil {
		if isDuplicateKey(err) {
			return shared.NewConflictError("A product with this barcode already exists")
		}
		return err
	}
	return nil
}

// CreateOrGet inserts the product with ON CONFLICT (barcode) DO NOTHING and
// then reads back the stored row, so concurrent callers converge on one record.
func (r *GormProductRepository) CreateOrGet(ctx context.Context, product *catalog.Product) (*catalog.Product, error) {
	model := models.ProductModelFromDomain(product)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "barcode"}},
			DoNothing: true,
		}).
		Create(model).Error
	if err != nil {
		return nil, err
	}
	return r.FindByBarcode(ctx, product.Barcode)
}

// Save updates an existing product
func (r *GormProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	model := models.ProductModelFromDomain(product)
	result := r.db.WithContext(ctx).Model(model).
		Select("name", "weight_value", "weight_unit", "updated_at").
		Updates(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NewNotFoundError(productNotFound)
	}
	return nil
}

// Delete deletes a product together with its campaign associations
func (r *GormProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&models.CampaignProductModel{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.ProductModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.NewNotFoundError(productNotFound)
		}
		return nil
	})
}

// Ensure GormProductRepository implements ProductRepository
var _ catalog.ProductRepository = (*GormProductRepository)(nil)
