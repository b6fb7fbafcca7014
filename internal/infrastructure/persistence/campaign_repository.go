package persistence

import (
	"context"

	"github.com/campaign/backend/internal/domain/campaign"
	"github.com/campaign/backend/internal/domain/shared"
	"github.com/campaign/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const campaignNotFound = "campaign not found"

// GormCampaignRepository implements CampaignRepository using GORM
type GormCampaignRepository struct {
	db *gorm.DB
}

// NewGormCampaignRepository creates a new GormCampaignRepository
func NewGormCampaignRepository(db *gorm.DB) *GormCampaignRepository {
	return &GormCampaignRepository{db: db}
}

// withProducts preloads associations in insertion order with their products
func withProducts(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Products", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("campaign_products.created_at ASC, campaign_products.id ASC")
		}).
		Preload("Products.Product")
}

// FindByID finds a campaign without its associations
func (r *GormCampaignRepository) FindByID(ctx context.Context, id uuid.UUID) (*campaign.Campaign, error) {
	var model models.CampaignModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, notFound(err, campaignNotFound)
	}
	return model.ToDomain(), nil
}

// FindWithProducts finds a campaign with its associations and their products
func (r *GormCampaignRepository) FindWithProducts(ctx context.Context, id uuid.UUID) (*campaign.Campaign, error) {
	var model models.CampaignModel
	if err := withProducts(r.db.WithContext(ctx)).First(&model, "id = ?", id).Error; err != nil {
		return nil, notFound(err, campaignNotFound)
	}
	return model.ToDomain(), nil
}

// FindAll lists campaigns with their associations and products
func (r *GormCampaignRepository) FindAll(ctx context.Context, filter shared.Filter) ([]campaign.Campaign, error) {
	var rows []models.CampaignModel
	query := withProducts(r.db.WithContext(ctx).Model(&models.CampaignModel{}))
	if filter.Search != "" {
		query = query.Where("name LIKE ?", "%"+filter.Search+"%")
	}
	if err := applyFilter(query, filter, campaignSort, "created_at").Find(&rows).Error; err != nil {
		return nil, err
	}
	campaigns := make([]campaign.Campaign, 0, len(rows))
	for i := range rows {
		campaigns = append(campaigns, *rows[i].ToDomain())
	}
	return campaigns, nil
}

// FindNames lists the id and name of every campaign, ordered by name
func (r *GormCampaignRepository) FindNames(ctx context.Context) ([]campaign.CampaignSummary, error) {
	var rows []campaign.CampaignSummary
	if err := r.db.WithContext(ctx).
		Model(&models.CampaignModel{}).
		Select("id", "name").
		Order("name ASC, id ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []campaign.CampaignSummary{}
	}
	return rows, nil
}

// Save creates or updates a campaign; associations are left untouched
func (r *GormCampaignRepository) Save(ctx context.Context, c *campaign.Campaign) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(models.CampaignModelFromDomain(c)).Error
}

// Delete deletes a campaign together with its associations
func (r *GormCampaignRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("campaign_id = ?", id).Delete(&models.CampaignProductModel{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.CampaignModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.NewNotFoundError(campaignNotFound)
		}
		return nil
	})
}

// GormCampaignProductRepository implements CampaignProductRepository using GORM
type GormCampaignProductRepository struct {
	db *gorm.DB
}

// NewGormCampaignProductRepository creates a new GormCampaignProductRepository
func NewGormCampaignProductRepository(db *gorm.DB) *GormCampaignProductRepository {
	return &GormCampaignProductRepository{db: db}
}

// FindByCampaignAndProduct finds the association for a pair, with its product
func (r *GormCampaignProductRepository) FindByCampaignAndProduct(ctx context.Context, campaignID, productID uuid.UUID) (*campaign.CampaignProduct, error) {
	var model models.CampaignProductModel
	if err := r.db.WithContext(ctx).
		Preload("Product").
		Where("campaign_id = ? AND product_id = ?", campaignID, productID).
		First(&model).Error; err != nil {
		return nil, notFound(err, "campaign product not found")
	}
	return model.ToDomain(), nil
}

// Upsert inserts the association or, when the pair already exists, replaces
// its quantity in the same statement. The stored row is returned.
func (r *GormCampaignProductRepository) Upsert(ctx context.Context, cp *campaign.CampaignProduct) (*campaign.CampaignProduct, error) {
	model := models.CampaignProductModelFromDomain(cp)
	err := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "campaign_id"}, {Name: "product_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"quantity", "updated_at"}),
		}).
		Create(model).Error
	if err != nil {
		return nil, err
	}
	return r.FindByCampaignAndProduct(ctx, cp.CampaignID, cp.ProductID)
}

// Delete removes the association for a pair
func (r *GormCampaignProductRepository) Delete(ctx context.Context, campaignID, productID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("campaign_id = ? AND product_id = ?", campaignID, productID).
		Delete(&models.CampaignProductModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NewNotFoundError("campaign product not found")
	}
	return nil
}

var (
	_ campaign.CampaignRepository        = (*GormCampaignRepository)(nil)
	_ campaign.CampaignProductRepository = (*GormCampaignProductRepository)(nil)
)
