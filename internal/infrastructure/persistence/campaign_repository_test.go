package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/campaign/backend/internal/domain/campaign"
	"github.com/campaign/backend/internal/domain/catalog"
	"github.com/campaign/backend/internal/domain/shared"
	"github.com/campaign/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type campaignFixture struct {
	db        *Database
	campaigns *GormCampaignRepository
	links     *GormCampaignProductRepository
	products  *GormProductRepository
}

func newCampaignFixture(t *testing.T) *campaignFixture {
	db := newTestDatabase(t)
	return &campaignFixture{
		db:        db,
		campaigns: NewGormCampaignRepository(db.DB),
		links:     NewGormCampaignProductRepository(db.DB),
		products:  NewGormProductRepository(db.DB),
	}
}

func (f *campaignFixture) addProduct(t *testing.T, c *campaign.Campaign, p *catalog.Product, q int) *campaign.CampaignProduct {
	t.Helper()
	cp, err := campaign.NewCampaignProduct(c.ID, p, q)
	require.NoError(t, err)
	stored, err := f.links.Upsert(context.Background(), cp)
	require.NoError(t, err)
	return stored
}

func TestGormCampaignRepository_SaveAndFind(t *testing.T) {
	f := newCampaignFixture(t)
	ctx := context.Background()

	c := newTestCampaign(t, "Campanha 1")
	require.NoError(t, f.campaigns.Save(ctx, c))

	stored, err := f.campaigns.FindByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Campanha 1", stored.Name)
	assert.Empty(t, stored.Products)

	_, err = f.campaigns.FindByID(ctx, uuid.New())
	assert.True(t, errors.Is(err, shared.ErrNotFound))
	_, err = f.campaigns.FindWithProducts(ctx, uuid.New())
	assert.True(t, errors.Is(err, shared.ErrNotFound))
}

func TestGormCampaignProductRepository_UpsertReplacesQuantity(t *testing.T) {
	f := newCampaignFixture(t)
	ctx := context.Background()

	c := newTestCampaign(t, "Campanha 1")
	require.NoError(t, f.campaigns.Save(ctx, c))
	p := newTestProduct(t, "12345", "Produto 1", 2, catalog.WeightUnitKilogram)
	require.NoError(t, f.products.Create(ctx, p))

	first := f.addProduct(t, c, p, 5)
	second := f.addProduct(t, c, p, 2)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 2, second.Quantity)
	require.NotNil(t, second.Product)
	assert.Equal(t, "Produto 1", second.Product.Name)

	var count int64
	require.NoError(t, f.db.DB.Model(&models.CampaignProductModel{}).
		Where("campaign_id = ? AND product_id = ?", c.ID, p.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestGormCampaignRepository_FindWithProductsKeepsInsertionOrder(t *testing.T) {
	f := newCampaignFixture(t)
	ctx := context.Background()

	c := newTestCampaign(t, "Ordem")
	require.NoError(t, f.campaigns.Save(ctx, c))
	names := []string{"Zebra", "Arroz", "Macarrão"}
	for i, name := range names {
		p := newTestProduct(t, name, name, int64(i+1), catalog.WeightUnitGram)
		require.NoError(t, f.products.Create(ctx, p))
		f.addProduct(t, c, p, i+1)
	}

	loaded, err := f.campaigns.FindWithProducts(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Products, 3)
	for i, cp := range loaded.Products {
		require.NotNil(t, cp.Product)
		assert.Equal(t, names[i], cp.Product.Name)
		assert.Equal(t, i+1, cp.Quantity)
	}
}

func TestGormCampaignRepository_FindAllAndNames(t *testing.T) {
	f := newCampaignFixture(t)
	ctx := context.Background()

	b := newTestCampaign(t, "Campanha B")
	a := newTestCampaign(t, "Campanha A")
	require.NoError(t, f.campaigns.Save(ctx, b))
	require.NoError(t, f.campaigns.Save(ctx, a))
	p := newTestProduct(t, "1", "Produto 1", 1, catalog.WeightUnitKilogram)
	require.NoError(t, f.products.Create(ctx, p))
	f.addProduct(t, b, p, 1)

	all, err := f.campaigns.FindAll(ctx, shared.Filter{OrderBy: "name"})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Campanha A", all[0].Name)
	require.Len(t, all[1].Products, 1)
	assert.Equal(t, "Produto 1", all[1].Products[0].Product.Name)

	names, err := f.campaigns.FindNames(ctx)
	require.NoError(t, err)
	require.Len(t, names, 2)
	assert.Equal(t, "Campanha A", names[0].Name)
	assert.Equal(t, a.ID, names[0].ID)
}

func TestGormCampaignRepository_DeleteCascadesAssociations(t *testing.T) {
	f := newCampaignFixture(t)
	ctx := context.Background()

	c := newTestCampaign(t, "Temporária")
	require.NoError(t, f.campaigns.Save(ctx, c))
	p := newTestProduct(t, "1", "Produto 1", 1, catalog.WeightUnitKilogram)
	require.NoError(t, f.products.Create(ctx, p))
	f.addProduct(t, c, p, 3)

	require.NoError(t, f.campaigns.Delete(ctx, c.ID))

	_, err := f.links.FindByCampaignAndProduct(ctx, c.ID, p.ID)
	assert.True(t, errors.Is(err, shared.ErrNotFound))
	_, err = f.products.FindByID(ctx, p.ID)
	assert.NoError(t, err, "products are not owned by campaigns")

	assert.True(t, errors.Is(f.campaigns.Delete(ctx, c.ID), shared.ErrNotFound))
}

func TestGormProductRepository_DeleteRemovesAssociations(t *testing.T) {
	f := newCampaignFixture(t)
	ctx := context.Background()

	c := newTestCampaign(t, "Campanha")
	require.NoError(t, f.campaigns.Save(ctx, c))
	p := newTestProduct(t, "1", "Produto 1", 1, catalog.WeightUnitKilogram)
	require.NoError(t, f.products.Create(ctx, p))
	f.addProduct(t, c, p, 3)

	require.NoError(t, f.products.Delete(ctx, p.ID))

	loaded, err := f.campaigns.FindWithProducts(ctx, c.ID)
	require.NoError(t, err)
	assert.Empty(t, loaded.Products)
}

func TestGormCampaignProductRepository_Delete(t *testing.T) {
	f := newCampaignFixture(t)
	ctx := context.Background()

	c := newTestCampaign(t, "Campanha")
	require.NoError(t, f.campaigns.Save(ctx, c))
	p := newTestProduct(t, "1", "Produto 1", 1, catalog.WeightUnitKilogram)
	require.NoError(t, f.products.Create(ctx, p))
	f.addProduct(t, c, p, 3)

	require.NoError(t, f.links.Delete(ctx, c.ID, p.ID))
	assert.True(t, errors.Is(f.links.Delete(ctx, c.ID, p.ID), shared.ErrNotFound))
}
