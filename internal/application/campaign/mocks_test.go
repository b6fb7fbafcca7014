package campaign

import (
	"context"

	"github.com/campaign/backend/internal/domain/campaign"
	"github.com/campaign/backend/internal/domain/catalog"
	"github.com/campaign/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockCampaignRepository is a mock implementation of CampaignRepository
type MockCampaignRepository struct {
	mock.Mock
}

func (m *MockCampaignRepository) FindByID(ctx context.Context, id uuid.UUID) (*campaign.Campaign, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*campaign.Campaign), args.Error(1)
}

func (m *MockCampaignRepository) FindWithProducts(ctx context.Context, id uuid.UUID) (*campaign.Campaign, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*campaign.Campaign), args.Error(1)
}

func (m *MockCampaignRepository) FindAll(ctx context.Context, filter shared.Filter) ([]campaign.Campaign, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]campaign.Campaign), args.Error(1)
}

func (m *MockCampaignRepository) FindNames(ctx context.Context) ([]campaign.CampaignSummary, error) {
	args := m.Called(ctx)
	return args.Get(0).([]campaign.CampaignSummary), args.Error(1)
}

func (m *MockCampaignRepository) Save(ctx context.Context, c *campaign.Campaign) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCampaignRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCampaignProductRepository is a mock implementation of CampaignProductRepository
type MockCampaignProductRepository struct {
	mock.Mock
}

func (m *MockCampaignProductRepository) FindByCampaignAndProduct(ctx context.Context, campaignID, productID uuid.UUID) (*campaign.CampaignProduct, error) {
	args := m.Called(ctx, campaignID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*campaign.CampaignProduct), args.Error(1)
}

func (m *MockCampaignProductRepository) Upsert(ctx context.Context, cp *campaign.CampaignProduct) (*campaign.CampaignProduct, error) {
	args := m.Called(ctx, cp)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*campaign.CampaignProduct), args.Error(1)
}

func (m *MockCampaignProductRepository) Delete(ctx context.Context, campaignID, productID uuid.UUID) error {
	args := m.Called(ctx, campaignID, productID)
	return args.Error(0)
}

// MockProductResolver is a mock implementation of ProductResolver
type MockProductResolver struct {
	mock.Mock
}

func (m *MockProductResolver) Resolve(ctx context.Context, codebar string) (*catalog.Product, error) {
	args := m.Called(ctx, codebar)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}
