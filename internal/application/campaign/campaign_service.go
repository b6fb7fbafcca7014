package campaign

import (
	"context"

	"github.com/campaign/backend/internal/domain/campaign"
	"github.com/campaign/backend/internal/domain/catalog"
	"github.com/campaign/backend/internal/domain/shared"
	"github.com/campaign/backend/internal/infrastructure/logger"
	"github.com/campaign/backend/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ProductResolver finds or imports the product stored under a barcode
type ProductResolver interface {
	Resolve(ctx context.Context, codebar string) (*catalog.Product, error)
}

// CampaignService handles campaign-related business operations
type CampaignService struct {
	campaignRepo campaign.CampaignRepository
	linkRepo     campaign.CampaignProductRepository
	resolver     ProductResolver
	metrics      *telemetry.Metrics
}

// NewCampaignService creates a new CampaignService
func NewCampaignService(
	campaignRepo campaign.CampaignRepository,
	linkRepo campaign.CampaignProductRepository,
	resolver ProductResolver,
	metrics *telemetry.Metrics,
) *CampaignService {
	return &CampaignService{
		campaignRepo: campaignRepo,
		linkRepo:     linkRepo,
		resolver:     resolver,
		metrics:      metrics,
	}
}

// Create creates an empty campaign
func (s *CampaignService) Create(ctx context.Context, req CreateCampaignRequest) (*CampaignResponse, error) {
	c, err := campaign.NewCampaign(req.Name, req.Description)
	if err != nil {
		return nil, err
	}
	if err := s.campaignRepo.Save(ctx, c); err != nil {
		return nil, err
	}
	resp := ToCampaignResponse(c)
	return &resp, nil
}

// Update renames a campaign
func (s *CampaignService) Update(ctx context.Context, id uuid.UUID, req UpdateCampaignRequest) (*CampaignResponse, error) {
	c, err := s.campaignRepo.FindWithProducts(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := c.Rename(req.Name, req.Description); err != nil {
		return nil, err
	}
	if err := s.campaignRepo.Save(ctx, c); err != nil {
		return nil, err
	}
	resp := ToCampaignResponse(c)
	return &resp, nil
}

// List returns campaigns with their products
func (s *CampaignService) List(ctx context.Context, filter shared.Filter) ([]CampaignResponse, error) {
	campaigns, err := s.campaignRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]CampaignResponse, len(campaigns))
	for i := range campaigns {
		out[i] = ToCampaignResponse(&campaigns[i])
	}
	return out, nil
}

// ListNames returns the id and name of every campaign
func (s *CampaignService) ListNames(ctx context.Context) ([]CampaignNameResponse, error) {
	names, err := s.campaignRepo.FindNames(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]CampaignNameResponse, len(names))
	for i, n := range names {
		out[i] = CampaignNameResponse{ID: n.ID, Name: n.Name}
	}
	return out, nil
}

// Delete removes a campaign and its associations
func (s *CampaignService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.campaignRepo.Delete(ctx, id)
}

// AddProduct puts the product with the given barcode into a campaign.
// Adding a product that is already there replaces its quantity.
func (s *CampaignService) AddProduct(ctx context.Context, campaignID uuid.UUID, req AddProductRequest) (*CampaignProductResponse, error) {
	if err := campaign.ValidateQuantity(req.Quantity); err != nil {
		return nil, err
	}

	ctx, span := telemetry.StartServiceSpan(ctx, "campaign", "add_product",
		telemetry.WithAttribute(telemetry.SpanAttrCampaignID, campaignID.String()),
		telemetry.WithAttribute(telemetry.SpanAttrBarcode, req.Codebar),
		telemetry.WithAttribute(telemetry.SpanAttrQuantity, req.Quantity),
	)
	defer span.End()

	c, err := s.campaignRepo.FindByID(ctx, campaignID)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	product, err := s.resolver.Resolve(ctx, req.Codebar)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	telemetry.SetAttributes(span, telemetry.SpanAttrProductID, product.ID.String())

	link, err := campaign.NewCampaignProduct(c.ID, product, req.Quantity)
	if err != nil {
		return nil, err
	}
	stored, err := s.linkRepo.Upsert(ctx, link)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	s.metrics.IncAssociationUpsert(ctx)
	telemetry.SetOK(span)

	logger.L(ctx).Info("Product added to campaign",
		zap.String("campaign_id", c.ID.String()),
		zap.String("product_id", product.ID.String()),
		zap.Int("quantity", stored.Quantity),
	)

	resp := ToCampaignProductResponse(stored)
	return &resp, nil
}

// RemoveProduct removes one product from a campaign
func (s *CampaignService) RemoveProduct(ctx context.Context, campaignID, productID uuid.UUID) error {
	return s.linkRepo.Delete(ctx, campaignID, productID)
}

// GetDashboard aggregates a campaign's products into totals
func (s *CampaignService) GetDashboard(ctx context.Context, campaignID uuid.UUID) (*DashboardResponse, error) {
	c, err := s.campaignRepo.FindWithProducts(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	d, err := campaign.BuildDashboard(c)
	if err != nil {
		return nil, err
	}
	resp := ToDashboardResponse(d)
	return &resp, nil
}
