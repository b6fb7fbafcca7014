package handler

import (
	campaignapp "github.com/campaign/backend/internal/application/campaign"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CampaignHandler handles campaign endpoints
type CampaignHandler struct {
	BaseHandler
	campaignService *campaignapp.CampaignService
}

// NewCampaignHandler creates a new CampaignHandler
func NewCampaignHandler(campaignService *campaignapp.CampaignService) *CampaignHandler {
	return &CampaignHandler{
		campaignService: campaignService,
	}
}

// List godoc
// @Summary      List campaigns
// @Description  Lists campaigns with their products and quantities
// @Tags         campaigns
// @Produce      json
// @Param        page      query int    false "Page number" default(1)
// @Param        page_size query int    false "Page size" default(50)
// @Param        search    query string false "Name fragment"
// @Success      200 {object} dto.Response{data=[]campaignapp.CampaignResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /campaigns [get]
func (h *CampaignHandler) List(c *gin.Context) {
	filter, err := listFilter(c)
	if err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}

	campaigns, err := h.campaignService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, campaigns, len(campaigns), filter.Page, filter.PageSize)
}

// ListNames godoc
// @Summary      List campaign names
// @Description  Returns the id and name of every campaign, ordered by name
// @Tags         campaigns
// @Produce      json
// @Success      200 {object} dto.Response{data=[]campaignapp.CampaignNameResponse}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /campaigns/names [get]
func (h *CampaignHandler) ListNames(c *gin.Context) {
	names, err := h.campaignService.ListNames(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, names)
}

// Dashboard godoc
// @Summary      Campaign dashboard
// @Description  Aggregates a campaign's products. Weights are normalized to grams and multiplied by quantity.
// @Tags         campaigns
// @Produce      json
// @Param        campaignId query string true "Campaign ID" format(uuid)
// @Success      200 {object} dto.Response{data=campaignapp.DashboardResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /campaigns/dashboard [get]
func (h *CampaignHandler) Dashboard(c *gin.Context) {
	campaignID, err := uuid.Parse(c.Query("campaignId"))
	if err != nil {
		h.BadRequest(c, "Invalid campaign ID format")
		return
	}

	dashboard, err := h.campaignService.GetDashboard(c.Request.Context(), campaignID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, dashboard)
}

// Create godoc
// @Summary      Create a campaign
// @Tags         campaigns
// @Accept       json
// @Produce      json
// @Param        request body campaignapp.CreateCampaignRequest true "Campaign"
// @Success      201 {object} dto.Response{data=campaignapp.CampaignResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /campaigns [post]
func (h *CampaignHandler) Create(c *gin.Context) {
	var req campaignapp.CreateCampaignRequest
	if !h.BindJSON(c, &req) {
		return
	}

	campaign, err := h.campaignService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, campaign)
}

// Update godoc
// @Summary      Rename a campaign
// @Tags         campaigns
// @Accept       json
// @Produce      json
// @Param        id      path string                            true "Campaign ID" format(uuid)
// @Param        request body campaignapp.UpdateCampaignRequest true "Campaign"
// @Success      200 {object} dto.Response{data=campaignapp.CampaignResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /campaigns/{id} [put]
func (h *CampaignHandler) Update(c *gin.Context) {
	id, ok := h.ParseUUIDParam(c, "id", "campaign")
	if !ok {
		return
	}

	var req campaignapp.UpdateCampaignRequest
	if !h.BindJSON(c, &req) {
		return
	}

	campaign, err := h.campaignService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, campaign)
}

// Delete godoc
// @Summary      Delete a campaign
// @Description  Deletes the campaign and its product associations. Products are kept.
// @Tags         campaigns
// @Produce      json
// @Param        id path string true "Campaign ID" format(uuid)
// @Success      200 {object} dto.Response{data=dto.MessageData}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /campaigns/{id} [delete]
func (h *CampaignHandler) Delete(c *gin.Context) {
	id, ok := h.ParseUUIDParam(c, "id", "campaign")
	if !ok {
		return
	}

	if err := h.campaignService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Message(c, "Campaign deleted successfully")
}

// AddProduct godoc
// @Summary      Add a product to a campaign
// @Description  Resolves the barcode locally or through OpenFoodFacts, then sets the product's quantity in the campaign. Adding the same product again replaces the quantity.
// @Tags         campaigns
// @Accept       json
// @Produce      json
// @Param        id      path string                        true "Campaign ID" format(uuid)
// @Param        request body campaignapp.AddProductRequest true "Barcode and quantity"
// @Success      200 {object} dto.Response{data=campaignapp.CampaignProductResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /campaigns/{id}/products [post]
func (h *CampaignHandler) AddProduct(c *gin.Context) {
	id, ok := h.ParseUUIDParam(c, "id", "campaign")
	if !ok {
		return
	}

	var req campaignapp.AddProductRequest
	if !h.BindJSON(c, &req) {
		return
	}

	link, err := h.campaignService.AddProduct(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, link)
}

// RemoveProduct godoc
// @Summary      Remove a product from a campaign
// @Tags         campaigns
// @Produce      json
// @Param        id        path string true "Campaign ID" format(uuid)
// @Param        productId path string true "Product ID" format(uuid)
// @Success      200 {object} dto.Response{data=dto.MessageData}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /campaigns/{id}/products/{productId} [delete]
func (h *CampaignHandler) RemoveProduct(c *gin.Context) {
	campaignID, ok := h.ParseUUIDParam(c, "id", "campaign")
	if !ok {
		return
	}
	productID, ok := h.ParseUUIDParam(c, "productId", "product")
	if !ok {
		return
	}

	if err := h.campaignService.RemoveProduct(c.Request.Context(), campaignID, productID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Message(c, "Product removed from campaign")
}
