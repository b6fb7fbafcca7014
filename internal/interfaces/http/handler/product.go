package handler

import (
	"strconv"
	"strings"

	catalogapp "github.com/campaign/backend/internal/application/catalog"
	"github.com/gin-gonic/gin"
)

// ProductHandler handles product-related API endpoints
type ProductHandler struct {
	BaseHandler
	productService *catalogapp.ProductService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productService *catalogapp.ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
	}
}

// Create godoc
// @Summary      Create a product
// @Description  Register a product manually. The barcode must be unused.
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        request body catalogapp.CreateProductRequest true "Product creation request"
// @Success      201 {object} dto.Response{data=catalogapp.ProductResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /products [post]
func (h *ProductHandler) Create(c *gin.Context) {
	var req catalogapp.CreateProductRequest
	if !h.BindJSON(c, &req) {
		return
	}

	product, err := h.productService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, product)
}

// List godoc
// @Summary      List products or find one by barcode
// @Description  With codebar, returns the locally stored product for that barcode. With import=true as well, a barcode missing locally is fetched from the external catalog and stored. Without codebar, lists products.
// @Tags         products
// @Produce      json
// @Param        codebar   query string false "Barcode"
// @Param        import    query bool   false "Import from the external catalog when missing locally" default(false)
// @Param        page      query int    false "Page number" default(1)
// @Param        page_size query int    false "Page size" default(50)
// @Param        search    query string false "Name or barcode fragment"
// @Success      200 {object} dto.Response{data=[]catalogapp.ProductResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /products [get]
func (h *ProductHandler) List(c *gin.Context) {
	if codebar, ok := c.GetQuery("codebar"); ok {
		importMissing, err := strconv.ParseBool(c.DefaultQuery("import", "false"))
		if err != nil {
			h.BadRequest(c, "import must be true or false")
			return
		}
		h.getByBarcode(c, codebar, importMissing)
		return
	}

	filter, err := listFilter(c)
	if err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}

	products, err := h.productService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, products, len(products), filter.Page, filter.PageSize)
}

func (h *ProductHandler) getByBarcode(c *gin.Context, codebar string, importMissing bool) {
	if strings.TrimSpace(codebar) == "" {
		h.BadRequest(c, "codebar is required")
		return
	}

	lookup := h.productService.GetByBarcode
	if importMissing {
		lookup = h.productService.Resolve
	}
	product, err := lookup(c.Request.Context(), codebar)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, product)
}

// GetByID godoc
// @Summary      Get product by ID
// @Tags         products
// @Produce      json
// @Param        id path string true "Product ID" format(uuid)
// @Success      200 {object} dto.Response{data=catalogapp.ProductResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /products/{id} [get]
func (h *ProductHandler) GetByID(c *gin.Context) {
	id, ok := h.ParseUUIDParam(c, "id", "product")
	if !ok {
		return
	}

	product, err := h.productService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, product)
}

// Update godoc
// @Summary      Update a product
// @Description  Partially update name and weight. The barcode cannot change.
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id      path string                          true "Product ID" format(uuid)
// @Param        request body catalogapp.UpdateProductRequest true "Fields to update"
// @Success      200 {object} dto.Response{data=catalogapp.ProductResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /products/{id} [put]
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := h.ParseUUIDParam(c, "id", "product")
	if !ok {
		return
	}

	var req catalogapp.UpdateProductRequest
	if !h.BindJSON(c, &req) {
		return
	}

	product, err := h.productService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, product)
}

// Delete godoc
// @Summary      Delete a product
// @Tags         products
// @Produce      json
// @Param        id path string true "Product ID" format(uuid)
// @Success      200 {object} dto.Response{data=dto.MessageData}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /products/{id} [delete]
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := h.ParseUUIDParam(c, "id", "product")
	if !ok {
		return
	}

	if err := h.productService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Message(c, "Product deleted successfully")
}
