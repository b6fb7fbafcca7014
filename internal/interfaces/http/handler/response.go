package handler

import (
	"net/http"

	"github.com/campaign/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// ErrorResponse represents an error API response for OpenAPI documentation
// @Description Standard error response
type ErrorResponse struct {
	Success bool           `json:"success" example:"false"`
	Error   *dto.ErrorInfo `json:"error,omitempty"`
}

// NoRoute answers unknown routes with the standard error envelope
func NoRoute(c *gin.Context) {
	c.JSON(http.StatusNotFound, dto.NewErrorResponseWithRequestID(
		dto.ErrCodeRouteNotFound,
		"Route not found",
		getRequestID(c),
	))
}
