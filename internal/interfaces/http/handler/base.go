package handler

import (
	"errors"
	"net/http"

	"github.com/campaign/backend/internal/domain/shared"
	"github.com/campaign/backend/internal/infrastructure/logger"
	"github.com/campaign/backend/internal/infrastructure/telemetry"
	"github.com/campaign/backend/internal/interfaces/http/dto"
	"github.com/campaign/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// getRequestID extracts the request ID from the context
func getRequestID(c *gin.Context) string {
	if id := c.GetString(middleware.RequestIDKey); id != "" {
		return id
	}
	return c.GetHeader(middleware.RequestIDHeader)
}

// Success sends a success response
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// SuccessWithMeta sends a success response with pagination meta
func (h *BaseHandler) SuccessWithMeta(c *gin.Context, data any, count, page, pageSize int) {
	c.JSON(http.StatusOK, dto.NewSuccessResponseWithMeta(data, count, page, pageSize))
}

// Created sends a 201 created response
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(data))
}

// Message sends a 200 response whose data is a confirmation message
func (h *BaseHandler) Message(c *gin.Context, message string) {
	h.Success(c, dto.MessageData{Message: message})
}

// Error sends an error response with the appropriate status code
func (h *BaseHandler) Error(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, dto.NewErrorResponseWithRequestID(code, message, getRequestID(c)))
}

// BadRequest sends a 400 bad request response
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	h.Error(c, http.StatusBadRequest, dto.ErrCodeBadRequest, message)
}

// NotFound sends a 404 not found response
func (h *BaseHandler) NotFound(c *gin.Context, message string) {
	h.Error(c, http.StatusNotFound, shared.CodeNotFound, message)
}

// InternalError sends a 500 internal server error response
func (h *BaseHandler) InternalError(c *gin.Context, message string) {
	h.Error(c, http.StatusInternalServerError, shared.CodeInternal, message)
}

// BindJSON binds the request body and writes the validation response on failure
func (h *BaseHandler) BindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		middleware.HandleValidationError(c, err)
		return false
	}
	return true
}

// ParseUUIDParam parses a path parameter as a UUID, answering 400 when it is not one
func (h *BaseHandler) ParseUUIDParam(c *gin.Context, name, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		h.BadRequest(c, "Invalid "+label+" ID format")
		return uuid.Nil, false
	}
	return id, true
}

// HandleDomainError converts domain errors to HTTP responses. Anything that
// is not a DomainError is logged and answered with a generic 500.
func (h *BaseHandler) HandleDomainError(c *gin.Context, err error) {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		status := dto.GetHTTPStatus(domainErr.Code)
		if status >= http.StatusInternalServerError {
			logger.L(c.Request.Context()).Error("Request failed",
				zap.String("code", domainErr.Code),
				zap.String("trace_id", telemetry.GetTraceID(c.Request.Context())),
				zap.Error(err),
			)
		}
		h.Error(c, status, domainErr.Code, domainErr.Message)
		return
	}

	logger.L(c.Request.Context()).Error("Unexpected error",
		zap.String("trace_id", telemetry.GetTraceID(c.Request.Context())),
		zap.Error(err),
	)
	h.InternalError(c, "An unexpected error occurred")
}

// listFilter reads pagination and sorting query parameters
func listFilter(c *gin.Context) (shared.Filter, error) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return shared.Filter{}, err
	}
	filter := shared.DefaultFilter()
	if req.Page > 0 {
		filter.Page = req.Page
	}
	if req.PageSize > 0 {
		filter.PageSize = req.PageSize
	}
	if req.OrderBy != "" {
		filter.OrderBy = req.OrderBy
	}
	if req.OrderDir != "" {
		filter.OrderDir = req.OrderDir
	}
	filter.Search = req.Search
	return filter, nil
}
