package handler

import (
	"net/http"

	identityapp "github.com/campaign/backend/internal/application/identity"
	"github.com/campaign/backend/internal/domain/shared"
	"github.com/campaign/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	BaseHandler
	authService *identityapp.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *identityapp.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// AuthInfo identifies the caller of a protected route
type AuthInfo struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
}

// ProtectedResponse is returned by the protected probe route
type ProtectedResponse struct {
	Message string   `json:"message" example:"Access granted to protected route"`
	Auth    AuthInfo `json:"auth"`
}

// Login godoc
// @Summary      User login
// @Description  Authenticate with e-mail and password and receive a bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body identityapp.LoginRequest true "Login credentials"
// @Success      200 {object} dto.Response{data=identityapp.LoginResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req identityapp.LoginRequest
	if !h.BindJSON(c, &req) {
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// Protected godoc
// @Summary      Protected probe
// @Description  Confirms that the bearer token is valid and echoes its identity
// @Tags         auth
// @Produce      json
// @Success      200 {object} dto.Response{data=ProtectedResponse}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /auth/protected [get]
func (h *AuthHandler) Protected(c *gin.Context) {
	claims := middleware.GetJWTClaims(c)
	if claims == nil {
		h.Error(c, http.StatusUnauthorized, shared.CodeUnauthorized, "Authentication required")
		return
	}

	h.Success(c, ProtectedResponse{
		Message: "Access granted to protected route",
		Auth: AuthInfo{
			UserID: claims.UserID,
			Email:  claims.Email,
		},
	})
}
