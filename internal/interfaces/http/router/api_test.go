package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/campaign/backend/internal/infrastructure/auth"
	"github.com/campaign/backend/internal/infrastructure/config"
	"github.com/campaign/backend/internal/interfaces/http/handler"
	"github.com/campaign/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testHandlers() APIHandlers {
	return APIHandlers{
		Campaigns: handler.NewCampaignHandler(nil),
		Products:  handler.NewProductHandler(nil),
		Users:     handler.NewUserHandler(nil),
		Auth:      handler.NewAuthHandler(nil),
		System:    handler.NewSystemHandler("campaign-backend", "test", nil),
	}
}

func TestAPIGroups_Routes(t *testing.T) {
	var routes []string
	for _, g := range APIGroups(testHandlers(), AuthMiddleware{}) {
		for _, info := range g.Routes() {
			routes = append(routes, info.Method+" "+info.Path)
		}
	}

	assert.ElementsMatch(t, []string{
		"GET /campaigns",
		"GET /campaigns/names",
		"GET /campaigns/dashboard",
		"POST /campaigns",
		"PUT /campaigns/:id",
		"DELETE /campaigns/:id",
		"POST /campaigns/:id/products",
		"DELETE /campaigns/:id/products/:productId",
		"GET /products",
		"POST /products",
		"GET /products/:id",
		"PUT /products/:id",
		"DELETE /products/:id",
		"POST /users",
		"GET /users",
		"GET /users/:id",
		"PUT /users/:id",
		"DELETE /users/:id",
		"POST /auth/login",
		"GET /auth/protected",
		"GET /health",
		"GET /system/info",
	}, routes)
}

func TestRegisterAPI_RequiresToken(t *testing.T) {
	middleware.SetupValidator()
	tokens := auth.NewJWTService(config.JWTConfig{
		Secret:     "router-test-secret-at-least-32-chars",
		Expiration: time.Hour,
		Issuer:     "campaign-test",
	})
	jwt := middleware.JWTAuthMiddleware(tokens)

	engine := gin.New()
	RegisterAPI(NewRouter(engine), testHandlers(), AuthMiddleware{Protect: jwt, RequireToken: jwt}).Setup()

	tests := []struct {
		method string
		path   string
		body   string
		status int
	}{
		{http.MethodGet, "/campaigns", "", http.StatusUnauthorized},
		{http.MethodGet, "/campaigns/dashboard?campaignId=x", "", http.StatusUnauthorized},
		{http.MethodPost, "/campaigns/abc/products", `{}`, http.StatusUnauthorized},
		{http.MethodGet, "/products", "", http.StatusUnauthorized},
		{http.MethodGet, "/users", "", http.StatusUnauthorized},
		{http.MethodDelete, "/users/abc", "", http.StatusUnauthorized},
		{http.MethodGet, "/auth/protected", "", http.StatusUnauthorized},
		// open routes reach their handlers and fail on input instead
		{http.MethodPost, "/users", `{}`, http.StatusBadRequest},
		{http.MethodPost, "/auth/login", `{}`, http.StatusBadRequest},
		{http.MethodGet, "/health", "", http.StatusOK},
		{http.MethodGet, "/system/info", "", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, req)
			require.Equal(t, tt.status, w.Code, w.Body.String())
		})
	}
}

func TestRegisterAPI_TokenAccepted(t *testing.T) {
	tokens := auth.NewJWTService(config.JWTConfig{
		Secret:     "router-test-secret-at-least-32-chars",
		Expiration: time.Hour,
		Issuer:     "campaign-test",
	})
	jwt := middleware.JWTAuthMiddleware(tokens)

	engine := gin.New()
	RegisterAPI(NewRouter(engine), testHandlers(), AuthMiddleware{Protect: jwt, RequireToken: jwt}).Setup()

	// A valid token passes the guard; the bad ID is rejected by the handler
	token, _, err := tokens.Issue(uuid.New(), "ops@example.com")
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/products/not-a-uuid", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
