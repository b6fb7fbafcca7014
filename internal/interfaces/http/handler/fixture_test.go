package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	campaignapp "github.com/campaign/backend/internal/application/campaign"
	catalogapp "github.com/campaign/backend/internal/application/catalog"
	identityapp "github.com/campaign/backend/internal/application/identity"
	"github.com/campaign/backend/internal/domain/catalog"
	"github.com/campaign/backend/internal/infrastructure/auth"
	"github.com/campaign/backend/internal/infrastructure/config"
	"github.com/campaign/backend/internal/infrastructure/persistence"
	"github.com/campaign/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// stubCatalog serves a fixed set of catalog entries
type stubCatalog map[string]*catalog.CatalogProduct

func (s stubCatalog) Lookup(_ context.Context, barcode string) (*catalog.CatalogProduct, error) {
	if p, ok := s[barcode]; ok {
		return p, nil
	}
	return nil, catalog.ErrCatalogNotFound
}

type testApp struct {
	engine *gin.Engine
	db     *persistence.Database
	tokens *auth.JWTService
}

// newTestApp wires real services over an in-memory sqlite database
func newTestApp(t *testing.T, entries stubCatalog) *testApp {
	t.Helper()
	middleware.SetupValidator()

	db, err := persistence.NewDatabase(&config.DatabaseConfig{Driver: config.DriverSQLite, Path: ":memory:"}, nil)
	require.NoError(t, err)
	require.NoError(t, db.Migrate(context.Background()))
	t.Cleanup(func() { _ = db.Close() })

	products := persistence.NewGormProductRepository(db.DB)
	users := persistence.NewGormUserRepository(db.DB)
	resolver := catalogapp.NewProductResolver(products, entries, time.Second, nil)
	hasher := auth.NewBcryptHasher(bcrypt.MinCost)
	tokens := auth.NewJWTService(config.JWTConfig{
		Secret:     "handler-test-secret-at-least-32-chars",
		Expiration: time.Hour,
		Issuer:     "campaign-test",
	})

	productHandler := NewProductHandler(catalogapp.NewProductService(products, resolver))
	campaignHandler := NewCampaignHandler(campaignapp.NewCampaignService(
		persistence.NewGormCampaignRepository(db.DB),
		persistence.NewGormCampaignProductRepository(db.DB),
		resolver,
		nil,
	))
	userHandler := NewUserHandler(identityapp.NewUserService(users, hasher))
	authHandler := NewAuthHandler(identityapp.NewAuthService(users, hasher, tokens))

	engine := gin.New()
	engine.Use(middleware.RequestID())
	engine.NoRoute(NoRoute)

	engine.GET("/campaigns", campaignHandler.List)
	engine.GET("/campaigns/names", campaignHandler.ListNames)
	engine.GET("/campaigns/dashboard", campaignHandler.Dashboard)
	engine.POST("/campaigns", campaignHandler.Create)
	engine.PUT("/campaigns/:id", campaignHandler.Update)
	engine.DELETE("/campaigns/:id", campaignHandler.Delete)
	engine.POST("/campaigns/:id/products", campaignHandler.AddProduct)
	engine.DELETE("/campaigns/:id/products/:productId", campaignHandler.RemoveProduct)

	engine.GET("/products", productHandler.List)
	engine.POST("/products", productHandler.Create)
	engine.GET("/products/:id", productHandler.GetByID)
	engine.PUT("/products/:id", productHandler.Update)
	engine.DELETE("/products/:id", productHandler.Delete)

	engine.POST("/users", userHandler.Create)
	engine.GET("/users", userHandler.List)
	engine.GET("/users/:id", userHandler.GetByID)
	engine.PUT("/users/:id", userHandler.Update)
	engine.DELETE("/users/:id", userHandler.Delete)

	engine.POST("/auth/login", authHandler.Login)
	engine.GET("/auth/protected", middleware.JWTAuthMiddleware(tokens), authHandler.Protected)

	return &testApp{engine: engine, db: db, tokens: tokens}
}

func (a *testApp) do(t *testing.T, method, path string, body any, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	return w
}

// data decodes the data field of a success envelope into out
func data(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	var envelope struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope), w.Body.String())
	require.True(t, envelope.Success, w.Body.String())
	require.NoError(t, json.Unmarshal(envelope.Data, out))
}

func (a *testApp) count(t *testing.T, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, a.db.DB.Model(model).Count(&n).Error)
	return n
}
