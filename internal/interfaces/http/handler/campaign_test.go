package handler

import (
	"net/http"
	"testing"

	campaignapp "github.com/campaign/backend/internal/application/campaign"
	"github.com/campaign/backend/internal/domain/catalog"
	"github.com/campaign/backend/internal/domain/shared"
	"github.com/campaign/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createCampaign(t *testing.T, app *testApp, name string) campaignapp.CampaignResponse {
	t.Helper()
	w := app.do(t, http.MethodPost, "/campaigns", map[string]any{"name": name})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var c campaignapp.CampaignResponse
	data(t, w, &c)
	return c
}

func TestCampaignHandler_AddProductAndDashboard(t *testing.T) {
	app := newTestApp(t, stubCatalog{
		"3017620422003": {ExternalID: "3017620422003", Barcode: "3017620422003", Name: "Nutella", Quantity: "400", QuantityUnit: "g"},
	})
	createProduct(t, app, "7891000100103", "Arroz")
	camp := createCampaign(t, app, "Natal Solidario")
	path := "/campaigns/" + camp.ID.String() + "/products"

	w := app.do(t, http.MethodPost, path, map[string]any{"codebar": "7891000100103", "quantity": 1})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var first campaignapp.CampaignProductResponse
	data(t, w, &first)
	assert.Equal(t, 1, first.Quantity)

	// Re-adding replaces the quantity
	w = app.do(t, http.MethodPost, path, map[string]any{"codebar": "7891000100103", "quantity": 4})
	require.Equal(t, http.StatusOK, w.Code)
	var second campaignapp.CampaignProductResponse
	data(t, w, &second)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 4, second.Quantity)

	// Unknown locally, imported from the catalog
	w = app.do(t, http.MethodPost, path, map[string]any{"codebar": "3017620422003", "quantity": 3})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, int64(2), app.count(t, &models.ProductModel{}))
	assert.Equal(t, int64(2), app.count(t, &models.CampaignProductModel{}))

	w = app.do(t, http.MethodGet, "/campaigns/dashboard?campaignId="+camp.ID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var dash campaignapp.DashboardResponse
	data(t, w, &dash)
	assert.Equal(t, camp.ID, dash.CampaignID)
	assert.Equal(t, 2, dash.TotalProducts)
	// 1.5 kg x 4 + 400 g x 3
	assert.Equal(t, "7200", dash.TotalWeight.String())
	assert.Equal(t, catalog.CanonicalUnit.String(), dash.WeightUnit)
	require.Len(t, dash.Products, 2)
	assert.Equal(t, "6000", dash.Products[0].NormalizedWeight.String())

	w = app.do(t, http.MethodGet, "/campaigns", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []campaignapp.CampaignResponse
	data(t, w, &list)
	require.Len(t, list, 1)
	assert.Len(t, list[0].Products, 2)
}

func TestCampaignHandler_AddProductErrors(t *testing.T) {
	app := newTestApp(t, stubCatalog{})
	camp := createCampaign(t, app, "Pascoa")
	path := "/campaigns/" + camp.ID.String() + "/products"

	tests := []struct {
		name   string
		path   string
		body   any
		status int
		code   string
	}{
		{"zero quantity", path, map[string]any{"codebar": "123", "quantity": 0}, http.StatusBadRequest, shared.CodeValidation},
		{"negative quantity", path, map[string]any{"codebar": "123", "quantity": -2}, http.StatusBadRequest, shared.CodeValidation},
		{"missing codebar", path, map[string]any{"quantity": 1}, http.StatusBadRequest, shared.CodeValidation},
		{"unknown barcode", path, map[string]any{"codebar": "0000000000000", "quantity": 1}, http.StatusNotFound, shared.CodeNotFound},
		{"unknown campaign", "/campaigns/" + uuid.NewString() + "/products", map[string]any{"codebar": "123", "quantity": 1}, http.StatusNotFound, shared.CodeNotFound},
		{"bad campaign id", "/campaigns/abc/products", map[string]any{"codebar": "123", "quantity": 1}, http.StatusBadRequest, "BAD_REQUEST"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := app.do(t, http.MethodPost, tt.path, tt.body)
			assert.Equal(t, tt.status, w.Code, w.Body.String())
			assert.Equal(t, tt.code, decodeResponse(t, w).Error.Code)
		})
	}
	assert.Equal(t, int64(0), app.count(t, &models.CampaignProductModel{}))
	assert.Equal(t, int64(0), app.count(t, &models.ProductModel{}))
}

func TestCampaignHandler_Dashboard(t *testing.T) {
	app := newTestApp(t, nil)

	w := app.do(t, http.MethodGet, "/campaigns/dashboard?campaignId=nope", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = app.do(t, http.MethodGet, "/campaigns/dashboard", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = app.do(t, http.MethodGet, "/campaigns/dashboard?campaignId="+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	camp := createCampaign(t, app, "Vazia")
	w = app.do(t, http.MethodGet, "/campaigns/dashboard?campaignId="+camp.ID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var dash campaignapp.DashboardResponse
	data(t, w, &dash)
	assert.Equal(t, 0, dash.TotalProducts)
	assert.Equal(t, "0", dash.TotalWeight.String())
	assert.Empty(t, dash.Products)
}

func TestCampaignHandler_NamesUpdateDelete(t *testing.T) {
	app := newTestApp(t, nil)
	b := createCampaign(t, app, "Beta")
	createCampaign(t, app, "Alpha")

	w := app.do(t, http.MethodGet, "/campaigns/names", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var names []campaignapp.CampaignNameResponse
	data(t, w, &names)
	require.Len(t, names, 2)
	assert.Equal(t, "Alpha", names[0].Name)
	assert.Equal(t, "Beta", names[1].Name)

	w = app.do(t, http.MethodPut, "/campaigns/"+b.ID.String(), map[string]any{"name": "Gamma"})
	require.Equal(t, http.StatusOK, w.Code)
	var renamed campaignapp.CampaignResponse
	data(t, w, &renamed)
	assert.Equal(t, "Gamma", renamed.Name)

	w = app.do(t, http.MethodPut, "/campaigns/"+b.ID.String(), map[string]any{"name": ""})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = app.do(t, http.MethodDelete, "/campaigns/"+b.ID.String(), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = app.do(t, http.MethodDelete, "/campaigns/"+b.ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCampaignHandler_RemoveProduct(t *testing.T) {
	app := newTestApp(t, nil)
	p := createProduct(t, app, "555", "Leite")
	camp := createCampaign(t, app, "Inverno")

	w := app.do(t, http.MethodPost, "/campaigns/"+camp.ID.String()+"/products", map[string]any{"codebar": "555", "quantity": 2})
	require.Equal(t, http.StatusOK, w.Code)

	path := "/campaigns/" + camp.ID.String() + "/products/" + p.ID.String()
	w = app.do(t, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(0), app.count(t, &models.CampaignProductModel{}))
	assert.Equal(t, int64(1), app.count(t, &models.ProductModel{}))

	w = app.do(t, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = app.do(t, http.MethodDelete, "/campaigns/"+camp.ID.String()+"/products/xyz", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
