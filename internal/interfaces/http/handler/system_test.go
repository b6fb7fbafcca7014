package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func serveSystem(t *testing.T, h *SystemHandler, path string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	r := gin.New()
	r.GET("/health", h.Health)
	r.GET("/system/info", h.GetSystemInfo)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestSystemHandler_Health(t *testing.T) {
	ok := pingFunc(func(context.Context) error { return nil })
	down := pingFunc(func(context.Context) error { return errors.New("connection refused") })

	t.Run("healthy", func(t *testing.T) {
		h := NewSystemHandler("campaign-backend", "1.0.0", map[string]Pinger{"database": ok, "redis": ok})
		w, body := serveSystem(t, h, "/health")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, true, body["success"])
		data := body["data"].(map[string]any)
		assert.Equal(t, "healthy", data["status"])
		assert.Equal(t, map[string]any{"database": "ok", "redis": "ok"}, data["checks"])
	})

	t.Run("dependency down", func(t *testing.T) {
		h := NewSystemHandler("campaign-backend", "1.0.0", map[string]Pinger{"database": ok, "redis": down})
		w, body := serveSystem(t, h, "/health")

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Equal(t, false, body["success"])
		data := body["data"].(map[string]any)
		assert.Equal(t, "unhealthy", data["status"])
		checks := data["checks"].(map[string]any)
		assert.Equal(t, "ok", checks["database"])
		assert.Equal(t, "connection refused", checks["redis"])
	})

	t.Run("no checks", func(t *testing.T) {
		h := NewSystemHandler("campaign-backend", "1.0.0", nil)
		w, _ := serveSystem(t, h, "/health")
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestSystemHandler_GetSystemInfo(t *testing.T) {
	h := NewSystemHandler("campaign-backend", "2.3.4", nil)
	w, body := serveSystem(t, h, "/system/info")

	assert.Equal(t, http.StatusOK, w.Code)
	data := body["data"].(map[string]any)
	assert.Equal(t, "campaign-backend", data["name"])
	assert.Equal(t, "2.3.4", data["version"])
	assert.NotEmpty(t, data["go_version"])
	assert.NotEmpty(t, data["uptime"])
}
