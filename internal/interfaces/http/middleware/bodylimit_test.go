package middleware

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/campaign/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBodyLimit(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedStatus int
	}{
		{"within limit", `{"codebar":"123"}`, http.StatusOK},
		{"exactly at limit", strings.Repeat("a", 32), http.StatusOK},
		{"over limit", strings.Repeat("a", 33), http.StatusRequestEntityTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(RequestID(), BodyLimit(32))
			router.POST("/test", func(c *gin.Context) {
				_, err := io.ReadAll(c.Request.Body)
				require.NoError(t, err)
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestBodyLimit_ErrorEnvelope(t *testing.T) {
	router := gin.New()
	router.Use(RequestID(), BodyLimit(4))
	router.POST("/test", okHandler)

	req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader("too large"))
	req.Header.Set(RequestIDHeader, "req-body")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrCodeRequestTooLarge, resp.Error.Code)
	assert.Equal(t, "req-body", resp.Error.RequestID)
}

func TestBodyLimit_StreamingBody(t *testing.T) {
	router := gin.New()
	router.Use(BodyLimit(8))
	router.POST("/test", func(c *gin.Context) {
		if _, err := io.ReadAll(c.Request.Body); err != nil {
			c.Status(http.StatusRequestEntityTooLarge)
			return
		}
		c.Status(http.StatusOK)
	})

	// ContentLength unknown, so only the MaxBytesReader catches it
	req := httptest.NewRequest(http.MethodPost, "/test", io.NopCloser(strings.NewReader(strings.Repeat("b", 64))))
	req.ContentLength = -1
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
