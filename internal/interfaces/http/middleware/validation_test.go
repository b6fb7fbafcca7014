package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/campaign/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type addProductBody struct {
	Codebar  string `json:"codebar" binding:"required,max=8"`
	Quantity int    `json:"quantity" binding:"gt=0"`
	Email    string `json:"email" binding:"omitempty,email"`
}

func validationRouter() *gin.Engine {
	SetupValidator()
	router := gin.New()
	router.Use(RequestID())
	router.POST("/test", func(c *gin.Context) {
		var req addProductBody
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleValidationError(c, err)
			return
		}
		c.Status(http.StatusOK)
	})
	return router
}

func postValidation(t *testing.T, body string) (int, dto.Response) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	validationRouter().ServeHTTP(rec, req)

	var resp dto.Response
	if rec.Code != http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	}
	return rec.Code, resp
}

func TestSetupValidator(t *testing.T) {
	SetupValidator()

	v, ok := binding.Validator.Engine().(*validator.Validate)
	assert.True(t, ok)
	assert.NotNil(t, v)
}

func TestHandleValidationError(t *testing.T) {
	t.Run("valid body passes", func(t *testing.T) {
		code, _ := postValidation(t, `{"codebar":"123","quantity":2}`)
		assert.Equal(t, http.StatusOK, code)
	})

	t.Run("reports json field names", func(t *testing.T) {
		code, resp := postValidation(t, `{"codebar":"","quantity":0,"email":"nope"}`)

		assert.Equal(t, http.StatusBadRequest, code)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
		assert.NotEmpty(t, resp.Error.RequestID)

		messages := map[string]string{}
		for _, d := range resp.Error.Details {
			messages[d.Field] = d.Message
		}
		assert.Equal(t, "This field is required", messages["codebar"])
		assert.Equal(t, "Must be greater than 0", messages["quantity"])
		assert.Equal(t, "Invalid email format", messages["email"])
	})

	t.Run("string max", func(t *testing.T) {
		_, resp := postValidation(t, `{"codebar":"123456789","quantity":1}`)
		require.NotNil(t, resp.Error)
		require.Len(t, resp.Error.Details, 1)
		assert.Equal(t, "Must be at most 8 characters", resp.Error.Details[0].Message)
	})

	t.Run("type mismatch", func(t *testing.T) {
		code, resp := postValidation(t, `{"codebar":"1","quantity":"two"}`)
		assert.Equal(t, http.StatusBadRequest, code)
		require.NotNil(t, resp.Error)
		require.Len(t, resp.Error.Details, 1)
		assert.Equal(t, "quantity", resp.Error.Details[0].Field)
	})

	t.Run("malformed json", func(t *testing.T) {
		code, resp := postValidation(t, `{"codebar":`)
		assert.Equal(t, http.StatusBadRequest, code)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
		assert.Empty(t, resp.Error.Details)
	})
}
