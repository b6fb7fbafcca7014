package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func reply(body string, status int) gin.HandlerFunc {
	return func(c *gin.Context) { c.String(status, body) }
}

func serve(engine *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestNewRouter(t *testing.T) {
	r := NewRouter(gin.New())

	assert.NotNil(t, r)
	assert.Equal(t, "", r.BasePath())
	assert.Empty(t, r.registrars)

	r.Register(NewDomainGroup("campaigns", "/campaigns"))
	assert.Len(t, r.registrars, 1)
}

func TestRouterWithBasePath(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine, WithBasePath("/api/"))
	assert.Equal(t, "/api", r.BasePath())

	g := NewDomainGroup("campaigns", "/campaigns").GET("/names", reply("names", http.StatusOK))
	r.Register(g).Setup()

	assert.Equal(t, http.StatusOK, serve(engine, http.MethodGet, "/api/campaigns/names").Code)
	assert.Equal(t, http.StatusNotFound, serve(engine, http.MethodGet, "/campaigns/names").Code)
}

func TestRouterWithMiddleware(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine, WithMiddleware(func(c *gin.Context) {
		c.Header("X-Router-Middleware", "applied")
		c.Next()
	}))

	r.Register(NewDomainGroup("test", "/test").GET("", reply("ok", http.StatusOK))).Setup()

	w := serve(engine, http.MethodGet, "/test")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "applied", w.Header().Get("X-Router-Middleware"))
}

func TestDomainGroup(t *testing.T) {
	g := NewDomainGroup("products", "/products")
	assert.Equal(t, "products", g.Name())
	assert.Equal(t, "/products", g.Prefix())

	g.Use(func(c *gin.Context) {
		c.Header("X-Group", "products")
		c.Next()
	})
	g.GET("", reply("list", http.StatusOK)).
		POST("", reply("created", http.StatusCreated)).
		PUT("/:id", reply("updated", http.StatusOK)).
		DELETE("/:id", reply("", http.StatusNoContent))

	engine := gin.New()
	g.RegisterRoutes(engine.Group("/api"))

	tests := []struct {
		method string
		path   string
		status int
		body   string
	}{
		{http.MethodGet, "/api/products", http.StatusOK, "list"},
		{http.MethodPost, "/api/products", http.StatusCreated, "created"},
		{http.MethodPut, "/api/products/42", http.StatusOK, "updated"},
		{http.MethodDelete, "/api/products/42", http.StatusNoContent, ""},
	}
	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			w := serve(engine, tt.method, tt.path)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.body, w.Body.String())
			assert.Equal(t, "products", w.Header().Get("X-Group"))
		})
	}
}

func TestDomainGroupRouteMiddleware(t *testing.T) {
	guard := func(c *gin.Context) {
		c.AbortWithStatus(http.StatusUnauthorized)
	}

	g := NewDomainGroup("users", "/users")
	g.POST("", reply("created", http.StatusCreated)).
		GET("", guard, reply("list", http.StatusOK))

	engine := gin.New()
	NewRouter(engine).Register(g).Setup()

	assert.Equal(t, http.StatusCreated, serve(engine, http.MethodPost, "/users").Code)
	assert.Equal(t, http.StatusUnauthorized, serve(engine, http.MethodGet, "/users").Code)
}

func TestMultipleDomainGroups(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)

	r.Register(NewDomainGroup("products", "/products").GET("", reply("products", http.StatusOK))).
		Register(NewDomainGroup("users", "/users").GET("", reply("users", http.StatusOK))).
		Setup()

	for _, name := range []string{"products", "users"} {
		w := serve(engine, http.MethodGet, "/"+name)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, name, w.Body.String())
	}
}

func TestDomainGroupRoutes(t *testing.T) {
	noop := func(c *gin.Context) {}
	g := NewDomainGroup("campaigns", "/campaigns").
		GET("", noop).
		POST("/:id/products", noop).
		Handle(http.MethodPatch, "/:id", noop)

	assert.Equal(t, []RouteInfo{
		{Method: http.MethodGet, Path: "/campaigns"},
		{Method: http.MethodPost, Path: "/campaigns/:id/products"},
		{Method: http.MethodPatch, Path: "/campaigns/:id"},
	}, g.Routes())
}
