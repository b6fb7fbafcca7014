package router

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// RouteRegistrar mounts a set of routes on a gin group
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// Router collects route registrars and mounts them on an engine in one pass
type Router struct {
	engine     *gin.Engine
	basePath   string
	middleware []gin.HandlerFunc
	registrars []RouteRegistrar
}

// RouterOption configures a Router
type RouterOption func(*Router)

// WithBasePath mounts every registered group under path (e.g. "/api").
// Routes are served from the root by default.
func WithBasePath(path string) RouterOption {
	return func(r *Router) {
		r.basePath = strings.TrimRight(path, "/")
	}
}

// WithMiddleware applies middleware to every registered group
func WithMiddleware(middleware ...gin.HandlerFunc) RouterOption {
	return func(r *Router) {
		r.middleware = append(r.middleware, middleware...)
	}
}

// NewRouter creates a Router for engine
func NewRouter(engine *gin.Engine, opts ...RouterOption) *Router {
	r := &Router{engine: engine}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register queues a registrar; nothing is mounted until Setup
func (r *Router) Register(registrar RouteRegistrar) *Router {
	r.registrars = append(r.registrars, registrar)
	return r
}

// Setup mounts every queued registrar under the base path
func (r *Router) Setup() {
	base := r.engine.Group(r.basePath)
	base.Use(r.middleware...)
	for _, registrar := range r.registrars {
		registrar.RegisterRoutes(base)
	}
}

// BasePath returns the prefix groups are mounted under
func (r *Router) BasePath() string {
	return r.basePath
}

// RouteInfo describes one route of a group
type RouteInfo struct {
	Method string
	Path   string
}

type route struct {
	RouteInfo
	handlers []gin.HandlerFunc
}

// DomainGroup is the set of routes of one resource, sharing a prefix
// and group-level middleware
type DomainGroup struct {
	name       string
	prefix     string
	middleware []gin.HandlerFunc
	routes     []route
}

// NewDomainGroup creates an empty group
func NewDomainGroup(name, prefix string) *DomainGroup {
	return &DomainGroup{name: name, prefix: prefix}
}

// Use adds middleware run before every route of the group
func (dg *DomainGroup) Use(middleware ...gin.HandlerFunc) *DomainGroup {
	dg.middleware = append(dg.middleware, middleware...)
	return dg
}

// Handle adds a route; handlers run after the group middleware
func (dg *DomainGroup) Handle(method, path string, handlers ...gin.HandlerFunc) *DomainGroup {
	dg.routes = append(dg.routes, route{
		RouteInfo: RouteInfo{Method: method, Path: path},
		handlers:  handlers,
	})
	return dg
}

func (dg *DomainGroup) GET(path string, handlers ...gin.HandlerFunc) *DomainGroup {
	return dg.Handle(http.MethodGet, path, handlers...)
}

func (dg *DomainGroup) POST(path string, handlers ...gin.HandlerFunc) *DomainGroup {
	return dg.Handle(http.MethodPost, path, handlers...)
}

func (dg *DomainGroup) PUT(path string, handlers ...gin.HandlerFunc) *DomainGroup {
	return dg.Handle(http.MethodPut, path, handlers...)
}

func (dg *DomainGroup) DELETE(path string, handlers ...gin.HandlerFunc) *DomainGroup {
	return dg.Handle(http.MethodDelete, path, handlers...)
}

// RegisterRoutes implements RouteRegistrar
func (dg *DomainGroup) RegisterRoutes(rg *gin.RouterGroup) {
	group := rg.Group(dg.prefix, dg.middleware...)
	for _, rt := range dg.routes {
		group.Handle(rt.Method, rt.Path, rt.handlers...)
	}
}

// Name returns the group name
func (dg *DomainGroup) Name() string {
	return dg.name
}

// Prefix returns the group prefix
func (dg *DomainGroup) Prefix() string {
	return dg.prefix
}

// Routes lists the group's routes with the prefix applied, in registration order
func (dg *DomainGroup) Routes() []RouteInfo {
	infos := make([]RouteInfo, len(dg.routes))
	for i, rt := range dg.routes {
		infos[i] = RouteInfo{Method: rt.Method, Path: dg.prefix + rt.Path}
	}
	return infos
}
