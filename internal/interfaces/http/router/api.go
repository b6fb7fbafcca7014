package router

import (
	"github.com/campaign/backend/internal/interfaces/http/handler"
	"github.com/gin-gonic/gin"
)

// APIHandlers groups the handlers behind the public API
type APIHandlers struct {
	Campaigns *handler.CampaignHandler
	Products  *handler.ProductHandler
	Users     *handler.UserHandler
	Auth      *handler.AuthHandler
	System    *handler.SystemHandler
}

// AuthMiddleware holds the two authentication modes routes can use.
// Protect guards the resource routes and may let anonymous requests through
// when authentication is not enforced. RequireToken always demands a token.
type AuthMiddleware struct {
	Protect      gin.HandlerFunc
	RequireToken gin.HandlerFunc
}

// APIGroups builds the domain groups of the service
func APIGroups(h APIHandlers, auth AuthMiddleware) []*DomainGroup {
	protect := passThrough(auth.Protect)
	requireToken := passThrough(auth.RequireToken)

	campaigns := NewDomainGroup("campaigns", "/campaigns").Use(protect)
	campaigns.GET("", h.Campaigns.List).
		GET("/names", h.Campaigns.ListNames).
		GET("/dashboard", h.Campaigns.Dashboard).
		POST("", h.Campaigns.Create).
		PUT("/:id", h.Campaigns.Update).
		DELETE("/:id", h.Campaigns.Delete).
		POST("/:id/products", h.Campaigns.AddProduct).
		DELETE("/:id/products/:productId", h.Campaigns.RemoveProduct)

	products := NewDomainGroup("products", "/products").Use(protect)
	products.GET("", h.Products.List).
		POST("", h.Products.Create).
		GET("/:id", h.Products.GetByID).
		PUT("/:id", h.Products.Update).
		DELETE("/:id", h.Products.Delete)

	// Registration stays open so the first user can sign up
	users := NewDomainGroup("users", "/users")
	users.POST("", h.Users.Create).
		GET("", protect, h.Users.List).
		GET("/:id", protect, h.Users.GetByID).
		PUT("/:id", protect, h.Users.Update).
		DELETE("/:id", protect, h.Users.Delete)

	authGroup := NewDomainGroup("auth", "/auth")
	authGroup.POST("/login", h.Auth.Login).
		GET("/protected", requireToken, h.Auth.Protected)

	system := NewDomainGroup("system", "")
	system.GET("/health", h.System.Health).
		GET("/system/info", h.System.GetSystemInfo)

	return []*DomainGroup{campaigns, products, users, authGroup, system}
}

// RegisterAPI registers every domain group on r
func RegisterAPI(r *Router, h APIHandlers, auth AuthMiddleware) *Router {
	for _, group := range APIGroups(h, auth) {
		r.Register(group)
	}
	return r
}

func passThrough(mw gin.HandlerFunc) gin.HandlerFunc {
	if mw != nil {
		return mw
	}
	return func(c *gin.Context) { c.Next() }
}
