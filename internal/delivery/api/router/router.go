// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	StoreHandler       *handler.StoreHandler
	FavoriteHandler    *handler.FavoriteHandler
	ShareHandler       *handler.ShareHandler
	IdentityMiddleware *middleware.IdentityMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	storeHandler       *handler.StoreHandler
	favoriteHandler    *handler.FavoriteHandler
	shareHandler       *handler.ShareHandler
	identityMiddleware *middleware.IdentityMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		storeHandler:       params.StoreHandler,
		favoriteHandler:    params.FavoriteHandler,
		shareHandler:       params.ShareHandler,
		identityMiddleware: params.IdentityMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// API v1 routes, readable anonymously
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.identityMiddleware.Identify)

	requireUser := r.identityMiddleware.RequireUser

	// Store catalog routes
	storesGroup := apiV1.Group("/stores")
	{
		storesGroup.GET("", r.storeHandler.ListStores)
		storesGroup.GET("/page/:page", r.storeHandler.ListStores)
		storesGroup.GET("/near", r.storeHandler.NearbyStores)
		storesGroup.GET("/:id", r.storeHandler.GetStore)

		storesGroup.POST("", r.storeHandler.CreateStore, requireUser)
		storesGroup.GET("/:id/edit", r.storeHandler.EditStore, requireUser)
		storesGroup.PUT("/:id", r.storeHandler.UpdateStore, requireUser)
		storesGroup.POST("/:id/heart", r.favoriteHandler.ToggleHeart, requireUser)
	}

	apiV1.GET("/store/:slug", r.storeHandler.GetStoreBySlug)
	apiV1.GET("/store/:slug/qr", r.shareHandler.StoreQR)
	apiV1.GET("/share/resolve", r.shareHandler.ResolveQR)
	apiV1.GET("/tags", r.storeHandler.ListByTag)
	apiV1.GET("/tags/:tag", r.storeHandler.ListByTag)
	apiV1.GET("/search", r.storeHandler.SearchStores)
	apiV1.GET("/top", r.storeHandler.TopStores)

	// Hearts of the acting user
	heartsGroup := apiV1.Group("/hearts", requireUser)
	{
		heartsGroup.GET("", r.favoriteHandler.ListHearted)
		heartsGroup.GET("/ids", r.favoriteHandler.Hearts)
	}
}
