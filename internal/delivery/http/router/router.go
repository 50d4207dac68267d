// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"tradie/internal/delivery/http/middleware"
	"tradie/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ListingHandler *handler.ListingHandler
	ProfileHandler *handler.ProfileHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	listingHandler *handler.ListingHandler
	profileHandler *handler.ProfileHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		listingHandler: params.ListingHandler,
		profileHandler: params.ProfileHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public read routes
	e.GET("/listings/:id", r.listingHandler.GetListing)
	e.GET("/listings/:id/qr", r.listingHandler.GetListingShareQR)
	e.GET("/profiles/:id", r.profileHandler.GetProfile)

	// Listing routes that require authentication
	listingGroup := e.Group("/listings")
	listingGroup.Use(r.authMiddleware.Authenticate) // Apply JWT authentication middleware
	{
		listingGroup.POST("", r.listingHandler.CreateListing)
		listingGroup.PUT("/:id", r.listingHandler.UpdateListing)
		listingGroup.POST("/validate-step", r.listingHandler.ValidateListingStep)
	}

	// Profile routes that require authentication
	profileGroup := e.Group("/profiles")
	profileGroup.Use(r.authMiddleware.Authenticate)
	{
		profileGroup.POST("", r.profileHandler.CreateProfile)
		profileGroup.PUT("/:id", r.profileHandler.UpdateProfile)
		profileGroup.POST("/validate-step", r.profileHandler.ValidateProfileStep)
	}

	// Routes scoped to the authenticated owner's own records
	myGroup := e.Group("/my")
	myGroup.Use(r.authMiddleware.Authenticate)
	{
		myGroup.GET("/listings", r.listingHandler.ListMyListings)
		myGroup.GET("/profile", r.profileHandler.GetOwnProfile)
	}
}
