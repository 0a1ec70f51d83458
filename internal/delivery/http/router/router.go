// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"stickers/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CatalogHandler *handler.CatalogHandler
	PartyHandler   *handler.PartyHandler
	VehicleHandler *handler.VehicleHandler
	PolicyHandler  *handler.PolicyHandler
	StickerHandler *handler.StickerHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	catalogHandler *handler.CatalogHandler
	partyHandler   *handler.PartyHandler
	vehicleHandler *handler.VehicleHandler
	policyHandler  *handler.PolicyHandler
	stickerHandler *handler.StickerHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		catalogHandler: params.CatalogHandler,
		partyHandler:   params.PartyHandler,
		vehicleHandler: params.VehicleHandler,
		policyHandler:  params.PolicyHandler,
		stickerHandler: params.StickerHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Reference catalog routes
	catalogGroup := e.Group("/catalog")
	{
		catalogGroup.GET("/body-types", r.catalogHandler.ListBodyTypes)
		catalogGroup.GET("/vehicle-types", r.catalogHandler.ListVehicleTypes)
	}

	// Active sticker stock
	e.GET("/stock", r.catalogHandler.ListActiveStock)

	// Party registry and vehicle ledger routes
	partiesGroup := e.Group("/parties")
	{
		partiesGroup.GET("/:kind/:id", r.partyHandler.GetParty)
		partiesGroup.GET("/:kind/:id/vehicles", r.vehicleHandler.ListVehiclesByOwner)
		partiesGroup.GET("/:kind/:id/vehicles/count", r.vehicleHandler.CountActiveVehicles)
	}

	// Vehicle routes
	vehiclesGroup := e.Group("/vehicles")
	{
		vehiclesGroup.GET("/:id", r.vehicleHandler.GetVehicle)
		vehiclesGroup.GET("/:id/policies", r.vehicleHandler.ListPoliciesByVehicle)
	}

	// Policy routes
	policiesGroup := e.Group("/policies")
	{
		policiesGroup.GET("/:id", r.policyHandler.GetPolicy)
		policiesGroup.GET("/:id/stickers", r.policyHandler.ListStickersByPolicy)
	}

	// Sticker lifecycle routes
	stickersGroup := e.Group("/stickers")
	{
		stickersGroup.GET("/:id", r.stickerHandler.GetSticker)
		stickersGroup.DELETE("/:id", r.stickerHandler.DeactivateSticker)
	}
}
