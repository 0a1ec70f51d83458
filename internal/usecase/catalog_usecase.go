// Package usecase defines the application-layer interfaces the delivery layer
// depends on.
package usecase

import (
	"context"

	"stickers/internal/domain/entity"
)

// CatalogUsecase exposes the read-only reference catalog.
type CatalogUsecase interface {
	// ListBodyTypes retrieves the active body types, name ascending
	// (case-insensitive). An empty catalog is an empty slice, not an error.
	ListBodyTypes(ctx context.Context) ([]*entity.BodyType, error)

	// ListVehicleTypes retrieves the active vehicle types with the same
	// contract as ListBodyTypes.
	ListVehicleTypes(ctx context.Context) ([]*entity.VehicleType, error)

	// ListActiveStock retrieves the active sticker stock batches ordered by
	// validity start.
	ListActiveStock(ctx context.Context) ([]*entity.StickerStock, error)
}
