// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"stickers/internal/domain/entity"
)

// CatalogRepository reads the externally curated reference data. All listings
// are filtered to active rows; an empty catalog yields an empty slice, never
// an error.
type CatalogRepository interface {
	// ListActiveBodyTypes retrieves active body types ordered by name,
	// case-insensitive ascending.
	ListActiveBodyTypes(ctx context.Context) ([]*entity.BodyType, error)

	// ListActiveVehicleTypes retrieves active vehicle types ordered by name,
	// case-insensitive ascending.
	ListActiveVehicleTypes(ctx context.Context) ([]*entity.VehicleType, error)

	// ListActiveStock retrieves active sticker stock batches ordered by the
	// start of their validity window.
	ListActiveStock(ctx context.Context) ([]*entity.StickerStock, error)
}
