// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"stickers/internal/domain/entity"
	"stickers/internal/errors"

	"github.com/google/uuid"
)

// ErrVehicleNotFound is returned when a vehicle is not found.
var ErrVehicleNotFound = errors.New("vehicle not found")

// VehicleRepository defines the operations for vehicle persistence. Vehicles
// are provisioned upstream; this service only reads and aggregates them.
type VehicleRepository interface {
	// FindByID retrieves a single vehicle by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error)

	// FindActiveByOwner retrieves the active vehicles owned by the referenced
	// party, ordered by registration number.
	FindActiveByOwner(ctx context.Context, owner entity.OwnerRef) ([]*entity.Vehicle, error)

	// CountActiveByOwner counts the active vehicles owned by the referenced
	// party. Soft-deleted vehicles are never included.
	CountActiveByOwner(ctx context.Context, owner entity.OwnerRef) (int64, error)
}
