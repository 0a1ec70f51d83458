package usecase

import (
	"context"

	"stickers/internal/domain/entity"

	"github.com/google/uuid"
)

// FleetUsecase exposes vehicle lookups and per-party aggregation.
type FleetUsecase interface {
	// CountActiveVehicles verifies the party exists, then counts its active
	// vehicles. A party with no vehicles yields zero, not an error. The count
	// is a point-in-time snapshot.
	CountActiveVehicles(ctx context.Context, kind entity.PartyKind, partyID uuid.UUID) (int64, error)

	// ListVehiclesByOwner verifies the party exists, then lists its active
	// vehicles ordered by registration number.
	ListVehiclesByOwner(ctx context.Context, kind entity.PartyKind, partyID uuid.UUID) ([]*entity.Vehicle, error)

	// GetVehicle retrieves a single vehicle by its unique ID.
	GetVehicle(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error)
}
