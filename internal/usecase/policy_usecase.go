package usecase

import (
	"context"

	"stickers/internal/domain/entity"

	"github.com/google/uuid"
)

// PolicyUsecase exposes policy lookups.
type PolicyUsecase interface {
	// GetPolicy retrieves a single policy by its unique ID.
	GetPolicy(ctx context.Context, id uuid.UUID) (*entity.Policy, error)

	// ListPoliciesByVehicle verifies the vehicle exists, then lists its
	// policies, newest coverage window first.
	ListPoliciesByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]*entity.Policy, error)
}
