// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"stickers/internal/domain/entity"
	"stickers/internal/errors"

	"github.com/google/uuid"
)

// ErrPolicyNotFound is returned when a policy is not found.
var ErrPolicyNotFound = errors.New("policy not found")

// PolicyRepository defines the operations for policy persistence.
type PolicyRepository interface {
	// FindByID retrieves a single policy by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Policy, error)

	// FindByVehicle retrieves all policies attached to a vehicle, newest
	// coverage window first.
	FindByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]*entity.Policy, error)
}
