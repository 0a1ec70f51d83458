// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"stickers/internal/domain/entity"
	"stickers/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for party persistence.
var (
	// ErrClientNotFound is returned when a client is not found.
	ErrClientNotFound = errors.New("client not found")
	// ErrCustomerNotFound is returned when a customer is not found.
	ErrCustomerNotFound = errors.New("customer not found")
)

// PartyRepository defines the standard operations for party persistence.
// Clients and customers live in distinct tables; each lookup targets exactly
// one of them and never falls back to the other.
type PartyRepository interface {
	// FindClientByID retrieves a single client by its unique ID.
	FindClientByID(ctx context.Context, id uuid.UUID) (*entity.Party, error)

	// FindCustomerByID retrieves a single customer by its unique ID.
	FindCustomerByID(ctx context.Context, id uuid.UUID) (*entity.Party, error)
}
