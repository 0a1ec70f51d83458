package usecase

import (
	"context"

	"stickers/internal/domain/entity"

	"github.com/google/uuid"
)

// RegistryUsecase exposes party (client/customer) lookups.
type RegistryUsecase interface {
	// GetParty retrieves the client or customer record selected by kind.
	// An invalid kind is a validation failure; an absent party is a
	// kind-specific not-found. There is no cross-kind fallback.
	GetParty(ctx context.Context, kind entity.PartyKind, id uuid.UUID) (*entity.Party, error)
}
