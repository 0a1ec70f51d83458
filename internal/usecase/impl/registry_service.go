package impl

import (
	"context"

	"stickers/internal/domain/entity"
	domainerrors "stickers/internal/domain/errors"
	"stickers/internal/domain/repository"
	"stickers/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type registryService struct {
	partyRepo repository.PartyRepository
}

// RegistryServiceParams holds dependencies for RegistryService, injected by Fx.
type RegistryServiceParams struct {
	fx.In

	PartyRepo repository.PartyRepository
}

// NewRegistryService creates a new registry service instance
func NewRegistryService(params RegistryServiceParams) usecase.RegistryUsecase {
	return &registryService{
		partyRepo: params.PartyRepo,
	}
}

// GetParty retrieves the client or customer record selected by kind.
func (s *registryService) GetParty(ctx context.Context, kind entity.PartyKind, id uuid.UUID) (*entity.Party, error) {
	switch kind {
	case entity.PartyKindClient:
		party, err := s.partyRepo.FindClientByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrClientNotFound) {
				return nil, domainerrors.ErrClientNotFound
			}

			return nil, errors.Wrap(err, "failed to find client by ID")
		}

		return party, nil
	case entity.PartyKindCustomer:
		party, err := s.partyRepo.FindCustomerByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrCustomerNotFound) {
				return nil, domainerrors.ErrCustomerNotFound
			}

			return nil, errors.Wrap(err, "failed to find customer by ID")
		}

		return party, nil
	default:
		return nil, domainerrors.ErrInvalidPartyKind.WithDetails("unknown party kind: " + kind.String())
	}
}
