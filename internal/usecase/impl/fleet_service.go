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

type fleetService struct {
	partyRepo   repository.PartyRepository
	vehicleRepo repository.VehicleRepository
}

// FleetServiceParams holds dependencies for FleetService, injected by Fx.
type FleetServiceParams struct {
	fx.In

	PartyRepo   repository.PartyRepository
	VehicleRepo repository.VehicleRepository
}

// NewFleetService creates a new fleet service instance
func NewFleetService(params FleetServiceParams) usecase.FleetUsecase {
	return &fleetService{
		partyRepo:   params.PartyRepo,
		vehicleRepo: params.VehicleRepo,
	}
}

// CountActiveVehicles verifies the party exists, then counts its active
// vehicles. The existence check and the count are two sequential reads;
// parties are never hard-deleted, so no transaction is needed and the count
// is a point-in-time snapshot.
func (s *fleetService) CountActiveVehicles(ctx context.Context, kind entity.PartyKind, partyID uuid.UUID) (int64, error) {
	if err := s.verifyPartyExists(ctx, kind, partyID); err != nil {
		return 0, err
	}

	count, err := s.vehicleRepo.CountActiveByOwner(ctx, entity.OwnerRef{Kind: kind, ID: partyID})
	if err != nil {
		return 0, errors.Wrap(err, "failed to count active vehicles by owner")
	}

	return count, nil
}

// ListVehiclesByOwner verifies the party exists, then lists its active vehicles.
func (s *fleetService) ListVehiclesByOwner(ctx context.Context, kind entity.PartyKind, partyID uuid.UUID) ([]*entity.Vehicle, error) {
	if err := s.verifyPartyExists(ctx, kind, partyID); err != nil {
		return nil, err
	}

	vehicles, err := s.vehicleRepo.FindActiveByOwner(ctx, entity.OwnerRef{Kind: kind, ID: partyID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to find vehicles by owner")
	}

	return vehicles, nil
}

// GetVehicle retrieves a single vehicle by its unique ID.
func (s *fleetService) GetVehicle(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error) {
	vehicle, err := s.vehicleRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrVehicleNotFound) {
			return nil, domainerrors.ErrVehicleNotFound
		}

		return nil, errors.Wrap(err, "failed to find vehicle by ID")
	}

	return vehicle, nil
}

// verifyPartyExists resolves the kind-specific lookup and maps absence to the
// kind-specific not-found error.
func (s *fleetService) verifyPartyExists(ctx context.Context, kind entity.PartyKind, partyID uuid.UUID) error {
	switch kind {
	case entity.PartyKindClient:
		if _, err := s.partyRepo.FindClientByID(ctx, partyID); err != nil {
			if errors.Is(err, repository.ErrClientNotFound) {
				return domainerrors.ErrClientNotFound
			}

			return errors.Wrap(err, "failed to find client by ID")
		}
	case entity.PartyKindCustomer:
		if _, err := s.partyRepo.FindCustomerByID(ctx, partyID); err != nil {
			if errors.Is(err, repository.ErrCustomerNotFound) {
				return domainerrors.ErrCustomerNotFound
			}

			return errors.Wrap(err, "failed to find customer by ID")
		}
	default:
		return domainerrors.ErrInvalidPartyKind.WithDetails("unknown party kind: " + kind.String())
	}

	return nil
}
