package impl

import (
	"context"
	"time"

	"stickers/internal/domain/entity"
	domainerrors "stickers/internal/domain/errors"
	"stickers/internal/domain/repository"
	"stickers/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type stickerService struct {
	stickerRepo repository.StickerRepository
	txManager   repository.TransactionManager
}

// StickerServiceParams holds dependencies for StickerService, injected by Fx.
type StickerServiceParams struct {
	fx.In

	StickerRepo repository.StickerRepository
	TxManager   repository.TransactionManager
}

// NewStickerService creates a new sticker service instance
func NewStickerService(params StickerServiceParams) usecase.StickerUsecase {
	return &stickerService{
		stickerRepo: params.StickerRepo,
		txManager:   params.TxManager,
	}
}

// GetSticker retrieves a single sticker by its unique ID.
func (s *stickerService) GetSticker(ctx context.Context, id uuid.UUID) (*entity.Sticker, error) {
	sticker, err := s.stickerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrStickerNotFound) {
			return nil, domainerrors.ErrStickerNotFound
		}

		return nil, errors.Wrap(err, "failed to find sticker by ID")
	}

	return sticker, nil
}

// ListStickersByPolicy retrieves all stickers issued under a policy.
func (s *stickerService) ListStickersByPolicy(ctx context.Context, policyID uuid.UUID) ([]*entity.Sticker, error) {
	stickers, err := s.stickerRepo.FindByPolicy(ctx, policyID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find stickers by policy")
	}

	return stickers, nil
}

// DeactivateSticker soft-deletes a sticker and returns the updated snapshot.
//
// Deactivating an already-inactive sticker is a no-op success that returns the
// stored record unchanged: deleted_at is stamped exactly once and never moved
// forward, and the inactive state is terminal. The status tag is a separate
// dimension and is not touched by deactivation.
//
// The read and the conditional write run inside one transaction so the
// returned snapshot is the one the write produced; the write itself is a
// single guarded record update, so the three fields change atomically.
func (s *stickerService) DeactivateSticker(ctx context.Context, id uuid.UUID) (*entity.Sticker, error) {
	var deactivated *entity.Sticker

	err := s.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		stickerRepo := repos.NewStickerRepository()

		sticker, err := stickerRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrStickerNotFound) {
				return domainerrors.ErrStickerNotFound
			}

			return errors.Wrap(err, "failed to find sticker by ID")
		}

		if !sticker.IsActive {
			// Idempotent terminal state: return the snapshot as stored.
			deactivated = sticker

			return nil
		}

		updated, err := stickerRepo.Deactivate(ctx, id, time.Now())
		if err != nil {
			if errors.Is(err, repository.ErrStickerNotFound) {
				return domainerrors.ErrStickerNotFound
			}

			return errors.Wrap(err, "failed to deactivate sticker")
		}

		deactivated = updated

		return nil
	})
	if err != nil {
		return nil, err
	}

	return deactivated, nil
}
