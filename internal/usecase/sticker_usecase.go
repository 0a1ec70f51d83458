package usecase

import (
	"context"

	"stickers/internal/domain/entity"

	"github.com/google/uuid"
)

// StickerUsecase exposes sticker lookups and the deactivation lifecycle.
type StickerUsecase interface {
	// GetSticker retrieves a single sticker by its unique ID.
	GetSticker(ctx context.Context, id uuid.UUID) (*entity.Sticker, error)

	// ListStickersByPolicy verifies the policy's stickers, oldest first.
	ListStickersByPolicy(ctx context.Context, policyID uuid.UUID) ([]*entity.Sticker, error)

	// DeactivateSticker soft-deletes the sticker and returns the updated
	// snapshot. Deactivating an already-inactive sticker is a no-op success
	// that returns the stored record unchanged; the transition is terminal.
	DeactivateSticker(ctx context.Context, id uuid.UUID) (*entity.Sticker, error)
}
