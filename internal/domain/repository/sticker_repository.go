// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"stickers/internal/domain/entity"
	"stickers/internal/errors"

	"github.com/google/uuid"
)

// ErrStickerNotFound is returned when a sticker is not found.
var ErrStickerNotFound = errors.New("sticker not found")

// StickerRepository defines the operations for sticker persistence.
type StickerRepository interface {
	// FindByID retrieves a single sticker by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Sticker, error)

	// FindByPolicy retrieves all stickers issued under a policy, oldest first.
	FindByPolicy(ctx context.Context, policyID uuid.UUID) ([]*entity.Sticker, error)

	// Deactivate soft-deletes the sticker in one atomic record write
	// (is_active=false, deleted_at and updated_at stamped) guarded on the
	// sticker still being active, and returns the stored snapshot afterwards.
	// If another writer won the race the already-deactivated snapshot is
	// returned unchanged; deleted_at is never moved forward.
	Deactivate(ctx context.Context, id uuid.UUID, deletedAt time.Time) (*entity.Sticker, error)
}
