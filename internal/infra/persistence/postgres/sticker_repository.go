package postgres

import (
	"context"
	"time"

	"stickers/internal/domain/entity"
	"stickers/internal/domain/repository"
	"stickers/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// stickerRepository implements the repository.StickerRepository interface.
type stickerRepository struct {
	db *gorm.DB
}

// NewStickerRepository is the constructor for stickerRepository.
func NewStickerRepository(db *gorm.DB) repository.StickerRepository {
	return &stickerRepository{
		db: db,
	}
}

// FindByID retrieves a single sticker by its unique ID. Deactivated stickers
// are returned too; callers decide what an inactive record means.
func (repo *stickerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Sticker, error) {
	var stickerM model.StickerModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&stickerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStickerNotFound
		}

		return nil, wrapStorageError(err, "failed to find sticker by ID")
	}

	return toStickerDomain(&stickerM), nil
}

// FindByPolicy retrieves all stickers issued under a policy, oldest first.
func (repo *stickerRepository) FindByPolicy(ctx context.Context, policyID uuid.UUID) ([]*entity.Sticker, error) {
	var stickerModels []*model.StickerModel

	if err := repo.db.WithContext(ctx).
		Where("policy_id = ?", policyID).
		Order("created_at ASC").
		Find(&stickerModels).Error; err != nil {
		return nil, wrapStorageError(err, "failed to find stickers by policy")
	}

	stickers := make([]*entity.Sticker, 0, len(stickerModels))
	for _, stickerM := range stickerModels {
		stickers = append(stickers, toStickerDomain(stickerM))
	}

	return stickers, nil
}

// Deactivate soft-deletes the sticker in one atomic record write. The guard on
// is_active makes the write idempotent: the three fields change together or
// not at all, and deleted_at is stamped at most once. Single-row UPDATE
// atomicity is the only ordering guarantee relied on; there is no
// application-level locking. The sticker's status tag is deliberately left
// untouched.
func (repo *stickerRepository) Deactivate(ctx context.Context, id uuid.UUID, deletedAt time.Time) (*entity.Sticker, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.StickerModel{}).
		Where("id = ? AND is_active = ?", id, true).
		Updates(map[string]any{
			"is_active":  false,
			"deleted_at": deletedAt,
			"updated_at": deletedAt,
		})

	if result.Error != nil {
		return nil, wrapStorageError(result.Error, "failed to deactivate sticker")
	}

	// Zero rows affected means either the sticker does not exist or another
	// writer deactivated it first. Re-read to tell the two apart; in the lost
	// race the stored snapshot comes back with its original deleted_at.
	return repo.FindByID(ctx, id)
}

// --- Mapper Functions ---

// toStickerDomain converts a GORM StickerModel to a domain Sticker entity.
func toStickerDomain(data *model.StickerModel) *entity.Sticker {
	if data == nil {
		return nil
	}

	return &entity.Sticker{
		ID:        data.ID,
		StickerNo: data.StickerNo,
		Status:    entity.StickerStatus(data.Status),
		PolicyID:  data.PolicyID,
		StockID:   data.StockID,
		IsActive:  data.IsActive,
		DeletedAt: data.DeletedAt,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
