package postgres

import (
	"context"

	"stickers/internal/domain/entity"
	"stickers/internal/domain/repository"
	"stickers/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// partyRepository implements the repository.PartyRepository interface.
// The two party kinds are separate tables on purpose; neither lookup falls
// back to the other.
type partyRepository struct {
	db *gorm.DB
}

// NewPartyRepository is the constructor for partyRepository.
func NewPartyRepository(db *gorm.DB) repository.PartyRepository {
	return &partyRepository{
		db: db,
	}
}

// FindClientByID retrieves a single client by its unique ID.
func (repo *partyRepository) FindClientByID(ctx context.Context, id uuid.UUID) (*entity.Party, error) {
	var clientM model.ClientModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&clientM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrClientNotFound
		}

		return nil, wrapStorageError(err, "failed to find client by ID")
	}

	return toClientDomain(&clientM), nil
}

// FindCustomerByID retrieves a single customer by its unique ID.
func (repo *partyRepository) FindCustomerByID(ctx context.Context, id uuid.UUID) (*entity.Party, error) {
	var customerM model.CustomerModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&customerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, wrapStorageError(err, "failed to find customer by ID")
	}

	return toCustomerDomain(&customerM), nil
}

// --- Mapper Functions ---

// toClientDomain converts a GORM ClientModel to a domain Party entity.
func toClientDomain(data *model.ClientModel) *entity.Party {
	if data == nil {
		return nil
	}

	return &entity.Party{
		ID:        data.ID,
		Kind:      entity.PartyKindClient,
		Name:      data.Name,
		Email:     data.Email,
		Phone:     data.Phone,
		Address:   data.Address,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// toCustomerDomain converts a GORM CustomerModel to a domain Party entity.
func toCustomerDomain(data *model.CustomerModel) *entity.Party {
	if data == nil {
		return nil
	}

	return &entity.Party{
		ID:        data.ID,
		Kind:      entity.PartyKindCustomer,
		Name:      data.Name,
		Email:     data.Email,
		Phone:     data.Phone,
		Address:   data.Address,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
