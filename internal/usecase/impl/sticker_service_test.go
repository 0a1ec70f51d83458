package impl

import (
	"context"
	"testing"
	"time"

	"stickers/internal/domain/entity"
	domainerrors "stickers/internal/domain/errors"
	"stickers/internal/domain/repository"
	mockRepo "stickers/internal/mocks/repository"
	"stickers/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// stickerServiceFixtures holds all test dependencies for sticker service tests.
type stickerServiceFixtures struct {
	service     usecase.StickerUsecase
	stickerRepo *mockRepo.MockStickerRepository
	txManager   *mockRepo.MockTransactionManager
}

func createTestStickerService(t *testing.T) stickerServiceFixtures {
	stickerRepo := mockRepo.NewMockStickerRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)

	service := NewStickerService(StickerServiceParams{
		StickerRepo: stickerRepo,
		TxManager:   txManager,
	})

	return stickerServiceFixtures{
		service:     service,
		stickerRepo: stickerRepo,
		txManager:   txManager,
	}
}

func TestStickerService_GetSticker_Success(t *testing.T) {
	fx := createTestStickerService(t)

	ctx := context.Background()
	stickerID := uuid.New()
	sticker := &entity.Sticker{
		ID:        stickerID,
		StickerNo: "STK-000123",
		Status:    entity.StickerStatusActive,
		IsActive:  true,
	}

	fx.stickerRepo.EXPECT().
		FindByID(ctx, stickerID).
		Return(sticker, nil)

	result, err := fx.service.GetSticker(ctx, stickerID)

	require.NoError(t, err)
	assert.Equal(t, sticker, result)
}

func TestStickerService_GetSticker_NotFound(t *testing.T) {
	fx := createTestStickerService(t)

	ctx := context.Background()
	stickerID := uuid.New()

	fx.stickerRepo.EXPECT().
		FindByID(ctx, stickerID).
		Return(nil, repository.ErrStickerNotFound)

	result, err := fx.service.GetSticker(ctx, stickerID)

	assert.Nil(t, result)
	require.Error(t, err)
	assert.Equal(t, domainerrors.ErrStickerNotFound, err)
}

func TestStickerService_ListStickersByPolicy_Success(t *testing.T) {
	fx := createTestStickerService(t)

	ctx := context.Background()
	policyID := uuid.New()
	stickers := []*entity.Sticker{
		{ID: uuid.New(), StickerNo: "STK-000123", PolicyID: policyID, IsActive: true},
		{ID: uuid.New(), StickerNo: "STK-000124", PolicyID: policyID, IsActive: false},
	}

	fx.stickerRepo.EXPECT().
		FindByPolicy(ctx, policyID).
		Return(stickers, nil)

	result, err := fx.service.ListStickersByPolicy(ctx, policyID)

	require.NoError(t, err)
	assert.Equal(t, stickers, result)
}

func TestStickerService_ListStickersByPolicy_RepoError(t *testing.T) {
	fx := createTestStickerService(t)

	ctx := context.Background()
	policyID := uuid.New()

	fx.stickerRepo.EXPECT().
		FindByPolicy(ctx, policyID).
		Return(nil, errors.New("database error"))

	result, err := fx.service.ListStickersByPolicy(ctx, policyID)

	assert.Nil(t, result)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to find stickers by policy")
}

func TestStickerService_DeactivateSticker_Success(t *testing.T) {
	fx := createTestStickerService(t)

	ctx := context.Background()
	stickerID := uuid.New()
	deletedAt := time.Now()

	active := &entity.Sticker{
		ID:        stickerID,
		StickerNo: "STK-000123",
		Status:    entity.StickerStatusActive,
		IsActive:  true,
	}
	deactivated := &entity.Sticker{
		ID:        stickerID,
		StickerNo: "STK-000123",
		Status:    entity.StickerStatusActive,
		IsActive:  false,
		DeletedAt: &deletedAt,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockStickerRepo := mockRepo.NewMockStickerRepository(t)

			mockFactory.EXPECT().NewStickerRepository().Return(mockStickerRepo)

			mockStickerRepo.EXPECT().
				FindByID(ctx, stickerID).
				Return(active, nil)

			mockStickerRepo.EXPECT().
				Deactivate(ctx, stickerID, mock.AnythingOfType("time.Time")).
				Return(deactivated, nil)

			return fn(mockFactory)
		})

	result, err := fx.service.DeactivateSticker(ctx, stickerID)

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.IsActive)
	require.NotNil(t, result.DeletedAt)
	assert.Equal(t, deletedAt, *result.DeletedAt)
	// Deactivation only flips the active flag; the status tag is untouched.
	assert.Equal(t, entity.StickerStatusActive, result.Status)
}

func TestStickerService_DeactivateSticker_AlreadyInactive(t *testing.T) {
	fx := createTestStickerService(t)

	ctx := context.Background()
	stickerID := uuid.New()
	originalDeletedAt := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	inactive := &entity.Sticker{
		ID:        stickerID,
		StickerNo: "STK-000123",
		Status:    entity.StickerStatusRevoked,
		IsActive:  false,
		DeletedAt: &originalDeletedAt,
	}

	// No Deactivate expectation: a second delete must not touch the row, and
	// the original deletion timestamp must survive unchanged.
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockStickerRepo := mockRepo.NewMockStickerRepository(t)

			mockFactory.EXPECT().NewStickerRepository().Return(mockStickerRepo)

			mockStickerRepo.EXPECT().
				FindByID(ctx, stickerID).
				Return(inactive, nil)

			return fn(mockFactory)
		})

	result, err := fx.service.DeactivateSticker(ctx, stickerID)

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.IsActive)
	require.NotNil(t, result.DeletedAt)
	assert.Equal(t, originalDeletedAt, *result.DeletedAt)
}

func TestStickerService_DeactivateSticker_NotFound(t *testing.T) {
	fx := createTestStickerService(t)

	ctx := context.Background()
	stickerID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockStickerRepo := mockRepo.NewMockStickerRepository(t)

			mockFactory.EXPECT().NewStickerRepository().Return(mockStickerRepo)

			mockStickerRepo.EXPECT().
				FindByID(ctx, stickerID).
				Return(nil, repository.ErrStickerNotFound)

			return fn(mockFactory)
		})

	result, err := fx.service.DeactivateSticker(ctx, stickerID)

	assert.Nil(t, result)
	require.Error(t, err)
	assert.Equal(t, domainerrors.ErrStickerNotFound, err)
}

func TestStickerService_DeactivateSticker_WriteError(t *testing.T) {
	fx := createTestStickerService(t)

	ctx := context.Background()
	stickerID := uuid.New()

	active := &entity.Sticker{
		ID:       stickerID,
		Status:   entity.StickerStatusIssued,
		IsActive: true,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockStickerRepo := mockRepo.NewMockStickerRepository(t)

			mockFactory.EXPECT().NewStickerRepository().Return(mockStickerRepo)

			mockStickerRepo.EXPECT().
				FindByID(ctx, stickerID).
				Return(active, nil)

			mockStickerRepo.EXPECT().
				Deactivate(ctx, stickerID, mock.AnythingOfType("time.Time")).
				Return(nil, errors.New("database error"))

			return fn(mockFactory)
		})

	result, err := fx.service.DeactivateSticker(ctx, stickerID)

	assert.Nil(t, result)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to deactivate sticker")
}
