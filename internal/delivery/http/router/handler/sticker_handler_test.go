package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"stickers/internal/domain/entity"
	domainerrors "stickers/internal/domain/errors"
	mockUC "stickers/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newStickerTestContext(t *testing.T, method, target, stickerID string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(stickerID)

	return c, rec
}

func newTestStickerHandler(uc *mockUC.MockStickerUsecase) *StickerHandler {
	return &StickerHandler{
		stickerUC: uc,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestStickerHandler_GetSticker_Success(t *testing.T) {
	stickerUC := mockUC.NewMockStickerUsecase(t)
	h := newTestStickerHandler(stickerUC)

	stickerID := uuid.New()
	sticker := &entity.Sticker{
		ID:        stickerID,
		StickerNo: "STK-000123",
		Status:    entity.StickerStatusActive,
		IsActive:  true,
	}

	stickerUC.EXPECT().
		GetSticker(mock.Anything, stickerID).
		Return(sticker, nil)

	c, rec := newStickerTestContext(t, http.MethodGet, "/stickers/"+stickerID.String(), stickerID.String())

	require.NoError(t, h.GetSticker(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "STK-000123")
	assert.Contains(t, rec.Body.String(), `"request_id"`)
}

func TestStickerHandler_GetSticker_InvalidID(t *testing.T) {
	stickerUC := mockUC.NewMockStickerUsecase(t)
	h := newTestStickerHandler(stickerUC)

	c, rec := newStickerTestContext(t, http.MethodGet, "/stickers/not-a-uuid", "not-a-uuid")

	require.NoError(t, h.GetSticker(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestStickerHandler_GetSticker_NotFound(t *testing.T) {
	stickerUC := mockUC.NewMockStickerUsecase(t)
	h := newTestStickerHandler(stickerUC)

	stickerID := uuid.New()

	stickerUC.EXPECT().
		GetSticker(mock.Anything, stickerID).
		Return(nil, domainerrors.ErrStickerNotFound)

	c, rec := newStickerTestContext(t, http.MethodGet, "/stickers/"+stickerID.String(), stickerID.String())

	require.NoError(t, h.GetSticker(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "STICKER_NOT_FOUND")
}

func TestStickerHandler_DeactivateSticker_Success(t *testing.T) {
	stickerUC := mockUC.NewMockStickerUsecase(t)
	h := newTestStickerHandler(stickerUC)

	stickerID := uuid.New()
	deletedAt := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	deactivated := &entity.Sticker{
		ID:        stickerID,
		StickerNo: "STK-000123",
		Status:    entity.StickerStatusActive,
		IsActive:  false,
		DeletedAt: &deletedAt,
	}

	stickerUC.EXPECT().
		DeactivateSticker(mock.Anything, stickerID).
		Return(deactivated, nil)

	c, rec := newStickerTestContext(t, http.MethodDelete, "/stickers/"+stickerID.String(), stickerID.String())

	require.NoError(t, h.DeactivateSticker(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"is_active":false`)
	assert.Contains(t, rec.Body.String(), "2026-03-14T09:30:00Z")
}

func TestStickerHandler_DeactivateSticker_InvalidID(t *testing.T) {
	stickerUC := mockUC.NewMockStickerUsecase(t)
	h := newTestStickerHandler(stickerUC)

	c, rec := newStickerTestContext(t, http.MethodDelete, "/stickers/42", "42")

	require.NoError(t, h.DeactivateSticker(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}
