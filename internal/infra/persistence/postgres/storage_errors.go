package postgres

import (
	"context"

	domainerrors "stickers/internal/domain/errors"

	"github.com/pkg/errors"
)

// wrapStorageError classifies a non-not-found storage failure into the domain
// taxonomy: a caller-initiated abort surfaces as the cancelled kind, anything
// else as a storage fault. Repositories call this for every error that is not
// mapped to a sentinel.
func wrapStorageError(err error, details string) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return domainerrors.ErrRequestCancelled.WrapMessage(details)
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}
