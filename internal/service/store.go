package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"gorm.io/gorm"

	apperrors "makecents/internal/errors"
)

// Clock returns the current wall-clock time. Services take one so month
// boundaries can be tested without waiting for them.
type Clock func() time.Time

func clockOrNow(c Clock) Clock {
	if c == nil {
		return time.Now
	}
	return c
}

// classify turns a repository error into one of the typed error kinds.
// A missing row becomes ErrNotFound, anything else a logged StoreError.
func classify(ctx context.Context, op string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrNotFound
	}
	slog.ErrorContext(ctx, "store operation failed", "op", op, "error", err)
	return apperrors.NewStoreError(op, err)
}
