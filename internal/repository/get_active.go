package repository

import (
	"context"
	"fmt"

	"github.com/avc-dev/shortlink/internal/model"
)

// GetActive возвращает активную и не истёкшую запись.
// Истёкшая запись возвращает model.ErrExpired, который оборачивает model.ErrNotFound.
func (r *Repository) GetActive(ctx context.Context, code model.Code) (model.Entry, error) {
	entry, err := r.underlying.Get(ctx, code)
	if err != nil {
		return model.Entry{}, fmt.Errorf("failed to get entry by code: %w", err)
	}

	if entry.ExpiredAt(r.clock.Now()) {
		return model.Entry{}, fmt.Errorf("code %s: %w", code, model.ErrExpired)
	}

	return entry, nil
}
