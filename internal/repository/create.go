package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc-dev/shortlink/internal/model"
)

// Create атомарно сохраняет записи. Конфликт возвращается как
// *model.ConflictError без обёртки, чтобы вызывающий видел занятый код.
func (r *Repository) Create(ctx context.Context, entries []model.Entry) error {
	if len(entries) == 0 {
		return nil
	}

	err := r.underlying.Put(ctx, entries)
	if err != nil {
		var conflict *model.ConflictError
		if errors.As(err, &conflict) {
			return conflict
		}
		return fmt.Errorf("failed to create entries: %w", err)
	}

	return nil
}

// Exists проверяет, занят ли код активной записью. Истёкшая, но не
// деактивированная запись код по-прежнему занимает.
func (r *Repository) Exists(ctx context.Context, code model.Code) (bool, error) {
	exists, err := r.underlying.Exists(ctx, code)
	if err != nil {
		return false, fmt.Errorf("failed to check code existence: %w", err)
	}

	return exists, nil
}
