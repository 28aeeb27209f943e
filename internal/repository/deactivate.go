package repository

import (
	"context"
	"fmt"

	"github.com/avc-dev/shortlink/internal/model"
)

// Deactivate деактивирует запись владельца и возвращает коды, которые нужно
// убрать из кэша
func (r *Repository) Deactivate(ctx context.Context, code model.Code, owner string) ([]model.Code, error) {
	codes, err := r.underlying.Deactivate(ctx, code, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to deactivate code: %w", err)
	}

	return codes, nil
}
