package repository

import (
	"context"
	"fmt"

	"github.com/avc-dev/shortlink/internal/model"
)

// IncrementClicks применяет накопленные приращения счётчиков переходов
func (r *Repository) IncrementClicks(ctx context.Context, deltas map[model.Code]int64) error {
	if err := r.underlying.IncrementClicks(ctx, deltas); err != nil {
		return fmt.Errorf("failed to increment clicks: %w", err)
	}

	return nil
}
