package repository

import (
	"context"
	"fmt"

	"github.com/avc-dev/shortlink/internal/model"
)

// ListByOwner возвращает сгенерированные записи владельца с активными алиасами.
// Алиасы, чья базовая запись не принадлежит владельцу, выводятся отдельно.
func (r *Repository) ListByOwner(ctx context.Context, owner string) ([]model.OwnerEntry, error) {
	entries, err := r.underlying.ListByOwner(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to get entries by owner: %w", err)
	}

	result := make([]model.OwnerEntry, 0, len(entries))
	index := make(map[model.Code]int)

	for _, e := range entries {
		if e.IsAlias() {
			continue
		}
		// Деактивированный код мог быть занят заново, поэтому индексируем только активные
		if e.Active {
			index[e.Code] = len(result)
		}
		result = append(result, model.OwnerEntry{Entry: e})
	}

	for _, e := range entries {
		if !e.IsAlias() || !e.Active {
			continue
		}
		if i, ok := index[e.ParentCode]; ok {
			result[i].Aliases = append(result[i].Aliases, e.Code)
			continue
		}
		result = append(result, model.OwnerEntry{Entry: e})
	}

	return result, nil
}
