package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/avc-dev/shortlink/internal/model"
)

// GetUserURLs возвращает ссылки пользователя с их алиасами
func (u *URLUsecase) GetUserURLs(ctx context.Context, owner string) ([]model.UserURLResponse, error) {
	entries, err := u.service.ListByOwner(ctx, owner)
	if err != nil {
		u.logFailure("failed to list user URLs", err, zap.String("owner", owner))
		return nil, fmt.Errorf("failed to list user URLs: %w", err)
	}

	result := make([]model.UserURLResponse, 0, len(entries))
	for _, e := range entries {
		item := model.UserURLResponse{
			ShortCode:   string(e.Code),
			ShortURL:    u.shortURL(e.Code),
			OriginalURL: string(e.TargetURL),
			ClickCount:  e.ClickCount,
			Active:      e.Active,
			CreatedAt:   e.CreatedAt,
			ExpiresAt:   e.ExpiresAt,
		}
		for _, a := range e.Aliases {
			item.Aliases = append(item.Aliases, string(a))
		}
		result = append(result, item)
	}

	return result, nil
}
