package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/avc-dev/shortlink/internal/model"
)

// GetOriginalURL получает оригинальный URL по короткому коду
func (u *URLUsecase) GetOriginalURL(ctx context.Context, code string) (string, error) {
	originalURL, err := u.service.Resolve(ctx, model.Code(code))
	if err != nil {
		u.logFailure("failed to resolve code", err, zap.String("code", code))
		return "", fmt.Errorf("failed to resolve code %s: %w", code, err)
	}

	return originalURL.String(), nil
}
