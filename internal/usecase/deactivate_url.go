package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/avc-dev/shortlink/internal/model"
)

// DeactivateURL деактивирует код пользователя
func (u *URLUsecase) DeactivateURL(ctx context.Context, code, owner string) error {
	if err := u.service.Deactivate(ctx, model.Code(code), owner); err != nil {
		u.logFailure("failed to deactivate URL", err, zap.String("code", code), zap.String("owner", owner))
		return fmt.Errorf("failed to deactivate URL: %w", err)
	}

	u.logger.Info("URL deactivated", zap.String("code", code), zap.String("owner", owner))
	return nil
}
