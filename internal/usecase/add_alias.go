package usecase

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/avc-dev/shortlink/internal/model"
)

// AddAlias добавляет пользовательский алиас к существующему коду
func (u *URLUsecase) AddAlias(ctx context.Context, code string, req model.AliasRequest, owner string) (model.AliasResponse, error) {
	alias := model.Code(strings.TrimSpace(req.CustomCode))

	entry, err := u.service.AddAlias(ctx, model.Code(code), alias, owner)
	if err != nil {
		u.logFailure("failed to add alias", err, zap.String("code", code), zap.String("alias", string(alias)))
		return model.AliasResponse{}, fmt.Errorf("failed to add alias: %w", err)
	}

	return model.AliasResponse{
		Code:       string(entry.ParentCode),
		CustomCode: string(entry.Code),
		CustomURL:  u.shortURL(entry.Code),
	}, nil
}
