package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/avc-dev/shortlink/internal/model"
	"github.com/avc-dev/shortlink/internal/service"
)

// CreateShortURL создает короткую ссылку и, если запрошено, алиас к ней
func (u *URLUsecase) CreateShortURL(ctx context.Context, req model.ShortenRequest, owner string) (model.ShortenResponse, error) {
	rawURL := strings.TrimSpace(req.URL)
	if rawURL == "" {
		return model.ShortenResponse{}, ErrEmptyURL
	}

	expiresAt, err := parseExpiry(req.ExpiresAt)
	if err != nil {
		return model.ShortenResponse{}, err
	}

	result, err := u.service.Create(ctx, model.CreateRequest{
		TargetURL:  model.URL(rawURL),
		CustomCode: model.Code(strings.TrimSpace(req.CustomCode)),
		Owner:      owner,
		ExpiresAt:  expiresAt,
	})
	if err != nil {
		u.logFailure("failed to create short URL", err, zap.String("original_url", rawURL))
		return model.ShortenResponse{}, fmt.Errorf("failed to create short URL: %w", err)
	}

	resp := model.ShortenResponse{
		ShortCode:   string(result.Entry.Code),
		ShortURL:    u.shortURL(result.Entry.Code),
		OriginalURL: string(result.Entry.TargetURL),
		CreatedAt:   result.Entry.CreatedAt,
		ExpiresAt:   result.Entry.ExpiresAt,
	}
	if result.Alias != nil {
		resp.CustomCode = string(result.Alias.Code)
		resp.CustomURL = u.shortURL(result.Alias.Code)
	}

	return resp, nil
}

func parseExpiry(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidExpiry, err)
	}
	t = t.UTC()

	return &t, nil
}

// logFailure пишет в лог только неожиданные ошибки: ошибки клиента
// и отсутствие кода логируются на уровне debug
func (u *URLUsecase) logFailure(msg string, err error, fields ...zap.Field) {
	fields = append(fields, zap.Error(err))

	switch {
	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, service.ErrNotAuthorized),
		errors.Is(err, service.ErrForbidden),
		errors.Is(err, service.ErrAliasTaken),
		errors.Is(err, service.ErrURLNotFound):
		u.logger.Debug(msg, fields...)
	case errors.Is(err, service.ErrCreationUnavailable):
		u.logger.Warn(msg, fields...)
	default:
		u.logger.Error(msg, fields...)
	}
}
