package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/avc-dev/shortlink/internal/codec"
	"github.com/avc-dev/shortlink/internal/config"
	"github.com/avc-dev/shortlink/internal/model"
)

// URLService содержит бизнес-логику коротких ссылок
type URLService struct {
	registry  Registry
	allocator CodeAllocator
	cache     Cache
	clicks    ClickRecorder
	clock     model.Clock
	cfg       *config.Config
	logger    *zap.Logger
}

// NewURLService создает новый экземпляр URLService
func NewURLService(
	registry Registry,
	allocator CodeAllocator,
	cache Cache,
	clicks ClickRecorder,
	cfg *config.Config,
	logger *zap.Logger,
) *URLService {
	return &URLService{
		registry:  registry,
		allocator: allocator,
		cache:     cache,
		clicks:    clicks,
		clock:     model.RealClock{},
		cfg:       cfg,
		logger:    logger,
	}
}

// Create выдаёт новый код для адреса и, если запрошено, алиас к нему.
// Алиас доступен только владельцу. Базовая запись и алиас сохраняются атомарно.
func (s *URLService) Create(ctx context.Context, req model.CreateRequest) (model.CreateResult, error) {
	if err := ValidateURL(req.TargetURL); err != nil {
		return model.CreateResult{}, err
	}

	now := s.clock.Now().UTC()
	if req.ExpiresAt != nil && !req.ExpiresAt.After(now) {
		return model.CreateResult{}, fmt.Errorf("%w: expiration time must be in the future", ErrInvalidInput)
	}

	// Гость получает только сгенерированный код, алиас игнорируется
	if req.CustomCode != "" && req.Owner == "" {
		s.logger.Debug("ignoring custom code from anonymous user", zap.String("custom_code", string(req.CustomCode)))
		req.CustomCode = ""
	}

	if req.CustomCode != "" {
		if err := ValidateAlias(req.CustomCode); err != nil {
			return model.CreateResult{}, err
		}

		taken, err := s.registry.Exists(ctx, req.CustomCode)
		if err != nil {
			return model.CreateResult{}, fmt.Errorf("failed to check custom code: %w", err)
		}
		if taken {
			return model.CreateResult{}, ErrAliasTaken
		}
	}

	for attempt := 0; attempt < s.cfg.Retry.MaxCodeAttempts; attempt++ {
		code, err := s.nextCode(ctx)
		if err != nil {
			return model.CreateResult{}, err
		}

		exists, err := s.registry.Exists(ctx, code)
		if err != nil {
			return model.CreateResult{}, fmt.Errorf("failed to check generated code: %w", err)
		}
		if exists {
			s.logger.Warn("generated code already in use, retrying", zap.String("code", string(code)))
			continue
		}

		result := model.CreateResult{Entry: model.Entry{
			Code:      code,
			TargetURL: req.TargetURL,
			Owner:     req.Owner,
			Kind:      model.EntryKindGenerated,
			CreatedAt: now,
			ExpiresAt: req.ExpiresAt,
			Active:    true,
		}}
		entries := []model.Entry{result.Entry}

		if req.CustomCode != "" {
			alias := newAlias(result.Entry, req.CustomCode)
			result.Alias = &alias
			entries = append(entries, alias)
		}

		err = s.registry.Create(ctx, entries)
		if err == nil {
			return result, nil
		}

		var conflict *model.ConflictError
		if !errors.As(err, &conflict) {
			return model.CreateResult{}, fmt.Errorf("failed to save code: %w", err)
		}
		if req.CustomCode != "" && conflict.Code == req.CustomCode {
			return model.CreateResult{}, ErrAliasTaken
		}

		s.logger.Warn("generated code conflicted on save, retrying", zap.String("code", string(code)))
	}

	return model.CreateResult{}, fmt.Errorf("%w: %w after %d attempts", ErrCreationUnavailable, ErrMaxRetriesExceeded, s.cfg.Retry.MaxCodeAttempts)
}

func (s *URLService) nextCode(ctx context.Context) (model.Code, error) {
	v, err := s.allocator.Next(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrCreationUnavailable, err)
	}
	if v < 0 {
		return "", fmt.Errorf("%w: negative counter value %d", ErrCreationUnavailable, v)
	}

	return model.Code(codec.Base62.Encode(uint64(v))), nil
}

func newAlias(base model.Entry, alias model.Code) model.Entry {
	return model.Entry{
		Code:       alias,
		TargetURL:  base.TargetURL,
		Owner:      base.Owner,
		Kind:       model.EntryKindAlias,
		ParentCode: base.Code,
		CreatedAt:  base.CreatedAt,
		ExpiresAt:  base.ExpiresAt,
		Active:     true,
	}
}

// Resolve возвращает адрес для кода, сначала из кэша
func (s *URLService) Resolve(ctx context.Context, code model.Code) (model.URL, error) {
	if !plausibleCode(code) {
		return "", ErrURLNotFound
	}

	if url, ok := s.cache.Get(ctx, code); ok {
		s.clicks.Record(code)
		return url, nil
	}

	entry, err := s.registry.GetActive(ctx, code)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return "", fmt.Errorf("%w: %w", ErrURLNotFound, err)
		}
		return "", fmt.Errorf("failed to resolve code: %w", err)
	}

	if ttl := s.cacheTTL(entry); ttl > 0 {
		s.cache.Set(ctx, code, entry.TargetURL, ttl)
	}
	s.clicks.Record(code)

	return entry.TargetURL, nil
}

// cacheTTL не даёт кэшу пережить срок действия записи
func (s *URLService) cacheTTL(entry model.Entry) time.Duration {
	ttl := s.cfg.Cache.TTL
	if entry.ExpiresAt != nil {
		if left := entry.ExpiresAt.Sub(s.clock.Now()); left < ttl {
			ttl = left
		}
	}
	return ttl
}

// AddAlias добавляет пользовательский алиас к сгенерированному коду владельца
func (s *URLService) AddAlias(ctx context.Context, code, alias model.Code, owner string) (model.Entry, error) {
	if owner == "" {
		return model.Entry{}, ErrNotAuthorized
	}
	if err := ValidateAlias(alias); err != nil {
		return model.Entry{}, err
	}

	base, err := s.registry.GetActive(ctx, code)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Entry{}, fmt.Errorf("%w: %w", ErrURLNotFound, err)
		}
		return model.Entry{}, fmt.Errorf("failed to load code: %w", err)
	}
	if !base.OwnedBy(owner) {
		return model.Entry{}, ErrForbidden
	}
	if base.IsAlias() {
		return model.Entry{}, fmt.Errorf("%w: aliases can be added only to generated codes", ErrInvalidInput)
	}

	entry := newAlias(base, alias)
	entry.CreatedAt = s.clock.Now().UTC()

	if err := s.registry.Create(ctx, []model.Entry{entry}); err != nil {
		if errors.Is(err, model.ErrAlreadyExists) {
			return model.Entry{}, ErrAliasTaken
		}
		return model.Entry{}, fmt.Errorf("failed to save alias: %w", err)
	}

	return entry, nil
}

// Deactivate снимает код с публикации вместе с его алиасами
func (s *URLService) Deactivate(ctx context.Context, code model.Code, owner string) error {
	if owner == "" {
		return ErrNotAuthorized
	}

	codes, err := s.registry.Deactivate(ctx, code, owner)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrNotFound):
			return fmt.Errorf("%w: %w", ErrURLNotFound, err)
		case errors.Is(err, model.ErrNotAuthorized):
			return fmt.Errorf("%w: %w", ErrForbidden, err)
		default:
			return fmt.Errorf("failed to deactivate code: %w", err)
		}
	}

	s.cache.Delete(ctx, codes)

	return nil
}

// ListByOwner возвращает записи пользователя
func (s *URLService) ListByOwner(ctx context.Context, owner string) ([]model.OwnerEntry, error) {
	if owner == "" {
		return nil, ErrNotAuthorized
	}

	entries, err := s.registry.ListByOwner(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to list codes: %w", err)
	}

	return entries, nil
}
