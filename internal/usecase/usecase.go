package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/avc-dev/shortlink/internal/config"
	"github.com/avc-dev/shortlink/internal/model"
)

//go:generate mockery --name=URLService --dir=. --output=../mocks --outpkg=mocks --with-expecter

// URLService определяет интерфейс бизнес-логики коротких ссылок
type URLService interface {
	Create(ctx context.Context, req model.CreateRequest) (model.CreateResult, error)
	Resolve(ctx context.Context, code model.Code) (model.URL, error)
	AddAlias(ctx context.Context, code, alias model.Code, owner string) (model.Entry, error)
	Deactivate(ctx context.Context, code model.Code, owner string) error
	ListByOwner(ctx context.Context, owner string) ([]model.OwnerEntry, error)
}

//go:generate mockery --name=RangeInspector --dir=. --output=../mocks --outpkg=mocks --with-expecter

// RangeInspector отдаёт состояние аллокатора экземпляра
type RangeInspector interface {
	Snapshot() model.RangeSnapshot
}

// URLUsecase переводит запросы HTTP-слоя в вызовы сервиса
type URLUsecase struct {
	service URLService
	ranges  RangeInspector
	cfg     *config.Config
	logger  *zap.Logger
}

// NewURLUsecase создает новый экземпляр URLUsecase
func NewURLUsecase(service URLService, ranges RangeInspector, cfg *config.Config, logger *zap.Logger) *URLUsecase {
	return &URLUsecase{
		service: service,
		ranges:  ranges,
		cfg:     cfg,
		logger:  logger,
	}
}

// RangeInfo возвращает состояние диапазона кодов экземпляра
func (u *URLUsecase) RangeInfo() model.RangeSnapshot {
	return u.ranges.Snapshot()
}

func (u *URLUsecase) shortURL(code model.Code) string {
	return u.cfg.BaseURL.Join(string(code))
}
