package repository

import (
	"context"

	"github.com/avc-dev/shortlink/internal/model"
)

// Store хранилище реестра кодов: память, PostgreSQL или SQLite
type Store interface {
	Put(ctx context.Context, entries []model.Entry) error
	Get(ctx context.Context, code model.Code) (model.Entry, error)
	Exists(ctx context.Context, code model.Code) (bool, error)
	Deactivate(ctx context.Context, code model.Code, owner string) ([]model.Code, error)
	IncrementClicks(ctx context.Context, deltas map[model.Code]int64) error
	ListByOwner(ctx context.Context, owner string) ([]model.Entry, error)
}

// Repository реестр кодов поверх Store. Проверяет срок действия записей
// и добавляет контекст к ошибкам хранилища.
type Repository struct {
	underlying Store
	clock      model.Clock
}

func New(underlying Store, clock model.Clock) *Repository {
	if clock == nil {
		clock = model.RealClock{}
	}
	return &Repository{underlying: underlying, clock: clock}
}
