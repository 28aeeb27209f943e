package service

import (
	"context"
	"time"

	"github.com/avc-dev/shortlink/internal/model"
)

//go:generate mockery --name=Registry --dir=. --output=../mocks --outpkg=mocks --with-expecter

// Registry реестр коротких кодов
type Registry interface {
	// Create атомарно сохраняет записи. При занятом коде возвращает *model.ConflictError
	Create(ctx context.Context, entries []model.Entry) error
	GetActive(ctx context.Context, code model.Code) (model.Entry, error)
	Exists(ctx context.Context, code model.Code) (bool, error)
	Deactivate(ctx context.Context, code model.Code, owner string) ([]model.Code, error)
	ListByOwner(ctx context.Context, owner string) ([]model.OwnerEntry, error)
}

//go:generate mockery --name=CodeAllocator --dir=. --output=../mocks --outpkg=mocks --with-expecter

// CodeAllocator выдаёт уникальные числа для генерации кодов
type CodeAllocator interface {
	Next(ctx context.Context) (int64, error)
}

//go:generate mockery --name=Cache --dir=. --output=../mocks --outpkg=mocks --with-expecter

// Cache кэш код -> URL для редиректов
type Cache interface {
	Get(ctx context.Context, code model.Code) (model.URL, bool)
	Set(ctx context.Context, code model.Code, url model.URL, ttl time.Duration)
	Delete(ctx context.Context, codes []model.Code)
}

//go:generate mockery --name=ClickRecorder --dir=. --output=../mocks --outpkg=mocks --with-expecter

// ClickRecorder неблокирующий учёт переходов
type ClickRecorder interface {
	Record(code model.Code)
}
