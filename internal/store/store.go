package store

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/avc-dev/shortlink/internal/model"
)

// Store хранит реестр кодов в памяти процесса.
// Активный код уникален; деактивированные записи остаются в истории.
type Store struct {
	active   map[model.Code]*model.Entry
	inactive []model.Entry
	mutex    sync.Mutex
}

func NewStore() *Store {
	return &Store{
		active: make(map[model.Code]*model.Entry),
	}
}

// Put сохраняет записи атомарно: либо все, либо ни одной
func (s *Store) Put(_ context.Context, entries []model.Entry) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	// Проверяем все коды перед вставкой
	seen := make(map[model.Code]struct{}, len(entries))
	for _, e := range entries {
		if _, exists := s.active[e.Code]; exists {
			return model.NewConflictError(e.Code)
		}
		if _, dup := seen[e.Code]; dup {
			return model.NewConflictError(e.Code)
		}
		seen[e.Code] = struct{}{}
	}

	for _, e := range entries {
		e.Active = true
		s.active[e.Code] = &e
	}

	return nil
}

// Get возвращает активную запись по коду
func (s *Store) Get(_ context.Context, code model.Code) (model.Entry, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	e, ok := s.active[code]
	if !ok {
		return model.Entry{}, fmt.Errorf("code %s: %w", code, model.ErrNotFound)
	}

	return *e, nil
}

// Exists проверяет, занят ли код активной записью
func (s *Store) Exists(_ context.Context, code model.Code) (bool, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	_, ok := s.active[code]
	return ok, nil
}

// Deactivate деактивирует запись владельца. Для сгенерированного кода
// деактивируются и все его алиасы. Возвращает деактивированные коды.
func (s *Store) Deactivate(_ context.Context, code model.Code, owner string) ([]model.Code, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	e, ok := s.active[code]
	if !ok {
		return nil, fmt.Errorf("code %s: %w", code, model.ErrNotFound)
	}
	if !e.OwnedBy(owner) {
		return nil, fmt.Errorf("code %s: %w", code, model.ErrNotAuthorized)
	}

	codes := []model.Code{code}
	if !e.IsAlias() {
		for c, other := range s.active {
			if other.IsAlias() && other.ParentCode == code {
				codes = append(codes, c)
			}
		}
	}

	for _, c := range codes {
		entry := s.active[c]
		entry.Active = false
		s.inactive = append(s.inactive, *entry)
		delete(s.active, c)
	}

	return codes, nil
}

// IncrementClicks увеличивает счётчики переходов. Неизвестные коды пропускаются.
func (s *Store) IncrementClicks(_ context.Context, deltas map[model.Code]int64) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for code, delta := range deltas {
		if e, ok := s.active[code]; ok {
			e.ClickCount += delta
		}
	}

	return nil
}

// ListByOwner возвращает все записи владельца, включая деактивированные
func (s *Store) ListByOwner(_ context.Context, owner string) ([]model.Entry, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	var result []model.Entry
	for _, e := range s.active {
		if e.OwnedBy(owner) {
			result = append(result, *e)
		}
	}
	for _, e := range s.inactive {
		if e.OwnedBy(owner) {
			result = append(result, e)
		}
	}

	slices.SortFunc(result, func(a, b model.Entry) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})

	return result, nil
}
