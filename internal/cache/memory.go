package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/avc-dev/shortlink/internal/model"
)

// Memory кэш в памяти процесса на go-cache
type Memory struct {
	cache *gocache.Cache
}

// NewMemory создаёт кэш; cleanupInterval период удаления просроченных записей
func NewMemory(defaultTTL, cleanupInterval time.Duration) *Memory {
	return &Memory{cache: gocache.New(defaultTTL, cleanupInterval)}
}

func (m *Memory) Get(_ context.Context, code model.Code) (model.URL, bool) {
	v, ok := m.cache.Get(string(code))
	if !ok {
		return "", false
	}
	url, ok := v.(model.URL)
	return url, ok
}

// Set сохраняет значение; ttl <= 0 означает TTL по умолчанию
func (m *Memory) Set(_ context.Context, code model.Code, url model.URL, ttl time.Duration) {
	if ttl <= 0 {
		ttl = gocache.DefaultExpiration
	}
	m.cache.Set(string(code), url, ttl)
}

func (m *Memory) Delete(_ context.Context, codes []model.Code) {
	for _, c := range codes {
		m.cache.Delete(string(c))
	}
}

// Len количество записей, включая ещё не вычищенные просроченные
func (m *Memory) Len() int {
	return m.cache.ItemCount()
}
