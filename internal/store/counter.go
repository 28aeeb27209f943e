package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/avc-dev/shortlink/internal/model"
)

// MemoryCounter глобальный счётчик и журнал диапазонов в памяти.
// Подходит для одного процесса и тестов.
type MemoryCounter struct {
	mutex  sync.Mutex
	value  int64
	ranges []model.RangeAllocation
}

func NewMemoryCounter() *MemoryCounter {
	return &MemoryCounter{}
}

// AllocateRange возвращает текущее значение счётчика и сдвигает его на size
func (c *MemoryCounter) AllocateRange(_ context.Context, size int64) (int64, error) {
	if size <= 0 {
		return 0, fmt.Errorf("invalid range size %d", size)
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	start := c.value
	c.value += size
	return start, nil
}

// RecordRange добавляет диапазон в журнал
func (c *MemoryCounter) RecordRange(_ context.Context, r model.RangeAllocation) (int64, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	r.ID = int64(len(c.ranges) + 1)
	c.ranges = append(c.ranges, r)
	return r.ID, nil
}

// UpdateRangeStatus меняет статус диапазона в журнале
func (c *MemoryCounter) UpdateRangeStatus(_ context.Context, id int64, status model.RangeStatus) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if id <= 0 || id > int64(len(c.ranges)) {
		return fmt.Errorf("range %d: %w", id, model.ErrNotFound)
	}

	r := &c.ranges[id-1]
	r.Status = status
	if status == model.RangeStatusExhausted {
		now := time.Now()
		r.ExhaustedAt = &now
	}
	return nil
}

// Ranges возвращает копию журнала
func (c *MemoryCounter) Ranges() []model.RangeAllocation {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	return append([]model.RangeAllocation(nil), c.ranges...)
}
