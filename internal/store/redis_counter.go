package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/avc-dev/shortlink/internal/model"
)

const (
	// DefaultCounterKey ключ глобального счётчика в Redis
	DefaultCounterKey = "shortlink:global_counter"

	rangeSeqKey    = "shortlink:range_allocations:seq"
	rangeKeyPrefix = "shortlink:range_allocations:"
)

// RedisCounter глобальный счётчик на INCRBY. Команда атомарна на сервере,
// поэтому блокировки не нужны. Журнал диапазонов хранится в хешах.
type RedisCounter struct {
	client redis.UniversalClient
	key    string
}

func NewRedisCounter(client redis.UniversalClient, key string) *RedisCounter {
	if key == "" {
		key = DefaultCounterKey
	}
	return &RedisCounter{client: client, key: key}
}

// AllocateRange резервирует [start, start+size) и возвращает start
func (c *RedisCounter) AllocateRange(ctx context.Context, size int64) (int64, error) {
	if size <= 0 {
		return 0, fmt.Errorf("invalid range size %d", size)
	}

	end, err := c.client.IncrBy(ctx, c.key, size).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to increment counter: %w", err)
	}

	return end - size, nil
}

// RecordRange записывает диапазон в хеш shortlink:range_allocations:<id>
func (c *RedisCounter) RecordRange(ctx context.Context, r model.RangeAllocation) (int64, error) {
	id, err := c.client.Incr(ctx, rangeSeqKey).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to allocate range id: %w", err)
	}

	err = c.client.HSet(ctx, rangeKey(id),
		"instance_id", r.InstanceID,
		"start_range", r.Start,
		"end_range", r.End,
		"allocated_at", r.AllocatedAt.UTC().Format(time.RFC3339Nano),
		"status", string(r.Status),
	).Err()
	if err != nil {
		return 0, fmt.Errorf("failed to record range: %w", err)
	}

	return id, nil
}

// UpdateRangeStatus меняет статус диапазона
func (c *RedisCounter) UpdateRangeStatus(ctx context.Context, id int64, status model.RangeStatus) error {
	key := rangeKey(id)

	exists, err := c.client.Exists(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("failed to check range: %w", err)
	}
	if exists == 0 {
		return fmt.Errorf("range %d: %w", id, model.ErrNotFound)
	}

	fields := []any{"status", string(status)}
	if status == model.RangeStatusExhausted {
		fields = append(fields, "exhausted_at", time.Now().UTC().Format(time.RFC3339Nano))
	}

	if err := c.client.HSet(ctx, key, fields...).Err(); err != nil {
		return fmt.Errorf("failed to update range status: %w", err)
	}

	return nil
}

// Range читает запись журнала по id
func (c *RedisCounter) Range(ctx context.Context, id int64) (model.RangeAllocation, error) {
	values, err := c.client.HGetAll(ctx, rangeKey(id)).Result()
	if err != nil {
		return model.RangeAllocation{}, fmt.Errorf("failed to read range: %w", err)
	}
	if len(values) == 0 {
		return model.RangeAllocation{}, fmt.Errorf("range %d: %w", id, model.ErrNotFound)
	}

	r := model.RangeAllocation{
		ID:         id,
		InstanceID: values["instance_id"],
		Status:     model.RangeStatus(values["status"]),
	}

	var errs []error
	r.Start, err = strconv.ParseInt(values["start_range"], 10, 64)
	errs = append(errs, err)
	r.End, err = strconv.ParseInt(values["end_range"], 10, 64)
	errs = append(errs, err)
	r.AllocatedAt, err = time.Parse(time.RFC3339Nano, values["allocated_at"])
	errs = append(errs, err)
	if v, ok := values["exhausted_at"]; ok {
		t, err := time.Parse(time.RFC3339Nano, v)
		errs = append(errs, err)
		r.ExhaustedAt = &t
	}

	if err := errors.Join(errs...); err != nil {
		return model.RangeAllocation{}, fmt.Errorf("corrupted range %d: %w", id, err)
	}

	return r, nil
}

func rangeKey(id int64) string {
	return rangeKeyPrefix + strconv.FormatInt(id, 10)
}
