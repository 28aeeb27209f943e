package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/avc-dev/shortlink/internal/model"
)

// DatabaseCounter глобальный счётчик и журнал диапазонов в PostgreSQL.
// Строка global_counter с id = 1 блокируется на время резервирования,
// поэтому параллельные экземпляры получают непересекающиеся диапазоны.
type DatabaseCounter struct {
	pool *pgxpool.Pool
}

func NewDatabaseCounter(pool *pgxpool.Pool) *DatabaseCounter {
	return &DatabaseCounter{pool: pool}
}

// AllocateRange резервирует [start, start+size) и возвращает start
func (c *DatabaseCounter) AllocateRange(ctx context.Context, size int64) (int64, error) {
	if size <= 0 {
		return 0, fmt.Errorf("invalid range size %d", size)
	}

	var start int64

	err := pgx.BeginFunc(ctx, c.pool, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx,
			`INSERT INTO global_counter (id, current_counter) VALUES (1, 0) ON CONFLICT (id) DO NOTHING`,
		)
		if err != nil {
			return fmt.Errorf("failed to init counter: %w", err)
		}

		err = tx.QueryRow(ctx,
			`SELECT current_counter FROM global_counter WHERE id = 1 FOR UPDATE`,
		).Scan(&start)
		if err != nil {
			return fmt.Errorf("failed to lock counter: %w", err)
		}

		_, err = tx.Exec(ctx,
			`UPDATE global_counter SET current_counter = $1, updated_at = now() WHERE id = 1`,
			start+size,
		)
		if err != nil {
			return fmt.Errorf("failed to advance counter: %w", err)
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return start, nil
}

// RecordRange записывает выданный диапазон в журнал
func (c *DatabaseCounter) RecordRange(ctx context.Context, r model.RangeAllocation) (int64, error) {
	var id int64

	err := c.pool.QueryRow(ctx, `
		INSERT INTO range_allocations (instance_id, start_range, end_range, allocated_at, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		r.InstanceID, r.Start, r.End, r.AllocatedAt, string(r.Status),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to record range: %w", err)
	}

	return id, nil
}

// UpdateRangeStatus меняет статус диапазона; для EXHAUSTED проставляет exhausted_at
func (c *DatabaseCounter) UpdateRangeStatus(ctx context.Context, id int64, status model.RangeStatus) error {
	tag, err := c.pool.Exec(ctx, `
		UPDATE range_allocations
		SET status = $2::text,
		    exhausted_at = CASE WHEN $2::text = 'EXHAUSTED' THEN now() ELSE exhausted_at END
		WHERE id = $1`,
		id, string(status),
	)
	if err != nil {
		return fmt.Errorf("failed to update range status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("range %d: %w", id, model.ErrNotFound)
	}

	return nil
}

// Ranges возвращает журнал диапазонов экземпляра
func (c *DatabaseCounter) Ranges(ctx context.Context, instanceID string) ([]model.RangeAllocation, error) {
	rows, err := c.pool.Query(ctx, `
		SELECT id, instance_id, start_range, end_range, allocated_at, exhausted_at, status
		FROM range_allocations
		WHERE instance_id = $1
		ORDER BY start_range`,
		instanceID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query ranges: %w", err)
	}

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.RangeAllocation, error) {
		var (
			r      model.RangeAllocation
			status string
		)
		err := row.Scan(&r.ID, &r.InstanceID, &r.Start, &r.End, &r.AllocatedAt, &r.ExhaustedAt, &status)
		r.Status = model.RangeStatus(status)
		return r, err
	})
}
