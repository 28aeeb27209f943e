package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/avc-dev/shortlink/internal/migrations"
	"github.com/avc-dev/shortlink/internal/model"
)

// SQLiteStore реестр кодов, глобальный счётчик и журнал диапазонов в одном
// файле SQLite. Транзакции открываются как BEGIN IMMEDIATE, поэтому
// процессы, разделяющие файл, резервируют диапазоны по очереди.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite открывает файл базы, применяет миграции и возвращает хранилище
func OpenSQLite(ctx context.Context, path string, logger *zap.Logger) (*SQLiteStore, error) {
	if path == "" {
		return nil, errors.New("sqlite path is required")
	}

	dsn := sqliteDSN(path)

	// Мигратор закрывает своё соединение
	migrationDB, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite for migrations: %w", err)
	}
	if err := migrations.NewMigrator(migrationDB, migrations.DialectSQLite, logger).RunUp(); err != nil {
		migrationDB.Close()
		return nil, err
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping sqlite: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func sqliteDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_txlock=immediate&_busy_timeout=5000"
}

// Close закрывает соединение
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Ping проверяет соединение
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLiteStore) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Put сохраняет записи в одной транзакции
func (s *SQLiteStore) Put(ctx context.Context, entries []model.Entry) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		for _, e := range entries {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO short_codes (code, target_url, owner_id, kind, parent_code, created_at, expires_at)
				VALUES (?, ?, ?, ?, ?, ?, ?)`,
				string(e.Code), string(e.TargetURL), e.Owner, string(e.Kind), string(e.ParentCode),
				e.CreatedAt.UTC(), nullTime(e.ExpiresAt),
			)
			if err != nil {
				var sqliteErr sqlite3.Error
				if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
					return model.NewConflictError(e.Code)
				}
				return fmt.Errorf("failed to insert code %s: %w", e.Code, err)
			}
		}
		return nil
	})
}

// Get возвращает активную запись по коду
func (s *SQLiteStore) Get(ctx context.Context, code model.Code) (model.Entry, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+entryColumns+` FROM short_codes WHERE code = ? AND active = 1`,
		string(code),
	)

	e, err := scanSQLiteEntry(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Entry{}, fmt.Errorf("code %s: %w", code, model.ErrNotFound)
		}
		return model.Entry{}, fmt.Errorf("failed to read from sqlite: %w", err)
	}

	return e, nil
}

// Exists проверяет, занят ли код активной записью
func (s *SQLiteStore) Exists(ctx context.Context, code model.Code) (bool, error) {
	var exists bool

	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM short_codes WHERE code = ? AND active = 1)`,
		string(code),
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check code existence: %w", err)
	}

	return exists, nil
}

// Deactivate деактивирует запись владельца вместе с алиасами
func (s *SQLiteStore) Deactivate(ctx context.Context, code model.Code, owner string) ([]model.Code, error) {
	var codes []model.Code

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var entry model.Entry
		var kind string
		err := tx.QueryRowContext(ctx,
			`SELECT owner_id, kind FROM short_codes WHERE code = ? AND active = 1`,
			string(code),
		).Scan(&entry.Owner, &kind)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return fmt.Errorf("code %s: %w", code, model.ErrNotFound)
			}
			return fmt.Errorf("failed to read code: %w", err)
		}
		entry.Kind = model.EntryKind(kind)

		if !entry.OwnedBy(owner) {
			return fmt.Errorf("code %s: %w", code, model.ErrNotAuthorized)
		}

		where := `active = 1 AND code = ?`
		args := []any{string(code)}
		if !entry.IsAlias() {
			where = `active = 1 AND (code = ? OR (kind = 'alias' AND parent_code = ?))`
			args = append(args, string(code))
		}

		rows, err := tx.QueryContext(ctx, `SELECT code FROM short_codes WHERE `+where, args...)
		if err != nil {
			return fmt.Errorf("failed to select codes: %w", err)
		}
		for rows.Next() {
			var c string
			if err := rows.Scan(&c); err != nil {
				rows.Close()
				return fmt.Errorf("failed to scan code: %w", err)
			}
			codes = append(codes, model.Code(c))
		}
		if err := rows.Close(); err != nil {
			return err
		}
		if err := rows.Err(); err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, `UPDATE short_codes SET active = 0 WHERE `+where, args...); err != nil {
			return fmt.Errorf("failed to deactivate code: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return codes, nil
}

// IncrementClicks увеличивает счётчики переходов в одной транзакции
func (s *SQLiteStore) IncrementClicks(ctx context.Context, deltas map[model.Code]int64) error {
	if len(deltas) == 0 {
		return nil
	}

	return s.withTx(ctx, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx,
			`UPDATE short_codes SET click_count = click_count + ? WHERE code = ? AND active = 1`,
		)
		if err != nil {
			return fmt.Errorf("failed to prepare statement: %w", err)
		}
		defer stmt.Close()

		for code, delta := range deltas {
			if _, err := stmt.ExecContext(ctx, delta, string(code)); err != nil {
				return fmt.Errorf("failed to increment clicks for %s: %w", code, err)
			}
		}
		return nil
	})
}

// ListByOwner возвращает все записи владельца, включая деактивированные
func (s *SQLiteStore) ListByOwner(ctx context.Context, owner string) ([]model.Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+entryColumns+` FROM short_codes WHERE owner_id = ? ORDER BY created_at, id`,
		owner,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query user codes: %w", err)
	}
	defer rows.Close()

	var entries []model.Entry
	for rows.Next() {
		e, err := scanSQLiteEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user code: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// AllocateRange резервирует [start, start+size) и возвращает start
func (s *SQLiteStore) AllocateRange(ctx context.Context, size int64) (int64, error) {
	if size <= 0 {
		return 0, fmt.Errorf("invalid range size %d", size)
	}

	var start int64
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO global_counter (id, current_counter) VALUES (1, 0)`,
		); err != nil {
			return fmt.Errorf("failed to init counter: %w", err)
		}

		if err := tx.QueryRowContext(ctx,
			`SELECT current_counter FROM global_counter WHERE id = 1`,
		).Scan(&start); err != nil {
			return fmt.Errorf("failed to read counter: %w", err)
		}

		if _, err := tx.ExecContext(ctx,
			`UPDATE global_counter SET current_counter = ?, updated_at = CURRENT_TIMESTAMP WHERE id = 1`,
			start+size,
		); err != nil {
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
func (s *SQLiteStore) RecordRange(ctx context.Context, r model.RangeAllocation) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO range_allocations (instance_id, start_range, end_range, allocated_at, status)
		VALUES (?, ?, ?, ?, ?)`,
		r.InstanceID, r.Start, r.End, r.AllocatedAt.UTC(), string(r.Status),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to record range: %w", err)
	}

	return res.LastInsertId()
}

// UpdateRangeStatus меняет статус диапазона
func (s *SQLiteStore) UpdateRangeStatus(ctx context.Context, id int64, status model.RangeStatus) error {
	var exhaustedAt any
	if status == model.RangeStatusExhausted {
		exhaustedAt = time.Now().UTC()
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE range_allocations
		SET status = ?, exhausted_at = COALESCE(?, exhausted_at)
		WHERE id = ?`,
		string(status), exhaustedAt, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update range status: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("range %d: %w", id, model.ErrNotFound)
	}

	return nil
}

// Ranges возвращает журнал диапазонов экземпляра
func (s *SQLiteStore) Ranges(ctx context.Context, instanceID string) ([]model.RangeAllocation, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, instance_id, start_range, end_range, allocated_at, exhausted_at, status
		FROM range_allocations
		WHERE instance_id = ?
		ORDER BY start_range`,
		instanceID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query ranges: %w", err)
	}
	defer rows.Close()

	var result []model.RangeAllocation
	for rows.Next() {
		var (
			r           model.RangeAllocation
			exhaustedAt sql.NullTime
			status      string
		)
		if err := rows.Scan(&r.ID, &r.InstanceID, &r.Start, &r.End, &r.AllocatedAt, &exhaustedAt, &status); err != nil {
			return nil, fmt.Errorf("failed to scan range: %w", err)
		}
		if exhaustedAt.Valid {
			r.ExhaustedAt = &exhaustedAt.Time
		}
		r.Status = model.RangeStatus(status)
		result = append(result, r)
	}

	return result, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSQLiteEntry(row rowScanner) (model.Entry, error) {
	var (
		e                          model.Entry
		code, target, kind, parent string
		expiresAt                  sql.NullTime
	)

	err := row.Scan(&code, &target, &e.Owner, &kind, &parent, &e.CreatedAt, &expiresAt, &e.ClickCount, &e.Active)
	if err != nil {
		return model.Entry{}, err
	}

	e.Code = model.Code(code)
	e.TargetURL = model.URL(target)
	e.Kind = model.EntryKind(kind)
	e.ParentCode = model.Code(parent)
	if expiresAt.Valid {
		t := expiresAt.Time
		e.ExpiresAt = &t
	}

	return e, nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t.UTC(), Valid: true}
}
