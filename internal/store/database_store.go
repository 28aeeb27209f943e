package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/avc-dev/shortlink/internal/model"
)

// uniqueViolation код ошибки PostgreSQL unique_violation
const uniqueViolation = "23505"

const entryColumns = `code, target_url, owner_id, kind, parent_code, created_at, expires_at, click_count, active`

// DatabaseStore реализует реестр кодов в PostgreSQL
type DatabaseStore struct {
	pool *pgxpool.Pool
}

// NewDatabaseStore создает новый DatabaseStore
func NewDatabaseStore(pool *pgxpool.Pool) *DatabaseStore {
	return &DatabaseStore{
		pool: pool,
	}
}

// Put сохраняет записи в одной транзакции. Конфликт по коду откатывает
// все записи и возвращается как *model.ConflictError.
func (ds *DatabaseStore) Put(ctx context.Context, entries []model.Entry) error {
	query := `
		INSERT INTO short_codes (code, target_url, owner_id, kind, parent_code, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	return pgx.BeginFunc(ctx, ds.pool, func(tx pgx.Tx) error {
		for _, e := range entries {
			_, err := tx.Exec(ctx, query,
				string(e.Code),
				string(e.TargetURL),
				e.Owner,
				string(e.Kind),
				string(e.ParentCode),
				e.CreatedAt,
				e.ExpiresAt,
			)
			if err != nil {
				var pgErr *pgconn.PgError
				if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
					return model.NewConflictError(e.Code)
				}
				return fmt.Errorf("failed to insert code %s: %w", e.Code, err)
			}
		}
		return nil
	})
}

// Get возвращает активную запись по коду
func (ds *DatabaseStore) Get(ctx context.Context, code model.Code) (model.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM short_codes WHERE code = $1 AND active`

	rows, err := ds.pool.Query(ctx, query, string(code))
	if err != nil {
		return model.Entry{}, fmt.Errorf("failed to read from database: %w", err)
	}

	entry, err := pgx.CollectExactlyOneRow(rows, scanEntry)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Entry{}, fmt.Errorf("code %s: %w", code, model.ErrNotFound)
		}
		return model.Entry{}, fmt.Errorf("failed to read from database: %w", err)
	}

	return entry, nil
}

// Exists проверяет, занят ли код активной записью
func (ds *DatabaseStore) Exists(ctx context.Context, code model.Code) (bool, error) {
	var exists bool

	query := `SELECT EXISTS (SELECT 1 FROM short_codes WHERE code = $1 AND active)`

	if err := ds.pool.QueryRow(ctx, query, string(code)).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check code existence: %w", err)
	}

	return exists, nil
}

// Deactivate деактивирует запись владельца вместе с алиасами
func (ds *DatabaseStore) Deactivate(ctx context.Context, code model.Code, owner string) ([]model.Code, error) {
	var codes []model.Code

	err := pgx.BeginFunc(ctx, ds.pool, func(tx pgx.Tx) error {
		var (
			entryOwner string
			kind       string
		)
		err := tx.QueryRow(ctx,
			`SELECT owner_id, kind FROM short_codes WHERE code = $1 AND active FOR UPDATE`,
			string(code),
		).Scan(&entryOwner, &kind)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return fmt.Errorf("code %s: %w", code, model.ErrNotFound)
			}
			return fmt.Errorf("failed to lock code: %w", err)
		}

		entry := model.Entry{Owner: entryOwner, Kind: model.EntryKind(kind)}
		if !entry.OwnedBy(owner) {
			return fmt.Errorf("code %s: %w", code, model.ErrNotAuthorized)
		}

		query := `UPDATE short_codes SET active = FALSE WHERE active AND code = $1 RETURNING code`
		if !entry.IsAlias() {
			query = `UPDATE short_codes SET active = FALSE
				WHERE active AND (code = $1 OR (kind = 'alias' AND parent_code = $1))
				RETURNING code`
		}

		rows, err := tx.Query(ctx, query, string(code))
		if err != nil {
			return fmt.Errorf("failed to deactivate code: %w", err)
		}
		codes, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.Code, error) {
			var c string
			err := row.Scan(&c)
			return model.Code(c), err
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	return codes, nil
}

// IncrementClicks увеличивает счётчики переходов одним батчем
func (ds *DatabaseStore) IncrementClicks(ctx context.Context, deltas map[model.Code]int64) error {
	if len(deltas) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for code, delta := range deltas {
		batch.Queue(
			`UPDATE short_codes SET click_count = click_count + $2 WHERE code = $1 AND active`,
			string(code), delta,
		)
	}

	if err := ds.pool.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to increment clicks: %w", err)
	}

	return nil
}

// ListByOwner возвращает все записи владельца, включая деактивированные
func (ds *DatabaseStore) ListByOwner(ctx context.Context, owner string) ([]model.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM short_codes WHERE owner_id = $1 ORDER BY created_at, id`

	rows, err := ds.pool.Query(ctx, query, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to query user codes: %w", err)
	}

	entries, err := pgx.CollectRows(rows, scanEntry)
	if err != nil {
		return nil, fmt.Errorf("failed to scan user codes: %w", err)
	}

	return entries, nil
}

// Ping проверяет подключение к базе данных
func (ds *DatabaseStore) Ping(ctx context.Context) error {
	return ds.pool.Ping(ctx)
}

func scanEntry(row pgx.CollectableRow) (model.Entry, error) {
	var (
		e                          model.Entry
		code, target, kind, parent string
		expiresAt                  *time.Time
	)

	err := row.Scan(&code, &target, &e.Owner, &kind, &parent, &e.CreatedAt, &expiresAt, &e.ClickCount, &e.Active)
	if err != nil {
		return model.Entry{}, err
	}

	e.Code = model.Code(code)
	e.TargetURL = model.URL(target)
	e.Kind = model.EntryKind(kind)
	e.ParentCode = model.Code(parent)
	e.ExpiresAt = expiresAt

	return e, nil
}
