package postgres

import (
	"context"
	"errors"
	"fmt"
	c "georemind/internal/core/domain/common"
	e "georemind/internal/core/domain/errors"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

const pgUndefinedTableErrCode = "42P01"

var ErrSchemaMissing = errors.New("durable_value table does not exist, apply migrations first")

func wrap(op string, key string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUndefinedTableErrCode {
		return fmt.Errorf("%s %s: %w: %w", op, key, ErrSchemaMissing, err)
	}
	return fmt.Errorf("%s %s: %w", op, key, err)
}

// Store keeps durable values in the durable_value table.
type Store struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Store {
	if pool == nil {
		panic(e.NewNilArgumentError("pool"))
	}
	return &Store{pool: pool}
}

func (s *Store) GetString(ctx context.Context, key string) (c.Optional[string], error) {
	var value string
	err := s.pool.QueryRow(ctx, `SELECT value FROM durable_value WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return c.Optional[string]{}, nil
	}
	if err != nil {
		return c.Optional[string]{}, wrap("get", key, err)
	}
	return c.NewOptional(value, true), nil
}

func (s *Store) SetString(ctx context.Context, key string, value string) error {
	_, err := s.pool.Exec(
		ctx,
		`INSERT INTO durable_value (key, value, updated_at) VALUES ($1, $2, NOW())
		 ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key,
		value,
	)
	if err != nil {
		return wrap("set", key, err)
	}
	return nil
}
