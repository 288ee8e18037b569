package property

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/pandodao/algopayx/core"
	"github.com/pandodao/algopayx/store"
	"github.com/pandodao/algopayx/store/db"
	"github.com/tsenart/nap"
)

func New(conn *nap.DB, dialect db.Dialect) core.PropertyStore {
	return WithRunner(conn, dialect.Builder())
}

// WithRunner returns a property store bound to r, typically a transaction.
func WithRunner(r sq.BaseRunner, sb sq.StatementBuilderType) core.PropertyStore {
	return &propertyStore{r: r, sb: sb}
}

type propertyStore struct {
	r  sq.BaseRunner
	sb sq.StatementBuilderType
}

func (s *propertyStore) Get(ctx context.Context, key string, value any) error {
	return Read(ctx, s.r, s.sb, key, value)
}

func (s *propertyStore) Set(ctx context.Context, key string, value any) error {
	return Write(ctx, s.r, s.sb, key, value)
}

func (s *propertyStore) Remove(ctx context.Context, key string) error {
	return remove(ctx, s.r, s.sb, key)
}

func remove(ctx context.Context, r sq.BaseRunner, sb sq.StatementBuilderType, key string) error {
	_, err := sb.Delete("properties").
		Where(sq.Eq{"name": key}).
		RunWith(r).
		ExecContext(ctx)
	return err
}

// Read decodes the stored value of key into value; a missing key leaves
// value untouched.
func Read(ctx context.Context, r sq.BaseRunner, sb sq.StatementBuilderType, key string, value any) error {
	var raw []byte
	err := sb.Select("payload").
		From("properties").
		Where(sq.Eq{"name": key}).
		RunWith(r).
		QueryRowContext(ctx).
		Scan(&raw)

	switch {
	case err == nil:
		if err := json.Unmarshal(raw, value); err != nil {
			return fmt.Errorf("%w: %s: %w", store.ErrCorrupted, key, err)
		}

		return nil
	case errors.Is(err, sql.ErrNoRows):
		return nil
	default:
		return err
	}
}

// Write upserts key with the json encoding of value. Runs on r, which may
// be a transaction.
func Write(ctx context.Context, r sq.BaseRunner, sb sq.StatementBuilderType, key string, value any) error {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}

	result, err := sb.Update("properties").
		Set("payload", string(jsonValue)).
		Set("version", sq.Expr("version + 1")).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"name": key}).
		RunWith(r).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to set property: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if n > 0 {
		return nil
	}

	_, err = sb.Insert("properties").
		Columns("name", "payload").
		Values(key, string(jsonValue)).
		RunWith(r).
		ExecContext(ctx)
	return err
}
