package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
	pqInvalidTextFormat   = "22P02"
	pqCheckViolation      = "23514"
)

type txKey struct{}

// TxManager открывает транзакцию и кладет ее в контекст.
// Репозитории, вызванные с таким контекстом, работают внутри нее.
type TxManager struct {
	db *dbpg.DB
}

func NewTxManager(db *dbpg.DB) *TxManager {
	return &TxManager{db: db}
}

func (m *TxManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if txFromContext(ctx) != nil {
		return fn(ctx)
	}

	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err = fn(withTx(ctx, tx)); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	return nil
}

func withTx(ctx context.Context, tx *sql.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

func txFromContext(ctx context.Context) *sql.Tx {
	tx, _ := ctx.Value(txKey{}).(*sql.Tx)
	return tx
}

type scanner interface {
	Scan(dest ...any) error
}

// conn выполняет запрос в транзакции из контекста, а вне ее - через dbpg с ретраями.
type conn struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func newConn(db *dbpg.DB) conn {
	return conn{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (c conn) exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if tx := txFromContext(ctx); tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return c.db.ExecWithRetry(ctx, c.strategy, query, args...)
}

func (c conn) queryRow(ctx context.Context, query string, args ...any) (*sql.Row, error) {
	if tx := txFromContext(ctx); tx != nil {
		return tx.QueryRowContext(ctx, query, args...), nil
	}
	return c.db.QueryRowWithRetry(ctx, c.strategy, query, args...)
}

func (c conn) query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	if tx := txFromContext(ctx); tx != nil {
		return tx.QueryContext(ctx, query, args...)
	}
	return c.db.QueryWithRetry(ctx, c.strategy, query, args...)
}

// inTx нужен операциям из нескольких запросов, которые должны быть атомарны и без внешней транзакции.
func (c conn) inTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if txFromContext(ctx) != nil {
		return fn(ctx)
	}
	return NewTxManager(c.db).WithinTx(ctx, fn)
}

func pqCode(err error) (string, string) {
	var pgErr *pq.Error
	if errors.As(err, &pgErr) {
		return string(pgErr.Code), pgErr.Constraint
	}
	return "", ""
}

func affected(res sql.Result) (int64, error) {
	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return rows, nil
}

func nullString(s *string) sql.NullString {
	if s == nil || *s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func timePtr(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	t := nt.Time
	return &t
}
