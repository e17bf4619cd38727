package database

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// DB is what the stores and the health check need from *pgxpool.Pool.
// Every write is an INSERT ... RETURNING, so there is no Exec.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(context.Context) error
	Close()
}

// FakeDB is a DB whose methods are supplied per test. Unset query methods panic.
// Statements collects the SQL of every Query and QueryRow call, in order.
type FakeDB struct {
	QueryFn    func(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRowFn func(ctx context.Context, sql string, args ...any) pgx.Row
	PingFn     func(ctx context.Context) error
	CloseFn    func()

	Statements []string
}

func (f *FakeDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	f.Statements = append(f.Statements, sql)
	if f.QueryFn == nil {
		panic("unexpected Query: " + sql)
	}
	return f.QueryFn(ctx, sql, args...)
}

func (f *FakeDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	f.Statements = append(f.Statements, sql)
	if f.QueryRowFn == nil {
		panic("unexpected QueryRow: " + sql)
	}
	return f.QueryRowFn(ctx, sql, args...)
}

// Ping reports healthy unless PingFn says otherwise.
func (f *FakeDB) Ping(ctx context.Context) error {
	if f.PingFn != nil {
		return f.PingFn(ctx)
	}
	return nil
}

func (f *FakeDB) Close() {
	if f.CloseFn != nil {
		f.CloseFn()
	}
}
