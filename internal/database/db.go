package database

import (
	"context"
	"fmt"
	"reflect"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the subset of *pgxpool.Pool used by the store. Each call acquires a
// pooled connection for the duration of that statement only.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(context.Context) error
	Close()
}

type FakeDB struct {
	ExecFn     func(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryFn    func(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRowFn func(ctx context.Context, sql string, args ...any) pgx.Row
	PingFn     func(ctx context.Context) error
	CloseFn    func()
}

func (f *FakeDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if f.ExecFn != nil {
		return f.ExecFn(ctx, sql, args...)
	}
	panic("unexpected Exec")
}

func (f *FakeDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	if f.QueryFn != nil {
		return f.QueryFn(ctx, sql, args...)
	}
	panic("unexpected Query")
}

func (f *FakeDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if f.QueryRowFn != nil {
		return f.QueryRowFn(ctx, sql, args...)
	}
	panic("unexpected QueryRow")
}

func (f *FakeDB) Ping(ctx context.Context) error {
	if f.PingFn != nil {
		return f.PingFn(ctx)
	}
	panic("unexpected Ping")
}

func (f *FakeDB) Close() {
	if f.CloseFn != nil {
		f.CloseFn()
	}
}

// FakeRow is a pgx.Row returning Values in column order, or Err.
// A value is assigned to a pointer target by wrapping it, so "draft" scans
// into a *string field and nil scans into any nullable field.
type FakeRow struct {
	Values []any
	Err    error
}

func (r FakeRow) Scan(dest ...any) error {
	if r.Err != nil {
		return r.Err
	}
	return scanValues(r.Values, dest)
}

// FakeRows is a pgx.Rows over an in-memory result set.
type FakeRows struct {
	Data   [][]any
	ErrVal error
	pos    int
}

func (r *FakeRows) Close()                                       {}
func (r *FakeRows) Err() error                                   { return r.ErrVal }
func (r *FakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *FakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *FakeRows) RawValues() [][]byte                          { return nil }
func (r *FakeRows) Conn() *pgx.Conn                              { return nil }

func (r *FakeRows) Next() bool {
	if r.pos >= len(r.Data) {
		return false
	}
	r.pos++
	return true
}

func (r *FakeRows) Scan(dest ...any) error {
	if r.pos == 0 || r.pos > len(r.Data) {
		return fmt.Errorf("FakeRows: Scan called without a current row")
	}
	return scanValues(r.Data[r.pos-1], dest)
}

func (r *FakeRows) Values() ([]any, error) {
	if r.pos == 0 || r.pos > len(r.Data) {
		return nil, fmt.Errorf("FakeRows: Values called without a current row")
	}
	return r.Data[r.pos-1], nil
}

func scanValues(values, dest []any) error {
	if len(values) != len(dest) {
		return fmt.Errorf("fake scan: %d values into %d targets", len(values), len(dest))
	}
	for i, d := range dest {
		target := reflect.ValueOf(d)
		if target.Kind() != reflect.Pointer || target.IsNil() {
			return fmt.Errorf("fake scan: target %d is not a pointer", i)
		}
		target = target.Elem()
		if values[i] == nil {
			target.Set(reflect.Zero(target.Type()))
			continue
		}
		v := reflect.ValueOf(values[i])
		switch {
		case v.Type().AssignableTo(target.Type()):
			target.Set(v)
		case target.Kind() == reflect.Pointer && v.Type().AssignableTo(target.Type().Elem()):
			p := reflect.New(target.Type().Elem())
			p.Elem().Set(v)
			target.Set(p)
		default:
			return fmt.Errorf("fake scan: cannot assign %s to %s at %d", v.Type(), target.Type(), i)
		}
	}
	return nil
}
