package database

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestFakeDB(t *testing.T) {
	db := &FakeDB{}
	require.Panics(t, func() { db.Exec(context.Background(), "") })
	require.Panics(t, func() { db.Query(context.Background(), "") })
	require.Panics(t, func() { db.QueryRow(context.Background(), "") })
	require.Panics(t, func() { db.Ping(context.Background()) })
	db.Close()

	execCalled := false
	queryCalled := false
	rowCalled := false
	pingCalled := false
	closeCalled := false

	db.ExecFn = func(ctx context.Context, s string, args ...any) (pgconn.CommandTag, error) {
		execCalled = true
		return pgconn.CommandTag{}, errors.New("e")
	}
	db.QueryFn = func(ctx context.Context, s string, args ...any) (pgx.Rows, error) {
		queryCalled = true
		return &FakeRows{}, nil
	}
	db.QueryRowFn = func(ctx context.Context, s string, args ...any) pgx.Row {
		rowCalled = true
		return FakeRow{}
	}
	db.PingFn = func(ctx context.Context) error { pingCalled = true; return nil }
	db.CloseFn = func() { closeCalled = true }

	_, err := db.Exec(context.Background(), "sql")
	require.Error(t, err)
	_, err = db.Query(context.Background(), "sql")
	require.NoError(t, err)
	_ = db.QueryRow(context.Background(), "sql")
	require.NoError(t, db.Ping(context.Background()))
	db.Close()
	require.True(t, execCalled)
	require.True(t, queryCalled)
	require.True(t, rowCalled)
	require.True(t, pingCalled)
	require.True(t, closeCalled)
}

func TestFakeRowScan(t *testing.T) {
	var (
		name  string
		theme *string
		size  *float64
		count int
	)
	err := FakeRow{Values: []any{"Hadrian's Wall", "roman", nil, 3}}.Scan(&name, &theme, &size, &count)
	require.NoError(t, err)
	require.Equal(t, "Hadrian's Wall", name)
	require.NotNil(t, theme)
	require.Equal(t, "roman", *theme)
	require.Nil(t, size)
	require.Equal(t, 3, count)

	require.Error(t, FakeRow{Values: []any{"a"}}.Scan(&name, &count))
	require.Error(t, FakeRow{Values: []any{"a"}}.Scan(&count))
	require.EqualError(t, FakeRow{Err: errors.New("no rows")}.Scan(&name), "no rows")
}

func TestFakeRows(t *testing.T) {
	rows := &FakeRows{Data: [][]any{{1}, {2}}}
	var got []int
	for rows.Next() {
		var n int
		require.NoError(t, rows.Scan(&n))
		got = append(got, n)
	}
	require.NoError(t, rows.Err())
	require.Equal(t, []int{1, 2}, got)

	empty := &FakeRows{}
	var n int
	require.Error(t, empty.Scan(&n))
	_, err := empty.Values()
	require.Error(t, err)
}
