package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"heritage-api/internal/apperr"
	"heritage-api/internal/database"
	"heritage-api/internal/model"
)

func userRow(u *model.User) []any {
	return []any{u.ID, u.Email, u.Name, u.HashedPassword, u.IsActive, u.IsSuperuser, u.CreatedAt}
}

func sampleUser() *model.User {
	name := "Alice"
	return &model.User{
		ID:             uuid.New(),
		Email:          "alice@example.com",
		Name:           &name,
		HashedPassword: "hash",
		IsActive:       true,
		CreatedAt:      time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestGetUserByID(t *testing.T) {
	sample := sampleUser()

	t.Run("found", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, sql string, args ...any) pgx.Row {
				require.Contains(t, sql, "WHERE id = $1")
				require.Equal(t, []any{sample.ID}, args)
				return database.FakeRow{Values: userRow(sample)}
			},
		}
		u, err := GetUserByID(context.Background(), db, sample.ID)
		require.NoError(t, err)
		require.Equal(t, sample, u)
	})

	t.Run("not found", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(context.Context, string, ...any) pgx.Row {
				return database.FakeRow{Err: pgx.ErrNoRows}
			},
		}
		_, err := GetUserByID(context.Background(), db, uuid.New())
		require.ErrorIs(t, err, apperr.ErrNotFound)
	})

	t.Run("driver error", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(context.Context, string, ...any) pgx.Row {
				return database.FakeRow{Err: errors.New("conn reset")}
			},
		}
		_, err := GetUserByID(context.Background(), db, uuid.New())
		require.ErrorContains(t, err, "conn reset")
		require.Equal(t, 500, apperr.Status(err))
	})
}

func TestGetUserByEmail(t *testing.T) {
	sample := sampleUser()
	db := &database.FakeDB{
		QueryRowFn: func(_ context.Context, sql string, args ...any) pgx.Row {
			require.Contains(t, sql, "WHERE email = $1")
			require.Equal(t, []any{"alice@example.com"}, args)
			return database.FakeRow{Values: userRow(sample)}
		},
	}
	u, err := GetUserByEmail(context.Background(), db, "alice@example.com")
	require.NoError(t, err)
	require.Equal(t, sample.ID, u.ID)
}

func TestCreateUser(t *testing.T) {
	created := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("assigns id", func(t *testing.T) {
		var gotArgs []any
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, sql string, args ...any) pgx.Row {
				require.Contains(t, sql, "INSERT INTO users")
				gotArgs = args
				return database.FakeRow{Values: []any{created}}
			},
		}
		u, err := CreateUser(context.Background(), db, &model.User{Email: "bob@example.com", HashedPassword: "h", IsActive: true})
		require.NoError(t, err)
		require.NotEqual(t, uuid.Nil, u.ID)
		require.Equal(t, created, u.CreatedAt)
		require.Equal(t, u.ID, gotArgs[0])
		require.Equal(t, "bob@example.com", gotArgs[1])
	})

	t.Run("duplicate email", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(context.Context, string, ...any) pgx.Row {
				return database.FakeRow{Err: &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}}
			},
		}
		_, err := CreateUser(context.Background(), db, &model.User{Email: "bob@example.com"})
		require.ErrorIs(t, err, apperr.ErrConflict)
		require.NotContains(t, err.Error(), "users_email_key")
	})
}

func TestListUsers(t *testing.T) {
	a, b := sampleUser(), sampleUser()
	b.Email = "b@example.com"

	t.Run("page", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, sql string, _ ...any) pgx.Row {
				require.Contains(t, sql, "count(*)")
				return database.FakeRow{Values: []any{5}}
			},
			QueryFn: func(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
				require.Contains(t, sql, "LIMIT $1 OFFSET $2")
				require.Equal(t, []any{2, 1}, args)
				return &database.FakeRows{Data: [][]any{userRow(a), userRow(b)}}, nil
			},
		}
		users, total, err := ListUsers(context.Background(), db, 2, 1)
		require.NoError(t, err)
		require.Equal(t, 5, total)
		require.Len(t, users, 2)
		require.Equal(t, "b@example.com", users[1].Email)
	})

	t.Run("query error", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(context.Context, string, ...any) pgx.Row {
				return database.FakeRow{Values: []any{0}}
			},
			QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
				return nil, errors.New("boom")
			},
		}
		_, _, err := ListUsers(context.Background(), db, 10, 0)
		require.ErrorContains(t, err, "boom")
	})

	t.Run("rows error", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(context.Context, string, ...any) pgx.Row {
				return database.FakeRow{Values: []any{1}}
			},
			QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
				return &database.FakeRows{ErrVal: errors.New("interrupted")}, nil
			},
		}
		_, _, err := ListUsers(context.Background(), db, 10, 0)
		require.ErrorContains(t, err, "interrupted")
	})
}

func TestUserMutations(t *testing.T) {
	u := sampleUser()
	tag := func(s string) func(context.Context, string, ...any) (pgconn.CommandTag, error) {
		return func(context.Context, string, ...any) (pgconn.CommandTag, error) {
			return pgconn.NewCommandTag(s), nil
		}
	}

	require.NoError(t, UpdateUser(context.Background(), &database.FakeDB{ExecFn: tag("UPDATE 1")}, u))
	require.ErrorIs(t, UpdateUser(context.Background(), &database.FakeDB{ExecFn: tag("UPDATE 0")}, u), apperr.ErrNotFound)

	require.NoError(t, UpdateUserPassword(context.Background(), &database.FakeDB{ExecFn: tag("UPDATE 1")}, u.ID, "new"))
	require.ErrorIs(t, UpdateUserPassword(context.Background(), &database.FakeDB{ExecFn: tag("UPDATE 0")}, u.ID, "new"), apperr.ErrNotFound)

	require.NoError(t, DeleteUser(context.Background(), &database.FakeDB{ExecFn: tag("DELETE 1")}, u.ID))
	require.ErrorIs(t, DeleteUser(context.Background(), &database.FakeDB{ExecFn: tag("DELETE 0")}, u.ID), apperr.ErrNotFound)

	failing := &database.FakeDB{ExecFn: func(context.Context, string, ...any) (pgconn.CommandTag, error) {
		return pgconn.CommandTag{}, &pgconn.PgError{Code: "23505"}
	}}
	require.ErrorIs(t, UpdateUser(context.Background(), failing, u), apperr.ErrConflict)
}
