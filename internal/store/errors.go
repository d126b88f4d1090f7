// Package store holds the SQL for every table. Functions take the database
// handle explicitly and translate driver errors into apperr classes.
package store

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"heritage-api/internal/apperr"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

func wrap(op string, err error) error {
	var pgErr *pgconn.PgError
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return fmt.Errorf("%s: %w", op, apperr.ErrNotFound)
	case errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation:
		// The constraint name stays out of the message, which reaches clients.
		return fmt.Errorf("%s: %w", op, apperr.ErrConflict)
	case errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation:
		return fmt.Errorf("%s: %w: referenced record does not exist", op, apperr.ErrValidation)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
