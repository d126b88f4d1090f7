package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"heritage-api/internal/apperr"
	"heritage-api/internal/database"
	"heritage-api/internal/model"
)

const userColumns = `id, email, name, hashed_password, is_active, is_superuser, created_at`

func scanUser(row pgx.Row) (*model.User, error) {
	u := &model.User{}
	if err := row.Scan(
		&u.ID,
		&u.Email,
		&u.Name,
		&u.HashedPassword,
		&u.IsActive,
		&u.IsSuperuser,
		&u.CreatedAt,
	); err != nil {
		return nil, err
	}
	return u, nil
}

func GetUserByID(ctx context.Context, db database.DB, id uuid.UUID) (*model.User, error) {
	u, err := scanUser(db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`,
		id,
	))
	if err != nil {
		return nil, wrap("GetUserByID", err)
	}
	return u, nil
}

// GetUserByEmail expects email already normalized to lower case.
func GetUserByEmail(ctx context.Context, db database.DB, email string) (*model.User, error) {
	u, err := scanUser(db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`,
		email,
	))
	if err != nil {
		return nil, wrap("GetUserByEmail", err)
	}
	return u, nil
}

// CreateUser inserts u, assigning an id when it has none.
func CreateUser(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	row := db.QueryRow(ctx,
		`INSERT INTO users (id, email, name, hashed_password, is_active, is_superuser)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at`,
		u.ID,
		u.Email,
		u.Name,
		u.HashedPassword,
		u.IsActive,
		u.IsSuperuser,
	)
	if err := row.Scan(&u.CreatedAt); err != nil {
		return nil, wrap("CreateUser", err)
	}
	return u, nil
}

// ListUsers returns one page ordered by creation time plus the total count.
func ListUsers(ctx context.Context, db database.DB, limit, skip int) ([]model.User, int, error) {
	var total int
	if err := db.QueryRow(ctx, `SELECT count(*) FROM users`).Scan(&total); err != nil {
		return nil, 0, wrap("ListUsers", err)
	}
	rows, err := db.Query(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY created_at, id LIMIT $1 OFFSET $2`,
		limit, skip,
	)
	if err != nil {
		return nil, 0, wrap("ListUsers", err)
	}
	defer rows.Close()

	users := make([]model.User, 0, limit)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, 0, wrap("ListUsers", err)
		}
		users = append(users, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, wrap("ListUsers", err)
	}
	return users, total, nil
}

func UpdateUser(ctx context.Context, db database.DB, u *model.User) error {
	tag, err := db.Exec(ctx,
		`UPDATE users SET email = $1, name = $2, is_active = $3, is_superuser = $4
		 WHERE id = $5`,
		u.Email,
		u.Name,
		u.IsActive,
		u.IsSuperuser,
		u.ID,
	)
	if err != nil {
		return wrap("UpdateUser", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("UpdateUser: %w", apperr.ErrNotFound)
	}
	return nil
}

func UpdateUserPassword(ctx context.Context, db database.DB, id uuid.UUID, hashedPassword string) error {
	tag, err := db.Exec(ctx,
		`UPDATE users SET hashed_password = $1 WHERE id = $2`,
		hashedPassword,
		id,
	)
	if err != nil {
		return wrap("UpdateUserPassword", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("UpdateUserPassword: %w", apperr.ErrNotFound)
	}
	return nil
}

// DeleteUser removes the account. Content it owned keeps existing with a
// NULL owner.
func DeleteUser(ctx context.Context, db database.DB, id uuid.UUID) error {
	tag, err := db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return wrap("DeleteUser", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("DeleteUser: %w", apperr.ErrNotFound)
	}
	return nil
}
