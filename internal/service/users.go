package service

import (
	"context"
	"errors"
	"fmt"

	"heritage-api/internal/apperr"
	"heritage-api/internal/database"
	"heritage-api/internal/logging"
	"heritage-api/internal/model"
	"heritage-api/internal/store"
)

var (
	createUser         = store.CreateUser
	updateUserPassword = store.UpdateUserPassword
)

// NewUser describes an account to create; the password is plain text.
type NewUser struct {
	Email       string
	Password    string
	Name        *string
	IsActive    bool
	IsSuperuser bool
}

// CreateUser hashes the password and stores the account.
// A taken email is apperr.ErrConflict.
func CreateUser(ctx context.Context, db database.DB, h *Hasher, in NewUser) (*model.User, error) {
	hashed, err := h.Hash(ctx, in.Password)
	if err != nil {
		return nil, err
	}
	u, err := createUser(ctx, db, &model.User{
		Email:          NormalizeEmail(in.Email),
		Name:           in.Name,
		HashedPassword: hashed,
		IsActive:       in.IsActive,
		IsSuperuser:    in.IsSuperuser,
	})
	if err != nil {
		if errors.Is(err, apperr.ErrConflict) {
			return nil, fmt.Errorf("%w: email already registered", apperr.ErrConflict)
		}
		return nil, err
	}
	return u, nil
}

// ChangePassword replaces u's password after checking the current one. A
// wrong current password is ErrInvalidCredentials.
func ChangePassword(ctx context.Context, db database.DB, h *Hasher, u *model.User, current, next string) error {
	ok, err := h.Verify(ctx, current, u.HashedPassword)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.ErrInvalidCredentials
	}
	if current == next {
		return fmt.Errorf("%w: new password must differ from the current one", apperr.ErrValidation)
	}
	hashed, err := h.Hash(ctx, next)
	if err != nil {
		return err
	}
	return updateUserPassword(ctx, db, u.ID, hashed)
}

// EnsureSuperuser creates the first superuser unless an account with that
// email already exists. It reports whether an account was created.
func EnsureSuperuser(ctx context.Context, db database.DB, h *Hasher, email, password string) (bool, error) {
	if email == "" {
		return false, nil
	}
	_, err := getUserByEmail(ctx, db, NormalizeEmail(email))
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, apperr.ErrNotFound) {
		return false, err
	}
	u, err := CreateUser(ctx, db, h, NewUser{
		Email:       email,
		Password:    password,
		IsActive:    true,
		IsSuperuser: true,
	})
	if err != nil {
		return false, err
	}
	logging.FromContext(ctx).Info(ctx, "created first superuser", "user_id", u.ID, "email", u.Email)
	return true, nil
}
