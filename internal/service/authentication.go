package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"heritage-api/internal/apperr"
	"heritage-api/internal/database"
	"heritage-api/internal/logging"
	"heritage-api/internal/model"
	"heritage-api/internal/store"
)

var getUserByEmail = store.GetUserByEmail

// NormalizeEmail is applied to every email before it is stored or looked up.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Authenticate resolves email/password to an active user. Unknown email and
// wrong password are indistinguishable: both return ErrInvalidCredentials
// after one password verification.
func Authenticate(ctx context.Context, db database.DB, h *Hasher, email, password string) (*model.User, error) {
	u, err := getUserByEmail(ctx, db, NormalizeEmail(email))
	if errors.Is(err, apperr.ErrNotFound) {
		h.VerifyDummy(ctx, password)
		return nil, apperr.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	ok, err := h.Verify(ctx, password, u.HashedPassword)
	if err != nil {
		logging.FromContext(ctx).Error(ctx, "stored password hash is unusable", "user_id", u.ID, "error", err)
		return nil, err
	}
	if !ok {
		return nil, apperr.ErrInvalidCredentials
	}
	if !u.IsActive {
		return nil, apperr.ErrInactiveAccount
	}
	return u, nil
}

// Login authenticates and issues an access token valid for ttl.
func Login(ctx context.Context, db database.DB, h *Hasher, tokens *TokenService, ttl time.Duration, email, password string) (string, error) {
	u, err := Authenticate(ctx, db, h, email, password)
	if err != nil {
		return "", err
	}
	return tokens.Issue(u.ID, ttl)
}
