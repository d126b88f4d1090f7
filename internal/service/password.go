package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"heritage-api/internal/apperr"
	"heritage-api/internal/worker"
)

var (
	bcryptGenerateFromPassword   = bcrypt.GenerateFromPassword
	bcryptCompareHashAndPassword = bcrypt.CompareHashAndPassword
)

// ErrMalformedHash means a stored hash could not be parsed. It is an
// operator problem, not a wrong password.
var ErrMalformedHash = fmt.Errorf("%w: malformed password hash", apperr.ErrInternal)

// maxPasswordBytes is the bcrypt input limit. Validators count characters,
// so multi-byte passwords can pass them and still exceed it.
const maxPasswordBytes = 72

// ErrPasswordTooLong is returned by Hash for input bcrypt cannot take.
var ErrPasswordTooLong = fmt.Errorf("%w: password must be at most %d bytes", apperr.ErrValidation, maxPasswordBytes)

// dummyPassword is hashed once so that logins for unknown emails cost the
// same as logins with a wrong password.
const dummyPassword = "not-a-real-password"

// Hasher hashes and verifies passwords with bcrypt. Work runs on the pool
// when one is set, so a burst of logins cannot take every CPU.
type Hasher struct {
	cost int
	pool worker.Pool

	dummyOnce sync.Once
	dummy     string
	dummyErr  error
}

// NewHasher returns a Hasher; cost 0 selects bcrypt.DefaultCost and pool may
// be nil.
func NewHasher(cost int, pool worker.Pool) *Hasher {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost, pool: pool}
}

func (h *Hasher) Hash(ctx context.Context, password string) (string, error) {
	if len(password) > maxPasswordBytes {
		return "", ErrPasswordTooLong
	}
	var (
		out []byte
		err error
	)
	if perr := worker.Do(ctx, h.pool, func() {
		out, err = bcryptGenerateFromPassword([]byte(password), h.cost)
	}); perr != nil {
		return "", fmt.Errorf("hash password: %w", perr)
	}
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", ErrPasswordTooLong
	}
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(out), nil
}

// Verify reports whether plain matches hash. A mismatch is (false, nil);
// an unparsable hash is ErrMalformedHash.
func (h *Hasher) Verify(ctx context.Context, plain, hash string) (bool, error) {
	var err error
	if perr := worker.Do(ctx, h.pool, func() {
		err = bcryptCompareHashAndPassword([]byte(hash), []byte(plain))
	}); perr != nil {
		return false, fmt.Errorf("verify password: %w", perr)
	}
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %v", ErrMalformedHash, err)
	}
}

// VerifyDummy spends one verification on a throwaway hash.
func (h *Hasher) VerifyDummy(ctx context.Context, plain string) {
	h.dummyOnce.Do(func() {
		h.dummy, h.dummyErr = h.Hash(context.WithoutCancel(ctx), dummyPassword)
	})
	if h.dummyErr != nil {
		return
	}
	_, _ = h.Verify(ctx, plain, h.dummy)
}
