// Package middleware holds the echo middlewares that resolve the caller's
// identity and attach request-scoped logging.
package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"heritage-api/internal/apperr"
	"heritage-api/internal/cache"
	"heritage-api/internal/database"
	"heritage-api/internal/logging"
	"heritage-api/internal/model"
	"heritage-api/internal/service"
	"heritage-api/internal/store"
)

const ContextUserKey = "user"

var (
	getUserByID   = store.GetUserByID
	jsonMarshal   = json.Marshal
	jsonUnmarshal = json.Unmarshal
)

// UserCacheKey is the cache key holding the user record for id.
func UserCacheKey(id uuid.UUID) string { return "user:" + id.String() }

// Authenticator turns a bearer token into the current user. Records are
// read through the cache for ttl, so a deactivation can take up to ttl to
// apply unless Invalidate is called.
type Authenticator struct {
	db     database.DB
	cache  cache.Cache
	tokens *service.TokenService
	ttl    time.Duration
}

// NewAuthenticator builds the gate. c may be nil to always read the store.
func NewAuthenticator(db database.DB, c cache.Cache, tokens *service.TokenService, ttl time.Duration) *Authenticator {
	return &Authenticator{db: db, cache: c, tokens: tokens, ttl: ttl}
}

func bearerToken(c echo.Context) (string, error) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return "", fmt.Errorf("%w: missing bearer token", apperr.ErrAuthenticationRequired)
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", fmt.Errorf("%w: malformed authorization header", apperr.ErrAuthenticationRequired)
	}
	return strings.TrimSpace(parts[1]), nil
}

// Resolve runs the whole gate for one request without touching the echo
// context.
func (a *Authenticator) Resolve(c echo.Context) (*model.User, error) {
	raw, err := bearerToken(c)
	if err != nil {
		return nil, err
	}
	id, err := a.tokens.Verify(raw)
	if err != nil {
		return nil, err
	}
	u, err := a.loadUser(c.Request().Context(), id)
	if err != nil {
		return nil, err
	}
	if !u.IsActive {
		return nil, apperr.ErrInactiveAccount
	}
	return u, nil
}

func (a *Authenticator) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		u, err := a.Resolve(c)
		if err != nil {
			return err
		}
		c.Set(ContextUserKey, u)
		ctx := logging.WithContext(c.Request().Context(), logging.FromContext(c.Request().Context()).With("user_id", u.ID))
		c.SetRequest(c.Request().WithContext(ctx))
		return next(c)
	}
}

func (a *Authenticator) RequireSuperuser(next echo.HandlerFunc) echo.HandlerFunc {
	return a.RequireAuth(func(c echo.Context) error {
		if !CurrentUser(c).IsSuperuser {
			return fmt.Errorf("%w: superuser privileges required", apperr.ErrPermissionDenied)
		}
		return next(c)
	})
}

// Invalidate drops id from the user cache. Failures are logged only.
func (a *Authenticator) Invalidate(ctx context.Context, id uuid.UUID) {
	if a.cache == nil {
		return
	}
	if err := a.cache.Del(ctx, UserCacheKey(id)).Err(); err != nil {
		logging.FromContext(ctx).Warn(ctx, "user cache invalidation failed", "user_id", id, "error", err)
	}
}

func (a *Authenticator) loadUser(ctx context.Context, id uuid.UUID) (*model.User, error) {
	log := logging.FromContext(ctx)
	key := UserCacheKey(id)
	if a.cache != nil {
		b, err := a.cache.Get(ctx, key).Bytes()
		switch {
		case err == nil:
			var u model.User
			if err := jsonUnmarshal(b, &u); err == nil {
				return &u, nil
			}
			log.Warn(ctx, "discarding unreadable cached user", "user_id", id)
		case !errors.Is(err, redis.Nil):
			log.Warn(ctx, "user cache read failed", "user_id", id, "error", err)
		}
	}

	u, err := getUserByID(ctx, a.db, id)
	if errors.Is(err, apperr.ErrNotFound) {
		return nil, fmt.Errorf("%w: user no longer exists", apperr.ErrInvalidToken)
	}
	if err != nil {
		return nil, err
	}

	if a.cache != nil && a.ttl > 0 {
		if b, err := jsonMarshal(u); err == nil {
			if err := a.cache.Set(ctx, key, b, a.ttl).Err(); err != nil {
				log.Warn(ctx, "user cache write failed", "user_id", id, "error", err)
			}
		}
	}
	return u, nil
}

// CurrentUser returns the user set by RequireAuth. The record comes from
// the cache and carries no password hash.
func CurrentUser(c echo.Context) *model.User {
	u, _ := c.Get(ContextUserKey).(*model.User)
	return u
}
