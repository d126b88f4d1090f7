package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"heritage-api/internal/apperr"
	"heritage-api/internal/cache"
	"heritage-api/internal/database"
	"heritage-api/internal/model"
	"heritage-api/internal/service"
	"heritage-api/internal/store"
)

func restore() {
	getUserByID = store.GetUserByID
	jsonMarshal = json.Marshal
	jsonUnmarshal = json.Unmarshal
}

func newContext(auth string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if auth != "" {
		req.Header.Set(echo.HeaderAuthorization, auth)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func testTokens(t *testing.T) *service.TokenService {
	t.Helper()
	s, err := service.NewTokenService("secret", "HS256")
	require.NoError(t, err)
	return s
}

func bearer(t *testing.T, s *service.TokenService, id uuid.UUID) string {
	t.Helper()
	tok, err := s.Issue(id, time.Hour)
	require.NoError(t, err)
	return "Bearer " + tok
}

func stubUsers(users ...*model.User) func(context.Context, database.DB, uuid.UUID) (*model.User, error) {
	return func(_ context.Context, _ database.DB, id uuid.UUID) (*model.User, error) {
		for _, u := range users {
			if u.ID == id {
				cp := *u
				return &cp, nil
			}
		}
		return nil, apperr.ErrNotFound
	}
}

func TestBearerToken(t *testing.T) {
	for _, h := range []string{"", "Bearer", "Bearer   ", "Basic abc", "token"} {
		c, _ := newContext(h)
		_, err := bearerToken(c)
		require.ErrorIs(t, err, apperr.ErrAuthenticationRequired, "header %q", h)
	}
	c, _ := newContext("bearer abc.def")
	tok, err := bearerToken(c)
	require.NoError(t, err)
	require.Equal(t, "abc.def", tok)
}

func TestRequireAuth(t *testing.T) {
	t.Cleanup(restore)
	tokens := testTokens(t)
	alice := &model.User{ID: uuid.New(), Email: "alice@example.com", IsActive: true}
	idle := &model.User{ID: uuid.New(), Email: "idle@example.com"}
	getUserByID = stubUsers(alice, idle)
	a := NewAuthenticator(nil, nil, tokens, 0)

	t.Run("active user", func(t *testing.T) {
		c, rec := newContext(bearer(t, tokens, alice.ID))
		called := false
		err := a.RequireAuth(func(c echo.Context) error {
			called = true
			require.Equal(t, alice.ID, CurrentUser(c).ID)
			return c.NoContent(http.StatusOK)
		})(c)
		require.NoError(t, err)
		require.True(t, called)
		require.Equal(t, http.StatusOK, rec.Code)
	})

	cases := map[string]struct {
		header string
		want   error
	}{
		"missing":      {"", apperr.ErrAuthenticationRequired},
		"invalid":      {"Bearer nope", apperr.ErrInvalidToken},
		"deleted user": {bearer(t, tokens, uuid.New()), apperr.ErrAuthenticationRequired},
		"inactive":     {bearer(t, tokens, idle.ID), apperr.ErrInactiveAccount},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			c, _ := newContext(tc.header)
			called := false
			err := a.RequireAuth(func(echo.Context) error { called = true; return nil })(c)
			require.ErrorIs(t, err, tc.want)
			require.False(t, called)
			require.Nil(t, CurrentUser(c))
		})
	}
}

func TestRequireSuperuser(t *testing.T) {
	t.Cleanup(restore)
	tokens := testTokens(t)
	alice := &model.User{ID: uuid.New(), IsActive: true}
	root := &model.User{ID: uuid.New(), IsActive: true, IsSuperuser: true}
	getUserByID = stubUsers(alice, root)
	a := NewAuthenticator(nil, nil, tokens, 0)
	ok := func(c echo.Context) error { return c.NoContent(http.StatusNoContent) }

	c, _ := newContext(bearer(t, tokens, alice.ID))
	require.ErrorIs(t, a.RequireSuperuser(ok)(c), apperr.ErrPermissionDenied)

	c, rec := newContext(bearer(t, tokens, root.ID))
	require.NoError(t, a.RequireSuperuser(ok)(c))
	require.Equal(t, http.StatusNoContent, rec.Code)

	c, _ = newContext("")
	require.ErrorIs(t, a.RequireSuperuser(ok)(c), apperr.ErrAuthenticationRequired)
}

func TestUserCache(t *testing.T) {
	t.Cleanup(restore)
	tokens := testTokens(t)
	alice := &model.User{ID: uuid.New(), Email: "alice@example.com", IsActive: true}

	storeCalls := 0
	lookup := stubUsers(alice)
	getUserByID = func(ctx context.Context, db database.DB, id uuid.UUID) (*model.User, error) {
		storeCalls++
		return lookup(ctx, db, id)
	}

	mem := cache.NewMemoryCache()
	a := NewAuthenticator(nil, mem, tokens, time.Minute)
	next := func(echo.Context) error { return nil }

	for i := 0; i < 3; i++ {
		c, _ := newContext(bearer(t, tokens, alice.ID))
		require.NoError(t, a.RequireAuth(next)(c))
		require.Equal(t, "alice@example.com", CurrentUser(c).Email)
	}
	require.Equal(t, 1, storeCalls)
	require.NoError(t, mem.Get(context.Background(), UserCacheKey(alice.ID)).Err())

	a.Invalidate(context.Background(), alice.ID)
	c, _ := newContext(bearer(t, tokens, alice.ID))
	require.NoError(t, a.RequireAuth(next)(c))
	require.Equal(t, 2, storeCalls)
}

func TestUserCacheFailuresFallBack(t *testing.T) {
	t.Cleanup(restore)
	tokens := testTokens(t)
	alice := &model.User{ID: uuid.New(), IsActive: true}
	getUserByID = stubUsers(alice)

	broken := &cache.FakeCache{
		GetFn: func(context.Context, string) *redis.StringCmd {
			return redis.NewStringResult("", errors.New("redis down"))
		},
		SetFn: func(context.Context, string, any, time.Duration) *redis.StatusCmd {
			return redis.NewStatusResult("", errors.New("redis down"))
		},
		DelFn: func(context.Context, ...string) *redis.IntCmd {
			return redis.NewIntResult(0, errors.New("redis down"))
		},
	}
	a := NewAuthenticator(nil, broken, tokens, time.Minute)
	c, _ := newContext(bearer(t, tokens, alice.ID))
	require.NoError(t, a.RequireAuth(func(echo.Context) error { return nil })(c))
	require.Equal(t, alice.ID, CurrentUser(c).ID)
	a.Invalidate(context.Background(), alice.ID)

	garbage := &cache.FakeCache{
		GetFn: func(context.Context, string) *redis.StringCmd {
			return redis.NewStringResult("{not json", nil)
		},
		SetFn: func(context.Context, string, any, time.Duration) *redis.StatusCmd {
			return redis.NewStatusResult("OK", nil)
		},
	}
	a = NewAuthenticator(nil, garbage, tokens, time.Minute)
	c, _ = newContext(bearer(t, tokens, alice.ID))
	require.NoError(t, a.RequireAuth(func(echo.Context) error { return nil })(c))
	require.Equal(t, alice.ID, CurrentUser(c).ID)
}

func TestStoreErrorIsNotAuthFailure(t *testing.T) {
	t.Cleanup(restore)
	tokens := testTokens(t)
	getUserByID = func(context.Context, database.DB, uuid.UUID) (*model.User, error) {
		return nil, errors.New("db down")
	}
	a := NewAuthenticator(nil, nil, tokens, 0)
	c, _ := newContext(bearer(t, tokens, uuid.New()))
	err := a.RequireAuth(func(echo.Context) error { return nil })(c)
	require.EqualError(t, err, "db down")
	require.Equal(t, http.StatusInternalServerError, apperr.Status(err))
}
