package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"heritage-api/internal/api"
	"heritage-api/internal/cache"
	"heritage-api/internal/database"
	"heritage-api/internal/handler"
	"heritage-api/internal/service"
)

func TestSetupRoutes(t *testing.T) {
	e := echo.New()
	Setup(e, Deps{DB: &database.FakeDB{}, Cache: &cache.FakeCache{}})

	got := map[string]struct{}{}
	for _, r := range e.Routes() {
		got[r.Method+" "+r.Path] = struct{}{}
	}

	expected := []string{
		http.MethodGet + " /api/ping",
		http.MethodPost + " /api/login/access-token",
		http.MethodPost + " /api/login/test-token",
		http.MethodPost + " /api/users/register",
		http.MethodPost + " /api/users",
		http.MethodGet + " /api/users",
		http.MethodGet + " /api/users/me",
		http.MethodPatch + " /api/users/me",
		http.MethodPatch + " /api/users/me/password",
		http.MethodGet + " /api/users/:id",
		http.MethodDelete + " /api/users/:id",
	}
	for _, res := range []string{
		"narratives", "substories", "experiences", "experience-components", "sites",
		"clusters", "artefacts", "hubs", "tours", "feasibilities",
	} {
		expected = append(expected,
			http.MethodGet+" /api/"+res,
			http.MethodPost+" /api/"+res,
			http.MethodGet+" /api/"+res+"/:id",
			http.MethodPut+" /api/"+res+"/:id",
			http.MethodDelete+" /api/"+res+"/:id",
		)
	}

	require.Len(t, got, len(expected))
	for _, k := range expected {
		_, ok := got[k]
		require.True(t, ok, "missing route %s", k)
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	tokens, err := service.NewTokenService("secret", "HS256")
	require.NoError(t, err)
	e := echo.New()
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = handler.ErrorHandler
	db := &database.FakeDB{
		QueryRowFn: func(context.Context, string, ...any) pgx.Row {
			return database.FakeRow{Err: pgx.ErrNoRows}
		},
	}
	Setup(e, Deps{DB: db, Tokens: tokens, TokenTTL: time.Hour})

	for _, target := range []string{"/api/users/me", "/api/tours", "/api/users"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
		require.Equal(t, http.StatusUnauthorized, rec.Code, target)
		require.Equal(t, "Bearer", rec.Header().Get(echo.HeaderWWWAuthenticate))
	}

	// A valid token for a user that no longer exists is still unauthenticated.
	tok, err := tokens.Issue(uuid.New(), time.Hour)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/api/hubs", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+tok)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// Login is public; a bad form is a validation error, not an auth one.
	req = httptest.NewRequest(http.MethodPost, "/api/login/access-token", strings.NewReader("username=nope"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

// userTable backs the users queries with a map so that the real store,
// hasher, token service and gate run end to end.
type userTable struct {
	mu   sync.Mutex
	rows map[uuid.UUID][]any
}

func (ut *userTable) db() *database.FakeDB {
	ut.rows = map[uuid.UUID][]any{}
	return &database.FakeDB{
		QueryRowFn: func(_ context.Context, sql string, args ...any) pgx.Row {
			ut.mu.Lock()
			defer ut.mu.Unlock()
			switch {
			case strings.HasPrefix(sql, "INSERT INTO users"):
				for _, r := range ut.rows {
					if r[1] == args[1] {
						return database.FakeRow{Err: &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}}
					}
				}
				created := time.Now()
				ut.rows[args[0].(uuid.UUID)] = []any{args[0], args[1], args[2], args[3], args[4], args[5], created}
				return database.FakeRow{Values: []any{created}}
			case strings.Contains(sql, "WHERE email = $1"):
				for _, r := range ut.rows {
					if r[1] == args[0] {
						return database.FakeRow{Values: r}
					}
				}
			case strings.Contains(sql, "WHERE id = $1"):
				if r, ok := ut.rows[args[0].(uuid.UUID)]; ok {
					return database.FakeRow{Values: r}
				}
			}
			return database.FakeRow{Err: pgx.ErrNoRows}
		},
	}
}

func TestRegisterLoginAndReadMe(t *testing.T) {
	tokens, err := service.NewTokenService("secret", "HS256")
	require.NoError(t, err)
	users := &userTable{}
	e := echo.New()
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = handler.ErrorHandler
	Setup(e, Deps{
		DB:       users.db(),
		Hasher:   service.NewHasher(4, nil),
		Tokens:   tokens,
		TokenTTL: time.Hour,
	})

	req := httptest.NewRequest(http.MethodPost, "/api/users/register",
		strings.NewReader(`{"email":"Alice@Example.com","password":"password123","name":"Alice"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	// Same address again, differently cased.
	req = httptest.NewRequest(http.MethodPost, "/api/users/register",
		strings.NewReader(`{"email":"alice@example.com","password":"password123"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusConflict, rec.Code)
	require.NotContains(t, rec.Body.String(), "users_email_key")

	login := func(password string) *httptest.ResponseRecorder {
		form := url.Values{"username": {"alice@example.com"}, "password": {password}}
		req := httptest.NewRequest(http.MethodPost, "/api/login/access-token", strings.NewReader(form.Encode()))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}
	require.Equal(t, http.StatusUnauthorized, login("wrong-password").Code)

	rec = login("password123")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var tok api.TokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tok))
	require.Equal(t, "bearer", tok.TokenType)
	require.NotEmpty(t, tok.AccessToken)

	req = httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+tok.AccessToken)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var me map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &me))
	require.Equal(t, "alice@example.com", me["email"])
	require.Equal(t, "Alice", me["name"])
	require.Equal(t, false, me["is_superuser"])
	require.Equal(t, true, me["is_active"])
	require.NotContains(t, me, "hashed_password")
}
