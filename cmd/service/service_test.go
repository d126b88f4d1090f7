package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"heritage-api/internal/cache"
	"heritage-api/internal/config"
	"heritage-api/internal/database"
	"heritage-api/internal/service"
	"heritage-api/internal/worker"
)

func restoreGlobals() {
	loadConfig = config.Load
	newPgxPool = database.NewPgxPool
	newRedisClient = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	ensureSuperuser = service.EnsureSuperuser
	newWorkerPool = worker.NewPool
	startServer = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	logOutput = io.Discard
	exitFunc = func(code int) {}
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.SecretKey = "secret"
	cfg.DatabaseURL = "postgres://app@db/app"
	cfg.RedisAddr = "cache:6379"
	cfg.RedisDB = 1
	cfg.BcryptCost = 4
	cfg.HashWorkers = 1
	cfg.FirstSuperuser = "admin@example.com"
	cfg.FirstSuperuserPassword = "changethis"
	return cfg
}

type calls map[string]bool

// stubAll replaces every external dependency of run with fakes that record
// what was touched.
func stubAll(t *testing.T) calls {
	t.Helper()
	restoreGlobals()
	t.Cleanup(restoreGlobals)

	called := calls{}
	loadConfig = func() (*config.Config, error) { return testConfig(), nil }
	newPgxPool = func(ctx context.Context, url string, maxConns int32) (database.DB, error) {
		called["pgx"] = true
		require.Equal(t, "postgres://app@db/app", url)
		require.Equal(t, int32(20), maxConns)
		return &database.FakeDB{CloseFn: func() { called["dbClose"] = true }}, nil
	}
	newRedisClient = func(ctx context.Context, addr, pwd string, db int) (cache.Cache, error) {
		called["redis"] = true
		require.Equal(t, "cache:6379", addr)
		require.Equal(t, 1, db)
		return &cache.FakeCache{CloseFn: func() error { called["redisClose"] = true; return nil }}, nil
	}
	runMigrationsFn = func(url string) error { called["migrate"] = true; return nil }
	ensureSuperuser = func(ctx context.Context, db database.DB, h *service.Hasher, email, pw string) (bool, error) {
		called["superuser"] = true
		require.Equal(t, "admin@example.com", email)
		require.Equal(t, "changethis", pw)
		return true, nil
	}
	startServer = func(e *echo.Echo, addr string) error {
		called["start"] = true
		assert.Equal(t, ":8080", addr)
		return nil
	}
	return called
}

func TestRunSuccess(t *testing.T) {
	called := stubAll(t)

	require.NoError(t, run(context.Background()))
	for _, k := range []string{"pgx", "redis", "migrate", "superuser", "start", "dbClose", "redisClose"} {
		require.True(t, called[k], k)
	}
}

func TestRunServesRoutes(t *testing.T) {
	stubAll(t)
	startServer = func(e *echo.Echo, addr string) error {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/users/me", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
		assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))

		rec = httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/nope", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"message":"Not Found"}`, rec.Body.String())

		rec = httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Heritage API")
		return http.ErrServerClosed
	}

	require.NoError(t, run(context.Background()))
}

func TestRunConfigError(t *testing.T) {
	called := stubAll(t)
	loadConfig = func() (*config.Config, error) { return nil, errors.New("bad env") }

	err := run(context.Background())
	require.ErrorContains(t, err, "load config")
	require.False(t, called["pgx"])
}

func TestRunTokenServiceError(t *testing.T) {
	called := stubAll(t)
	loadConfig = func() (*config.Config, error) {
		cfg := testConfig()
		cfg.Algorithm = "RS256"
		return cfg, nil
	}

	err := run(context.Background())
	require.ErrorContains(t, err, "token service")
	require.False(t, called["pgx"])
}

func TestRunDBError(t *testing.T) {
	called := stubAll(t)
	newPgxPool = func(ctx context.Context, url string, maxConns int32) (database.DB, error) {
		return nil, errors.New("refused")
	}

	err := run(context.Background())
	require.ErrorContains(t, err, "connect database")
	require.False(t, called["redis"])
}

func TestRunRedisError(t *testing.T) {
	called := stubAll(t)
	newRedisClient = func(ctx context.Context, addr, pwd string, db int) (cache.Cache, error) {
		return nil, errors.New("refused")
	}

	err := run(context.Background())
	require.ErrorContains(t, err, "connect redis")
	require.True(t, called["dbClose"])
	require.False(t, called["migrate"])
}

func TestRunMigrationError(t *testing.T) {
	called := stubAll(t)
	runMigrationsFn = func(url string) error { return errors.New("dirty") }

	err := run(context.Background())
	require.ErrorContains(t, err, "run migrations")
	require.True(t, called["dbClose"])
	require.True(t, called["redisClose"])
	require.False(t, called["start"])
}

func TestRunSuperuserError(t *testing.T) {
	called := stubAll(t)
	ensureSuperuser = func(ctx context.Context, db database.DB, h *service.Hasher, email, pw string) (bool, error) {
		return false, errors.New("insert failed")
	}

	err := run(context.Background())
	require.ErrorContains(t, err, "bootstrap superuser")
	require.False(t, called["start"])
}

func TestRunServerError(t *testing.T) {
	stubAll(t)
	startServer = func(e *echo.Echo, addr string) error { return errors.New("address in use") }

	err := run(context.Background())
	require.ErrorContains(t, err, "serve")
}

func TestRunShutdownOnCancel(t *testing.T) {
	called := stubAll(t)
	release := make(chan struct{})
	t.Cleanup(func() { close(release) })
	started := make(chan struct{})
	startServer = func(e *echo.Echo, addr string) error {
		close(started)
		<-release
		return http.ErrServerClosed
	}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	require.NoError(t, run(ctx))
	require.True(t, called["dbClose"])
	require.True(t, called["redisClose"])
}
