package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "heritage-api/docs" // swag docs

	"heritage-api/internal/cache"
	"heritage-api/internal/config"
	"heritage-api/internal/database"
	"heritage-api/internal/handler"
	"heritage-api/internal/logging"
	"heritage-api/internal/middleware"
	"heritage-api/internal/router"
	"heritage-api/internal/service"
	"heritage-api/internal/worker"
)

var (
	loadConfig                = config.Load
	newPgxPool                = database.NewPgxPool
	newRedisClient            = cache.NewRedisClient
	runMigrationsFn           = database.RunMigrations
	ensureSuperuser           = service.EnsureSuperuser
	newWorkerPool             = worker.NewPool
	startServer               = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	logOutput       io.Writer = os.Stdout
	exitFunc                  = os.Exit
)

const shutdownTimeout = 10 * time.Second

func newEcho(cfg *config.Config, log logging.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Debug = cfg.Debug
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = handler.ErrorHandler
	e.Use(echomw.RequestID())
	e.Use(middleware.RequestLogger(log))
	e.Use(echomw.Recover())
	return e
}

// run wires the service and serves until ctx is cancelled, then shuts the
// server down gracefully.
func run(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	base := logging.New(logOutput, cfg.LogLevel)
	logging.SetDefault(base)
	log := base.With("service", cfg.ProjectName)
	ctx = logging.WithContext(ctx, log)

	tokens, err := service.NewTokenService(cfg.SecretKey, cfg.Algorithm)
	if err != nil {
		return fmt.Errorf("token service: %w", err)
	}

	db, err := newPgxPool(ctx, cfg.DatabaseURI(), cfg.DBMaxConns)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	rdb, err := newRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Warn(ctx, "close redis", "error", err)
		}
	}()

	if err := runMigrationsFn(cfg.DatabaseURI()); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	wp := newWorkerPool(cfg.HashWorkers)
	defer wp.Stop()
	hasher := service.NewHasher(cfg.BcryptCost, wp)

	if _, err := ensureSuperuser(ctx, db, hasher, cfg.FirstSuperuser, cfg.FirstSuperuserPassword); err != nil {
		return fmt.Errorf("bootstrap superuser: %w", err)
	}

	e := newEcho(cfg, log)
	router.Setup(e, router.Deps{
		DB:           db,
		Cache:        rdb,
		Hasher:       hasher,
		Tokens:       tokens,
		TokenTTL:     cfg.AccessTokenTTL(),
		UserCacheTTL: cfg.UserCacheTTL,
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	errCh := make(chan error, 1)
	go func() { errCh <- startServer(e, cfg.HTTPAddr) }()
	log.Info(ctx, "listening", "addr", cfg.HTTPAddr)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info(ctx, "shutting down")
	sctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(sctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
