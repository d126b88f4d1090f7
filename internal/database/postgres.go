package database

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	dbdriver "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	src "github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
)

var (
	pgxpoolNewWithConfig   = pgxpool.NewWithConfig
	pingPool               = func(ctx context.Context, p *pgxpool.Pool) error { return p.Ping(ctx) }
	closePool              = func(p *pgxpool.Pool) { p.Close() }
	sqlOpenDB              = sql.Open
	postgresWithInstanceFn = postgres.WithInstance
	iofsNewFn              = iofs.New
	migrateNewWithInstance = func(sourceName string, sourceDriver src.Driver, databaseName string, databaseDriver dbdriver.Driver) (migrateInstance, error) {
		m, err := migrate.NewWithInstance(sourceName, sourceDriver, databaseName, databaseDriver)
		if err != nil {
			return nil, err
		}
		return m, nil
	}
)

const connectTimeout = 15 * time.Second

// NewPgxPool opens a connection pool capped at maxConns (<=0 keeps the pgx
// default) and verifies it with a ping.
func NewPgxPool(ctx context.Context, url string, maxConns int32) (DB, error) {
	cfg, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}
	if maxConns > 0 {
		cfg.MaxConns = maxConns
	}
	cfg.MaxConnLifetime = time.Hour
	cfg.MaxConnIdleTime = 30 * time.Minute
	cfg.ConnConfig.ConnectTimeout = connectTimeout

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	pool, err := pgxpoolNewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := pingPool(ctx, pool); err != nil {
		closePool(pool)
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return pool, nil
}

//go:embed migrations/*.sql
var migrationsFS embed.FS

type migrateInstance interface {
	Up() error
	Down() error
}

func newMigrator(dbURL string) (migrateInstance, func(), error) {
	sqlDB, err := sqlOpenDB("pgx", dbURL)
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() { _ = sqlDB.Close() }

	driver, err := postgresWithInstanceFn(sqlDB, &postgres.Config{})
	if err != nil {
		closeFn()
		return nil, nil, err
	}

	sourceDriver, err := iofsNewFn(migrationsFS, "migrations")
	if err != nil {
		closeFn()
		return nil, nil, err
	}

	m, err := migrateNewWithInstance("iofs", sourceDriver, "postgres", driver)
	if err != nil {
		closeFn()
		return nil, nil, err
	}
	return m, closeFn, nil
}

// RunMigrations applies every embedded migration that has not run yet.
func RunMigrations(dbURL string) error {
	m, closeFn, err := newMigrator(dbURL)
	if err != nil {
		return err
	}
	defer closeFn()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

// RollbackAll reverts every embedded migration (down to version 0).
func RollbackAll(dbURL string) error {
	m, closeFn, err := newMigrator(dbURL)
	if err != nil {
		return err
	}
	defer closeFn()

	if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}
