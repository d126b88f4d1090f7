// Command migrate applies or rolls back the embedded schema migrations
// against the database named by DATABASE_URL or the POSTGRES_* settings.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"heritage-api/internal/config"
	"heritage-api/internal/database"
)

var (
	readConfig            = config.Read
	migrateUp             = database.RunMigrations
	migrateDown           = database.RollbackAll
	exitFunc              = os.Exit
	stderr      io.Writer = os.Stderr
	errUsage              = errors.New("usage: migrate up|down")
)

func run(args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	var apply func(string) error
	switch args[0] {
	case "up":
		apply = migrateUp
	case "down":
		apply = migrateDown
	default:
		return errUsage
	}

	cfg, err := readConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	url := cfg.DatabaseURI()
	if url == "" {
		return errors.New("DATABASE_URL or POSTGRES_SERVER is required")
	}
	if err := apply(url); err != nil {
		return fmt.Errorf("migrate %s: %w", args[0], err)
	}
	return nil
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(stderr, err)
		exitFunc(1)
	}
}
