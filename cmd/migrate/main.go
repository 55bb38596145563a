package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"catrescue/config"
	"catrescue/internal/infra/persistence/migrations"

	"github.com/pkg/errors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
)

// Supported subcommands:
// - up:      apply every pending migration
// - down:    roll back the given number of steps
// - version: print the embedded and current schema versions

func main() {
	upCmd := flag.NewFlagSet("up", flag.ExitOnError)
	downCmd := flag.NewFlagSet("down", flag.ExitOnError)
	versionCmd := flag.NewFlagSet("version", flag.ExitOnError)

	downSteps := downCmd.Int("steps", 1, "Number of migrations to roll back")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "up":
		_ = upCmd.Parse(os.Args[2:])
		err = run(func(db *sql.DB) error { return migrations.MigrateUp(db) })
	case "down":
		_ = downCmd.Parse(os.Args[2:])
		if *downSteps <= 0 {
			err = errors.New("steps must be positive")

			break
		}
		err = run(func(db *sql.DB) error { return migrations.MigrateDown(db, *downSteps) })
	case "version":
		_ = versionCmd.Parse(os.Args[2:])
		err = printVersion()
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		slog.Error("Migration command failed", slog.String("command", os.Args[1]), slog.Any("error", err))
		os.Exit(1)
	}
}

func run(fn func(db *sql.DB) error) error {
	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	gormDB, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return errors.Wrap(err, "failed to connect to PostgreSQL")
	}
	db, err := gormDB.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get sql.DB")
	}
	defer db.Close()

	return fn(db)
}

func printVersion() error {
	latest, err := migrations.LatestVersion()
	if err != nil {
		return err
	}
	fmt.Printf("embedded schema version: %d\n", latest)

	return run(func(db *sql.DB) error {
		err := migrations.CheckDBMigrationStatus(db)
		switch {
		case err == nil:
			fmt.Println("database is up to date")
		case errors.Is(err, migrations.ErrNeedsMigration):
			fmt.Println("database has no schema yet")
		default:
			fmt.Printf("database status: %v\n", err)
		}

		return nil
	})
}

func printUsage() {
	fmt.Println("Usage: migrate <command> [flags]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  up                 Apply all pending migrations")
	fmt.Println("  down [-steps N]    Roll back N migrations (default 1)")
	fmt.Println("  version            Show embedded and database schema versions")
	fmt.Println()
	fmt.Println("Connection settings are read from the same config and environment as the API.")
}
