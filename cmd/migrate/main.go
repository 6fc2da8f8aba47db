package main

import (
	"flag"
	"fmt"
	"os"

	"zeneasy/config"
	"zeneasy/internal/infra/persistence/migrations"

	"github.com/pkg/errors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
)

// Supported subcommands:
// - up:      apply every pending migration
// - down:    roll back N migrations
// - version: print the applied schema version

func main() {
	upCmd := flag.NewFlagSet("up", flag.ExitOnError)
	downCmd := flag.NewFlagSet("down", flag.ExitOnError)
	versionCmd := flag.NewFlagSet("version", flag.ExitOnError)

	downSteps := downCmd.Int("steps", 1, "Number of migrations to roll back")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	if err := run(os.Args[1], os.Args[2:], upCmd, downCmd, versionCmd, downSteps); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(name string, args []string, upCmd, downCmd, versionCmd *flag.FlagSet, downSteps *int) error {
	var cmd *flag.FlagSet
	switch name {
	case "up":
		cmd = upCmd
	case "down":
		cmd = downCmd
	case "version":
		cmd = versionCmd
	case "help", "-h", "--help":
		printUsage()

		return nil
	default:
		printUsage()

		return errors.Errorf("unknown subcommand: %s", name)
	}

	if err := cmd.Parse(args); err != nil {
		return errors.WithStack(err)
	}

	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}
	if cfg.Postgres == nil {
		return errors.New("postgres is not configured")
	}

	gormDB, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return errors.Wrap(err, "failed to connect to PostgreSQL")
	}
	db, err := gormDB.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}
	defer db.Close()

	switch name {
	case "up":
		if err := migrations.Up(db); err != nil {
			return err
		}
		fmt.Println("Migrations applied")
	case "down":
		if *downSteps <= 0 {
			return errors.New("--steps must be positive")
		}
		if err := migrations.Down(db, *downSteps); err != nil {
			return err
		}
		fmt.Printf("Rolled back %d migration(s)\n", *downSteps)
	case "version":
		version, dirty, err := migrations.Version(db)
		if err != nil {
			return err
		}
		fmt.Printf("Schema version %d (dirty: %t)\n", version, dirty)
	}

	return nil
}

func printUsage() {
	fmt.Println("Usage: migrate <command> [options]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  up                 Apply every pending migration")
	fmt.Println("  down --steps N     Roll back N migrations (default 1)")
	fmt.Println("  version            Print the applied schema version")
}
