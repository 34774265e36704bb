// Command migrate manages the ledgerly database schema.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"ledgerly/internal/config"
)

const (
	migrationsPath = "file://db/migrations"
	usage          = "usage: migrate <up|down|steps N|force V|version>"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		return errors.New(usage)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	m, err := migrate.New(migrationsPath, cfg.DB.DSN())
	if err != nil {
		return fmt.Errorf("initializing migrations: %w", err)
	}
	defer m.Close()

	switch args[0] {
	case "up":
		return report(m.Up(), "schema is up to date")

	case "down":
		return report(m.Down(), "schema rolled back")

	case "steps":
		if len(args) < 2 {
			return errors.New("steps requires a count, e.g. steps -1")
		}
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid step count %q", args[1])
		}
		return report(m.Steps(n), fmt.Sprintf("applied %d step(s)", n))

	case "force":
		if len(args) < 2 {
			return errors.New("force requires a version")
		}
		v, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid version %q", args[1])
		}
		return report(m.Force(v), fmt.Sprintf("forced schema version to %d", v))

	case "version":
		v, dirty, err := m.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			fmt.Println("no migrations applied yet")
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading schema version: %w", err)
		}
		fmt.Printf("version %d (dirty=%v)\n", v, dirty)
		return nil

	default:
		return fmt.Errorf("unknown command %q\n%s", args[0], usage)
	}
}

func report(err error, msg string) error {
	if errors.Is(err, migrate.ErrNoChange) {
		log.Println("no schema changes to apply")
		return nil
	}
	if err != nil {
		return err
	}
	log.Println(msg)
	return nil
}
