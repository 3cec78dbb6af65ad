package cli

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"

	"atm-simulator/internal/config"
	"atm-simulator/internal/database"

	"github.com/google/subcommands"
	_ "github.com/lib/pq"
)

type migrateCmd struct {
	path   string
	status bool
}

func (*migrateCmd) Name() string     { return "migrate" }
func (*migrateCmd) Synopsis() string { return "apply the audit store SQL migrations to postgres" }
func (*migrateCmd) Usage() string {
	return `atm migrate [-path <dir>] [-status]

  Applies the pending migrations of the audit store to the postgres database
  configured by DB_*. The sqlite audit store creates its schema on open and
  has nothing to migrate.
`
}

func (p *migrateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.path, "path", "", "Migrations directory (defaults to DB_MIGRATIONS_PATH).")
	f.BoolVar(&p.status, "status", false, "Only print the current migration version.")
}

func (p *migrateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg := config.Load()
	if cfg.Database.Driver != database.DriverPostgres {
		fmt.Fprintf(os.Stderr, "migrations only apply to postgres, DB_DRIVER is %q\n", cfg.Database.Driver)
		return subcommands.ExitFailure
	}

	path := p.path
	if path == "" {
		path = cfg.Database.MigrationsPath
	}

	db, err := sql.Open("postgres", cfg.Database.MigrationURL())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer db.Close()

	runner := database.NewMigrationRunner(db, path, NewLogger(cfg.Logging, os.Stderr))
	if err := runner.WaitForDatabase(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if !p.status {
		if err := runner.RunMigrations(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}

	version, dirty, err := runner.Status()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("version %d (dirty: %t)\n", version, dirty)
	return subcommands.ExitSuccess
}
