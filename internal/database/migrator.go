package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

const defaultMigrationsPath = "db/migrations"

var ErrMigrationsNotFound = errors.New("migrations directory not found")

// MigrationRunner applies the audit store's SQL migrations to postgres.
type MigrationRunner struct {
	db       *sql.DB
	path     string
	logger   *slog.Logger
	attempts int
	interval time.Duration
}

type MigrationOption func(*MigrationRunner)

// WithReadinessRetry sets how often WaitForDatabase pings before giving up.
func WithReadinessRetry(attempts int, interval time.Duration) MigrationOption {
	return func(mr *MigrationRunner) {
		mr.attempts = max(attempts, 1)
		mr.interval = interval
	}
}

// NewMigrationRunner returns a runner for the migrations under path, or
// under db/migrations when path is empty.
func NewMigrationRunner(db *sql.DB, path string, logger *slog.Logger, opts ...MigrationOption) *MigrationRunner {
	if path == "" {
		path = defaultMigrationsPath
	}
	if logger == nil {
		logger = slog.Default()
	}

	mr := &MigrationRunner{
		db:       db,
		path:     path,
		logger:   logger.With("component", "migrations"),
		attempts: 30,
		interval: 2 * time.Second,
	}
	for _, opt := range opts {
		opt(mr)
	}
	return mr
}

// WaitForDatabase pings until postgres answers, the attempts run out or ctx
// is done.
func (mr *MigrationRunner) WaitForDatabase(ctx context.Context) error {
	var err error
	for attempt := 1; attempt <= mr.attempts; attempt++ {
		if err = mr.db.PingContext(ctx); err == nil {
			mr.logger.Info("audit store reachable", "attempt", attempt)
			return nil
		}
		mr.logger.Warn("audit store not reachable yet", "attempt", attempt, "max_attempts", mr.attempts, "error", err)

		if attempt == mr.attempts {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(mr.interval):
		}
	}
	return fmt.Errorf("audit store not reachable after %d attempts: %w", mr.attempts, err)
}

// RunMigrations applies every pending migration. A missing directory is
// logged and skipped; a dirty version is forced before migrating up.
func (mr *MigrationRunner) RunMigrations() error {
	m, err := mr.open()
	if errors.Is(err, ErrMigrationsNotFound) {
		mr.logger.Warn("no migrations to apply", "path", mr.path)
		return nil
	}
	if err != nil {
		return err
	}

	version, dirty, err := m.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
	case err != nil:
		return fmt.Errorf("reading migration version: %w", err)
	case dirty:
		mr.logger.Warn("forcing dirty migration version", "version", version)
		if err := m.Force(int(version)); err != nil {
			return fmt.Errorf("forcing migration version %d: %w", version, err)
		}
	}

	if err := m.Up(); errors.Is(err, migrate.ErrNoChange) {
		mr.logger.Info("audit store schema up to date", "version", version)
		return nil
	} else if err != nil {
		return fmt.Errorf("migrating audit store: %w", err)
	}

	version, _, err = m.Version()
	if err != nil {
		return fmt.Errorf("reading migration version: %w", err)
	}
	mr.logger.Info("applied migrations", "version", version)
	return nil
}

// Status reports the applied migration version and whether it is dirty.
func (mr *MigrationRunner) Status() (version uint, dirty bool, err error) {
	m, err := mr.open()
	if err != nil {
		return 0, false, err
	}
	return m.Version()
}

func (mr *MigrationRunner) open() (*migrate.Migrate, error) {
	abs, err := filepath.Abs(mr.path)
	if err != nil {
		return nil, fmt.Errorf("resolving migrations path: %w", err)
	}
	if _, err := os.Stat(abs); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrMigrationsNotFound, abs)
	}

	driver, err := postgres.WithInstance(mr.db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("opening postgres migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+abs, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("loading migrations: %w", err)
	}
	return m, nil
}

// MigrateOnStartup runs the migrations when enabled is set. It is used when
// the postgres audit store opens.
func MigrateOnStartup(ctx context.Context, db *sql.DB, path string, enabled bool, logger *slog.Logger, opts ...MigrationOption) error {
	if !enabled {
		return nil
	}

	runner := NewMigrationRunner(db, path, logger, opts...)
	if err := runner.WaitForDatabase(ctx); err != nil {
		return err
	}
	return runner.RunMigrations()
}
