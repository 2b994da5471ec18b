// Package storage owns the SQLite database handle: opening it, applying the
// connection settings required for integrity under concurrent access, and
// provisioning the schema through the embedded goose migrations.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"

	"github.com/dkovalev/todovault/internal/server/migrations"
)

// Store wraps the shared *sql.DB. One Store per process in production; tests
// get an isolated in-memory Store each via OpenInMemory.
type Store struct {
	db *sql.DB
}

// Open creates or opens a SQLite database at the given path, verifies the
// connection, applies the required pragmas, and provisions the schema.
// Idempotent: safe to call on every startup.
//
// The connection is configured with:
//   - WAL journal mode, so readers proceed while a write commits
//   - NORMAL synchronous mode
//   - a 5-second busy timeout for lock contention
//   - foreign-key enforcement, which SQLite leaves off by default
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// SQLite allows a single writer at a time; one pooled connection avoids
	// SQLITE_BUSY and keeps the pragmas applied to every statement.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply pragmas: %w", err)
	}

	if err := RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &Store{db: db}, nil
}

// OpenInMemory returns a Store backed by a private in-memory database with
// the full schema provisioned. Intended for tests; Close releases it so no
// state leaks between test cases.
func OpenInMemory(ctx context.Context) (*Store, error) {
	return Open(ctx, ":memory:")
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// DB returns the underlying sql.DB for the repositories.
func (s *Store) DB() *sql.DB {
	return s.db
}

var (
	defaultStore *Store
	defaultErr   error
	defaultOnce  sync.Once
)

// Default opens the process-wide shared Store on first call and returns the
// same provisioned handle on every call after that. The path argument is
// honored only by the first caller.
func Default(ctx context.Context, path string) (*Store, error) {
	defaultOnce.Do(func() {
		defaultStore, defaultErr = Open(ctx, path)
	})
	return defaultStore, defaultErr
}

func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}

	return nil
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}
