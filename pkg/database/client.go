// Package database provides the storage client and migration utilities for
// PostgreSQL and SQLite backends.
package database

import (
	"context"
	stdsql "database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/buildloop/foundry/ent"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	_ "modernc.org/sqlite"             // pure-Go sqlite driver
)

//go:embed migrations
var migrationsFS embed.FS

// Client wraps the ent client and exposes the underlying *sql.DB for health
// checks, direct queries, and the event publisher.
type Client struct {
	*ent.Client
	db     *stdsql.DB
	driver Driver
}

// DB returns the underlying database connection.
func (c *Client) DB() *stdsql.DB { return c.db }

// Driver returns the active storage backend.
func (c *Client) Driver() Driver { return c.driver }

// IsPostgres reports whether the client is backed by PostgreSQL. Hot paths
// use this to choose row-locking strategy and NOTIFY availability.
func (c *Client) IsPostgres() bool { return c.driver == DriverPostgres }

// NewClientFromEnt wraps an existing ent client (used by tests).
func NewClientFromEnt(entClient *ent.Client, db *stdsql.DB, driver Driver) *Client {
	return &Client{Client: entClient, db: db, driver: driver}
}

// NewClient opens the configured backend, configures pooling, and applies
// migrations. PostgreSQL uses embedded golang-migrate SQL; SQLite uses ent's
// schema creation (WAL is enabled via pragma).
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	switch cfg.Driver {
	case DriverPostgres:
		return newPostgresClient(ctx, cfg)
	case DriverSQLite:
		return newSQLiteClient(ctx, cfg)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

func newPostgresClient(ctx context.Context, cfg Config) (*Client, error) {
	db, err := stdsql.Open("pgx", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	drv := entsql.OpenDB(dialect.Postgres, db)
	entClient := ent.NewClient(ent.Driver(drv))

	if err := runPostgresMigrations(db, cfg); err != nil {
		_ = entClient.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &Client{Client: entClient, db: db, driver: DriverPostgres}, nil
}

func newSQLiteClient(ctx context.Context, cfg Config) (*Client, error) {
	// WAL journaling allows concurrent readers with a single writer.
	dsn := cfg.Path + "?_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	db, err := stdsql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	// SQLite allows one writer; a single connection avoids SQLITE_BUSY churn.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	drv := entsql.OpenDB(dialect.SQLite, db)
	entClient := ent.NewClient(ent.Driver(drv))

	if err := entClient.Schema.Create(ctx); err != nil {
		_ = entClient.Close()
		return nil, fmt.Errorf("failed to create sqlite schema: %w", err)
	}

	return &Client{Client: entClient, db: db, driver: DriverSQLite}, nil
}

// runPostgresMigrations applies embedded SQL migrations with golang-migrate.
// Migration files live in pkg/database/migrations and are embedded at compile
// time so production binaries carry them.
func runPostgresMigrations(db *stdsql.DB, cfg Config) error {
	hasMigrations, err := hasEmbeddedMigrations()
	if err != nil {
		return fmt.Errorf("failed to check embedded migrations: %w", err)
	}
	if !hasMigrations {
		return fmt.Errorf("no embedded migration files found, binary may be built incorrectly")
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("failed to create postgres driver: %w", err)
	}

	sourceDriver, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to create migration source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", sourceDriver, cfg.Database, driver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	// Close only the source driver. m.Close() would also close the database
	// driver, which closes the shared *sql.DB and breaks the ent client.
	if err := sourceDriver.Close(); err != nil {
		return fmt.Errorf("failed to close migration source: %w", err)
	}

	return nil
}

// hasEmbeddedMigrations checks the embedded FS for .sql migration files.
func hasEmbeddedMigrations() (bool, error) {
	entries, err := fs.ReadDir(migrationsFS, "migrations")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read embedded migrations: %w", err)
	}
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			return true, nil
		}
	}
	return false, nil
}
