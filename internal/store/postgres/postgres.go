// Package postgres implements store.Backend on a PostgreSQL table of JSONB
// slots.
package postgres

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"

	"github.com/alfredjeanlab/touchgrass/internal/store"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Backend stores each slot as one row of the slots table.
type Backend struct {
	db *sql.DB
}

// Compile-time check that Backend implements store.Backend.
var _ store.Backend = (*Backend)(nil)

// New opens a connection to the PostgreSQL database at the given URL,
// configures the connection pool, and runs any pending migrations.
func New(databaseURL string) (*Backend, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// One record, a handful of writers.
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", classify(err))
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Backend{db: db}, nil
}

func runMigrations(db *sql.DB) error {
	sourceDriver, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("create migration source: %w", err)
	}

	dbDriver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("create migration db driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", sourceDriver, "postgres", dbDriver)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("apply migrations: %w", err)
	}

	return nil
}

// Close closes the underlying database connection.
func (b *Backend) Close() error {
	return b.db.Close()
}

func (b *Backend) Get(ctx context.Context, key string) ([]byte, error) {
	v, err := queryGetSlot(ctx, b.db, key)
	return v, classify(err)
}

func (b *Backend) Set(ctx context.Context, key string, value []byte) error {
	return classify(querySetSlot(ctx, b.db, key, value))
}

func (b *Backend) Remove(ctx context.Context, key string) error {
	return classify(queryDeleteSlot(ctx, b.db, key))
}
