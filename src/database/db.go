package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

// Database holds the PostgreSQL connection pool
type Database struct {
	pool *pgxpool.Pool
}

// New creates a new database connection and bootstraps the schema
func New(ctx context.Context, databaseURL string) (*Database, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	config.MaxConns = 25
	config.MinConns = 5
	config.MaxConnLifetime = 5 * time.Minute
	config.MaxConnIdleTime = 1 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	db := &Database{pool: pool}

	if err := db.initializeSchema(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return db, nil
}

// Close closes the database connection pool
func (db *Database) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// GetPool returns the connection pool
func (db *Database) GetPool() *pgxpool.Pool {
	return db.pool
}

// initializeSchema reads and executes schema.sql
func (db *Database) initializeSchema(ctx context.Context) error {
	content, err := readSchemaSQL()
	if err != nil {
		return err
	}

	if _, err := db.pool.Exec(ctx, content); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}

	if err := db.runMigrations(ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info().Msg("database schema initialized")
	return nil
}

// runMigrations applies additive migrations for columns introduced after the
// initial schema shipped.
func (db *Database) runMigrations(ctx context.Context) error {
	// education gained current/gpa after launch
	_, err := db.pool.Exec(ctx, `
		ALTER TABLE education
		ADD COLUMN IF NOT EXISTS current BOOLEAN NOT NULL DEFAULT false,
		ADD COLUMN IF NOT EXISTS gpa TEXT NOT NULL DEFAULT '';
	`)
	if err != nil {
		return fmt.Errorf("failed to add education columns: %w", err)
	}

	return nil
}

// Health checks if the database is healthy
func (db *Database) Health(ctx context.Context) error {
	if db == nil || db.pool == nil {
		return fmt.Errorf("database connection not initialized")
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return db.pool.Ping(ctx)
}

// readSchemaSQL locates schema.sql relative to the working directory.
func readSchemaSQL() (string, error) {
	locations := []string{
		"schema.sql",
		filepath.Join(".", "schema.sql"),
		filepath.Join("..", "schema.sql"),
	}

	for _, loc := range locations {
		content, err := os.ReadFile(loc) // #nosec G304 -- paths are hardcoded
		if err == nil {
			return string(content), nil
		}
	}

	return "", fmt.Errorf("failed to read schema.sql")
}
