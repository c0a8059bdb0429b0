// Package database owns the PostgreSQL connection used for relational side
// tables (plant activity) and migrations. The catalog itself lives in the
// document store; see pkg/docstore.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/ghuser/plantcatalog/pkg/logger"
)

const (
	maxConns        = 10
	minConns        = 1
	maxConnLifetime = time.Hour
	maxConnIdleTime = 15 * time.Minute
	pingTimeout     = 5 * time.Second
)

// Database wraps a pgx pool and a database/sql handle over the same pool.
// The event bus and the activity repository share the *sql.DB surface, so the
// process holds one set of Postgres connections.
type Database struct {
	pool *pgxpool.Pool
	db   *sql.DB
}

// NewPool connects to url, verifies the connection and returns a Database.
func NewPool(ctx context.Context, url string, log logger.Logger) (*Database, error) {
	cfg, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("database: parse config: %w", err)
	}
	cfg.MaxConns = maxConns
	cfg.MinConns = minConns
	cfg.MaxConnLifetime = maxConnLifetime
	cfg.MaxConnIdleTime = maxConnIdleTime

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("database: create pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database: ping: %w", err)
	}

	log.Debug("database pool configured",
		"host", cfg.ConnConfig.Host,
		"database", cfg.ConnConfig.Database,
		"max_conns", cfg.MaxConns,
	)
	return &Database{pool: pool, db: stdlib.OpenDBFromPool(pool)}, nil
}

// DB returns the database/sql handle.
func (d *Database) DB() *sql.DB {
	return d.db
}

// Ping satisfies httpx.HealthChecker.
func (d *Database) Ping(ctx context.Context) error {
	if err := d.pool.Ping(ctx); err != nil {
		return fmt.Errorf("database: ping: %w", err)
	}
	return nil
}

// Close releases the sql handle and the pool.
func (d *Database) Close() {
	_ = d.db.Close()
	d.pool.Close()
}
