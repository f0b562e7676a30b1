package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/TLuong1238/Manage-Assign-Table-sub001/billdetail/store/details"
	"github.com/TLuong1238/Manage-Assign-Table-sub001/internal/config"
)

// Store combines all domain-specific queriers.
type Store struct {
	Details details.Querier
}

// NewStore creates a new Store over an existing connection pool.
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{
		Details: details.New(db),
	}
}

// Open connects to the configured database, applies pending migrations when
// the MIGRATIONS env var points at a migration directory, and returns the
// Store together with the owning pool. The caller closes the pool.
func Open(ctx context.Context, cfg config.Config) (*Store, *pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("connect database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("ping database: %w", err)
	}

	if cfg.MigrationsPath != "" {
		if err := RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
			pool.Close()
			return nil, nil, err
		}
	}

	return NewStore(pool), pool, nil
}
