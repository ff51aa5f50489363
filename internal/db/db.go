// Package db provides PostgreSQL connection helpers and pgtype conversions.
package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/drvendasdev/pure-project-groundwork-sub000/internal/config"
)

// Open creates a pgx connection pool from the given Postgres config.
func Open(ctx context.Context, cfg config.PostgresConfig) (*pgxpool.Pool, error) {
	return pgxpool.New(ctx, DSN(cfg))
}
