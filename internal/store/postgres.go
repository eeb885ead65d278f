// Package store owns the connection to PostgreSQL and the conversion of
// values read from it.
package store

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Options struct {
	DSN      string
	MaxConns int32
	Timeout  time.Duration
}

// Connect opens a pool and pings it once so a bad DSN fails at startup.
func Connect(ctx context.Context, opt Options, log *slog.Logger) (*pgxpool.Pool, error) {
	pcfg, err := pgxpool.ParseConfig(opt.DSN)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	if opt.MaxConns > 0 {
		pcfg.MaxConns = opt.MaxConns
	}

	ctx, cancel := context.WithTimeout(ctx, opt.Timeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, pcfg)
	if err != nil {
		return nil, fmt.Errorf("open pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}

	log.Info("connected to postgres",
		"host", pcfg.ConnConfig.Host,
		"database", pcfg.ConnConfig.Database,
		"max_conns", pcfg.MaxConns)
	return pool, nil
}
