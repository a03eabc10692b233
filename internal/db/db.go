package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"storefront-api/internal/config"
)

// Connect opens a pgx connection pool tuned from config and verifies
// connectivity with a ping.
func Connect(ctx context.Context, cfg config.Config) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DBConnString)
	if err != nil {
		return nil, err
	}

	poolCfg.MaxConnIdleTime = cfg.DBMaxConnIdleTime
	poolCfg.MaxConnLifetime = cfg.DBMaxConnLifetime

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.DBPingTimeout)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, err
	}

	return pool, nil
}
