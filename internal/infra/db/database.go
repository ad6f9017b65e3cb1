package db

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"ortomat-backend/internal/pkg/config"
	"ortomat-backend/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgxpool"
)

const applicationName = "ortomat-backend"

// Connect opens the pool and verifies it with a ping. The returned cleanup closes it.
func Connect(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, func(), error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.BuildDSN())
	if err != nil {
		return nil, nil, errs.Wrap(err, "parse database config")
	}
	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MaxConnLifetime = time.Hour
	poolCfg.HealthCheckPeriod = time.Minute

	params := poolCfg.ConnConfig.RuntimeParams
	params["application_name"] = applicationName
	if cfg.StatementTimeout > 0 {
		params["statement_timeout"] = strconv.FormatInt(cfg.StatementTimeout.Milliseconds(), 10)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, nil, errs.Wrap(err, "open database")
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, nil, errs.Wrapf(err, "ping database %s:%s", cfg.Host, cfg.Port)
	}

	slog.Info("database pool ready",
		"host", cfg.Host,
		"database", cfg.DBName,
		"max_conns", cfg.MaxConns,
		"statement_timeout", cfg.StatementTimeout)

	cleanup := func() {
		slog.Info("closing database pool")
		pool.Close()
	}

	return pool, cleanup, nil
}
