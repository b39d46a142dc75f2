// Package pg provides the PostgreSQL connection layer and utility functions.
//
// It creates a pgx connection pool, exposes it through the Bun ORM, inspects
// PostgreSQL constraint-violation errors so upper layers can dispatch on
// typed conditions instead of string codes, and applies the schema
// migrations at startup.
package pg

import (
	"context"

	"github.com/avast/retry-go/v4"
	"github.com/code19m/errx"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/marcosmapl/studium-backend-sub000/logger"
	"github.com/marcosmapl/studium-backend-sub000/pg/hooks"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/extra/bunotel"
)

// NewBunDB creates a Bun database handle over a pgx pool and verifies the
// connection with a retried ping.
func NewBunDB(cfg Config, log logger.Logger) (*bun.DB, error) {
	pool, err := NewPool(cfg)
	if err != nil {
		return nil, errx.Wrap(err)
	}

	sqldb := stdlib.OpenDBFromPool(pool)

	bunDB := bun.NewDB(sqldb, pgdialect.New())
	applyHooks(bunDB, cfg.Debug, log)

	err = retry.Do(
		func() error {
			ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
			defer cancel()
			return bunDB.PingContext(ctx)
		},
		retry.Attempts(cfg.PingAttempts),
		retry.OnRetry(func(n uint, err error) {
			log.Warnf("database ping failed (attempt %d): %v", n+1, err)
		}),
	)
	if err != nil {
		_ = bunDB.Close()
		return nil, errx.Wrap(err)
	}

	return bunDB, nil
}

// applyHooks configures the Bun handle with query hooks.
//
// The debug hook logs queries through the application logger and is active
// only when debug=true. The OpenTelemetry hook is always enabled.
func applyHooks(db *bun.DB, debug bool, log logger.Logger) {
	db.AddQueryHook(
		hooks.NewDebugHook(
			log,
			hooks.WithEnabled(debug),
			hooks.WithVerbose(true),
		),
	)

	db.AddQueryHook(bunotel.NewQueryHook())
}
