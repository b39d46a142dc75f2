// Package hooks contains bun query hooks used by the pg package.
package hooks

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/marcosmapl/studium-backend-sub000/logger"
	"github.com/uptrace/bun"
)

// Verify that DebugHook implements bun.QueryHook at compile time.
var _ bun.QueryHook = (*DebugHook)(nil)

// DebugHook logs database queries through the application logger, with
// configurable verbosity and slow-query detection.
type DebugHook struct {
	log                logger.Logger
	enabled            bool
	verbose            bool
	slowQueryThreshold time.Duration
}

// DebugHookOption configures a DebugHook.
type DebugHookOption func(*DebugHook)

// NewDebugHook creates a new query hook. By default the hook is enabled,
// verbose mode is on and the slow query threshold is 100ms.
func NewDebugHook(log logger.Logger, opts ...DebugHookOption) *DebugHook {
	hook := &DebugHook{
		log:                log.Named("pg.query"),
		enabled:            true,
		verbose:            true,
		slowQueryThreshold: 100 * time.Millisecond,
	}

	for _, opt := range opts {
		opt(hook)
	}

	return hook
}

// WithEnabled sets whether the query hook is enabled.
func WithEnabled(enabled bool) DebugHookOption {
	return func(h *DebugHook) {
		h.enabled = enabled
	}
}

// WithVerbose sets whether to log all queries or only failures and slow queries.
func WithVerbose(verbose bool) DebugHookOption {
	return func(h *DebugHook) {
		h.verbose = verbose
	}
}

// WithSlowQueryThreshold sets the duration above which a query is logged as slow.
func WithSlowQueryThreshold(threshold time.Duration) DebugHookOption {
	return func(h *DebugHook) {
		h.slowQueryThreshold = threshold
	}
}

// BeforeQuery implements bun.QueryHook.
func (h *DebugHook) BeforeQuery(ctx context.Context, _ *bun.QueryEvent) context.Context {
	return ctx
}

// AfterQuery implements bun.QueryHook.
func (h *DebugHook) AfterQuery(_ context.Context, event *bun.QueryEvent) {
	if !h.enabled {
		return
	}

	duration := time.Since(event.StartTime)
	log := h.log.With("query", event.Query, "duration", duration.String())

	switch {
	case event.Err != nil && !errors.Is(event.Err, sql.ErrNoRows):
		log.With("error", event.Err.Error()).Error("query failed")
	case duration >= h.slowQueryThreshold:
		log.Warn("slow query")
	case h.verbose:
		log.Debug("query executed")
	}
}
