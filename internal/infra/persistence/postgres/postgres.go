// Package postgres implements the repositories on GORM and PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"zeneasy/config"
	"zeneasy/internal/domain/lifecycle"
	"zeneasy/internal/errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolCheckInterval = 5 * time.Second
	poolWaitWarnAfter = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config     *config.Config
	Logger     *slog.Logger
	Registerer prometheus.Registerer `optional:"true"`
}

// New connects to the primary and any replicas. The pool is pinged on start
// and closed on stop.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	// Multi-step writes go through TransactionManager, so GORM's implicit
	// per-statement transaction is off.
	db = db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	if params.Registerer != nil {
		if err := params.Registerer.Register(collectors.NewDBStatsCollector(sqlDB, "zeneasy")); err != nil {
			params.Logger.Warn("Postgres pool collector not registered", slog.Any("error", err))
		}
	}

	watcher := &poolWatcher{logger: params.Logger, stats: sqlDB.Stats}
	stopWatch := func() {}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			var watchCtx context.Context
			watchCtx, stopWatch = context.WithCancel(context.Background())
			go watcher.run(watchCtx, poolCheckInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			stopWatch()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// poolWatcher reports callers that had to wait for a free connection.
type poolWatcher struct {
	logger *slog.Logger
	stats  func() sql.DBStats
	last   sql.DBStats
}

func (w *poolWatcher) run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	w.last = w.stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.check(ctx)
		}
	}
}

func (w *poolWatcher) check(ctx context.Context) {
	cur := w.stats()
	waits := cur.WaitCount - w.last.WaitCount
	waited := cur.WaitDuration - w.last.WaitDuration
	w.last = cur

	if waits <= 0 {
		return
	}

	level := slog.LevelDebug
	if waited >= poolWaitWarnAfter {
		level = slog.LevelWarn
	}

	w.logger.LogAttrs(ctx, level, "Postgres pool contention",
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avg_wait", waited/time.Duration(waits)),
		slog.Int("open", cur.OpenConnections),
		slog.Int("in_use", cur.InUse),
		slog.Int("idle", cur.Idle),
		slog.Int("max_open", cur.MaxOpenConnections),
	)
}
