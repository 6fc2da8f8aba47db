// Package scheduler runs periodic maintenance jobs on a cron schedule.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"zeneasy/internal/domain/lifecycle"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

// Job is one unit of scheduled work.
type Job func(ctx context.Context) error

// Scheduler wraps a cron runner whose jobs share a cancellable context.
type Scheduler struct {
	cron   *cron.Cron
	ctx    context.Context
	cancel context.CancelFunc
	logger *slog.Logger
}

// Params defines the dependencies for the scheduler
type Params struct {
	fx.In
	fx.Lifecycle

	Logger *slog.Logger
}

// New creates a scheduler that starts and stops with the fx lifecycle.
func New(params Params) *Scheduler {
	s := newScheduler(params.Logger)

	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			s.cron.Start()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			s.Stop(ctx)

			return nil
		},
	})

	return s
}

func newScheduler(logger *slog.Logger) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())

	return &Scheduler{
		cron: cron.New(
			cron.WithLogger(cronLogger{logger: logger}),
			cron.WithChain(cron.Recover(cronLogger{logger: logger}), cron.SkipIfStillRunning(cronLogger{logger: logger})),
		),
		ctx:    ctx,
		cancel: cancel,
		logger: logger,
	}
}

// Add registers job under the given cron spec. Each run is bounded by timeout
// when it is positive.
func (s *Scheduler) Add(spec, name string, timeout time.Duration, job Job) error {
	_, err := s.cron.AddFunc(spec, func() {
		ctx := s.ctx
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		start := time.Now()
		if err := job(ctx); err != nil {
			s.logger.Error("Scheduled job failed", slog.String("job", name), slog.Any("error", err))

			return
		}

		s.logger.Debug("Scheduled job finished", slog.String("job", name), slog.Duration("took", time.Since(start)))
	})
	if err != nil {
		return errors.Wrapf(err, "invalid schedule %q for job %s", spec, name)
	}

	s.logger.Info("Scheduled job registered", slog.String("job", name), slog.String("spec", spec))

	return nil
}

// Stop cancels running jobs and waits for them until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) {
	s.cancel()
	done := s.cron.Stop()

	waitCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	select {
	case <-done.Done():
	case <-waitCtx.Done():
		s.logger.Warn("Scheduler stopped before running jobs finished")
	}
}

// cronLogger adapts slog to the cron.Logger interface.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error(msg, append(keysAndValues, slog.Any("error", err))...)
}
