package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"zeneasy/config"
	deliverycontext "zeneasy/internal/delivery/context"
	"zeneasy/internal/errors"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

// gormLogger routes GORM output through slog. Statement logs pick up the
// request logger from ctx so queries correlate with the request that ran them.
type gormLogger struct {
	fallback *slog.Logger
	level    gormlogger.LogLevel
	slow     time.Duration
}

func newGormSlogLogger(logger *slog.Logger, cfg *config.Config) gormlogger.Interface {
	level := gormlogger.Warn
	if cfg != nil && cfg.Env.Debug {
		level = gormlogger.Info
	}

	return &gormLogger{fallback: logger, level: level, slow: slowQueryThreshold}
}

func (l *gormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *l
	clone.level = level

	return &clone
}

func (l *gormLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, gormlogger.Info, slog.LevelInfo, msg, args...)
}

func (l *gormLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, gormlogger.Warn, slog.LevelWarn, msg, args...)
}

func (l *gormLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, gormlogger.Error, slog.LevelError, msg, args...)
}

func (l *gormLogger) printf(ctx context.Context, threshold gormlogger.LogLevel, level slog.Level, msg string, args ...any) {
	logger := l.loggerFor(ctx)
	if logger == nil || l.level < threshold {
		return
	}

	logger.LogAttrs(ctx, level, "gorm", slog.String("message", fmt.Sprintf(msg, args...)))
}

// Trace logs failed statements at error, slow ones at warn and, in debug
// mode, every statement at info. Missing rows are not failures.
func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	logger := l.loggerFor(ctx)
	if logger == nil || l.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)

	var (
		level slog.Level
		msg   string
		extra slog.Attr
	)
	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.level >= gormlogger.Error:
		level, msg, extra = slog.LevelError, "sql failed", slog.String("error", err.Error())
	case l.slow > 0 && elapsed > l.slow && l.level >= gormlogger.Warn:
		level, msg, extra = slog.LevelWarn, "sql slow", slog.Duration("threshold", l.slow)
	case l.level >= gormlogger.Info:
		level, msg = slog.LevelInfo, "sql"
	default:
		return
	}

	sql, rows := fc()
	attrs := []slog.Attr{
		slog.String("sql", sql),
		slog.Int64("rows", rows),
		slog.Duration("elapsed", elapsed),
	}
	if extra.Key != "" {
		attrs = append(attrs, extra)
	}

	logger.LogAttrs(ctx, level, msg, attrs...)
}

func (l *gormLogger) loggerFor(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return l.fallback
	}

	return deliverycontext.GetLoggerOrDefault(ctx, l.fallback)
}
