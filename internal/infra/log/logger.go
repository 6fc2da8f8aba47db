// Package logs builds the process wide slog logger.
package logs

import (
	"io"
	"log/slog"
	"os"

	"zeneasy/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params defines the parameters required for the logger
type Params struct {
	fx.In

	Config *config.Config
}

// New builds the logger from env.log and installs it as the slog default.
// Records carry the service name and environment so the API and the worker
// can share one sink.
func New(params Params) (*slog.Logger, error) {
	return newLogger(os.Stdout, params.Config)
}

func newLogger(w io.Writer, cfg *config.Config) (*slog.Logger, error) {
	level, err := parseLogLevel(cfg.Env.Log.Level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level, AddSource: cfg.Env.Debug}
	handler := slog.Handler(slog.NewJSONHandler(w, opts))
	if cfg.Env.Log.Pretty {
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler).With(
		slog.String("service", cfg.Env.ServiceName),
		slog.String("env", cfg.Env.Env),
	)
	slog.SetDefault(logger)

	return logger, nil
}

// parseLogLevel accepts slog's names in any case, with offsets such as
// "warn+2". Empty means info.
func parseLogLevel(name string) (slog.Level, error) {
	if name == "" {
		return slog.LevelInfo, nil
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo, errors.Wrapf(err, "env.log.level %q", name)
	}

	return level, nil
}
