package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"zeneasy/config"
	"zeneasy/internal/delivery"
	"zeneasy/internal/delivery/middleware"
	"zeneasy/internal/delivery/worker/handler"
	"zeneasy/internal/domain/lifecycle"
	"zeneasy/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const pushPath = "/push"

type workerServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for the worker server
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	Metrics     *metrics.Recorder `optional:"true"`
	PushHandler *handler.PushHandler
}

// NewServer creates the worker HTTP server that receives push deliveries.
func NewServer(params ServerParams) delivery.Delivery {
	srv := &workerServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: NewEcho(params),
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv
}

// NewEcho builds the worker routes and middleware chain.
func NewEcho(params ServerParams) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomiddleware.Recover())
	e.Use(middleware.RequestID(params.Logger))
	if params.Metrics != nil {
		e.Use(params.Metrics.Middleware())
	}
	e.Use(middleware.AccessLog(params.Logger, params.Cfg.Env.Debug))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	if params.Metrics != nil && (params.Cfg.Metrics == nil || params.Cfg.Metrics.Enabled) {
		path := "/metrics"
		if params.Cfg.Metrics != nil && params.Cfg.Metrics.Path != "" {
			path = params.Cfg.Metrics.Path
		}
		e.GET(path, echo.WrapHandler(params.Metrics.Handler()))
	}

	e.POST(pushPath, params.PushHandler.HandlePush)

	return e
}

// Serve starts the worker HTTP server
func (s *workerServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting Worker HTTP server", slog.String("hostPort", hostPort))
	if err := s.server.Start(hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

// stop gracefully shuts down the worker server
func (s *workerServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down Worker HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
