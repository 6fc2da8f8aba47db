package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"zeneasy/config"
	"zeneasy/internal/delivery"
	apimiddleware "zeneasy/internal/delivery/api/middleware"
	"zeneasy/internal/delivery/api/router"
	"zeneasy/internal/delivery/api/validator"
	"zeneasy/internal/delivery/middleware"
	"zeneasy/internal/domain/lifecycle"
	"zeneasy/internal/errors"
	"zeneasy/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

const defaultServiceName = "zeneasy-api"

type apiServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc             fx.Lifecycle
	Cfg            *config.Config
	Logger         *slog.Logger
	Metrics        *metrics.Recorder
	TracerProvider trace.TracerProvider
	RouterParams   router.RouterParams
}

// NewServer creates the API server and registers its shutdown hook.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	echoServer := NewEcho(params)

	srv := &apiServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: echoServer,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// NewEcho builds the configured echo instance with every route registered.
func NewEcho(params ServerParams) *echo.Echo {
	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.Server.ReadTimeout = params.Cfg.HTTP.Timeouts.ReadTimeout
	echoServer.Server.ReadHeaderTimeout = params.Cfg.HTTP.Timeouts.ReadHeaderTimeout
	echoServer.Server.WriteTimeout = params.Cfg.HTTP.Timeouts.WriteTimeout
	echoServer.Server.IdleTimeout = params.Cfg.HTTP.Timeouts.IdleTimeout

	// 1. Recover middleware first (to catch panics early)
	echoServer.Use(echomiddleware.Recover())

	// 2. Request ID middleware (must be before logger to include in logs)
	echoServer.Use(middleware.RequestID(params.Logger))

	// 3. Tracing
	if params.TracerProvider != nil {
		serviceName := params.Cfg.Env.ServiceName
		if serviceName == "" {
			serviceName = defaultServiceName
		}
		echoServer.Use(echo.WrapMiddleware(otelhttp.NewMiddleware(serviceName,
			otelhttp.WithTracerProvider(params.TracerProvider),
		)))
	}

	// 4. Metrics
	if params.Metrics != nil {
		echoServer.Use(params.Metrics.Middleware())
	}

	// 5. Logger middleware
	echoServer.Use(middleware.AccessLog(params.Logger, params.Cfg.Env.Debug))

	// 6. CORS middleware
	echoServer.Use(echomiddleware.CORS())

	// 7. Request body size limit
	if params.Cfg.HTTP.MaxRequestBodySize != "" {
		echoServer.Use(echomiddleware.BodyLimit(params.Cfg.HTTP.MaxRequestBodySize))
	}

	errorMiddleware := apimiddleware.NewErrorMiddleware(params.Logger)
	echoServer.HTTPErrorHandler = errorMiddleware.HandleHTTPError

	echoServer.Validator = validator.New()

	r := router.NewRouter(params.RouterParams)
	r.RegisterRoutes(echoServer)

	return echoServer
}

func (s *apiServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting API HTTP server", slog.String("host_port", hostPort))
	h2Server := &http2.Server{
		IdleTimeout: s.cfg.HTTP.Timeouts.IdleTimeout,
	}
	if err := s.server.StartH2CServer(hostPort, h2Server); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *apiServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down API HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
