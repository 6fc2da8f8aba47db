package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"zeneasy/config"
	"zeneasy/internal/delivery"
	"zeneasy/internal/delivery/api"
	"zeneasy/internal/delivery/api/middleware"
	"zeneasy/internal/delivery/api/router/handler"
	"zeneasy/internal/domain/service"
	"zeneasy/internal/infra/auth"
	logs "zeneasy/internal/infra/log"
	"zeneasy/internal/infra/mail"
	"zeneasy/internal/infra/metrics"
	"zeneasy/internal/infra/otpguard"
	"zeneasy/internal/infra/persistence/postgres"
	"zeneasy/internal/infra/pubsub"
	"zeneasy/internal/infra/qrcode"
	"zeneasy/internal/infra/scheduler"
	"zeneasy/internal/infra/storage"
	"zeneasy/internal/infra/tracing"
	"zeneasy/internal/usecase"
	"zeneasy/internal/usecase/impl"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

const otpSweepTimeout = time.Minute

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			registerOTPSweep,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		metrics.New,
		func(r *metrics.Recorder) service.MetricsRecorder { return r },
		func(r *metrics.Recorder) prometheus.Registerer { return r.Registerer() },
		tracing.New,
		scheduler.New,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewRentRepository,
			postgres.NewServiceProfileRepository,
			postgres.NewOwnerLinkRepository,
			postgres.NewFeedbackRepository,
			postgres.NewDeviceRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			auth.NewAdminAuthenticator,
			auth.NewOTPGenerator,
			otpguard.NewAttemptLimiter,
			mail.NewEmailSender,
			storage.NewObjectStorage,
			pubsub.NewEventPublisher,
			newQRCodeService,
		),
	)
}

func newQRCodeService(cfg *config.Config) service.QRCodeService {
	return qrcode.NewQRCodeService(cfg.QRCode)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewOTPService,
			impl.NewAuthService,
			impl.NewLinkerService,
			impl.NewRentService,
			impl.NewServiceProfileService,
			impl.NewRatingService,
			impl.NewFeedbackService,
			impl.NewUploadService,
			impl.NewDeviceService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewUserHandler,
			handler.NewRentHandler,
			handler.NewServiceHandler,
			handler.NewFeedbackHandler,
			handler.NewUploadHandler,
			handler.NewDeviceHandler,
			handler.NewAdminHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// registerOTPSweep clears expired codes on a schedule when both a TTL and a
// schedule are configured.
func registerOTPSweep(cfg *config.Config, sched *scheduler.Scheduler, otpUC usecase.OTPUsecase, logger *slog.Logger) error {
	if cfg.OTP == nil || cfg.OTP.TTL <= 0 || cfg.OTP.SweepSchedule == "" {
		return nil
	}

	return sched.Add(cfg.OTP.SweepSchedule, "otp-sweep", otpSweepTimeout, func(ctx context.Context) error {
		cleared, err := otpUC.SweepExpired(ctx)
		if err != nil {
			return err
		}
		if cleared > 0 {
			logger.Info("Expired OTP codes cleared", slog.Int64("count", cleared))
		}

		return nil
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
