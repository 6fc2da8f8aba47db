package main

import (
	"context"
	"log/slog"
	"os"

	"zeneasy/config"
	"zeneasy/internal/delivery"
	"zeneasy/internal/delivery/worker"
	"zeneasy/internal/delivery/worker/handler"
	"zeneasy/internal/domain/constants"
	"zeneasy/internal/domain/service"
	logs "zeneasy/internal/infra/log"
	"zeneasy/internal/infra/metrics"
	"zeneasy/internal/infra/notification"
	"zeneasy/internal/infra/persistence/postgres"
	"zeneasy/internal/infra/pubsub"
	"zeneasy/internal/usecase/impl"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

type queueConsumerParams struct {
	fx.In

	Lc        fx.Lifecycle
	Cfg       *config.Config
	Logger    *slog.Logger
	Processor *handler.EventProcessor
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
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
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewDeviceRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			notification.NewNotificationService,
			impl.NewNotificationService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewEventProcessor,
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				newQueueConsumers,
				fx.ResultTags(`group:"deliveries,flatten"`),
			),
		),
	)
}

// newQueueConsumers adds the RabbitMQ consumer when RabbitMQ carries the events.
// Pub/Sub providers deliver through the push endpoint instead.
func newQueueConsumers(params queueConsumerParams) ([]delivery.Delivery, error) {
	if params.Cfg.PubSub == nil || params.Cfg.PubSub.Provider != constants.PubSubProviderRabbitMQ {
		return nil, nil
	}

	if params.Cfg.RabbitMQ == nil || params.Cfg.RabbitMQ.URL == "" {
		return nil, errors.New("rabbitmq.url is required for the rabbitmq provider")
	}

	consumer, err := pubsub.NewRabbitMQConsumer(params.Cfg.RabbitMQ, params.Logger)
	if err != nil {
		return nil, err
	}

	return []delivery.Delivery{
		worker.NewQueueConsumer(worker.ConsumerParams{
			Lc:        params.Lc,
			Consumer:  consumer,
			Processor: params.Processor,
			Logger:    params.Logger,
		}),
	}, nil
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
