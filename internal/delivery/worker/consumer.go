package worker

import (
	"context"
	"log/slog"
	"sync"

	"zeneasy/internal/delivery"
	"zeneasy/internal/delivery/worker/handler"
	"zeneasy/internal/infra/pubsub"

	"go.uber.org/fx"
)

type queueConsumer struct {
	consumer  *pubsub.RabbitMQConsumer
	processor *handler.EventProcessor
	logger    *slog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
}

// ConsumerParams holds dependencies for the queue consumer.
type ConsumerParams struct {
	fx.In

	Lc        fx.Lifecycle
	Consumer  *pubsub.RabbitMQConsumer
	Processor *handler.EventProcessor
	Logger    *slog.Logger
}

// NewQueueConsumer wraps the RabbitMQ consumer as a delivery.
func NewQueueConsumer(params ConsumerParams) delivery.Delivery {
	c := &queueConsumer{
		consumer:  params.Consumer,
		processor: params.Processor,
		logger:    params.Logger,
	}

	params.Lc.Append(fx.Hook{
		OnStop: c.stop,
	})

	return c
}

// Serve starts consuming and returns once the consumer is running.
func (c *queueConsumer) Serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	c.mu.Lock()
	c.cancel = cancel
	c.mu.Unlock()

	c.logger.Info("Starting queue consumer")

	return c.consumer.Start(ctx, c.processor.Consume)
}

func (c *queueConsumer) stop(context.Context) error {
	c.logger.Info("Stopping queue consumer")
	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
	}
	c.mu.Unlock()

	return c.consumer.Close()
}
