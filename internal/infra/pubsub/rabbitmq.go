package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"zeneasy/config"
	"zeneasy/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/streadway/amqp"
)

const (
	defaultExchange     = "zeneasy.events"
	defaultQueue        = "zeneasy.events.notify"
	defaultRoutingKey   = "notify"
	defaultPrefetch     = 10
	defaultDialRetries  = 5
	defaultDialInterval = 2 * time.Second
)

// rabbitTopology is the exchange, queue and binding shared by publisher and consumer.
type rabbitTopology struct {
	exchange   string
	queue      string
	routingKey string
}

func topologyFromConfig(cfg *config.RabbitMQConfig) rabbitTopology {
	t := rabbitTopology{
		exchange:   cfg.Exchange,
		queue:      cfg.Queue,
		routingKey: cfg.RoutingKey,
	}
	if t.exchange == "" {
		t.exchange = defaultExchange
	}
	if t.queue == "" {
		t.queue = defaultQueue
	}
	if t.routingKey == "" {
		t.routingKey = defaultRoutingKey
	}

	return t
}

// DialRabbitMQ connects to the broker, retrying at a fixed interval.
func DialRabbitMQ(cfg *config.RabbitMQConfig) (*amqp.Connection, error) {
	retries := cfg.DialRetries
	if retries <= 0 {
		retries = defaultDialRetries
	}
	interval := cfg.DialInterval
	if interval <= 0 {
		interval = defaultDialInterval
	}

	var err error
	for attempt := range retries {
		var conn *amqp.Connection
		conn, err = amqp.Dial(cfg.URL)
		if err == nil {
			return conn, nil
		}
		if attempt < retries-1 {
			time.Sleep(interval)
		}
	}

	return nil, errors.Wrapf(err, "failed to connect to rabbitmq after %d attempts", retries)
}

// declareTopology declares a durable direct exchange and a durable queue bound to it.
func declareTopology(ch *amqp.Channel, t rabbitTopology) error {
	if err := ch.ExchangeDeclare(t.exchange, amqp.ExchangeDirect, true, false, false, false, nil); err != nil {
		return errors.Wrapf(err, "failed to declare exchange %s", t.exchange)
	}

	if _, err := ch.QueueDeclare(t.queue, true, false, false, false, nil); err != nil {
		return errors.Wrapf(err, "failed to declare queue %s", t.queue)
	}

	if err := ch.QueueBind(t.queue, t.routingKey, t.exchange, false, nil); err != nil {
		return errors.Wrapf(err, "failed to bind queue %s", t.queue)
	}

	return nil
}

// rabbitMQPublisher implements EventPublisher on an AMQP exchange.
type rabbitMQPublisher struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	ch       *amqp.Channel
	topology rabbitTopology
	logger   *slog.Logger
}

// NewRabbitMQPublisher connects, declares the topology and returns the publisher.
func NewRabbitMQPublisher(cfg *config.RabbitMQConfig, logger *slog.Logger) (service.EventPublisher, error) {
	conn, err := DialRabbitMQ(cfg)
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()

		return nil, errors.Wrap(err, "failed to open rabbitmq channel")
	}

	topology := topologyFromConfig(cfg)
	if err := declareTopology(ch, topology); err != nil {
		ch.Close()
		conn.Close()

		return nil, err
	}

	return &rabbitMQPublisher{
		conn:     conn,
		ch:       ch,
		topology: topology,
		logger:   logger,
	}, nil
}

// Publish sends the event as a persistent JSON message.
func (p *rabbitMQPublisher) Publish(ctx context.Context, event *service.DomainEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	headers := amqp.Table{}
	for k, v := range eventAttributes(event) {
		headers[k] = v
	}

	p.mu.Lock()
	err = p.ch.Publish(p.topology.exchange, p.topology.routingKey, false, false, amqp.Publishing{
		ContentType:   "application/json",
		DeliveryMode:  amqp.Persistent,
		MessageId:     event.ID,
		CorrelationId: event.RequestID,
		Type:          event.Type,
		Timestamp:     event.OccurredAt,
		Headers:       headers,
		Body:          body,
	})
	p.mu.Unlock()
	if err != nil {
		return errors.Wrap(err, "failed to publish to rabbitmq")
	}

	p.logger.InfoContext(ctx, "[RabbitMQ] Event published",
		slog.String("event_id", event.ID),
		slog.String("event_type", event.Type),
	)

	return nil
}

// Close closes the channel and the connection.
func (p *rabbitMQPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.ch.Close(); err != nil {
		p.logger.Warn("failed to close rabbitmq channel", slog.Any("error", err))
	}

	return errors.WithStack(p.conn.Close())
}

// MessageHandler processes one message body. A retryable error requeues the message.
type MessageHandler func(ctx context.Context, body []byte) error

// RetryableError marks a handler failure worth redelivering.
type RetryableError interface {
	Retryable() bool
}

// RabbitMQConsumer reads events from the notify queue.
type RabbitMQConsumer struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	topology rabbitTopology
	prefetch int
	logger   *slog.Logger
	wg       sync.WaitGroup
}

// NewRabbitMQConsumer connects, declares the topology and applies the prefetch limit.
func NewRabbitMQConsumer(cfg *config.RabbitMQConfig, logger *slog.Logger) (*RabbitMQConsumer, error) {
	conn, err := DialRabbitMQ(cfg)
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()

		return nil, errors.Wrap(err, "failed to open rabbitmq channel")
	}

	prefetch := cfg.Prefetch
	if prefetch <= 0 {
		prefetch = defaultPrefetch
	}
	if err := ch.Qos(prefetch, 0, false); err != nil {
		ch.Close()
		conn.Close()

		return nil, errors.Wrap(err, "failed to set rabbitmq qos")
	}

	topology := topologyFromConfig(cfg)
	if err := declareTopology(ch, topology); err != nil {
		ch.Close()
		conn.Close()

		return nil, err
	}

	return &RabbitMQConsumer{
		conn:     conn,
		ch:       ch,
		topology: topology,
		prefetch: prefetch,
		logger:   logger,
	}, nil
}

// Start begins consuming until ctx is canceled. Up to prefetch messages are
// handled concurrently. Successful messages are acked; retryable failures are
// requeued and the rest are dropped.
func (c *RabbitMQConsumer) Start(ctx context.Context, handler MessageHandler) error {
	deliveries, err := c.ch.Consume(c.topology.queue, "", false, false, false, false, nil)
	if err != nil {
		return errors.Wrapf(err, "failed to consume queue %s", c.topology.queue)
	}

	sem := make(chan struct{}, c.prefetch)

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()

		for {
			select {
			case <-ctx.Done():
				return
			case d, ok := <-deliveries:
				if !ok {
					return
				}

				sem <- struct{}{}
				c.wg.Add(1)
				go func(d amqp.Delivery) {
					defer func() {
						<-sem
						c.wg.Done()
					}()
					c.handle(ctx, d, handler)
				}(d)
			}
		}
	}()

	return nil
}

func (c *RabbitMQConsumer) handle(ctx context.Context, d amqp.Delivery, handler MessageHandler) {
	err := handler(ctx, d.Body)
	if err == nil {
		if ackErr := d.Ack(false); ackErr != nil {
			c.logger.Error("failed to ack message", slog.Any("error", ackErr))
		}

		return
	}

	var retryable RetryableError
	requeue := errors.As(err, &retryable) && retryable.Retryable()

	c.logger.Warn("message handling failed",
		slog.String("message_id", d.MessageId),
		slog.Bool("requeue", requeue),
		slog.Any("error", err),
	)

	if nackErr := d.Nack(false, requeue); nackErr != nil {
		c.logger.Error("failed to nack message", slog.Any("error", nackErr))
	}
}

// Close stops delivery, waits for in-flight handlers and closes the connection.
func (c *RabbitMQConsumer) Close() error {
	if err := c.ch.Close(); err != nil {
		c.logger.Warn("failed to close rabbitmq channel", slog.Any("error", err))
	}

	c.wg.Wait()

	return errors.WithStack(c.conn.Close())
}
