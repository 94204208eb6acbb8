package messaging

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"parking-reservation/internal/usecase/shared"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sony/gobreaker"
)

// ErrBrokerUnavailable is returned while the publish breaker is open.
var ErrBrokerUnavailable = errors.New("message broker unavailable")

type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// RabbitMQPublisher publishes outbox events to a durable queue through the
// default exchange. The routing key is the queue name; the event type travels
// in the message type field.
type RabbitMQPublisher struct {
	conn  *amqp.Connection
	ch    channel
	queue string
	cb    *gobreaker.CircuitBreaker
}

func NewRabbitMQPublisher(url, queue string) (*RabbitMQPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to broker: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	// durable, not auto-deleted, not exclusive
	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("failed to declare queue %s: %w", queue, err)
	}

	slog.Info("connected to message broker", "queue", queue)
	return newPublisher(conn, ch, queue), nil
}

func newPublisher(conn *amqp.Connection, ch channel, queue string) *RabbitMQPublisher {
	return &RabbitMQPublisher{
		conn:  conn,
		ch:    ch,
		queue: queue,
		cb:    NewCircuitBreaker("rabbitmq-publisher", 30*time.Second),
	}
}

func (p *RabbitMQPublisher) Publish(ctx context.Context, e shared.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := p.cb.Execute(func() (any, error) {
		return nil, p.ch.PublishWithContext(ctx, "", p.queue, false, false, amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    e.ID.String(),
			Type:         e.Type,
			Timestamp:    e.CreatedAt,
			Body:         e.Payload,
		})
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: %w", ErrBrokerUnavailable, err)
	}
	return err
}

func (p *RabbitMQPublisher) Close() error {
	if p.ch != nil {
		if err := p.ch.Close(); err != nil {
			return err
		}
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

// LogPublisher stands in for the broker when none is configured. Events are
// logged and count as delivered so the outbox does not grow without bound.
type LogPublisher struct{}

func NewLogPublisher() *LogPublisher {
	return &LogPublisher{}
}

func (LogPublisher) Publish(_ context.Context, e shared.Event) error {
	slog.Info("event published",
		"event_id", e.ID.String(),
		"type", e.Type,
		"aggregate_id", e.AggregateID)
	return nil
}

func (LogPublisher) Close() error { return nil }
