package bootstrap

import (
	"context"
	"log/slog"

	"parking-reservation/internal/infra/messaging"
	"parking-reservation/internal/pkg/config"
	"parking-reservation/internal/worker"

	"go.uber.org/fx"
)

var MessagingModule = fx.Module("messaging",
	fx.Provide(
		NewEventPublisher,
	),
)

type closablePublisher interface {
	worker.EventPublisher
	Close() error
}

// NewEventPublisher logs events instead of publishing them when AMQP_URL is empty.
func NewEventPublisher(lc fx.Lifecycle, cfg config.Config) (worker.EventPublisher, error) {
	var pub closablePublisher
	if cfg.AMQP.URL == "" {
		slog.Info("event publishing goes to the log: AMQP_URL not set")
		pub = messaging.NewLogPublisher()
	} else {
		p, err := messaging.NewRabbitMQPublisher(cfg.AMQP.URL, cfg.AMQP.Queue)
		if err != nil {
			return nil, err
		}
		pub = p
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return pub.Close()
		},
	})

	return pub, nil
}
