package bootstrap

import (
	"context"

	"parking-reservation/internal/observability/metrics"
	"parking-reservation/internal/observability/tracing"
	"parking-reservation/internal/pkg/config"
	"parking-reservation/internal/usecase/commands"
	"parking-reservation/internal/worker"

	"go.uber.org/fx"
)

var ObservabilityModule = fx.Module("observability",
	fx.Provide(
		metrics.New,
		func(m *metrics.Metrics) commands.ParkingMetrics { return m },
		func(m *metrics.Metrics) worker.OutboxMetrics { return m },
	),
	fx.Invoke(InitTracing),
)

func InitTracing(lc fx.Lifecycle, cfg config.Config) error {
	shutdown, err := tracing.Init(context.Background(), cfg.Tracing)
	if err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStop: shutdown,
	})
	return nil
}
