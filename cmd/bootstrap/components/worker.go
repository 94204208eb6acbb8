package components

import (
	"context"

	"parking-reservation/internal/pkg/config"
	"parking-reservation/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		func(cfg config.Config) config.OutboxConfig { return cfg.Outbox },
		worker.NewOutboxRelay,
	),
	fx.Invoke(runOutboxRelay),
)

func runOutboxRelay(lc fx.Lifecycle, relay *worker.OutboxRelay) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				relay.Run(ctx)
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
				return nil
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
		},
	})
}
