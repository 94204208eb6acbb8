package worker

import (
	"context"
	"log/slog"
	"time"

	"parking-reservation/internal/pkg/clock"
	"parking-reservation/internal/pkg/config"
	"parking-reservation/internal/usecase/shared"
)

type EventPublisher interface {
	Publish(ctx context.Context, e shared.Event) error
}

type OutboxMetrics interface {
	EventPublished()
	EventPublishFailed()
	SetPendingEvents(n int64)
}

// OutboxRelay drains reservation_events to the broker. Each batch is locked
// with SKIP LOCKED, so several API instances can run a relay at once.
// Delivery is at least once: a crash between publish and commit resends.
type OutboxRelay struct {
	uow       shared.UnitOfWork
	publisher EventPublisher
	clock     clock.Clock
	metrics   OutboxMetrics
	cfg       config.OutboxConfig
}

func NewOutboxRelay(uow shared.UnitOfWork, publisher EventPublisher, clk clock.Clock, metrics OutboxMetrics, cfg config.OutboxConfig) *OutboxRelay {
	return &OutboxRelay{
		uow:       uow,
		publisher: publisher,
		clock:     clk,
		metrics:   metrics,
		cfg:       cfg,
	}
}

// Run polls until ctx is done. A full batch is followed by another pass
// right away instead of waiting for the next tick.
func (r *OutboxRelay) Run(ctx context.Context) {
	slog.Info("outbox relay started",
		"poll_interval", r.cfg.PollInterval.String(),
		"batch_size", r.cfg.BatchSize)

	ticker := time.NewTicker(r.cfg.PollInterval)
	defer ticker.Stop()

	for {
		for {
			n, err := r.RelayOnce(ctx)
			if err != nil {
				if ctx.Err() == nil {
					slog.Error("outbox relay pass failed", "error", err.Error())
				}
				break
			}
			if n < r.cfg.BatchSize {
				break
			}
		}

		select {
		case <-ctx.Done():
			slog.Info("outbox relay stopped")
			return
		case <-ticker.C:
		}
	}
}

// RelayOnce publishes one batch and returns how many events it fetched.
func (r *OutboxRelay) RelayOnce(ctx context.Context) (int, error) {
	var fetched int
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		events, err := tx.Events().FetchPending(ctx, r.cfg.BatchSize, r.cfg.MaxAttempts)
		if err != nil {
			return err
		}
		fetched = len(events)

		for _, e := range events {
			if err := r.publisher.Publish(ctx, e); err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				r.metrics.EventPublishFailed()
				slog.Warn("failed to publish event",
					"event_id", e.ID.String(),
					"type", e.Type,
					"attempt", e.Attempts+1,
					"error", err.Error())
				// only the head event is charged; the rest of the batch waits
				// for the next pass instead of burning attempts on a down broker
				if err := tx.Events().MarkFailed(ctx, e.ID, err.Error()); err != nil {
					return err
				}
				fetched = 0
				break
			}
			if err := tx.Events().MarkPublished(ctx, e.ID, r.clock.Now()); err != nil {
				return err
			}
			r.metrics.EventPublished()
		}

		pending, err := tx.Events().CountPending(ctx)
		if err != nil {
			return err
		}
		r.metrics.SetPendingEvents(pending)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return fetched, nil
}
