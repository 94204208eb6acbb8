package repository

import (
	"context"
	"time"

	"parking-reservation/internal/infra"
	"parking-reservation/internal/infra/query"
	"parking-reservation/internal/pkg/pgconv"
	"parking-reservation/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type EventQueries interface {
	InsertEvent(ctx context.Context, db query.DBTX, arg query.InsertEventParams) error
	FetchPendingEvents(ctx context.Context, db query.DBTX, limit, maxAttempts int32) ([]query.ReservationEvent, error)
	MarkEventPublished(ctx context.Context, db query.DBTX, id uuid.UUID, at pgtype.Timestamptz) error
	MarkEventFailed(ctx context.Context, db query.DBTX, id uuid.UUID, lastError string) error
	CountPendingEvents(ctx context.Context, db query.DBTX) (int64, error)
}

// EventRepository is the transactional outbox for reservation lifecycle events.
type EventRepository struct {
	queries EventQueries
	db      query.DBTX
}

func NewEventRepository(queries EventQueries, db query.DBTX) *EventRepository {
	return &EventRepository{
		queries: queries,
		db:      db,
	}
}

func (r *EventRepository) Append(ctx context.Context, e shared.Event) error {
	err := r.queries.InsertEvent(ctx, r.db, query.InsertEventParams{
		ID:          e.ID,
		EventType:   e.Type,
		AggregateID: e.AggregateID,
		Payload:     e.Payload,
		CreatedAt:   pgconv.TimeToPgtype(e.CreatedAt),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to append event", err)
	}
	return nil
}

func (r *EventRepository) FetchPending(ctx context.Context, limit, maxAttempts int) ([]shared.Event, error) {
	// #nosec G115 -- both come from bounded config values
	rows, err := r.queries.FetchPendingEvents(ctx, r.db, int32(limit), int32(maxAttempts))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to fetch pending events", err)
	}

	events := make([]shared.Event, len(rows))
	for i, row := range rows {
		events[i] = shared.Event{
			ID:          row.ID,
			Type:        row.EventType,
			AggregateID: row.AggregateID,
			Payload:     row.Payload,
			Attempts:    int(row.Attempts),
			CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return events, nil
}

func (r *EventRepository) MarkPublished(ctx context.Context, id uuid.UUID, at time.Time) error {
	if err := r.queries.MarkEventPublished(ctx, r.db, id, pgconv.TimeToPgtype(at)); err != nil {
		return infra.WrapRepoErr("failed to mark event published", err)
	}
	return nil
}

func (r *EventRepository) MarkFailed(ctx context.Context, id uuid.UUID, reason string) error {
	if err := r.queries.MarkEventFailed(ctx, r.db, id, reason); err != nil {
		return infra.WrapRepoErr("failed to mark event failed", err)
	}
	return nil
}

func (r *EventRepository) CountPending(ctx context.Context) (int64, error) {
	n, err := r.queries.CountPendingEvents(ctx, r.db)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count pending events", err)
	}
	return n, nil
}
