package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const insertEvent = `
INSERT INTO reservation_events (id, event_type, aggregate_id, payload, created_at)
VALUES ($1, $2, $3, $4, $5)`

type InsertEventParams struct {
	ID          uuid.UUID
	EventType   string
	AggregateID int64
	Payload     []byte
	CreatedAt   pgtype.Timestamptz
}

func (q *Queries) InsertEvent(ctx context.Context, db DBTX, arg InsertEventParams) error {
	_, err := db.Exec(ctx, insertEvent, arg.ID, arg.EventType, arg.AggregateID, arg.Payload, arg.CreatedAt)
	return err
}

// Several relay instances may poll concurrently; each batch is exclusive.
const fetchPendingEvents = `
SELECT id, event_type, aggregate_id, payload, attempts, last_error, created_at, published_at
FROM reservation_events
WHERE published_at IS NULL AND attempts < $2
ORDER BY created_at, id
LIMIT $1
FOR UPDATE SKIP LOCKED`

func (q *Queries) FetchPendingEvents(ctx context.Context, db DBTX, limit, maxAttempts int32) ([]ReservationEvent, error) {
	rows, err := db.Query(ctx, fetchPendingEvents, limit, maxAttempts)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []ReservationEvent
	for rows.Next() {
		var e ReservationEvent
		if err := rows.Scan(
			&e.ID,
			&e.EventType,
			&e.AggregateID,
			&e.Payload,
			&e.Attempts,
			&e.LastError,
			&e.CreatedAt,
			&e.PublishedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	return items, rows.Err()
}

const markEventPublished = `UPDATE reservation_events SET published_at = $2, last_error = NULL WHERE id = $1`

func (q *Queries) MarkEventPublished(ctx context.Context, db DBTX, id uuid.UUID, at pgtype.Timestamptz) error {
	_, err := db.Exec(ctx, markEventPublished, id, at)
	return err
}

const markEventFailed = `UPDATE reservation_events SET attempts = attempts + 1, last_error = $2 WHERE id = $1`

func (q *Queries) MarkEventFailed(ctx context.Context, db DBTX, id uuid.UUID, lastError string) error {
	_, err := db.Exec(ctx, markEventFailed, id, lastError)
	return err
}

const countPendingEvents = `SELECT COUNT(*) FROM reservation_events WHERE published_at IS NULL`

func (q *Queries) CountPendingEvents(ctx context.Context, db DBTX) (int64, error) {
	var n int64
	err := db.QueryRow(ctx, countPendingEvents).Scan(&n)
	return n, err
}
