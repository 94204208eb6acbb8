package queries

import (
	"context"

	"parking-reservation/internal/domain/reservation"
	"parking-reservation/internal/infra"
	"parking-reservation/internal/pkg/clock"
	"parking-reservation/internal/usecase/shared"
)

//go:generate mockgen -destination=../../testutil/mock/queries/reservation_mock.go -package=queriesmock parking-reservation/internal/usecase/queries ReservationQueries

type ReservationQueries interface {
	// GetOwned hides reservations of other users behind ErrReservationNotFound.
	GetOwned(ctx context.Context, userID, id int64) (*ReservationView, error)
	GetByID(ctx context.Context, id int64) (*ReservationView, error)
	ListByUser(ctx context.Context, userID int64, after *Cursor, limit int) ([]*ReservationView, *Cursor, error)
}

type ReservationReadStore interface {
	FindByID(ctx context.Context, id int64) (*ReservationView, error)
	ListByUser(ctx context.Context, userID int64, limit, offset int32) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	readStore ReservationReadStore
	clock     clock.Clock
}

func NewReservationQueries(readStore ReservationReadStore, clk clock.Clock) ReservationQueries {
	return &reservationQueriesImpl{readStore: readStore, clock: clk}
}

func (q *reservationQueriesImpl) GetOwned(ctx context.Context, userID, id int64) (*ReservationView, error) {
	view, err := q.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if view.UserID != userID {
		return nil, ErrReservationNotFound
	}
	return view, nil
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id int64) (*ReservationView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, shared.Categorize(err)
	}
	q.fillCurrentCost(view)
	return view, nil
}

func (q *reservationQueriesImpl) ListByUser(ctx context.Context, userID int64, after *Cursor, limit int) ([]*ReservationView, *Cursor, error) {
	limit = ValidateLimit(limit)
	offset, err := after.offset()
	if err != nil {
		return nil, nil, err
	}

	// #nosec G115 -- limit is capped by ValidateLimit, offset comes from our own cursor
	rows, err := q.readStore.ListByUser(ctx, userID, int32(limit+1), int32(offset))
	if err != nil {
		return nil, nil, shared.Categorize(err)
	}
	rows, next := nextCursor(rows, offset, limit)
	for _, row := range rows {
		q.fillCurrentCost(row)
	}
	return rows, next, nil
}

// Closed reservations report the stored total; open ones an estimate as of now.
func (q *reservationQueriesImpl) fillCurrentCost(view *ReservationView) {
	if view.TotalCost != nil {
		view.CurrentCost = *view.TotalCost
		return
	}
	view.CurrentCost = reservation.ComputeCost(view.CostPerHour, view.StartTime, view.EndTime, q.clock.Now())
}
