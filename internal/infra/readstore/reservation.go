package readstore

import (
	"context"

	"parking-reservation/internal/infra"
	"parking-reservation/internal/infra/query"
	"parking-reservation/internal/pkg/pgconv"
	"parking-reservation/internal/usecase/queries"
)

type ReservationReadQueries interface {
	GetReservationDetail(ctx context.Context, db query.DBTX, id int64) (query.ReservationDetail, error)
	ListReservationsByUser(ctx context.Context, db query.DBTX, arg query.ListReservationsByUserParams) ([]query.ReservationDetail, error)
}

type ReservationReadStore struct {
	queries ReservationReadQueries
	db      query.DBTX
}

func NewReservationReadStore(queries ReservationReadQueries, db query.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id int64) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservationDetail(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get reservation detail", err)
	}
	view, err := toReservationView(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode reservation", err, infra.KindDBFailure)
	}
	return view, nil
}

// Open reservations come first, then the most recently started.
func (r *ReservationReadStore) ListByUser(ctx context.Context, userID int64, limit, offset int32) ([]*queries.ReservationView, error) {
	rows, err := r.queries.ListReservationsByUser(ctx, r.db, query.ListReservationsByUserParams{
		UserID: userID,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by user", err)
	}

	views := make([]*queries.ReservationView, 0, len(rows))
	for _, row := range rows {
		view, err := toReservationView(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode reservation", err, infra.KindDBFailure)
		}
		views = append(views, view)
	}
	return views, nil
}

func toReservationView(row query.ReservationDetail) (*queries.ReservationView, error) {
	costPerHour, err := pgconv.DecimalFromText(row.CostPerHr)
	if err != nil {
		return nil, err
	}
	totalCost, err := pgconv.DecimalPtrFromText(row.TotalCost)
	if err != nil {
		return nil, err
	}
	return &queries.ReservationView{
		ID:            row.ID,
		UserID:        row.UserID,
		Username:      row.Username,
		LotID:         row.LotID,
		LotName:       row.LotName,
		LotAddress:    row.LotAddress,
		SpotNumber:    int(row.SpotNumber),
		VehicleNumber: row.VehicleNumber,
		Status:        row.Status,
		CostPerHour:   costPerHour,
		TotalCost:     totalCost,
		StartTime:     pgconv.TimeFromPgtype(row.StartTime),
		EndTime:       pgconv.TimePtrFromPgtype(row.EndTime),
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}
