package repository

import (
	"context"

	"parking-reservation/internal/domain/reservation"
	"parking-reservation/internal/infra"
	"parking-reservation/internal/infra/query"
	"parking-reservation/internal/infra/repository/converter"
	"parking-reservation/internal/pkg/pgconv"
)

type ReservationWriteQueries interface {
	CreateReservation(ctx context.Context, db query.DBTX, arg query.CreateReservationParams) (int64, error)
	FindReservationForUpdate(ctx context.Context, db query.DBTX, id, userID int64) (query.Reservation, error)
	CloseReservation(ctx context.Context, db query.DBTX, arg query.CloseReservationParams) (int64, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
	db      query.DBTX
}

func NewReservationRepository(queries ReservationWriteQueries, db query.DBTX) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) (int64, error) {
	id, err := r.queries.CreateReservation(ctx, r.db, converter.ReservationToInfra(res))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create reservation", err)
	}
	return id, nil
}

func (r *ReservationRepository) FindForUpdate(ctx context.Context, id, userID int64) (*reservation.Reservation, error) {
	row, err := r.queries.FindReservationForUpdate(ctx, r.db, id, userID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}
	res, err := converter.ReservationFromInfra(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert reservation", err)
	}
	return res, nil
}

// Close persists a reservation already closed in memory. The status guard
// turns a lost race into reservation.ErrAlreadyCompleted.
func (r *ReservationRepository) Close(ctx context.Context, res *reservation.Reservation) error {
	if res.EndTime() == nil || res.TotalCost() == nil {
		return reservation.ErrInvalidStatus
	}
	n, err := r.queries.CloseReservation(ctx, r.db, query.CloseReservationParams{
		ID:        res.ID(),
		EndTime:   pgconv.TimeToPgtype(*res.EndTime()),
		TotalCost: pgconv.DecimalToText(*res.TotalCost()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to close reservation", err)
	}
	if n == 0 {
		return reservation.ErrAlreadyCompleted
	}
	return nil
}
