package repository

import (
	"context"

	"parking-reservation/internal/domain/lot"
	"parking-reservation/internal/domain/spot"
	"parking-reservation/internal/infra"
	"parking-reservation/internal/infra/query"
	"parking-reservation/internal/infra/repository/converter"
	"parking-reservation/internal/pkg/errs"
	"parking-reservation/internal/pkg/pgconv"
)

type SpotWriteQueries interface {
	InsertSpots(ctx context.Context, db query.DBTX, lotID int64, numbers []int32) (int64, error)
	ListSpotNumbers(ctx context.Context, db query.DBTX, lotID int64) ([]int32, error)
	ClaimAvailableSpot(ctx context.Context, db query.DBTX, lotID int64) (int64, int32, error)
	OccupySpot(ctx context.Context, db query.DBTX, id, reservationID int64) (int64, error)
	FindSpotForUpdate(ctx context.Context, db query.DBTX, lotID int64, number int32) (query.ParkingSpot, error)
	FreeSpot(ctx context.Context, db query.DBTX, id int64) (int64, error)
	SelectReclaimableSpots(ctx context.Context, db query.DBTX, lotID int64, limit int32) ([]int64, error)
	DeleteAvailableSpots(ctx context.Context, db query.DBTX, ids []int64) (int64, error)
}

type SpotRepository struct {
	queries SpotWriteQueries
	db      query.DBTX
}

func NewSpotRepository(queries SpotWriteQueries, db query.DBTX) *SpotRepository {
	return &SpotRepository{
		queries: queries,
		db:      db,
	}
}

func (r *SpotRepository) CreateBatch(ctx context.Context, lotID int64, numbers []int) error {
	if len(numbers) == 0 {
		return nil
	}
	nums := make([]int32, len(numbers))
	for i, n := range numbers {
		nums[i] = int32(n) // #nosec G115 -- bounded by lot.MaxSpotsLimit
	}
	if _, err := r.queries.InsertSpots(ctx, r.db, lotID, nums); err != nil {
		return infra.WrapRepoErr("failed to insert spots", err)
	}
	return nil
}

func (r *SpotRepository) Numbers(ctx context.Context, lotID int64) ([]int, error) {
	rows, err := r.queries.ListSpotNumbers(ctx, r.db, lotID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list spot numbers", err)
	}
	numbers := make([]int, len(rows))
	for i, n := range rows {
		numbers[i] = int(n)
	}
	return numbers, nil
}

func (r *SpotRepository) ClaimAvailable(ctx context.Context, lotID int64) (spot.Handle, error) {
	id, number, err := r.queries.ClaimAvailableSpot(ctx, r.db, lotID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return spot.Handle{}, lot.ErrLotFull
		}
		return spot.Handle{}, infra.WrapRepoErr("failed to claim spot", err)
	}
	return spot.Handle{ID: id, LotID: lotID, SpotNumber: int(number)}, nil
}

func (r *SpotRepository) Occupy(ctx context.Context, h spot.Handle, reservationID int64) error {
	n, err := r.queries.OccupySpot(ctx, r.db, h.ID, reservationID)
	if err != nil {
		return infra.WrapRepoErr("failed to occupy spot", err)
	}
	if n == 0 {
		// the claim lock makes this unreachable unless the row changed under us
		return infra.WrapRepoErr("claimed spot is no longer available", nil, infra.KindCheckViolation)
	}
	return nil
}

func (r *SpotRepository) FindForUpdate(ctx context.Context, lotID int64, number int) (*spot.Spot, error) {
	row, err := r.queries.FindSpotForUpdate(ctx, r.db, lotID, int32(number)) // #nosec G115
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("spot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find spot", err)
	}
	s, err := converter.SpotFromInfra(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert spot", err)
	}
	return s, nil
}

func (r *SpotRepository) Free(ctx context.Context, spotID int64) error {
	n, err := r.queries.FreeSpot(ctx, r.db, spotID)
	if err != nil {
		return infra.WrapRepoErr("failed to free spot", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("spot not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *SpotRepository) LockReclaimable(ctx context.Context, lotID int64, limit int) ([]int64, error) {
	if limit <= 0 {
		return nil, nil
	}
	ids, err := r.queries.SelectReclaimableSpots(ctx, r.db, lotID, int32(limit)) // #nosec G115
	if err != nil {
		return nil, infra.WrapRepoErr("failed to select reclaimable spots", err)
	}
	return ids, nil
}

// DeleteAvailable maps the occupied-spot trigger to spot.ErrSpotOccupied.
func (r *SpotRepository) DeleteAvailable(ctx context.Context, ids []int64) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	n, err := r.queries.DeleteAvailableSpots(ctx, r.db, ids)
	if err != nil {
		wrapped := infra.WrapRepoErr("failed to delete spots", err)
		if infra.IsKind(wrapped, infra.KindCheckViolation) {
			return 0, errs.Mark(wrapped, spot.ErrSpotOccupied)
		}
		return 0, wrapped
	}
	return int(n), nil
}
