package repository

import (
	"context"

	"parking-reservation/internal/domain/lot"
	"parking-reservation/internal/infra"
	"parking-reservation/internal/infra/query"
	"parking-reservation/internal/infra/repository/converter"
	"parking-reservation/internal/pkg/pgconv"

	"github.com/shopspring/decimal"
)

type LotWriteQueries interface {
	CreateLot(ctx context.Context, db query.DBTX, arg query.CreateLotParams) (int64, error)
	FindLotByID(ctx context.Context, db query.DBTX, id int64) (query.ParkingLot, error)
	FindLotByIDForUpdate(ctx context.Context, db query.DBTX, id int64) (query.ParkingLot, error)
	UpdateLotDetails(ctx context.Context, db query.DBTX, arg query.UpdateLotDetailsParams) (int64, error)
	UpdateLotCapacity(ctx context.Context, db query.DBTX, id int64, maxSpots, availableSpots int32) (int64, error)
	SetLotActive(ctx context.Context, db query.DBTX, id int64, active bool) (int64, error)
	TakeLotSpot(ctx context.Context, db query.DBTX, id int64) (int64, error)
	ReturnLotSpot(ctx context.Context, db query.DBTX, id int64, revenue string) (int64, error)
}

type LotRepository struct {
	queries LotWriteQueries
	db      query.DBTX
}

func NewLotRepository(queries LotWriteQueries, db query.DBTX) *LotRepository {
	return &LotRepository{
		queries: queries,
		db:      db,
	}
}

func (r *LotRepository) Create(ctx context.Context, l *lot.Lot) (int64, error) {
	id, err := r.queries.CreateLot(ctx, r.db, converter.LotToCreateParams(l))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create lot", err)
	}
	return id, nil
}

func (r *LotRepository) FindByID(ctx context.Context, id int64) (*lot.Lot, error) {
	row, err := r.queries.FindLotByID(ctx, r.db, id)
	return r.toDomain(row, err)
}

func (r *LotRepository) FindByIDForUpdate(ctx context.Context, id int64) (*lot.Lot, error) {
	row, err := r.queries.FindLotByIDForUpdate(ctx, r.db, id)
	return r.toDomain(row, err)
}

func (r *LotRepository) toDomain(row query.ParkingLot, err error) (*lot.Lot, error) {
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("lot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find lot", err)
	}
	l, err := converter.LotFromInfra(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert lot", err)
	}
	return l, nil
}

func (r *LotRepository) UpdateDetails(ctx context.Context, l *lot.Lot) error {
	n, err := r.queries.UpdateLotDetails(ctx, r.db, converter.LotToUpdateParams(l))
	if err != nil {
		return infra.WrapRepoErr("failed to update lot", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("lot not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *LotRepository) UpdateCapacity(ctx context.Context, l *lot.Lot) error {
	// #nosec G115 -- bounded by lot.MaxSpotsLimit
	n, err := r.queries.UpdateLotCapacity(ctx, r.db, l.ID(), int32(l.MaxSpots()), int32(l.AvailableSpots()))
	if err != nil {
		return infra.WrapRepoErr("failed to update lot capacity", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("lot not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *LotRepository) SetActive(ctx context.Context, id int64, active bool) error {
	n, err := r.queries.SetLotActive(ctx, r.db, id, active)
	if err != nil {
		return infra.WrapRepoErr("failed to toggle lot", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("lot not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *LotRepository) TakeSpot(ctx context.Context, id int64) error {
	n, err := r.queries.TakeLotSpot(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to decrement lot availability", err)
	}
	if n == 0 {
		return lot.ErrLotFull
	}
	return nil
}

func (r *LotRepository) ReturnSpot(ctx context.Context, id int64, revenue decimal.Decimal) error {
	n, err := r.queries.ReturnLotSpot(ctx, r.db, id, pgconv.DecimalToText(revenue))
	if err != nil {
		return infra.WrapRepoErr("failed to return lot spot", err)
	}
	if n == 0 {
		// available_spots already at max_spots: the counters have drifted
		return infra.WrapRepoErr("lot availability already at capacity", nil, infra.KindCheckViolation)
	}
	return nil
}
