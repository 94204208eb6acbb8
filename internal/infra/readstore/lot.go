package readstore

import (
	"context"

	"parking-reservation/internal/infra"
	"parking-reservation/internal/infra/query"
	"parking-reservation/internal/pkg/pgconv"
	"parking-reservation/internal/usecase/queries"
)

type LotReadQueries interface {
	FindLotByID(ctx context.Context, db query.DBTX, id int64) (query.ParkingLot, error)
	ListLots(ctx context.Context, db query.DBTX, arg query.ListLotsParams) ([]query.ParkingLot, error)
	ListSpotsByLot(ctx context.Context, db query.DBTX, arg query.ListSpotsByLotParams) ([]query.SpotDetail, error)
}

type LotReadStore struct {
	queries LotReadQueries
	db      query.DBTX
}

func NewLotReadStore(queries LotReadQueries, db query.DBTX) *LotReadStore {
	return &LotReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *LotReadStore) FindByID(ctx context.Context, id int64) (*queries.LotView, error) {
	row, err := r.queries.FindLotByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("lot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find lot by id", err)
	}
	view, err := toLotView(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode lot", err, infra.KindDBFailure)
	}
	return view, nil
}

func (r *LotReadStore) List(ctx context.Context, filter queries.LotFilter) ([]*queries.LotView, error) {
	rows, err := r.queries.ListLots(ctx, r.db, query.ListLotsParams{
		Search:     filter.Search,
		SortKey:    string(filter.Sort),
		Desc:       filter.Desc,
		ActiveOnly: filter.ActiveOnly,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list lots", err)
	}

	views := make([]*queries.LotView, 0, len(rows))
	for _, row := range rows {
		view, err := toLotView(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode lot", err, infra.KindDBFailure)
		}
		views = append(views, view)
	}
	return views, nil
}

func (r *LotReadStore) ListSpots(ctx context.Context, lotID int64, filter queries.SpotFilter) ([]*queries.SpotView, error) {
	rows, err := r.queries.ListSpotsByLot(ctx, r.db, query.ListSpotsByLotParams{
		LotID:   lotID,
		SortKey: string(filter.Sort),
		Desc:    filter.Desc,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list spots", err)
	}

	views := make([]*queries.SpotView, 0, len(rows))
	for _, row := range rows {
		views = append(views, &queries.SpotView{
			ID:            row.ID,
			SpotNumber:    int(row.SpotNumber),
			Status:        row.Status,
			TotalParking:  int(row.TotalParking),
			ReservationID: pgconv.Int64PtrFromPgtype(row.ReservationID),
			VehicleNumber: pgconv.StringPtrFromPgtype(row.VehicleNumber),
			ParkedSince:   pgconv.TimePtrFromPgtype(row.StartTime),
		})
	}
	return views, nil
}

func toLotView(row query.ParkingLot) (*queries.LotView, error) {
	costPerHour, err := pgconv.DecimalFromText(row.CostPerHour)
	if err != nil {
		return nil, err
	}
	revenue, err := pgconv.DecimalFromText(row.TotalRevenue)
	if err != nil {
		return nil, err
	}
	return &queries.LotView{
		ID:             row.ID,
		Name:           row.Name,
		Address:        row.Address,
		Pincode:        row.Pincode,
		CostPerHour:    costPerHour,
		MaxSpots:       int(row.MaxSpots),
		AvailableSpots: int(row.AvailableSpots),
		OccupiedSpots:  int(row.MaxSpots - row.AvailableSpots),
		TotalParking:   int(row.TotalParking),
		TotalRevenue:   revenue,
		IsActive:       row.IsActive,
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:      pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
