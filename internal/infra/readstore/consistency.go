package readstore

import (
	"context"

	"parking-reservation/internal/infra"
	"parking-reservation/internal/infra/query"
	"parking-reservation/internal/pkg/pgconv"
	"parking-reservation/internal/usecase/queries"
)

type ConsistencyQueries interface {
	FindLotDrift(ctx context.Context, db query.DBTX) ([]query.LotDrift, error)
	FindUserDrift(ctx context.Context, db query.DBTX) ([]query.UserDrift, error)
}

// ConsistencyReadStore compares the denormalized counters against the rows
// they are derived from. Both scans must run on one snapshot, so the caller
// passes the read-only transaction in.
type ConsistencyReadStore struct {
	queries ConsistencyQueries
}

func NewConsistencyReadStore(queries ConsistencyQueries) *ConsistencyReadStore {
	return &ConsistencyReadStore{queries: queries}
}

func (r *ConsistencyReadStore) Drift(ctx context.Context, db query.DBTX) (*queries.DriftReport, error) {
	lotRows, err := r.queries.FindLotDrift(ctx, db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan lot counters", err)
	}
	userRows, err := r.queries.FindUserDrift(ctx, db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan user counters", err)
	}

	report := &queries.DriftReport{
		Lots:  make([]queries.LotDrift, 0, len(lotRows)),
		Users: make([]queries.UserDrift, 0, len(userRows)),
	}
	for _, row := range lotRows {
		revenue, err := pgconv.DecimalFromText(row.TotalRevenue)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode lot revenue", err, infra.KindDBFailure)
		}
		closed, err := pgconv.DecimalFromText(row.ClosedCostTotal)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode closed cost total", err, infra.KindDBFailure)
		}
		report.Lots = append(report.Lots, queries.LotDrift{
			LotID:           row.LotID,
			AvailableSpots:  int(row.AvailableSpots),
			FreeSpots:       int(row.FreeSpotCount),
			MaxSpots:        int(row.MaxSpots),
			SpotCount:       int(row.SpotCount),
			TotalRevenue:    revenue,
			ClosedCostTotal: closed,
		})
	}
	for _, row := range userRows {
		report.Users = append(report.Users, queries.UserDrift{
			UserID:        row.UserID,
			ActiveParking: int(row.ActiveParking),
			OpenCount:     int(row.OpenCount),
		})
	}
	return report, nil
}
