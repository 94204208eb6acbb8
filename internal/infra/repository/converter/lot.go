package converter

import (
	"fmt"

	"parking-reservation/internal/domain/address"
	"parking-reservation/internal/domain/lot"
	"parking-reservation/internal/domain/spot"
	"parking-reservation/internal/infra/query"
	"parking-reservation/internal/pkg/pgconv"
)

func LotToCreateParams(l *lot.Lot) query.CreateLotParams {
	return query.CreateLotParams{
		Name:        l.Name(),
		Address:     l.Address(),
		Pincode:     l.Pincode().String(),
		CostPerHour: pgconv.DecimalToText(l.CostPerHour()),
		MaxSpots:    int32(l.MaxSpots()), // #nosec G115 -- bounded by lot.MaxSpotsLimit
	}
}

func LotToUpdateParams(l *lot.Lot) query.UpdateLotDetailsParams {
	return query.UpdateLotDetailsParams{
		ID:          l.ID(),
		Name:        l.Name(),
		Address:     l.Address(),
		Pincode:     l.Pincode().String(),
		CostPerHour: pgconv.DecimalToText(l.CostPerHour()),
	}
}

func LotFromInfra(row query.ParkingLot) (*lot.Lot, error) {
	pincode, err := address.NewPincode(row.Pincode)
	if err != nil {
		return nil, fmt.Errorf("lot %d: %w", row.ID, err)
	}
	costPerHour, err := pgconv.DecimalFromText(row.CostPerHour)
	if err != nil {
		return nil, fmt.Errorf("lot %d cost_per_hour: %w", row.ID, err)
	}
	revenue, err := pgconv.DecimalFromText(row.TotalRevenue)
	if err != nil {
		return nil, fmt.Errorf("lot %d total_revenue: %w", row.ID, err)
	}

	details := lot.Details{
		Name:        row.Name,
		Address:     row.Address,
		Pincode:     pincode,
		CostPerHour: costPerHour,
	}
	return lot.ReconstructLot(
		row.ID,
		details,
		int(row.MaxSpots),
		int(row.AvailableSpots),
		int(row.TotalParking),
		revenue,
		row.IsActive,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func SpotFromInfra(row query.ParkingSpot) (*spot.Spot, error) {
	status, err := spot.NewStatus(row.Status)
	if err != nil {
		return nil, fmt.Errorf("spot %d: %w", row.ID, err)
	}
	return spot.ReconstructSpot(
		row.ID,
		row.LotID,
		int(row.SpotNumber),
		status,
		int(row.TotalParking),
		pgconv.Int64PtrFromPgtype(row.ReservationID),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
