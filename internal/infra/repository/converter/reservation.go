package converter

import (
	"fmt"

	"parking-reservation/internal/domain/reservation"
	"parking-reservation/internal/infra/query"
	"parking-reservation/internal/pkg/pgconv"
)

func ReservationToInfra(res *reservation.Reservation) query.CreateReservationParams {
	return query.CreateReservationParams{
		UserID:        res.UserID(),
		LotID:         res.LotID(),
		SpotNumber:    int32(res.SpotNumber()), // #nosec G115 -- spot numbers are capped by lot.MaxSpotsLimit
		VehicleNumber: res.VehicleNumber().String(),
		CostPerHr:     pgconv.DecimalToText(res.CostPerHour()),
		StartTime:     pgconv.TimeToPgtype(res.StartTime()),
	}
}

func ReservationFromInfra(row query.Reservation) (*reservation.Reservation, error) {
	vehicle, err := reservation.NewVehicleNumber(row.VehicleNumber)
	if err != nil {
		return nil, fmt.Errorf("reservation %d: %w", row.ID, err)
	}
	status, err := reservation.NewStatus(row.Status)
	if err != nil {
		return nil, fmt.Errorf("reservation %d: %w", row.ID, err)
	}
	costPerHour, err := pgconv.DecimalFromText(row.CostPerHr)
	if err != nil {
		return nil, fmt.Errorf("reservation %d cost_per_hr: %w", row.ID, err)
	}
	totalCost, err := pgconv.DecimalPtrFromText(row.TotalCost)
	if err != nil {
		return nil, fmt.Errorf("reservation %d total_cost: %w", row.ID, err)
	}

	return reservation.ReconstructReservation(
		row.ID,
		row.UserID,
		row.LotID,
		int(row.SpotNumber),
		vehicle,
		status,
		costPerHour,
		totalCost,
		pgconv.TimeFromPgtype(row.StartTime),
		pgconv.TimePtrFromPgtype(row.EndTime),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
