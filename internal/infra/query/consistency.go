package query

import "context"

// Denormalized counters recomputed from the source rows. A row is returned
// only when a stored counter disagrees with its recount.

type LotDrift struct {
	LotID           int64
	AvailableSpots  int32
	FreeSpotCount   int32
	MaxSpots        int32
	SpotCount       int32
	TotalRevenue    string
	ClosedCostTotal string
}

const findLotDrift = `
SELECT l.id, l.available_spots, COALESCE(s.free, 0)::int, l.max_spots, COALESCE(s.total, 0)::int,
       l.total_revenue::text, COALESCE(r.revenue, 0)::numeric(12,2)::text
FROM parking_lots l
LEFT JOIN (
    SELECT lot_id, COUNT(*) FILTER (WHERE status = 'A') AS free, COUNT(*) AS total
    FROM parking_spots GROUP BY lot_id
) s ON s.lot_id = l.id
LEFT JOIN (
    SELECT lot_id, SUM(total_cost) AS revenue
    FROM reservations WHERE status = 'C' GROUP BY lot_id
) r ON r.lot_id = l.id
WHERE l.available_spots <> COALESCE(s.free, 0)
   OR l.max_spots <> COALESCE(s.total, 0)
   OR l.total_revenue <> COALESCE(r.revenue, 0)
ORDER BY l.id`

func (q *Queries) FindLotDrift(ctx context.Context, db DBTX) ([]LotDrift, error) {
	rows, err := db.Query(ctx, findLotDrift)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []LotDrift
	for rows.Next() {
		var d LotDrift
		if err := rows.Scan(
			&d.LotID,
			&d.AvailableSpots,
			&d.FreeSpotCount,
			&d.MaxSpots,
			&d.SpotCount,
			&d.TotalRevenue,
			&d.ClosedCostTotal,
		); err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	return items, rows.Err()
}

type UserDrift struct {
	UserID        int64
	ActiveParking int32
	OpenCount     int32
}

const findUserDrift = `
SELECT u.id, u.active_parking, COALESCE(r.open, 0)::int
FROM users u
LEFT JOIN (
    SELECT user_id, COUNT(*) AS open FROM reservations WHERE status = 'O' GROUP BY user_id
) r ON r.user_id = u.id
WHERE u.active_parking <> COALESCE(r.open, 0)
ORDER BY u.id`

func (q *Queries) FindUserDrift(ctx context.Context, db DBTX) ([]UserDrift, error) {
	rows, err := db.Query(ctx, findUserDrift)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []UserDrift
	for rows.Next() {
		var d UserDrift
		if err := rows.Scan(&d.UserID, &d.ActiveParking, &d.OpenCount); err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	return items, rows.Err()
}
