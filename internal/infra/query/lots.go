package query

import (
	"context"
	"fmt"
)

const lotColumns = `id, name, address, pincode, cost_per_hour::text, max_spots, available_spots,
	total_parking, total_revenue::text, is_active, created_at, updated_at`

func scanLot(row interface{ Scan(...any) error }) (ParkingLot, error) {
	var l ParkingLot
	err := row.Scan(
		&l.ID,
		&l.Name,
		&l.Address,
		&l.Pincode,
		&l.CostPerHour,
		&l.MaxSpots,
		&l.AvailableSpots,
		&l.TotalParking,
		&l.TotalRevenue,
		&l.IsActive,
		&l.CreatedAt,
		&l.UpdatedAt,
	)
	return l, err
}

const createLot = `
INSERT INTO parking_lots (name, address, pincode, cost_per_hour, max_spots, available_spots)
VALUES ($1, $2, $3, $4::numeric, $5, $5)
RETURNING id`

type CreateLotParams struct {
	Name        string
	Address     string
	Pincode     string
	CostPerHour string
	MaxSpots    int32
}

func (q *Queries) CreateLot(ctx context.Context, db DBTX, arg CreateLotParams) (int64, error) {
	row := db.QueryRow(ctx, createLot, arg.Name, arg.Address, arg.Pincode, arg.CostPerHour, arg.MaxSpots)
	var id int64
	err := row.Scan(&id)
	return id, err
}

const findLotByID = `SELECT ` + lotColumns + ` FROM parking_lots WHERE id = $1`

func (q *Queries) FindLotByID(ctx context.Context, db DBTX, id int64) (ParkingLot, error) {
	return scanLot(db.QueryRow(ctx, findLotByID, id))
}

const findLotByIDForUpdate = `SELECT ` + lotColumns + ` FROM parking_lots WHERE id = $1 FOR UPDATE`

func (q *Queries) FindLotByIDForUpdate(ctx context.Context, db DBTX, id int64) (ParkingLot, error) {
	return scanLot(db.QueryRow(ctx, findLotByIDForUpdate, id))
}

const updateLotDetails = `
UPDATE parking_lots
SET name = $2, address = $3, pincode = $4, cost_per_hour = $5::numeric, updated_at = NOW()
WHERE id = $1`

type UpdateLotDetailsParams struct {
	ID          int64
	Name        string
	Address     string
	Pincode     string
	CostPerHour string
}

func (q *Queries) UpdateLotDetails(ctx context.Context, db DBTX, arg UpdateLotDetailsParams) (int64, error) {
	tag, err := db.Exec(ctx, updateLotDetails, arg.ID, arg.Name, arg.Address, arg.Pincode, arg.CostPerHour)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const updateLotCapacity = `
UPDATE parking_lots
SET max_spots = $2, available_spots = $3, updated_at = NOW()
WHERE id = $1`

func (q *Queries) UpdateLotCapacity(ctx context.Context, db DBTX, id int64, maxSpots, availableSpots int32) (int64, error) {
	tag, err := db.Exec(ctx, updateLotCapacity, id, maxSpots, availableSpots)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const setLotActive = `UPDATE parking_lots SET is_active = $2, updated_at = NOW() WHERE id = $1`

func (q *Queries) SetLotActive(ctx context.Context, db DBTX, id int64, active bool) (int64, error) {
	tag, err := db.Exec(ctx, setLotActive, id, active)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const takeLotSpot = `
UPDATE parking_lots
SET available_spots = available_spots - 1,
    total_parking = total_parking + 1,
    updated_at = NOW()
WHERE id = $1 AND available_spots > 0`

func (q *Queries) TakeLotSpot(ctx context.Context, db DBTX, id int64) (int64, error) {
	tag, err := db.Exec(ctx, takeLotSpot, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const returnLotSpot = `
UPDATE parking_lots
SET available_spots = available_spots + 1,
    total_revenue = total_revenue + $2::numeric,
    updated_at = NOW()
WHERE id = $1 AND available_spots < max_spots`

func (q *Queries) ReturnLotSpot(ctx context.Context, db DBTX, id int64, revenue string) (int64, error) {
	tag, err := db.Exec(ctx, returnLotSpot, id, revenue)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// LotSortColumns maps the public sort keys to columns. Anything else is
// rejected before it reaches SQL.
var LotSortColumns = map[string]string{
	"name":    "name",
	"pincode": "pincode",
	"spots":   "available_spots",
	"price":   "cost_per_hour",
	"revenue": "total_revenue",
}

type ListLotsParams struct {
	Search     string
	SortKey    string
	Desc       bool
	ActiveOnly bool
}

func (q *Queries) ListLots(ctx context.Context, db DBTX, arg ListLotsParams) ([]ParkingLot, error) {
	column, ok := LotSortColumns[arg.SortKey]
	if !ok {
		column = "name"
	}
	direction := "ASC"
	if arg.Desc {
		direction = "DESC"
	}

	sql := fmt.Sprintf(`SELECT %s FROM parking_lots
WHERE ($1 = '' OR name ILIKE '%%' || $1 || '%%' OR address ILIKE '%%' || $1 || '%%' OR pincode = $1)
  AND (NOT $2 OR is_active)
ORDER BY %s %s, id`, lotColumns, column, direction)

	rows, err := db.Query(ctx, sql, arg.Search, arg.ActiveOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []ParkingLot
	for rows.Next() {
		l, err := scanLot(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, l)
	}
	return items, rows.Err()
}
