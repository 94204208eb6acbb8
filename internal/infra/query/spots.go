package query

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
)

const spotColumns = `id, lot_id, spot_number, status, total_parking, reservation_id, created_at, updated_at`

func scanSpot(row interface{ Scan(...any) error }) (ParkingSpot, error) {
	var s ParkingSpot
	err := row.Scan(
		&s.ID,
		&s.LotID,
		&s.SpotNumber,
		&s.Status,
		&s.TotalParking,
		&s.ReservationID,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	return s, err
}

const insertSpots = `
INSERT INTO parking_spots (lot_id, spot_number, status)
SELECT $1, n, 'A' FROM unnest($2::int[]) AS n`

func (q *Queries) InsertSpots(ctx context.Context, db DBTX, lotID int64, numbers []int32) (int64, error) {
	tag, err := db.Exec(ctx, insertSpots, lotID, numbers)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const listSpotNumbers = `SELECT spot_number FROM parking_spots WHERE lot_id = $1 ORDER BY spot_number`

func (q *Queries) ListSpotNumbers(ctx context.Context, db DBTX, lotID int64) ([]int32, error) {
	rows, err := db.Query(ctx, listSpotNumbers, lotID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []int32
	for rows.Next() {
		var n int32
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		items = append(items, n)
	}
	return items, rows.Err()
}

// Rows held by another in-flight booking are skipped rather than waited on.
const claimAvailableSpot = `
SELECT id, spot_number FROM parking_spots
WHERE lot_id = $1 AND status = 'A'
ORDER BY spot_number
LIMIT 1
FOR UPDATE SKIP LOCKED`

func (q *Queries) ClaimAvailableSpot(ctx context.Context, db DBTX, lotID int64) (int64, int32, error) {
	var (
		id     int64
		number int32
	)
	err := db.QueryRow(ctx, claimAvailableSpot, lotID).Scan(&id, &number)
	return id, number, err
}

const occupySpot = `
UPDATE parking_spots
SET status = 'O', reservation_id = $2, total_parking = total_parking + 1, updated_at = NOW()
WHERE id = $1 AND status = 'A'`

func (q *Queries) OccupySpot(ctx context.Context, db DBTX, id, reservationID int64) (int64, error) {
	tag, err := db.Exec(ctx, occupySpot, id, reservationID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const findSpotForUpdate = `SELECT ` + spotColumns + ` FROM parking_spots
WHERE lot_id = $1 AND spot_number = $2
FOR UPDATE`

func (q *Queries) FindSpotForUpdate(ctx context.Context, db DBTX, lotID int64, number int32) (ParkingSpot, error) {
	return scanSpot(db.QueryRow(ctx, findSpotForUpdate, lotID, number))
}

const freeSpot = `
UPDATE parking_spots
SET status = 'A', reservation_id = NULL, updated_at = NOW()
WHERE id = $1`

func (q *Queries) FreeSpot(ctx context.Context, db DBTX, id int64) (int64, error) {
	tag, err := db.Exec(ctx, freeSpot, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const selectReclaimableSpots = `
SELECT id FROM parking_spots
WHERE lot_id = $1 AND status = 'A'
ORDER BY spot_number DESC
LIMIT $2
FOR UPDATE SKIP LOCKED`

// SelectReclaimableSpots locks up to limit Available spots, highest numbers first.
func (q *Queries) SelectReclaimableSpots(ctx context.Context, db DBTX, lotID int64, limit int32) ([]int64, error) {
	rows, err := db.Query(ctx, selectReclaimableSpots, lotID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

const deleteAvailableSpots = `DELETE FROM parking_spots WHERE id = ANY($1::bigint[]) AND status = 'A'`

func (q *Queries) DeleteAvailableSpots(ctx context.Context, db DBTX, ids []int64) (int64, error) {
	tag, err := db.Exec(ctx, deleteAvailableSpots, ids)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

type SpotDetail struct {
	ParkingSpot
	VehicleNumber pgtype.Text
	StartTime     pgtype.Timestamptz
}

// SpotSortColumns maps the public sort keys to columns.
var SpotSortColumns = map[string]string{
	"id":            "s.id",
	"spot_number":   "s.spot_number",
	"status":        "s.status",
	"total_parking": "s.total_parking",
}

type ListSpotsByLotParams struct {
	LotID   int64
	SortKey string
	Desc    bool
}

// The reservation link is weak, so the join is a LEFT JOIN on the open row only.
func (q *Queries) ListSpotsByLot(ctx context.Context, db DBTX, arg ListSpotsByLotParams) ([]SpotDetail, error) {
	column, ok := SpotSortColumns[arg.SortKey]
	if !ok {
		column = "s.spot_number"
	}
	direction := "ASC"
	if arg.Desc {
		direction = "DESC"
	}

	sql := fmt.Sprintf(`SELECT s.id, s.lot_id, s.spot_number, s.status, s.total_parking, s.reservation_id,
	s.created_at, s.updated_at, r.vehicle_number, r.start_time
FROM parking_spots s
LEFT JOIN reservations r ON r.id = s.reservation_id AND r.status = 'O'
WHERE s.lot_id = $1
ORDER BY %s %s, s.spot_number`, column, direction)

	rows, err := db.Query(ctx, sql, arg.LotID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []SpotDetail
	for rows.Next() {
		var d SpotDetail
		if err := rows.Scan(
			&d.ID,
			&d.LotID,
			&d.SpotNumber,
			&d.Status,
			&d.TotalParking,
			&d.ReservationID,
			&d.CreatedAt,
			&d.UpdatedAt,
			&d.VehicleNumber,
			&d.StartTime,
		); err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	return items, rows.Err()
}
