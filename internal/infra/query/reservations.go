package query

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const reservationColumns = `id, user_id, lot_id, spot_number, vehicle_number, status, cost_per_hr::text,
	total_cost::text, start_time, end_time, created_at, updated_at`

func scanReservation(row interface{ Scan(...any) error }) (Reservation, error) {
	var r Reservation
	err := row.Scan(
		&r.ID,
		&r.UserID,
		&r.LotID,
		&r.SpotNumber,
		&r.VehicleNumber,
		&r.Status,
		&r.CostPerHr,
		&r.TotalCost,
		&r.StartTime,
		&r.EndTime,
		&r.CreatedAt,
		&r.UpdatedAt,
	)
	return r, err
}

const createReservation = `
INSERT INTO reservations (user_id, lot_id, spot_number, vehicle_number, status, cost_per_hr, start_time, created_at, updated_at)
VALUES ($1, $2, $3, $4, 'O', $5::numeric, $6, $6, $6)
RETURNING id`

type CreateReservationParams struct {
	UserID        int64
	LotID         int64
	SpotNumber    int32
	VehicleNumber string
	CostPerHr     string
	StartTime     pgtype.Timestamptz
}

func (q *Queries) CreateReservation(ctx context.Context, db DBTX, arg CreateReservationParams) (int64, error) {
	row := db.QueryRow(ctx, createReservation,
		arg.UserID,
		arg.LotID,
		arg.SpotNumber,
		arg.VehicleNumber,
		arg.CostPerHr,
		arg.StartTime,
	)
	var id int64
	err := row.Scan(&id)
	return id, err
}

// Scoped to the owner: another user's reservation reads as missing.
const findReservationForUpdate = `SELECT ` + reservationColumns + ` FROM reservations
WHERE id = $1 AND user_id = $2
FOR UPDATE`

func (q *Queries) FindReservationForUpdate(ctx context.Context, db DBTX, id, userID int64) (Reservation, error) {
	return scanReservation(db.QueryRow(ctx, findReservationForUpdate, id, userID))
}

const closeReservation = `
UPDATE reservations
SET status = 'C', end_time = $2, total_cost = $3::numeric, updated_at = $2
WHERE id = $1 AND status = 'O'`

type CloseReservationParams struct {
	ID        int64
	EndTime   pgtype.Timestamptz
	TotalCost string
}

func (q *Queries) CloseReservation(ctx context.Context, db DBTX, arg CloseReservationParams) (int64, error) {
	tag, err := db.Exec(ctx, closeReservation, arg.ID, arg.EndTime, arg.TotalCost)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

type ReservationDetail struct {
	Reservation
	LotName    string
	LotAddress string
	Username   string
}

const reservationDetailColumns = `r.id, r.user_id, r.lot_id, r.spot_number, r.vehicle_number, r.status, r.cost_per_hr::text,
	r.total_cost::text, r.start_time, r.end_time, r.created_at, r.updated_at,
	l.name, l.address, u.username`

func scanReservationDetail(row interface{ Scan(...any) error }) (ReservationDetail, error) {
	var d ReservationDetail
	err := row.Scan(
		&d.ID,
		&d.UserID,
		&d.LotID,
		&d.SpotNumber,
		&d.VehicleNumber,
		&d.Status,
		&d.CostPerHr,
		&d.TotalCost,
		&d.StartTime,
		&d.EndTime,
		&d.CreatedAt,
		&d.UpdatedAt,
		&d.LotName,
		&d.LotAddress,
		&d.Username,
	)
	return d, err
}

const getReservationDetail = `SELECT ` + reservationDetailColumns + `
FROM reservations r
JOIN parking_lots l ON l.id = r.lot_id
JOIN users u ON u.id = r.user_id
WHERE r.id = $1`

func (q *Queries) GetReservationDetail(ctx context.Context, db DBTX, id int64) (ReservationDetail, error) {
	return scanReservationDetail(db.QueryRow(ctx, getReservationDetail, id))
}

// Open reservations first, then newest first.
const listReservationsByUser = `SELECT ` + reservationDetailColumns + `
FROM reservations r
JOIN parking_lots l ON l.id = r.lot_id
JOIN users u ON u.id = r.user_id
WHERE r.user_id = $1
ORDER BY (r.status = 'O') DESC, r.start_time DESC, r.id DESC
LIMIT $2 OFFSET $3`

type ListReservationsByUserParams struct {
	UserID int64
	Limit  int32
	Offset int32
}

func (q *Queries) ListReservationsByUser(ctx context.Context, db DBTX, arg ListReservationsByUserParams) ([]ReservationDetail, error) {
	rows, err := db.Query(ctx, listReservationsByUser, arg.UserID, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []ReservationDetail
	for rows.Next() {
		d, err := scanReservationDetail(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	return items, rows.Err()
}
