package query

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// Numeric columns are selected as text and parsed with shopspring/decimal
// by the callers; pgtype.Numeric loses the fixed scale on the way out.

type User struct {
	ID            int64
	Username      string
	Email         string
	Phone         string
	PasswordHash  string
	FullName      string
	Role          string
	Gender        pgtype.Text
	Address       string
	Pincode       pgtype.Text
	IsActive      bool
	TotalParking  int32
	ActiveParking int32
	LastLogin     pgtype.Timestamptz
	CreatedAt     pgtype.Timestamptz
	UpdatedAt     pgtype.Timestamptz
}

type ParkingLot struct {
	ID             int64
	Name           string
	Address        string
	Pincode        string
	CostPerHour    string
	MaxSpots       int32
	AvailableSpots int32
	TotalParking   int32
	TotalRevenue   string
	IsActive       bool
	CreatedAt      pgtype.Timestamptz
	UpdatedAt      pgtype.Timestamptz
}

type ParkingSpot struct {
	ID            int64
	LotID         int64
	SpotNumber    int32
	Status        string
	TotalParking  int32
	ReservationID pgtype.Int8
	CreatedAt     pgtype.Timestamptz
	UpdatedAt     pgtype.Timestamptz
}

type Reservation struct {
	ID            int64
	UserID        int64
	LotID         int64
	SpotNumber    int32
	VehicleNumber string
	Status        string
	CostPerHr     string
	TotalCost     pgtype.Text
	StartTime     pgtype.Timestamptz
	EndTime       pgtype.Timestamptz
	CreatedAt     pgtype.Timestamptz
	UpdatedAt     pgtype.Timestamptz
}

type ReservationEvent struct {
	ID          uuid.UUID
	EventType   string
	AggregateID int64
	Payload     []byte
	Attempts    int32
	LastError   pgtype.Text
	CreatedAt   pgtype.Timestamptz
	PublishedAt pgtype.Timestamptz
}
