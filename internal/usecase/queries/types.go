package queries

import (
	"time"

	"github.com/shopspring/decimal"
)

// LotView represents read-optimized lot data
type LotView struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name"`
	Address        string          `json:"address"`
	Pincode        string          `json:"pincode"`
	CostPerHour    decimal.Decimal `json:"cost_per_hour"`
	MaxSpots       int             `json:"max_spots"`
	AvailableSpots int             `json:"available_spots"`
	OccupiedSpots  int             `json:"occupied_spots"`
	TotalParking   int             `json:"total_parking"`
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
	IsActive       bool            `json:"is_active"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// SpotView joins a spot with the open reservation parked on it, if any
type SpotView struct {
	ID            int64      `json:"id"`
	SpotNumber    int        `json:"spot_number"`
	Status        string     `json:"status"`
	TotalParking  int        `json:"total_parking"`
	ReservationID *int64     `json:"reservation_id,omitempty"`
	VehicleNumber *string    `json:"vehicle_number,omitempty"`
	ParkedSince   *time.Time `json:"parked_since,omitempty"`
}

// ReservationView represents read-optimized reservation data.
// CurrentCost is the final amount for closed reservations and an estimate
// at read time for open ones.
type ReservationView struct {
	ID            int64            `json:"id"`
	UserID        int64            `json:"user_id"`
	Username      string           `json:"username"`
	LotID         int64            `json:"lot_id"`
	LotName       string           `json:"lot_name"`
	LotAddress    string           `json:"lot_address"`
	SpotNumber    int              `json:"spot_number"`
	VehicleNumber string           `json:"vehicle_number"`
	Status        string           `json:"status"`
	CostPerHour   decimal.Decimal  `json:"cost_per_hour"`
	TotalCost     *decimal.Decimal `json:"total_cost,omitempty"`
	CurrentCost   decimal.Decimal  `json:"current_cost"`
	StartTime     time.Time        `json:"start_time"`
	EndTime       *time.Time       `json:"end_time,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
}

// UserView represents read-optimized user data with authorization info
type UserView struct {
	ID            int64      `json:"id"`
	Username      string     `json:"username"`
	Email         string     `json:"email"`
	Phone         string     `json:"phone"`
	FullName      string     `json:"full_name"`
	Role          string     `json:"role"`
	Gender        *string    `json:"gender,omitempty"`
	Address       string     `json:"address"`
	Pincode       *string    `json:"pincode,omitempty"`
	IsActive      bool       `json:"is_active"`
	TotalParking  int        `json:"total_parking"`
	ActiveParking int        `json:"active_parking"`
	LastLogin     *time.Time `json:"last_login,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

type LotDrift struct {
	LotID           int64           `json:"lot_id"`
	AvailableSpots  int             `json:"available_spots"`
	FreeSpots       int             `json:"free_spots"`
	MaxSpots        int             `json:"max_spots"`
	SpotCount       int             `json:"spot_count"`
	TotalRevenue    decimal.Decimal `json:"total_revenue"`
	ClosedCostTotal decimal.Decimal `json:"closed_cost_total"`
}

type UserDrift struct {
	UserID        int64 `json:"user_id"`
	ActiveParking int   `json:"active_parking"`
	OpenCount     int   `json:"open_count"`
}

// DriftReport lists every lot and user whose denormalized counters disagree
// with the rows they summarize. An empty report means the data is consistent.
type DriftReport struct {
	Lots  []LotDrift  `json:"lots"`
	Users []UserDrift `json:"users"`
}

func (r *DriftReport) Consistent() bool {
	return len(r.Lots) == 0 && len(r.Users) == 0
}

type LotSort string

const (
	LotSortName    LotSort = "name"
	LotSortPincode LotSort = "pincode"
	LotSortSpots   LotSort = "spots"
	LotSortPrice   LotSort = "price"
	LotSortRevenue LotSort = "revenue"
)

func (s LotSort) IsValid() bool {
	switch s {
	case LotSortName, LotSortPincode, LotSortSpots, LotSortPrice, LotSortRevenue:
		return true
	default:
		return false
	}
}

type LotFilter struct {
	Search     string
	Sort       LotSort
	Desc       bool
	ActiveOnly bool
}

type SpotSort string

const (
	SpotSortID           SpotSort = "id"
	SpotSortNumber       SpotSort = "spot_number"
	SpotSortStatus       SpotSort = "status"
	SpotSortTotalParking SpotSort = "total_parking"
)

func (s SpotSort) IsValid() bool {
	switch s {
	case SpotSortID, SpotSortNumber, SpotSortStatus, SpotSortTotalParking:
		return true
	default:
		return false
	}
}

type SpotFilter struct {
	Sort SpotSort
	Desc bool
}

type UserSort string

const (
	UserSortID           UserSort = "id"
	UserSortUsername     UserSort = "username"
	UserSortEmail        UserSort = "email"
	UserSortTotalParking UserSort = "total_parking"
)

func (s UserSort) IsValid() bool {
	switch s {
	case UserSortID, UserSortUsername, UserSortEmail, UserSortTotalParking:
		return true
	default:
		return false
	}
}

type UserFilter struct {
	Search string
	Sort   UserSort
	Desc   bool
}
