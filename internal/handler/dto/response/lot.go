package response

import (
	"time"

	"parking-reservation/internal/usecase/queries"
)

type LotResponse struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Address        string    `json:"address"`
	Pincode        string    `json:"pincode"`
	CostPerHour    string    `json:"cost_per_hour"`
	MaxSpots       int       `json:"max_spots"`
	AvailableSpots int       `json:"available_spots"`
	OccupiedSpots  int       `json:"occupied_spots"`
	TotalParking   int       `json:"total_parking"`
	TotalRevenue   string    `json:"total_revenue"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type SpotResponse struct {
	ID            int64      `json:"id"`
	SpotNumber    int        `json:"spot_number"`
	Status        string     `json:"status"`
	TotalParking  int        `json:"total_parking"`
	ReservationID *int64     `json:"reservation_id,omitempty"`
	VehicleNumber *string    `json:"vehicle_number,omitempty"`
	ParkedSince   *time.Time `json:"parked_since,omitempty"`
}

func FromLotView(v *queries.LotView) *LotResponse {
	return copyView[LotResponse](v)
}

func FromLotViews(vs []*queries.LotView) []*LotResponse {
	return copyViews[LotResponse](vs)
}

func FromSpotViews(vs []*queries.SpotView) []*SpotResponse {
	return copyViews[SpotResponse](vs)
}

type ToggleResponse struct {
	ID       int64 `json:"id"`
	IsActive bool  `json:"is_active"`
}
