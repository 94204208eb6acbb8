package response

import (
	"time"

	"parking-reservation/internal/usecase/commands"
	"parking-reservation/internal/usecase/queries"
)

type ReservationResponse struct {
	ID            int64      `json:"id"`
	UserID        int64      `json:"user_id"`
	Username      string     `json:"username"`
	LotID         int64      `json:"lot_id"`
	LotName       string     `json:"lot_name"`
	LotAddress    string     `json:"lot_address"`
	SpotNumber    int        `json:"spot_number"`
	VehicleNumber string     `json:"vehicle_number"`
	Status        string     `json:"status"`
	CostPerHour   string     `json:"cost_per_hour"`
	FinalCost     *string    `json:"total_cost,omitempty"`
	CurrentCost   string     `json:"current_cost"`
	StartTime     time.Time  `json:"start_time"`
	EndTime       *time.Time `json:"end_time,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	r := copyView[ReservationResponse](v)
	r.FinalCost = money(v.TotalCost)
	return r
}

func FromReservationViews(vs []*queries.ReservationView) []*ReservationResponse {
	out := make([]*ReservationResponse, len(vs))
	for i, v := range vs {
		out[i] = FromReservationView(v)
	}
	return out
}

type ReservationListResponse struct {
	Reservations []*ReservationResponse `json:"reservations"`
	NextCursor   string                 `json:"next_cursor,omitempty"`
}

type BookResponse struct {
	ReservationID int64     `json:"reservation_id"`
	LotID         int64     `json:"lot_id"`
	SpotNumber    int       `json:"spot_number"`
	CostPerHour   string    `json:"cost_per_hour"`
	StartTime     time.Time `json:"start_time"`
}

func FromBookResult(r *commands.BookResult) *BookResponse {
	return copyView[BookResponse](r)
}

type ReleaseResponse struct {
	ReservationID int64     `json:"reservation_id"`
	LotID         int64     `json:"lot_id"`
	SpotNumber    int       `json:"spot_number"`
	TotalCost     string    `json:"total_cost"`
	EndTime       time.Time `json:"end_time"`
}

func FromReleaseResult(r *commands.ReleaseResult) *ReleaseResponse {
	return copyView[ReleaseResponse](r)
}

// AlreadyReleasedResponse answers a repeated release with the stored outcome.
type AlreadyReleasedResponse struct {
	Message     string               `json:"message"`
	Reservation *ReservationResponse `json:"reservation"`
}
