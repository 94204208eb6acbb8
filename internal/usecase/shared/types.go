package shared

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	EventReservationOpened = "reservation.opened"
	EventReservationClosed = "reservation.closed"
)

// Event is an outbox entry. It is written in the same transaction as the
// change it describes.
type Event struct {
	ID          uuid.UUID
	Type        string
	AggregateID int64
	Payload     []byte
	Attempts    int
	CreatedAt   time.Time
}

type ReservationEventPayload struct {
	ReservationID int64     `json:"reservation_id"`
	UserID        int64     `json:"user_id"`
	LotID         int64     `json:"lot_id"`
	SpotNumber    int       `json:"spot_number"`
	VehicleNumber string    `json:"vehicle_number"`
	CostPerHour   string    `json:"cost_per_hour"`
	TotalCost     *string   `json:"total_cost,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}

func NewEvent(eventType string, aggregateID int64, payload any, now time.Time) (Event, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return Event{}, err
	}
	return Event{
		ID:          uuid.New(),
		Type:        eventType,
		AggregateID: aggregateID,
		Payload:     body,
		CreatedAt:   now,
	}, nil
}
