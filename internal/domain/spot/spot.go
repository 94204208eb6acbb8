package spot

import (
	"errors"
	"time"
)

var (
	ErrInvalidStatus     = errors.New("invalid spot status")
	ErrInvalidSpotNumber = errors.New("spot number must be positive")
	ErrSpotOccupied      = errors.New("spot is occupied")
)

type Status string

const (
	StatusAvailable Status = "A"
	StatusOccupied  Status = "O"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusOccupied:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

// Spot is one numbered slot of a lot. The reservation id is a weak
// back-reference kept for bookkeeping; nothing enforces it.
type Spot struct {
	id            int64
	lotID         int64
	number        int
	status        Status
	totalParking  int
	reservationID *int64
	createdAt     time.Time
	updatedAt     time.Time
}

func ReconstructSpot(id, lotID int64, number int, status Status, totalParking int, reservationID *int64, createdAt, updatedAt time.Time) *Spot {
	return &Spot{
		id:            id,
		lotID:         lotID,
		number:        number,
		status:        status,
		totalParking:  totalParking,
		reservationID: reservationID,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// CanDelete guards against destroying a spot that is held by an open reservation.
func (s *Spot) CanDelete() error {
	if s.status == StatusOccupied {
		return ErrSpotOccupied
	}
	return nil
}

func (s *Spot) ID() int64             { return s.id }
func (s *Spot) LotID() int64          { return s.lotID }
func (s *Spot) Number() int           { return s.number }
func (s *Spot) Status() Status        { return s.status }
func (s *Spot) TotalParking() int     { return s.totalParking }
func (s *Spot) ReservationID() *int64 { return s.reservationID }
func (s *Spot) CreatedAt() time.Time  { return s.createdAt }
func (s *Spot) UpdatedAt() time.Time  { return s.updatedAt }

// Handle is what the allocator hands to the lifecycle: the spot is addressed
// by lot and number, the row id is only valid inside the claiming transaction.
type Handle struct {
	ID         int64
	LotID      int64
	SpotNumber int
}
