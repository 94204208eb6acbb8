package reservation

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidStatus    = errors.New("invalid reservation status")
	ErrAlreadyCompleted = errors.New("reservation already completed")
	ErrNegativePrice    = errors.New("cost per hour cannot be negative")
)

// Reservation is immutable history once closed. It refers to its spot by
// (lotID, spotNumber) only, so spot rows can be recycled freely.
type Reservation struct {
	id            int64
	userID        int64
	lotID         int64
	spotNumber    int
	vehicleNumber VehicleNumber
	status        Status
	costPerHour   decimal.Decimal
	totalCost     *decimal.Decimal
	startTime     time.Time
	endTime       *time.Time
	createdAt     time.Time
	updatedAt     time.Time
}

// Open starts a reservation at now, snapshotting the lot's hourly price.
func Open(userID, lotID int64, spotNumber int, vehicle VehicleNumber, costPerHour decimal.Decimal, now time.Time) (*Reservation, error) {
	if costPerHour.IsNegative() {
		return nil, ErrNegativePrice
	}
	return &Reservation{
		userID:        userID,
		lotID:         lotID,
		spotNumber:    spotNumber,
		vehicleNumber: vehicle,
		status:        StatusOpen,
		costPerHour:   costPerHour,
		startTime:     now,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructReservation(
	id, userID, lotID int64,
	spotNumber int,
	vehicle VehicleNumber,
	status Status,
	costPerHour decimal.Decimal,
	totalCost *decimal.Decimal,
	startTime time.Time,
	endTime *time.Time,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:            id,
		userID:        userID,
		lotID:         lotID,
		spotNumber:    spotNumber,
		vehicleNumber: vehicle,
		status:        status,
		costPerHour:   costPerHour,
		totalCost:     totalCost,
		startTime:     startTime,
		endTime:       endTime,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// Close is the only transition. It returns the billed amount, or
// ErrAlreadyCompleted with no change when called on a closed reservation.
func (r *Reservation) Close(now time.Time) (decimal.Decimal, error) {
	if r.status == StatusClosed || r.endTime != nil {
		return decimal.Zero, ErrAlreadyCompleted
	}
	cost := ComputeCost(r.costPerHour, r.startTime, nil, now)
	end := now
	r.status = StatusClosed
	r.endTime = &end
	r.totalCost = &cost
	r.updatedAt = now
	return cost, nil
}

// CurrentCost is the final amount when closed and a running estimate when open.
func (r *Reservation) CurrentCost(now time.Time) decimal.Decimal {
	if r.totalCost != nil {
		return *r.totalCost
	}
	return ComputeCost(r.costPerHour, r.startTime, r.endTime, now)
}

func (r *Reservation) IsOpen() bool {
	return r.status == StatusOpen
}

func (r *Reservation) SetID(id int64) { r.id = id }

func (r *Reservation) ID() int64                    { return r.id }
func (r *Reservation) UserID() int64                { return r.userID }
func (r *Reservation) LotID() int64                 { return r.lotID }
func (r *Reservation) SpotNumber() int              { return r.spotNumber }
func (r *Reservation) VehicleNumber() VehicleNumber { return r.vehicleNumber }
func (r *Reservation) Status() Status               { return r.status }
func (r *Reservation) CostPerHour() decimal.Decimal { return r.costPerHour }
func (r *Reservation) TotalCost() *decimal.Decimal  { return r.totalCost }
func (r *Reservation) StartTime() time.Time         { return r.startTime }
func (r *Reservation) EndTime() *time.Time          { return r.endTime }
func (r *Reservation) CreatedAt() time.Time         { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time         { return r.updatedAt }
