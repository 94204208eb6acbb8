package lot

import (
	"errors"
	"strings"
	"time"

	"parking-reservation/internal/domain/address"

	"github.com/shopspring/decimal"
)

const MaxSpotsLimit = 1000

var (
	ErrInvalidName     = errors.New("lot name must be 1-60 characters")
	ErrInvalidAddress  = errors.New("lot address must be 1-255 characters")
	ErrInvalidPrice    = errors.New("cost per hour must be between 0 and 99999999.99")
	ErrInvalidCapacity = errors.New("max spots must be between 0 and 1000")
	ErrLotInactive     = errors.New("lot is inactive")
	ErrLotFull         = errors.New("lot is full")
)

var maxPrice = decimal.RequireFromString("99999999.99")

type Lot struct {
	id             int64
	name           string
	address        string
	pincode        address.Pincode
	costPerHour    decimal.Decimal
	maxSpots       int
	availableSpots int
	totalParking   int
	totalRevenue   decimal.Decimal
	isActive       bool
	createdAt      time.Time
	updatedAt      time.Time
}

type Details struct {
	Name        string
	Address     string
	Pincode     address.Pincode
	CostPerHour decimal.Decimal
}

func (d Details) validate() (Details, error) {
	d.Name = strings.TrimSpace(d.Name)
	d.Address = strings.TrimSpace(d.Address)
	if d.Name == "" || len(d.Name) > 60 {
		return d, ErrInvalidName
	}
	if d.Address == "" || len(d.Address) > 255 {
		return d, ErrInvalidAddress
	}
	if d.Pincode.IsZero() {
		return d, address.ErrInvalidPincode
	}
	if d.CostPerHour.IsNegative() || d.CostPerHour.GreaterThan(maxPrice) {
		return d, ErrInvalidPrice
	}
	d.CostPerHour = d.CostPerHour.Round(2)
	return d, nil
}

// NewLot creates a lot whose spots 1..maxSpots all start Available.
func NewLot(details Details, maxSpots int) (*Lot, error) {
	d, err := details.validate()
	if err != nil {
		return nil, err
	}
	if err := validateCapacity(maxSpots); err != nil {
		return nil, err
	}
	return &Lot{
		name:           d.Name,
		address:        d.Address,
		pincode:        d.Pincode,
		costPerHour:    d.CostPerHour,
		maxSpots:       maxSpots,
		availableSpots: maxSpots,
		totalRevenue:   decimal.Zero,
		isActive:       true,
	}, nil
}

func ReconstructLot(
	id int64,
	details Details,
	maxSpots, availableSpots, totalParking int,
	totalRevenue decimal.Decimal,
	isActive bool,
	createdAt, updatedAt time.Time,
) *Lot {
	return &Lot{
		id:             id,
		name:           details.Name,
		address:        details.Address,
		pincode:        details.Pincode,
		costPerHour:    details.CostPerHour,
		maxSpots:       maxSpots,
		availableSpots: availableSpots,
		totalParking:   totalParking,
		totalRevenue:   totalRevenue,
		isActive:       isActive,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// AcceptsBookings is the allocator precondition. The counter check is a fast
// path only; the skip-locked spot claim is what actually decides.
func (l *Lot) AcceptsBookings() error {
	if !l.isActive {
		return ErrLotInactive
	}
	if l.availableSpots <= 0 {
		return ErrLotFull
	}
	return nil
}

// UpdateDetails replaces the descriptive fields. Capacity goes through PlanResize.
func (l *Lot) UpdateDetails(details Details) error {
	d, err := details.validate()
	if err != nil {
		return err
	}
	l.name = d.Name
	l.address = d.Address
	l.pincode = d.Pincode
	l.costPerHour = d.CostPerHour
	return nil
}

// PlanResize validates newMax against the current counters. A shrink larger
// than availableSpots fails early with *ShrinkError; the row-level check in
// the same transaction stays authoritative.
func (l *Lot) PlanResize(newMax int) (ResizePlan, error) {
	if err := validateCapacity(newMax); err != nil {
		return ResizePlan{}, err
	}
	plan := ResizePlan{OldMax: l.maxSpots, NewMax: newMax}
	switch {
	case newMax > l.maxSpots:
		plan.Grow = newMax - l.maxSpots
	case newMax < l.maxSpots:
		plan.Shrink = l.maxSpots - newMax
		if plan.Shrink > l.availableSpots {
			return ResizePlan{}, &ShrinkError{Requested: plan.Shrink, Reclaimable: l.availableSpots}
		}
	}
	return plan, nil
}

// ApplyResize records a committed resize on the in-memory aggregate.
func (l *Lot) ApplyResize(plan ResizePlan) {
	l.maxSpots = plan.NewMax
	l.availableSpots += plan.Grow - plan.Shrink
}

func (l *Lot) OccupiedSpots() int {
	return l.maxSpots - l.availableSpots
}

func validateCapacity(n int) error {
	if n < 0 || n > MaxSpotsLimit {
		return ErrInvalidCapacity
	}
	return nil
}

func (l *Lot) ID() int64                     { return l.id }
func (l *Lot) Name() string                  { return l.name }
func (l *Lot) Address() string               { return l.address }
func (l *Lot) Pincode() address.Pincode      { return l.pincode }
func (l *Lot) CostPerHour() decimal.Decimal  { return l.costPerHour }
func (l *Lot) MaxSpots() int                 { return l.maxSpots }
func (l *Lot) AvailableSpots() int           { return l.availableSpots }
func (l *Lot) TotalParking() int             { return l.totalParking }
func (l *Lot) TotalRevenue() decimal.Decimal { return l.totalRevenue }
func (l *Lot) IsActive() bool                { return l.isActive }
func (l *Lot) CreatedAt() time.Time          { return l.createdAt }
func (l *Lot) UpdatedAt() time.Time          { return l.updatedAt }

func (l *Lot) Details() Details {
	return Details{Name: l.name, Address: l.address, Pincode: l.pincode, CostPerHour: l.costPerHour}
}
