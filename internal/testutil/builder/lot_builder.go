//go:build unit || e2e

package builder

import (
	"time"

	"parking-reservation/internal/domain/address"
	"parking-reservation/internal/domain/lot"
	"parking-reservation/internal/infra/query"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type LotBuilder struct {
	ID             int64
	Name           string
	Address        string
	Pincode        string
	CostPerHour    string
	MaxSpots       int
	AvailableSpots int
	TotalParking   int
	TotalRevenue   string
	IsActive       bool
}

func NewLotBuilder() *LotBuilder {
	return &LotBuilder{
		ID:             1,
		Name:           "Central Plaza",
		Address:        "1 Park Street",
		Pincode:        "700016",
		CostPerHour:    "10.00",
		MaxSpots:       10,
		AvailableSpots: 10,
		TotalRevenue:   "0",
		IsActive:       true,
	}
}

func (b *LotBuilder) With(mutate func(*LotBuilder)) *LotBuilder {
	mutate(b)
	return b
}

func (b *LotBuilder) Details() (lot.Details, error) {
	pin, err := address.NewPincode(b.Pincode)
	if err != nil {
		return lot.Details{}, err
	}
	cost, err := decimal.NewFromString(b.CostPerHour)
	if err != nil {
		return lot.Details{}, err
	}
	return lot.Details{Name: b.Name, Address: b.Address, Pincode: pin, CostPerHour: cost}, nil
}

// BuildNew validates through the constructor, as an admin create would.
func (b *LotBuilder) BuildNew() (*lot.Lot, error) {
	d, err := b.Details()
	if err != nil {
		return nil, err
	}
	return lot.NewLot(d, b.MaxSpots)
}

// BuildStored rebuilds a persisted lot with explicit counters.
func (b *LotBuilder) BuildStored() *lot.Lot {
	d, err := b.Details()
	if err != nil {
		panic(err)
	}
	now := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	return lot.ReconstructLot(b.ID, d, b.MaxSpots, b.AvailableSpots, b.TotalParking,
		decimal.RequireFromString(b.TotalRevenue), b.IsActive, now, now)
}

func (b *LotBuilder) BuildInfra() query.ParkingLot {
	now := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	return query.ParkingLot{
		ID:             b.ID,
		Name:           b.Name,
		Address:        b.Address,
		Pincode:        b.Pincode,
		CostPerHour:    b.CostPerHour,
		MaxSpots:       int32(b.MaxSpots),       // #nosec G115
		AvailableSpots: int32(b.AvailableSpots), // #nosec G115
		TotalParking:   int32(b.TotalParking),   // #nosec G115
		TotalRevenue:   b.TotalRevenue,
		IsActive:       b.IsActive,
		CreatedAt:      pgtype.Timestamptz{Time: now, Valid: true},
		UpdatedAt:      pgtype.Timestamptz{Time: now, Valid: true},
	}
}
