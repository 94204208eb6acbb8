package request

import (
	"parking-reservation/internal/usecase/commands"

	"github.com/shopspring/decimal"
)

type LotRequest struct {
	Name        string          `json:"name" binding:"required"`
	Address     string          `json:"address" binding:"required"`
	Pincode     string          `json:"pincode" binding:"required"`
	CostPerHour decimal.Decimal `json:"cost_per_hour"`
	MaxSpots    int             `json:"max_spots" binding:"gte=0"`
}

func (r LotRequest) ToInput() commands.LotInput {
	return commands.LotInput{
		Name:        r.Name,
		Address:     r.Address,
		Pincode:     r.Pincode,
		CostPerHour: r.CostPerHour,
		MaxSpots:    r.MaxSpots,
	}
}
