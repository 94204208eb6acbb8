package reservation

import (
	"time"

	"github.com/shopspring/decimal"
)

// ComputeCost bills every started hour in full: costPerHour * ceil(hours),
// rounded to 2 decimal places. A nil end means the reservation is still open
// and now is used instead. Zero or negative durations cost nothing.
func ComputeCost(costPerHour decimal.Decimal, start time.Time, end *time.Time, now time.Time) decimal.Decimal {
	stop := now
	if end != nil {
		stop = *end
	}
	return costPerHour.Mul(decimal.NewFromInt(BillableHours(stop.Sub(start)))).Round(2)
}

// BillableHours rounds d up to whole hours.
func BillableHours(d time.Duration) int64 {
	if d <= 0 {
		return 0
	}
	hours := int64(d / time.Hour)
	if d%time.Hour != 0 {
		hours++
	}
	return hours
}
