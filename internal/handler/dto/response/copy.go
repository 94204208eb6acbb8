package response

import (
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

// Money is rendered with two decimals, never as a float.
var copyOption = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: decimal.Decimal{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(decimal.Decimal).StringFixed(2), nil
			},
		},
	},
}

func copyView[T any](from any) *T {
	to := new(T)
	if err := copier.CopyWithOption(to, from, copyOption); err != nil {
		// field sets are fixed at compile time, so this is a programming error
		panic(err)
	}
	return to
}

func copyViews[T any, V any](from []*V) []*T {
	out := make([]*T, len(from))
	for i, v := range from {
		out[i] = copyView[T](v)
	}
	return out
}

func money(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := d.StringFixed(2)
	return &s
}
