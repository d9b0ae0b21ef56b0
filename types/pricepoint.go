package types

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Period identifies one month in a price series. Periods are treated as
// sequential positions; no calendar arithmetic is done on them.
type Period struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, p.Month)
}

// PricePoint is one monthly observation of the index price.
type PricePoint struct {
	Period Period          `json:"period"`
	Price  decimal.Decimal `json:"price"`
}

// PriceSeries is a chronologically ordered run of monthly observations,
// one record per month. Identity is positional; loaders are responsible
// for delivering the records in order.
type PriceSeries []PricePoint
