package engine

import (
	"fmt"
	"io"

	"dcasweep/types"

	"github.com/shopspring/decimal"
)

// TradeObserver receives every simulated transaction. Implementations are
// for diagnostics and recording only and must not feed back into the run.
type TradeObserver interface {
	OnBuy(point types.PricePoint, amount, shares decimal.Decimal)
	OnSell(point types.PricePoint, proceeds, shares decimal.Decimal)
}

type NoopObserver struct{}

func (NoopObserver) OnBuy(types.PricePoint, decimal.Decimal, decimal.Decimal)  {}
func (NoopObserver) OnSell(types.PricePoint, decimal.Decimal, decimal.Decimal) {}

// LogObserver writes one line per transaction, for verbose runs.
type LogObserver struct {
	W io.Writer
}

func (o LogObserver) OnBuy(point types.PricePoint, amount, shares decimal.Decimal) {
	fmt.Fprintf(o.W, "%s buy  %s at %s -> %s shares\n",
		point.Period, amount, point.Price, shares)
}

func (o LogObserver) OnSell(point types.PricePoint, proceeds, shares decimal.Decimal) {
	fmt.Fprintf(o.W, "%s sell %s shares at %s -> %s\n",
		point.Period, shares, point.Price, proceeds)
}
