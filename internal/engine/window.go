package engine

import (
	"errors"
	"fmt"

	"dcasweep/types"

	"github.com/shopspring/decimal"
)

var ErrWindowOutOfRange = errors.New("window does not fit inside the price series")

// window runs the three-phase schedule once, starting at a fixed offset
// into the series: purchasePeriod fixed-amount buys, holdPeriod months of
// nothing, then sellPeriod proportional sells. Phases only move forward.
type window struct {
	series   types.PriceSeries
	startAt  int
	config   *StrategyConfig
	ledger   *ledger
	observer TradeObserver
}

func newWindow(series types.PriceSeries, startAt int, config *StrategyConfig, observer TradeObserver) (*window, error) {
	if startAt < 0 || startAt+config.totalMonths() > len(series) {
		return nil, fmt.Errorf("start %d length %d in series of %d: %w",
			startAt, config.totalMonths(), len(series), ErrWindowOutOfRange)
	}
	if observer == nil {
		observer = NoopObserver{}
	}
	return &window{
		series:   series,
		startAt:  startAt,
		config:   config,
		ledger:   newLedger(),
		observer: observer,
	}, nil
}

func (w *window) run() error {
	pos := w.startAt

	for i := 0; i < w.config.purchasePeriod; i++ {
		point := w.series[pos]
		bought, err := w.ledger.buy(point.Price, w.config.purchaseAmount)
		if err != nil {
			return fmt.Errorf("buy at %s: %w", point.Period, err)
		}
		w.observer.OnBuy(point, w.config.purchaseAmount, bought)
		pos++
	}

	pos += w.config.holdPeriod

	for i := 0; i < w.config.sellPeriod; i++ {
		point := w.series[pos]
		// Sell 1/remaining-steps of the live balance. The last step sells
		// proportion 1/1, which drains the balance to exactly zero.
		proportion := one.Div(decimal.NewFromInt(int64(w.config.sellPeriod - i)))
		sold, err := w.ledger.sell(point.Price, proportion)
		if err != nil {
			return fmt.Errorf("sell at %s: %w", point.Period, err)
		}
		w.observer.OnSell(point, sold.Mul(point.Price), sold)
		pos++
	}

	return nil
}

func (w *window) firstPurchasePoint() types.PricePoint {
	return w.series[w.startAt]
}

func (w *window) lastPurchasePoint() types.PricePoint {
	return w.series[w.startAt+w.config.purchasePeriod-1]
}

func (w *window) firstSellPoint() types.PricePoint {
	return w.series[w.startAt+w.config.purchasePeriod+w.config.holdPeriod]
}

func (w *window) lastSellPoint() types.PricePoint {
	return w.series[w.startAt+w.config.totalMonths()-1]
}
