package engine

import (
	"context"
	"errors"
	"fmt"

	"dcasweep/types"
)

var ErrInsufficientData = errors.New("not enough price records for a single window")
var ErrInvalidStrategy = errors.New("invalid strategy configuration")
var ErrInvalidPeriod = errors.New("month out of range")

type dataStore interface {
	GetMonthlyPrices(ticker string, ctx context.Context) (types.PriceSeries, error)
}

type Engine struct {
	db        dataStore
	ticker    string
	strategy  *StrategyConfig
	reporting *ReportingConfig
	observer  TradeObserver
}

func NewEngine(db dataStore, ticker string, strategy *StrategyConfig, reporting *ReportingConfig, observer TradeObserver) *Engine {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &Engine{
		db:        db,
		ticker:    ticker,
		strategy:  strategy,
		reporting: reporting,
		observer:  observer,
	}
}

// Run loads the series, validates it, sweeps every start offset and
// returns the aggregated report. Any error aborts the whole run; this is
// batch analysis, there is nothing to recover per window.
func (e *Engine) Run(ctx context.Context) (*Report, error) {
	series, err := e.db.GetMonthlyPrices(e.ticker, ctx)
	if err != nil {
		return nil, fmt.Errorf("load prices: %w", err)
	}
	if err := e.validate(series); err != nil {
		return nil, err
	}

	s := newSweep(series, e.strategy, e.reporting, e.observer)
	if err := s.run(); err != nil {
		return nil, err
	}
	return s.report(), nil
}

func (e *Engine) validate(series types.PriceSeries) error {
	if e.strategy.purchasePeriod <= 0 {
		return fmt.Errorf("purchase period must be positive: %w", ErrInvalidStrategy)
	}
	if e.strategy.sellPeriod <= 0 {
		return fmt.Errorf("sell period must be positive: %w", ErrInvalidStrategy)
	}
	if e.strategy.holdPeriod < 0 {
		return fmt.Errorf("hold period must not be negative: %w", ErrInvalidStrategy)
	}
	if !e.strategy.purchaseAmount.IsPositive() {
		return fmt.Errorf("purchase amount must be positive: %w", ErrInvalidStrategy)
	}

	// Strict sweep bound: one window needs totalMonths+1 records.
	if len(series) <= e.strategy.totalMonths() {
		return fmt.Errorf("%d records, need more than %d: %w",
			len(series), e.strategy.totalMonths(), ErrInsufficientData)
	}
	for _, point := range series {
		if !point.Price.IsPositive() {
			return fmt.Errorf("record %s has price %s: %w",
				point.Period, point.Price, ErrNonPositivePrice)
		}
		if point.Period.Month < 1 || point.Period.Month > 12 {
			return fmt.Errorf("record %s: %w", point.Period, ErrInvalidPeriod)
		}
	}
	return nil
}
