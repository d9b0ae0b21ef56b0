package engine

import (
	"context"
	"errors"
	"testing"

	"dcasweep/types"

	"github.com/shopspring/decimal"
)

type stubStore struct {
	series types.PriceSeries
	err    error
}

func (s stubStore) GetMonthlyPrices(ticker string, ctx context.Context) (types.PriceSeries, error) {
	return s.series, s.err
}

type countingObserver struct {
	buys  int
	sells int
}

func (o *countingObserver) OnBuy(types.PricePoint, decimal.Decimal, decimal.Decimal) {
	o.buys++
}

func (o *countingObserver) OnSell(types.PricePoint, decimal.Decimal, decimal.Decimal) {
	o.sells++
}

func TestEngineRunValidation(t *testing.T) {
	amount := decimal.RequireFromString("1000")
	storeErr := errors.New("datasource unavailable")

	badMonth := linearSeries(10, 100, 1)
	badMonth[3].Period.Month = 13

	negPrice := linearSeries(10, 100, 1)
	negPrice[5].Price = decimal.RequireFromString("-1")

	tests := []struct {
		name     string
		store    stubStore
		strategy *StrategyConfig
		wantErr  error
	}{
		{
			"store error propagates",
			stubStore{err: storeErr},
			NewStrategyConfig(amount, 4, 0, 3),
			storeErr,
		},
		{
			"insufficient data",
			stubStore{series: linearSeries(7, 100, 1)},
			NewStrategyConfig(amount, 4, 0, 3),
			ErrInsufficientData,
		},
		{
			"zero purchase period",
			stubStore{series: linearSeries(10, 100, 1)},
			NewStrategyConfig(amount, 0, 0, 3),
			ErrInvalidStrategy,
		},
		{
			"zero sell period",
			stubStore{series: linearSeries(10, 100, 1)},
			NewStrategyConfig(amount, 4, 0, 0),
			ErrInvalidStrategy,
		},
		{
			"negative hold period",
			stubStore{series: linearSeries(10, 100, 1)},
			NewStrategyConfig(amount, 4, -1, 3),
			ErrInvalidStrategy,
		},
		{
			"non-positive purchase amount",
			stubStore{series: linearSeries(10, 100, 1)},
			NewStrategyConfig(decimal.Zero, 4, 0, 3),
			ErrInvalidStrategy,
		},
		{
			"non-positive price in series",
			stubStore{series: negPrice},
			NewStrategyConfig(amount, 4, 0, 3),
			ErrNonPositivePrice,
		},
		{
			"month out of range",
			stubStore{series: badMonth},
			NewStrategyConfig(amount, 4, 0, 3),
			ErrInvalidPeriod,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eng := NewEngine(tt.store, "SPX", tt.strategy, NewReportingConfig(5.0, false), nil)
			_, err := eng.Run(context.Background())
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Run() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestEngineRunReportsAndObserves(t *testing.T) {
	store := stubStore{series: linearSeries(10, 100, 1)}
	observer := &countingObserver{}
	eng := NewEngine(
		store,
		"SPX",
		NewStrategyConfig(decimal.RequireFromString("1000"), 4, 0, 3),
		NewReportingConfig(5.0, false),
		observer,
	)

	report, err := eng.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}

	// 10 records, 7-month windows, strict bound: offsets 0..2.
	if report.NumberOfResults != 3 {
		t.Errorf("NumberOfResults = %d, want 3", report.NumberOfResults)
	}
	if got := report.NegativeResults + report.PositiveResults; got != 3 {
		t.Errorf("counter total = %d, want 3", got)
	}
	if observer.buys != 12 {
		t.Errorf("observed buys = %d, want 12", observer.buys)
	}
	if observer.sells != 9 {
		t.Errorf("observed sells = %d, want 9", observer.sells)
	}
}
