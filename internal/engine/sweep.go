package engine

import (
	"fmt"
	"io"
	"os"

	"dcasweep/types"

	"github.com/schollz/progressbar/v3"
	"github.com/shopspring/decimal"
)

// sweep runs a window for every valid start offset and folds the results
// into worst/best/running-average statistics plus threshold counters.
type sweep struct {
	series    types.PriceSeries
	strategy  *StrategyConfig
	reporting *ReportingConfig
	observer  TradeObserver

	windows []WindowReport

	worstResult       decimal.Decimal
	worstAnnualized   float64
	bestResult        decimal.Decimal
	bestAnnualized    float64
	averageResult     decimal.Decimal
	averageAnnualized float64
	numberOfResults   int
	negativeResults   int
	positiveResults   int
}

func newSweep(series types.PriceSeries, strategy *StrategyConfig, reporting *ReportingConfig, observer TradeObserver) *sweep {
	return &sweep{
		series:    series,
		strategy:  strategy,
		reporting: reporting,
		observer:  observer,
	}
}

func (s *sweep) run() error {
	total := s.strategy.totalMonths()

	var bar *progressbar.ProgressBar
	if s.reporting.showProgress {
		// stderr, so the bar never interleaves with the report on stdout.
		bar = initProgressBar(len(s.series)-total, os.Stderr)
	}

	// Strict < keeps the historical boundary: the window fitting exactly
	// at the end of the series is not simulated.
	for startAt := 0; startAt+total < len(s.series); startAt++ {
		w, err := newWindow(s.series, startAt, s.strategy, s.observer)
		if err != nil {
			return err
		}
		if err := w.run(); err != nil {
			return err
		}
		result, err := w.ledger.resultInPercent()
		if err != nil {
			return err
		}
		annualized, err := annualize(result.InexactFloat64(), s.strategy.totalYears())
		if err != nil {
			return fmt.Errorf("window starting %s: %w", s.series[startAt].Period, err)
		}

		if err := s.fold(w, result, annualized); err != nil {
			return err
		}
		if bar != nil {
			bar.Add(1)
		}
	}
	return nil
}

func (s *sweep) fold(w *window, result decimal.Decimal, annualized float64) error {
	meets := annualized >= s.reporting.expectedAnnualizedReturn

	s.windows = append(s.windows, WindowReport{
		FirstPurchase:    w.firstPurchasePoint().Period,
		LastPurchase:     w.lastPurchasePoint().Period,
		FirstSell:        w.firstSellPoint().Period,
		LastSell:         w.lastSellPoint().Period,
		ResultPct:        result,
		AnnualizedPct:    annualized,
		MeetsExpectation: meets,
	})

	if s.numberOfResults == 0 || result.LessThan(s.worstResult) {
		s.worstResult = result
		s.worstAnnualized = annualized
	}
	if s.numberOfResults == 0 || result.GreaterThan(s.bestResult) {
		s.bestResult = result
		s.bestAnnualized = annualized
	}

	if s.numberOfResults == 0 {
		s.averageResult = result
	} else {
		n := decimal.NewFromInt(int64(s.numberOfResults))
		s.averageResult = s.averageResult.Mul(n).Add(result).Div(n.Add(one))
	}
	// Every window shares the same total length, so re-annualizing the
	// running average with it is consistent.
	averageAnnualized, err := annualize(s.averageResult.InexactFloat64(), s.strategy.totalYears())
	if err != nil {
		return err
	}
	s.averageAnnualized = averageAnnualized

	if meets {
		s.positiveResults++
	} else {
		s.negativeResults++
	}
	s.numberOfResults++
	return nil
}

func (s *sweep) report() *Report {
	return &Report{
		Windows:           s.windows,
		WorstResult:       s.worstResult,
		WorstAnnualized:   s.worstAnnualized,
		BestResult:        s.bestResult,
		BestAnnualized:    s.bestAnnualized,
		AverageResult:     s.averageResult,
		AverageAnnualized: s.averageAnnualized,
		NumberOfResults:   s.numberOfResults,
		NegativeResults:   s.negativeResults,
		PositiveResults:   s.positiveResults,
	}
}

func initProgressBar(maxTicks int, w io.Writer) *progressbar.ProgressBar {
	return progressbar.NewOptions(maxTicks,
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetElapsedTime(true),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetDescription("Sweeping start offsets..."),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
}
