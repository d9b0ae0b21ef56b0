package engine

import (
	"fmt"
	"io"

	"dcasweep/types"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/shopspring/decimal"
)

// WindowReport holds the per-window figures kept for reporting after the
// sweep has folded them.
type WindowReport struct {
	FirstPurchase    types.Period
	LastPurchase     types.Period
	FirstSell        types.Period
	LastSell         types.Period
	ResultPct        decimal.Decimal
	AnnualizedPct    float64
	MeetsExpectation bool
}

type Report struct {
	Windows []WindowReport

	WorstResult       decimal.Decimal
	WorstAnnualized   float64
	BestResult        decimal.Decimal
	BestAnnualized    float64
	AverageResult     decimal.Decimal
	AverageAnnualized float64
	NumberOfResults   int
	NegativeResults   int
	PositiveResults   int
}

// WriteText writes one detail line per window that missed the expectation,
// followed by the summary block. The line layout is fixed; downstream
// tooling parses it.
func (r *Report) WriteText(w io.Writer) error {
	for _, win := range r.Windows {
		if win.MeetsExpectation {
			continue
		}
		_, err := fmt.Fprintf(w, "In: %s - %s | Out: %s - %s | Result: %s%% | Annualized: %.1f%%\n",
			win.FirstPurchase, win.LastPurchase, win.FirstSell, win.LastSell,
			win.ResultPct.StringFixed(1), win.AnnualizedPct)
		if err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w,
		"Worst annualized result: %.1f%%\nBest annualized result: %.1f%%\nAverage annualized result: %.1f%%\nResults not meeting expectations: %d\nResults meeting expectations: %d\n",
		r.WorstAnnualized, r.BestAnnualized, r.AverageAnnualized,
		r.NegativeResults, r.PositiveResults)
	return err
}

// WriteSummaryTable renders the aggregate stats as a console table.
func (r *Report) WriteSummaryTable(w io.Writer) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Metric", "Value"})
	t.AppendRows([]table.Row{
		{"Windows simulated", r.NumberOfResults},
		{"Worst result", r.WorstResult.StringFixed(1) + "%"},
		{"Worst annualized", fmt.Sprintf("%.1f%%", r.WorstAnnualized)},
		{"Best result", r.BestResult.StringFixed(1) + "%"},
		{"Best annualized", fmt.Sprintf("%.1f%%", r.BestAnnualized)},
		{"Average result", r.AverageResult.StringFixed(1) + "%"},
		{"Average annualized", fmt.Sprintf("%.1f%%", r.AverageAnnualized)},
		{"Below expectation", r.NegativeResults},
		{"Meeting expectation", r.PositiveResults},
	})
	t.Render()
}
