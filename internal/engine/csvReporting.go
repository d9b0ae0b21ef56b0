package engine

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// WriteWindowsCSVFile writes every window result to a CSV file at the
// given path.
func (r *Report) WriteWindowsCSVFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create windows file: %w", err)
	}
	defer f.Close()

	return r.writeWindowsCSV(f)
}

// writeWindowsCSV writes window results to any io.Writer as CSV.
// You can pass os.Stdout for debugging, or a file.
func (r *Report) writeWindowsCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{
		"first_buy",
		"last_buy",
		"first_sell",
		"last_sell",
		"result_pct",
		"annualized_pct",
		"meets_expectation",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, win := range r.Windows {
		record := []string{
			win.FirstPurchase.String(),
			win.LastPurchase.String(),
			win.FirstSell.String(),
			win.LastSell.String(),
			win.ResultPct.String(),
			strconv.FormatFloat(win.AnnualizedPct, 'f', -1, 64),
			strconv.FormatBool(win.MeetsExpectation),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write record: %w", err)
		}
	}

	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
