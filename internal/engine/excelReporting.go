package engine

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

// WriteWindowsXLSXFile writes every window result plus the aggregate
// summary to an Excel workbook at the given path.
func (r *Report) WriteWindowsXLSXFile(path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	fx := excelize.NewFile()
	defer fx.Close()

	const windowsSheet = "Windows"
	const summarySheet = "Summary"
	fx.SetSheetName(fx.GetSheetName(0), windowsSheet)
	if _, err := fx.NewSheet(summarySheet); err != nil {
		return err
	}

	headerStyle, err := fx.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
	})
	if err != nil {
		return err
	}

	if err := r.writeWindowsSheet(fx, windowsSheet, headerStyle); err != nil {
		return err
	}
	if err := r.writeSummarySheet(fx, summarySheet, headerStyle); err != nil {
		return err
	}

	return fx.SaveAs(path)
}

func (r *Report) writeWindowsSheet(fx *excelize.File, sheet string, headerStyle int) error {
	headers := []string{
		"First Buy", "Last Buy", "First Sell", "Last Sell",
		"Result %", "Annualized %", "Meets Expectation",
	}
	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := fx.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}
	if err := fx.SetRowStyle(sheet, 1, 1, headerStyle); err != nil {
		return err
	}

	for i, win := range r.Windows {
		row := i + 2
		values := []interface{}{
			win.FirstPurchase.String(),
			win.LastPurchase.String(),
			win.FirstSell.String(),
			win.LastSell.String(),
			win.ResultPct.InexactFloat64(),
			win.AnnualizedPct,
			win.MeetsExpectation,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}
			if err := fx.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *Report) writeSummarySheet(fx *excelize.File, sheet string, headerStyle int) error {
	rows := []struct {
		label string
		value interface{}
	}{
		{"Windows simulated", r.NumberOfResults},
		{"Worst result %", r.WorstResult.InexactFloat64()},
		{"Worst annualized %", r.WorstAnnualized},
		{"Best result %", r.BestResult.InexactFloat64()},
		{"Best annualized %", r.BestAnnualized},
		{"Average result %", r.AverageResult.InexactFloat64()},
		{"Average annualized %", r.AverageAnnualized},
		{"Below expectation", r.NegativeResults},
		{"Meeting expectation", r.PositiveResults},
	}

	if err := fx.SetCellValue(sheet, "A1", "Metric"); err != nil {
		return err
	}
	if err := fx.SetCellValue(sheet, "B1", "Value"); err != nil {
		return err
	}
	if err := fx.SetRowStyle(sheet, 1, 1, headerStyle); err != nil {
		return err
	}

	for i, row := range rows {
		if err := fx.SetCellValue(sheet, fmt.Sprintf("A%d", i+2), row.label); err != nil {
			return err
		}
		if err := fx.SetCellValue(sheet, fmt.Sprintf("B%d", i+2), row.value); err != nil {
			return err
		}
	}
	return nil
}
