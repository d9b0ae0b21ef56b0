package repository

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"dcasweep/types"

	"github.com/shopspring/decimal"
)

// CSVFile reads a monthly price series from a flat file of
// "YYYY-MM,price" lines. Lines not starting with a year digit ('1' or
// '2') are treated as headers or comments and skipped.
type CSVFile struct {
	path string
}

func NewCSVFile(path string) *CSVFile {
	return &CSVFile{path: path}
}

// GetMonthlyPrices reads the whole file. The ticker is ignored; the file
// is the series. Any malformed record aborts with a line diagnostic.
func (f *CSVFile) GetMonthlyPrices(ticker string, ctx context.Context) (types.PriceSeries, error) {
	file, err := os.Open(f.path)
	if err != nil {
		return nil, fmt.Errorf("open price file: %w", err)
	}
	defer file.Close()

	var series types.PriceSeries
	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || (line[0] != '1' && line[0] != '2') {
			continue
		}
		point, err := parsePriceLine(line)
		if err != nil {
			return nil, fmt.Errorf("%s line %d %q: %w", f.path, lineNo, line, err)
		}
		series = append(series, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read price file: %w", err)
	}
	if len(series) == 0 {
		return nil, ErrNoPrices
	}
	return series, nil
}

func parsePriceLine(line string) (types.PricePoint, error) {
	fields := strings.SplitN(line, ",", 2)
	if len(fields) != 2 {
		return types.PricePoint{}, ErrMalformedRecord
	}

	period, err := parsePeriod(strings.TrimSpace(fields[0]))
	if err != nil {
		return types.PricePoint{}, err
	}

	price, err := decimal.NewFromString(strings.TrimSpace(fields[1]))
	if err != nil {
		return types.PricePoint{}, fmt.Errorf("%w: %s", ErrMalformedRecord, err)
	}
	if !price.IsPositive() {
		return types.PricePoint{}, ErrNonPositivePrice
	}

	return types.PricePoint{Period: period, Price: price}, nil
}

func parsePeriod(s string) (types.Period, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 2 {
		return types.Period{}, ErrMalformedRecord
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return types.Period{}, fmt.Errorf("%w: %s", ErrMalformedRecord, err)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return types.Period{}, fmt.Errorf("%w: %s", ErrMalformedRecord, err)
	}
	if month < 1 || month > 12 {
		return types.Period{}, fmt.Errorf("%w: month %d", ErrMalformedRecord, month)
	}
	return types.Period{Year: year, Month: month}, nil
}
