package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePriceFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prices.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestCSVFileGetMonthlyPrices(t *testing.T) {
	path := writePriceFile(t, `Period,Price
# monthly index closes
1990-01,100.5
1990-02,101.25
2001-12,333

`)

	series, err := NewCSVFile(path).GetMonthlyPrices("", context.Background())
	require.NoError(t, err)
	require.Len(t, series, 3)

	assert.Equal(t, "1990-01", series[0].Period.String())
	assert.True(t, series[0].Price.Equal(decimal.RequireFromString("100.5")))
	assert.Equal(t, "1990-02", series[1].Period.String())
	assert.True(t, series[1].Price.Equal(decimal.RequireFromString("101.25")))
	assert.Equal(t, "2001-12", series[2].Period.String())
}

func TestCSVFileSkipsNonDataLines(t *testing.T) {
	// Only lines starting with a year digit count as records.
	path := writePriceFile(t, `some header
; comment
3000-01,100
1990-01,100
`)

	series, err := NewCSVFile(path).GetMonthlyPrices("", context.Background())
	require.NoError(t, err)
	require.Len(t, series, 1)
	assert.Equal(t, "1990-01", series[0].Period.String())
}

func TestCSVFileErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{"missing price column", "1990-01\n", ErrMalformedRecord},
		{"unparseable price", "1990-01,abc\n", ErrMalformedRecord},
		{"unparseable month", "1990-xx,100\n", ErrMalformedRecord},
		{"month out of range", "1990-13,100\n", ErrMalformedRecord},
		{"zero price", "1990-01,0\n", ErrNonPositivePrice},
		{"negative price", "1990-01,-5\n", ErrNonPositivePrice},
		{"only headers", "Period,Price\n", ErrNoPrices},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writePriceFile(t, tt.content)
			_, err := NewCSVFile(path).GetMonthlyPrices("", context.Background())
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCSVFileErrorIdentifiesLine(t *testing.T) {
	path := writePriceFile(t, "Period,Price\n1990-01,100\n1990-02,broken\n")

	_, err := NewCSVFile(path).GetMonthlyPrices("", context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")
	assert.Contains(t, err.Error(), "1990-02,broken")
}

func TestCSVFileMissingFile(t *testing.T) {
	_, err := NewCSVFile(filepath.Join(t.TempDir(), "nope.csv")).GetMonthlyPrices("", context.Background())
	assert.Error(t, err)
}
