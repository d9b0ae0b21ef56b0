package repository

import (
	"context"
	"errors"
	"fmt"

	"dcasweep/types"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type monthlyCloseRow struct {
	Year  int
	Month int
	Close decimal.Decimal
}

const assetIDByTickerQuery = `
SELECT id FROM assets WHERE ticker = $1`

const monthlyClosesQuery = `
SELECT year, month, close
FROM monthly_closes
WHERE asset_id = $1
ORDER BY year, month`

type pgxPriceSource struct {
	pool *pgxpool.Pool
}

func (s *pgxPriceSource) AssetIDByTicker(ctx context.Context, ticker string) (int, error) {
	var id int
	err := s.pool.QueryRow(ctx, assetIDByTickerQuery, ticker).Scan(&id)
	return id, err
}

func (s *pgxPriceSource) MonthlyCloses(ctx context.Context, assetID int) ([]monthlyCloseRow, error) {
	rows, err := s.pool.Query(ctx, monthlyClosesQuery, assetID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []monthlyCloseRow
	for rows.Next() {
		var row monthlyCloseRow
		if err := rows.Scan(&row.Year, &row.Month, &row.Close); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// GetMonthlyPrices retrieves the ordered monthly price series for a ticker.
func (db *Database) GetMonthlyPrices(ticker string, ctx context.Context) (types.PriceSeries, error) {
	assetID, err := db.prices.AssetIDByTicker(ctx, ticker)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("ticker %s %w", ticker, ErrTickerNotFound)
		}
		return nil, err
	}

	rows, err := db.prices.MonthlyCloses(ctx, assetID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNoPrices
		}
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNoPrices
	}
	return convertRows(rows), nil
}

func convertRows(rows []monthlyCloseRow) types.PriceSeries {
	var series types.PriceSeries
	for _, row := range rows {
		series = append(series, types.PricePoint{
			Period: types.Period{Year: row.Year, Month: row.Month},
			Price:  row.Close,
		})
	}
	return series
}
