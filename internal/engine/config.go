package engine

import (
	"github.com/shopspring/decimal"
)

// StrategyConfig fixes the shape of the buy/hold/sell schedule shared by
// every window in a sweep.
type StrategyConfig struct {
	purchaseAmount decimal.Decimal
	purchasePeriod int
	holdPeriod     int
	sellPeriod     int
}

func NewStrategyConfig(purchaseAmount decimal.Decimal, purchasePeriod, holdPeriod, sellPeriod int) *StrategyConfig {
	return &StrategyConfig{
		purchaseAmount: purchaseAmount,
		purchasePeriod: purchasePeriod,
		holdPeriod:     holdPeriod,
		sellPeriod:     sellPeriod,
	}
}

func (c *StrategyConfig) totalMonths() int {
	return c.purchasePeriod + c.holdPeriod + c.sellPeriod
}

func (c *StrategyConfig) totalYears() float64 {
	return float64(c.totalMonths()) / 12
}

// ReportingConfig carries the expectation threshold and console knobs.
type ReportingConfig struct {
	expectedAnnualizedReturn float64
	showProgress             bool
}

func NewReportingConfig(expectedAnnualizedReturn float64, showProgress bool) *ReportingConfig {
	return &ReportingConfig{
		expectedAnnualizedReturn: expectedAnnualizedReturn,
		showProgress:             showProgress,
	}
}
