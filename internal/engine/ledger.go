package engine

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrNoPurchases = errors.New("result requested before any purchase was made")
var ErrNonPositivePrice = errors.New("share price must be positive")
var ErrNonPositiveAmount = errors.New("purchase amount must be positive")
var ErrProportionOutOfRange = errors.New("sell proportion must be within [0,1]")

var one = decimal.NewFromInt(1)
var oneHundred = decimal.NewFromInt(100)

// ledger tracks the cash and share flow of one simulated window. Buys are
// negative cash flow, sells positive, so the monetary balance of a fully
// liquidated window is its net gain.
type ledger struct {
	shareBalance          decimal.Decimal
	monetaryBalance       decimal.Decimal
	accumulatedInvestment decimal.Decimal

	// Plain per-transaction means, not volume-weighted. Reporting only;
	// they never feed the balance math.
	averageBuyPrice  decimal.Decimal
	averageSellPrice decimal.Decimal

	buyCount  int
	sellCount int
}

func newLedger() *ledger {
	return &ledger{}
}

// buy invests monetaryAmount at sharePrice and returns the shares bought.
func (l *ledger) buy(sharePrice, monetaryAmount decimal.Decimal) (decimal.Decimal, error) {
	if !sharePrice.IsPositive() {
		return decimal.Zero, ErrNonPositivePrice
	}
	if !monetaryAmount.IsPositive() {
		return decimal.Zero, ErrNonPositiveAmount
	}

	bought := monetaryAmount.Div(sharePrice)
	l.accumulatedInvestment = l.accumulatedInvestment.Add(monetaryAmount)
	l.shareBalance = l.shareBalance.Add(bought)
	l.monetaryBalance = l.monetaryBalance.Sub(monetaryAmount)
	l.averageBuyPrice = runningMean(l.averageBuyPrice, l.buyCount, sharePrice)
	l.buyCount++
	return bought, nil
}

// sell liquidates the given proportion of the current share balance at
// sharePrice and returns the shares sold. A proportion of exactly 1 leaves
// the share balance at exactly zero.
func (l *ledger) sell(sharePrice, proportion decimal.Decimal) (decimal.Decimal, error) {
	if !sharePrice.IsPositive() {
		return decimal.Zero, ErrNonPositivePrice
	}
	if proportion.IsNegative() || proportion.GreaterThan(one) {
		return decimal.Zero, ErrProportionOutOfRange
	}

	sold := l.shareBalance.Mul(proportion)
	l.shareBalance = l.shareBalance.Sub(sold)
	l.monetaryBalance = l.monetaryBalance.Add(sold.Mul(sharePrice))
	l.averageSellPrice = runningMean(l.averageSellPrice, l.sellCount, sharePrice)
	l.sellCount++
	return sold, nil
}

// resultInPercent is the net cash flow relative to everything invested.
// Reading it before any buy is an invariant violation, not a domain case.
func (l *ledger) resultInPercent() (decimal.Decimal, error) {
	if l.buyCount == 0 {
		return decimal.Zero, ErrNoPurchases
	}
	return l.monetaryBalance.Mul(oneHundred).Div(l.accumulatedInvestment), nil
}

func runningMean(cur decimal.Decimal, count int, next decimal.Decimal) decimal.Decimal {
	if count == 0 {
		return next
	}
	n := decimal.NewFromInt(int64(count))
	return cur.Mul(n).Add(next).Div(n.Add(one))
}
