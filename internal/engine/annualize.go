package engine

import (
	"errors"
	"math"
)

var ErrUnrealResult = errors.New("total return at or below -100% has no real annualized rate")
var ErrNonPositiveYears = errors.New("annualization period must be positive")

// annualize converts a total-period return percentage into the compound
// annual rate over the given number of years:
// ((1 + pct/100)^(1/years) - 1) * 100.
// Decimal has no real-exponent Pow, so this single spot runs in float64.
func annualize(totalReturnPct, years float64) (float64, error) {
	if years <= 0 {
		return 0, ErrNonPositiveYears
	}
	base := 1 + totalReturnPct/100
	if base <= 0 {
		return 0, ErrUnrealResult
	}
	return (math.Pow(base, 1/years) - 1) * 100, nil
}
