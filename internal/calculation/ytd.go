package calculation

import (
	"math"

	"github.com/shopspring/decimal"
)

// maxPeriodIndex caps the inferred period so the index never overflows an int
var maxPeriodIndex = decimal.NewFromInt(math.MaxInt32 - 1)

// YTD PROJECTION:
//
// No per-period history is kept, so year-to-date figures are projections. The
// current period index is inferred from prior YTD gross divided by this period's
// gross, and each YTD value is the period value times that index. The estimate
// drifts when pay varies between periods; treat it as non-authoritative.

// EstimateCurrentPeriod returns floor(ytdGrossPrior / periodGross) + 1, or 1 when there
// is no prior gross or this period's gross is zero. The result never exceeds math.MaxInt32.
func EstimateCurrentPeriod(ytdGrossPrior, periodGross decimal.Decimal) int {
	if !ytdGrossPrior.IsPositive() || !periodGross.IsPositive() {
		return 1
	}
	elapsed := decimal.Min(ytdGrossPrior.Div(periodGross).Floor(), maxPeriodIndex)
	return int(elapsed.IntPart()) + 1
}

// ProjectYTD amortizes a period value over the estimated period count
func ProjectYTD(periodValue decimal.Decimal, currentPeriod int) decimal.Decimal {
	return periodValue.Mul(decimal.NewFromInt(int64(currentPeriod)))
}

// ProjectYTDGross uses the actual prior gross when one was supplied
func ProjectYTDGross(ytdGrossPrior, periodGross decimal.Decimal, currentPeriod int) decimal.Decimal {
	if ytdGrossPrior.IsPositive() {
		return ytdGrossPrior.Add(periodGross)
	}
	return ProjectYTD(periodGross, currentPeriod)
}
