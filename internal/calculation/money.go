package calculation

import "github.com/shopspring/decimal"

var (
	hundred = decimal.NewFromInt(100)
	half    = decimal.NewFromFloat(0.5)
)

// roundCents rounds a money amount to two places, half away from zero
func roundCents(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// roundHalfUp rounds to an integer with halves going toward positive infinity,
// so -2.5 becomes -2 and 2.5 becomes 3
func roundHalfUp(d decimal.Decimal) decimal.Decimal {
	return d.Add(half).Floor()
}

// nonNegative floors d at zero
func nonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
