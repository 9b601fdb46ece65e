package calculation

import (
	"github.com/rgehrsitz/paygo/internal/domain"
	"github.com/shopspring/decimal"
)

// Overtime rules for the single-shift model: the 40 hour threshold applies to the
// shift itself, not to a weekly aggregate.
var (
	OvertimeThresholdHours = decimal.NewFromInt(40)
	OvertimeMultiplier     = decimal.RequireFromString("1.5")
	DoubleTimeMultiplier   = decimal.NewFromInt(2)
)

var minutesPerHour = decimal.NewFromInt(60)

// CalculateHoursWorked converts a shift into decimal hours. A clock-out earlier than
// the clock-in is treated as the next day; equal times give zero hours.
func CalculateHoursWorked(tw domain.TimeWorked) decimal.Decimal {
	in := tw.ClockIn.MinutesSinceMidnight()
	out := tw.ClockOut.MinutesSinceMidnight()
	if out < in {
		out += domain.MinutesPerDay
	}
	return decimal.NewFromInt(int64(out - in)).Div(minutesPerHour)
}

// GrossPayResult splits hours into regular and overtime pay. Pay amounts are in cents.
type GrossPayResult struct {
	RegularHours  decimal.Decimal
	OvertimeHours decimal.Decimal
	RegularPay    decimal.Decimal
	OvertimePay   decimal.Decimal
	GrossPay      decimal.Decimal
}

// CalculateGrossPay pays up to 40 hours at the hourly rate and the rest at 1.5x
func CalculateGrossPay(hoursWorked, hourlyRate decimal.Decimal) GrossPayResult {
	regularHours := decimal.Min(hoursWorked, OvertimeThresholdHours)
	overtimeHours := nonNegative(hoursWorked.Sub(OvertimeThresholdHours))

	regularPay := roundCents(regularHours.Mul(hourlyRate))
	overtimePay := roundCents(overtimeHours.Mul(hourlyRate).Mul(OvertimeMultiplier))

	return GrossPayResult{
		RegularHours:  regularHours,
		OvertimeHours: overtimeHours,
		RegularPay:    regularPay,
		OvertimePay:   overtimePay,
		GrossPay:      regularPay.Add(overtimePay),
	}
}
