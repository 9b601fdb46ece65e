package transform

import (
	"fmt"

	"github.com/rgehrsitz/paygo/internal/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// SetHourlyRate replaces the hourly rate
type SetHourlyRate struct {
	Rate decimal.Decimal
}

func (t *SetHourlyRate) Apply(base domain.PaystubRequest) (domain.PaystubRequest, error) {
	base.Employee.HourlyRate = t.Rate
	return base, nil
}

func (t *SetHourlyRate) Name() string { return "set_rate" }

func (t *SetHourlyRate) Description() string {
	return fmt.Sprintf("Set hourly rate to $%s", t.Rate.StringFixed(2))
}

func (t *SetHourlyRate) Validate(base domain.PaystubRequest) error {
	if t.Rate.IsNegative() {
		return NewTransformError(t.Name(), "validate", "rate cannot be negative", nil)
	}
	return nil
}

// AdjustHourlyRate raises (or cuts, when negative) the hourly rate by a percentage
type AdjustHourlyRate struct {
	Percent decimal.Decimal // 5 means +5%
}

func (t *AdjustHourlyRate) Apply(base domain.PaystubRequest) (domain.PaystubRequest, error) {
	factor := decimal.NewFromInt(1).Add(t.Percent.Div(hundred))
	base.Employee.HourlyRate = base.Employee.HourlyRate.Mul(factor).Round(2)
	return base, nil
}

func (t *AdjustHourlyRate) Name() string { return "raise" }

func (t *AdjustHourlyRate) Description() string {
	return fmt.Sprintf("Change hourly rate by %s%%", t.Percent.String())
}

func (t *AdjustHourlyRate) Validate(base domain.PaystubRequest) error {
	if t.Percent.LessThanOrEqual(hundred.Neg()) {
		return NewTransformError(t.Name(), "validate", "percent must be greater than -100", nil)
	}
	return nil
}

// SetFilingStatus changes the federal filing status
type SetFilingStatus struct {
	Status domain.FilingStatus
}

func (t *SetFilingStatus) Apply(base domain.PaystubRequest) (domain.PaystubRequest, error) {
	base.Employee.FilingStatus = t.Status
	return base, nil
}

func (t *SetFilingStatus) Name() string { return "set_filing_status" }

func (t *SetFilingStatus) Description() string {
	return fmt.Sprintf("File as %s", t.Status)
}

func (t *SetFilingStatus) Validate(base domain.PaystubRequest) error {
	if !t.Status.IsValid() {
		return NewTransformError(t.Name(), "validate", fmt.Sprintf("unknown filing status %q", t.Status), nil)
	}
	return nil
}

// SetState moves the employee to another state's withholding table. Unknown codes
// are allowed; the engine falls back to DEFAULT for them.
type SetState struct {
	Code string
}

func (t *SetState) Apply(base domain.PaystubRequest) (domain.PaystubRequest, error) {
	base.Employee.StateCode = t.Code
	return base, nil
}

func (t *SetState) Name() string { return "set_state" }

func (t *SetState) Description() string {
	return fmt.Sprintf("Withhold state tax for %s", t.Code)
}

func (t *SetState) Validate(base domain.PaystubRequest) error {
	if t.Code == "" {
		return NewTransformError(t.Name(), "validate", "state code is required", nil)
	}
	return nil
}

// SetPayFrequency changes how many periods the year is split into
type SetPayFrequency struct {
	Frequency domain.PayFrequency
}

func (t *SetPayFrequency) Apply(base domain.PaystubRequest) (domain.PaystubRequest, error) {
	base.Employee.PayFrequency = t.Frequency
	return base, nil
}

func (t *SetPayFrequency) Name() string { return "set_frequency" }

func (t *SetPayFrequency) Description() string {
	return fmt.Sprintf("Pay %s (%d periods per year)", t.Frequency, t.Frequency.PeriodsPerYear())
}

func (t *SetPayFrequency) Validate(base domain.PaystubRequest) error {
	if !t.Frequency.IsValid() {
		return NewTransformError(t.Name(), "validate", fmt.Sprintf("unknown pay frequency %q", t.Frequency), nil)
	}
	return nil
}

// SetShift replaces the clock-in and clock-out times
type SetShift struct {
	ClockIn  domain.ClockTime
	ClockOut domain.ClockTime
}

func (t *SetShift) Apply(base domain.PaystubRequest) (domain.PaystubRequest, error) {
	base.TimeWorked = domain.TimeWorked{ClockIn: t.ClockIn, ClockOut: t.ClockOut}
	return base, nil
}

func (t *SetShift) Name() string { return "set_shift" }

func (t *SetShift) Description() string {
	return fmt.Sprintf("Work %s to %s", t.ClockIn, t.ClockOut)
}

func (t *SetShift) Validate(base domain.PaystubRequest) error {
	if err := t.ClockIn.Validate(); err != nil {
		return NewTransformError(t.Name(), "validate", "clock in", err)
	}
	if err := t.ClockOut.Validate(); err != nil {
		return NewTransformError(t.Name(), "validate", "clock out", err)
	}
	return nil
}

// SetYTDGross replaces the prior year-to-date gross, moving the estimated period
type SetYTDGross struct {
	Amount decimal.Decimal
}

func (t *SetYTDGross) Apply(base domain.PaystubRequest) (domain.PaystubRequest, error) {
	base.Employee.YTDGrossPrior = t.Amount
	return base, nil
}

func (t *SetYTDGross) Name() string { return "set_ytd" }

func (t *SetYTDGross) Description() string {
	return fmt.Sprintf("Prior YTD gross of $%s", t.Amount.StringFixed(2))
}

func (t *SetYTDGross) Validate(base domain.PaystubRequest) error {
	if t.Amount.IsNegative() {
		return NewTransformError(t.Name(), "validate", "amount cannot be negative", nil)
	}
	return nil
}
