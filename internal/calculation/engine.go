package calculation

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rgehrsitz/paygo/internal/domain"
	"github.com/shopspring/decimal"
)

// ErrZeroLengthShift is returned when RequireNonZeroShift is set and clock-in equals clock-out
var ErrZeroLengthShift = errors.New("zero-length shift")

// stubNamespace seeds the name-based stub numbers
var stubNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/rgehrsitz/paygo/paystub"))

// CalculationEngine orchestrates the paystub calculation. It holds only read-only
// reference data, so one engine can serve concurrent callers.
type CalculationEngine struct {
	Tables     *TaxTableProvider
	FederalTax *FederalWithholdingCalculator
	StateTax   *StateWithholdingCalculator
	FICATax    *FICACalculator
	Logger     Logger

	// RequireNonZeroShift rejects clock-in == clock-out instead of producing a zero paystub
	RequireNonZeroShift bool
}

// NewCalculationEngine creates an engine over the built-in 2024 tables
func NewCalculationEngine() *CalculationEngine {
	return NewCalculationEngineWithTables(NewDefaultTaxTableProvider())
}

// NewCalculationEngineWithTables creates an engine over a validated table provider
func NewCalculationEngineWithTables(tables *TaxTableProvider) *CalculationEngine {
	return &CalculationEngine{
		Tables:     tables,
		FederalTax: NewFederalWithholdingCalculator(tables),
		StateTax:   NewStateWithholdingCalculator(tables),
		FICATax:    NewFICACalculator(tables.FICA()),
		Logger:     NopLogger{},
	}
}

// SetLogger sets the engine logger; nil restores the no-op logger
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// GeneratePaystub runs the full pipeline for one normalized request:
// hours -> gross -> deductions -> federal/state/FICA -> YTD projection -> record.
// Identical requests always produce identical paystubs.
func (ce *CalculationEngine) GeneratePaystub(req domain.PaystubRequest) (*domain.Paystub, error) {
	if ce.Tables == nil {
		return nil, fmt.Errorf("calculation engine has no tax tables")
	}
	if err := req.TimeWorked.ClockIn.Validate(); err != nil {
		return nil, fmt.Errorf("clock in: %w", err)
	}
	if err := req.TimeWorked.ClockOut.Validate(); err != nil {
		return nil, fmt.Errorf("clock out: %w", err)
	}

	emp := req.Employee
	periodsPerYear := emp.PayFrequency.PeriodsPerYear()

	hours := CalculateHoursWorked(req.TimeWorked)
	if hours.IsZero() && ce.RequireNonZeroShift {
		return nil, fmt.Errorf("%w: clock in and clock out are both %s", ErrZeroLengthShift, req.TimeWorked.ClockIn)
	}

	gross := CalculateGrossPay(hours, emp.HourlyRate)
	grossWages := gross.GrossPay
	ce.Logger.Debugf("hours=%s regular=%s overtime=%s gross=%s", hours, gross.RegularHours, gross.OvertimeHours, grossWages)

	ded := AggregateDeductions(grossWages, emp.Deductions)
	ce.Logger.Debugf("pre-tax=%s post-tax=%s income-taxable=%s fica-taxable=%s",
		ded.PreTaxTotal, ded.PostTaxTotal, ded.IncomeTaxableWages, ded.FICATaxableWages)

	federalTax := ce.FederalTax.CalculatePeriodTax(ded.IncomeTaxableWages, emp.FilingStatus, periodsPerYear)
	state := ce.StateTax.Calculate(ded.IncomeTaxableWages, emp.StateCode)
	if state.StateCode != emp.StateCode {
		ce.Logger.Warnf("state %q not in tax tables, using %s rate", emp.StateCode, state.StateCode)
	}
	fica := ce.FICATax.Calculate(ded.FICATaxableWages, emp.YTDGrossPrior)
	ce.Logger.Debugf("federal=%s state=%s sdi=%s ss=%s medicare=%s addl-medicare=%s",
		federalTax, state.StateTax, state.SDI, fica.SocialSecurity, fica.Medicare, fica.AdditionalMedicare)

	incomeTaxes := federalTax.Add(state.Total())
	totalAllDeductions := decimal.Sum(incomeTaxes, fica.Total(), ded.PreTaxTotal, ded.PostTaxTotal)
	netPay := grossWages.Sub(totalAllDeductions)

	period := EstimateCurrentPeriod(emp.YTDGrossPrior, grossWages)
	ytd := func(d decimal.Decimal) decimal.Decimal { return ProjectYTD(d, period) }

	ficaCfg := ce.Tables.FICA()
	stub := &domain.Paystub{
		StubNumber: stubNumber(emp.EmployeeID, req.PayPeriod),
		TaxYear:    ce.Tables.Year(),
		Employee: domain.EmployeeSnapshot{
			Name:         emp.Name,
			EmployeeID:   emp.EmployeeID,
			Address:      emp.Address,
			FilingStatus: emp.FilingStatus,
			StateCode:    emp.StateCode,
		},
		PayPeriod:  req.PayPeriod,
		TimeWorked: req.TimeWorked,
		PayInfo: domain.PayInfo{
			Frequency:      emp.PayFrequency,
			PeriodsPerYear: periodsPerYear,
			CurrentPeriod:  period,
		},
		Earnings: domain.Earnings{
			HoursWorked: hours.Round(2),
			Regular: domain.EarningsLine{
				Hours:  gross.RegularHours.Round(2),
				Rate:   emp.HourlyRate,
				Amount: gross.RegularPay,
			},
			Overtime: domain.EarningsLine{
				Hours:  gross.OvertimeHours.Round(2),
				Rate:   roundCents(emp.HourlyRate.Mul(OvertimeMultiplier)),
				Amount: gross.OvertimePay,
			},
			DoubleTime: domain.EarningsLine{
				Hours:  decimal.Zero,
				Rate:   roundCents(emp.HourlyRate.Mul(DoubleTimeMultiplier)),
				Amount: decimal.Zero,
			},
			Gross:      grossWages,
			NonTaxable: decimal.Zero,
		},
		Deductions: domain.Deductions{
			PreTax:  domain.PreTaxDeductions{Items: ded.PreTax, Total: ded.PreTaxTotal},
			PostTax: domain.PostTaxDeductions{Items: ded.PostTax, Total: ded.PostTaxTotal},
			Taxes: domain.Taxes{
				FederalIncomeTax: taxLine(ded.IncomeTaxableWages, federalTax, period),
				StateIncomeTax:   taxLine(ded.IncomeTaxableWages, state.StateTax, period),
				SDI:              taxLine(ded.IncomeTaxableWages, state.SDI, period),
				SocialSecurity: domain.SocialSecurityLine{
					TaxLine:  taxLine(ded.FICATaxableWages, fica.SocialSecurity, period),
					WageBase: ficaCfg.SocialSecurity.WageBase,
					MaxTax:   roundCents(ficaCfg.SocialSecurity.MaxTax()),
				},
				Medicare: taxLine(ded.FICATaxableWages, fica.Medicare, period),
				AdditionalMedicare: domain.AdditionalMedicareLine{
					TaxLine:   taxLine(ded.FICATaxableWages, fica.AdditionalMedicare, period),
					Threshold: ficaCfg.Medicare.AdditionalThreshold,
				},
			},
			FederalTax:     domain.Amount{Current: federalTax, YTD: ytd(federalTax)},
			StateTax:       domain.Amount{Current: state.Total(), YTD: ytd(state.Total())},
			SocialSecurity: domain.Amount{Current: fica.SocialSecurity, YTD: ytd(fica.SocialSecurity)},
			Medicare: domain.Amount{
				Current: fica.Medicare.Add(fica.AdditionalMedicare),
				YTD:     ytd(fica.Medicare.Add(fica.AdditionalMedicare)),
			},
			Total: domain.Amount{Current: totalAllDeductions, YTD: ytd(totalAllDeductions)},
		},
		NetPay: domain.Amount{Current: netPay, YTD: ytd(netPay)},
		YTD: domain.YTDSummary{
			Gross:      ProjectYTDGross(emp.YTDGrossPrior, grossWages, period),
			Deductions: ytd(totalAllDeductions),
			Net:        ytd(netPay),
		},
		Summary: domain.Summary{
			GrossWages:             grossWages,
			TotalTaxes:             incomeTaxes,
			TotalBenefitDeductions: ded.Total(),
			NetPay:                 netPay,
			TaxPercentage:          percentOf(incomeTaxes, grossWages),
			BenefitPercentage:      percentOf(ded.Total(), grossWages),
			NetPercentage:          percentOf(netPay, grossWages),
		},
	}

	ce.Logger.Infof("paystub %s: gross=%s deductions=%s net=%s period=%d",
		stub.StubNumber, grossWages, totalAllDeductions, netPay, period)
	return stub, nil
}

func taxLine(taxableWages, current decimal.Decimal, period int) domain.TaxLine {
	return domain.TaxLine{
		TaxableWages: taxableWages,
		Current:      current,
		YTD:          ProjectYTD(current, period),
	}
}

// percentOf returns value as a whole-number percentage of gross; zero gross gives 0
func percentOf(value, gross decimal.Decimal) decimal.Decimal {
	if gross.IsZero() {
		return decimal.Zero
	}
	return roundHalfUp(value.Div(gross).Mul(hundred))
}

// stubNumber derives a stable identifier from the employee and the period
func stubNumber(employeeID string, period domain.PayPeriod) string {
	name := employeeID + "|" + period.Start.Format(domain.DateLayout) + "|" + period.End.Format(domain.DateLayout)
	return uuid.NewSHA1(stubNamespace, []byte(name)).String()
}
