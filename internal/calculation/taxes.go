package calculation

import (
	"github.com/rgehrsitz/paygo/internal/domain"
	"github.com/shopspring/decimal"
)

// WITHHOLDING ASSUMPTIONS:
//
// 1. Federal: annualized percentage method. Period wages are multiplied by the
//    number of pay periods, reduced by the standard deduction, run through the
//    annual brackets and divided back down. No W-4 adjustments.
//
// 2. FICA: prior YTD gross stands in for prior YTD FICA wages when applying the
//    Social Security wage base and the Additional Medicare threshold. The two
//    diverge when Section 125 deductions are taken; the approximation is kept.
//
// 3. State: flat rate on income-taxable wages. SDI is capped per period at
//    wageBase x rate, not tracked against YTD wages.

// FederalWithholdingCalculator computes per-period federal income tax withholding
type FederalWithholdingCalculator struct {
	Tables *TaxTableProvider
}

// NewFederalWithholdingCalculator creates a federal calculator over the given tables
func NewFederalWithholdingCalculator(tables *TaxTableProvider) *FederalWithholdingCalculator {
	return &FederalWithholdingCalculator{Tables: tables}
}

// CalculateAnnualTax walks the brackets for status in ascending order. Each bracket
// taxes at most its width; the unbounded top bracket takes whatever remains.
func (fc *FederalWithholdingCalculator) CalculateAnnualTax(taxableAnnualIncome decimal.Decimal, status domain.FilingStatus) decimal.Decimal {
	remaining := taxableAnnualIncome
	tax := decimal.Zero
	for _, b := range fc.Tables.Brackets(status) {
		if remaining.LessThanOrEqual(decimal.Zero) {
			break
		}
		inBracket := remaining
		if !b.Unbounded() {
			inBracket = decimal.Min(remaining, b.Max.Sub(b.Min))
		}
		tax = tax.Add(inBracket.Mul(b.Rate))
		remaining = remaining.Sub(inBracket)
	}
	return tax
}

// CalculatePeriodTax annualizes period wages, applies the standard deduction and
// brackets, then de-annualizes. The result is rounded to cents.
func (fc *FederalWithholdingCalculator) CalculatePeriodTax(periodTaxableWages decimal.Decimal, status domain.FilingStatus, periodsPerYear int) decimal.Decimal {
	if periodsPerYear <= 0 {
		periodsPerYear = domain.DefaultPeriodsPerYear
	}
	periods := decimal.NewFromInt(int64(periodsPerYear))

	annualized := periodTaxableWages.Mul(periods)
	taxableAnnual := nonNegative(annualized.Sub(fc.Tables.StandardDeduction(status)))
	if taxableAnnual.IsZero() {
		return decimal.Zero
	}

	annualTax := fc.CalculateAnnualTax(taxableAnnual, status)
	return roundCents(annualTax.Div(periods))
}

// FICAResult holds the three FICA components for a period, in cents
type FICAResult struct {
	SocialSecurity     decimal.Decimal
	Medicare           decimal.Decimal
	AdditionalMedicare decimal.Decimal
}

// Total returns the sum of the FICA components
func (r FICAResult) Total() decimal.Decimal {
	return decimal.Sum(r.SocialSecurity, r.Medicare, r.AdditionalMedicare)
}

// FICACalculator handles Social Security and Medicare withholding
type FICACalculator struct {
	Config domain.FICAConfig
}

// NewFICACalculator creates a FICA calculator with the given parameters
func NewFICACalculator(config domain.FICAConfig) *FICACalculator {
	return &FICACalculator{Config: config}
}

// Calculate computes FICA on periodWages given gross earned earlier in the year
func (fc *FICACalculator) Calculate(periodWages, ytdGrossPrior decimal.Decimal) FICAResult {
	return FICAResult{
		SocialSecurity:     roundCents(fc.socialSecurity(periodWages, ytdGrossPrior)),
		Medicare:           roundCents(periodWages.Mul(fc.Config.Medicare.Rate)),
		AdditionalMedicare: roundCents(fc.additionalMedicare(periodWages, ytdGrossPrior)),
	}
}

// socialSecurity taxes only the part of this period that fits under the wage base
func (fc *FICACalculator) socialSecurity(periodWages, ytdGrossPrior decimal.Decimal) decimal.Decimal {
	ss := fc.Config.SocialSecurity
	if ytdGrossPrior.GreaterThanOrEqual(ss.WageBase) {
		return decimal.Zero
	}
	taxable := decimal.Min(periodWages, ss.WageBase.Sub(ytdGrossPrior))
	return taxable.Mul(ss.Rate)
}

// additionalMedicare taxes the part of this period above the threshold. When the
// threshold is crossed inside the period only the excess is taxed.
func (fc *FICACalculator) additionalMedicare(periodWages, ytdGrossPrior decimal.Decimal) decimal.Decimal {
	med := fc.Config.Medicare
	total := ytdGrossPrior.Add(periodWages)
	if total.LessThanOrEqual(med.AdditionalThreshold) {
		return decimal.Zero
	}
	if ytdGrossPrior.GreaterThanOrEqual(med.AdditionalThreshold) {
		return periodWages.Mul(med.AdditionalRate)
	}
	excess := decimal.Min(periodWages, total.Sub(med.AdditionalThreshold))
	return excess.Mul(med.AdditionalRate)
}

// StateTaxResult holds the state withholding for a period, in cents
type StateTaxResult struct {
	StateCode string // the table key actually applied
	StateTax  decimal.Decimal
	SDI       decimal.Decimal
}

// Total returns state tax plus SDI
func (r StateTaxResult) Total() decimal.Decimal {
	return r.StateTax.Add(r.SDI)
}

// StateWithholdingCalculator applies per-state flat rates and SDI
type StateWithholdingCalculator struct {
	Tables *TaxTableProvider
}

// NewStateWithholdingCalculator creates a state calculator over the given tables
func NewStateWithholdingCalculator(tables *TaxTableProvider) *StateWithholdingCalculator {
	return &StateWithholdingCalculator{Tables: tables}
}

// Calculate computes state income tax and SDI. Unknown state codes use DEFAULT.
func (sc *StateWithholdingCalculator) Calculate(taxableWages decimal.Decimal, stateCode string) StateTaxResult {
	cfg, applied := sc.Tables.State(stateCode)
	result := StateTaxResult{
		StateCode: applied,
		StateTax:  roundCents(taxableWages.Mul(cfg.Rate)),
		SDI:       decimal.Zero,
	}
	if cfg.HasSDI() {
		sdi := decimal.Min(taxableWages.Mul(cfg.SDIRate), cfg.SDIWageBase.Mul(cfg.SDIRate))
		result.SDI = roundCents(sdi)
	}
	return result
}
