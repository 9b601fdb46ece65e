package domain

import (
	"github.com/shopspring/decimal"
)

// Paystub is the complete, itemized result of one engine run. Every monetary
// field is already rounded to cents; consumers render it and never re-derive taxes.
type Paystub struct {
	StubNumber string           `yaml:"stub_number" json:"stub_number"`
	TaxYear    int              `yaml:"tax_year" json:"tax_year"`
	Employee   EmployeeSnapshot `yaml:"employee" json:"employee"`
	PayPeriod  PayPeriod        `yaml:"pay_period" json:"pay_period"`
	TimeWorked TimeWorked       `yaml:"time_worked" json:"time_worked"`
	PayInfo    PayInfo          `yaml:"pay_info" json:"pay_info"`
	Earnings   Earnings         `yaml:"earnings" json:"earnings"`
	Deductions Deductions       `yaml:"deductions" json:"deductions"`
	NetPay     Amount           `yaml:"net_pay" json:"net_pay"`
	YTD        YTDSummary       `yaml:"ytd" json:"ytd"`
	Summary    Summary          `yaml:"summary" json:"summary"`
}

// EmployeeSnapshot is the part of the profile printed on the stub
type EmployeeSnapshot struct {
	Name         string       `yaml:"name" json:"name"`
	EmployeeID   string       `yaml:"employee_id" json:"employee_id"`
	Address      string       `yaml:"address" json:"address"`
	FilingStatus FilingStatus `yaml:"filing_status" json:"filing_status"`
	StateCode    string       `yaml:"state_code" json:"state_code"`
}

// PayInfo describes the pay schedule and the estimated period index
type PayInfo struct {
	Frequency      PayFrequency `yaml:"frequency" json:"frequency"`
	PeriodsPerYear int          `yaml:"periods_per_year" json:"periods_per_year"`
	CurrentPeriod  int          `yaml:"current_period" json:"current_period"`
}

// EarningsLine is hours x rate = amount for one pay type
type EarningsLine struct {
	Hours  decimal.Decimal `yaml:"hours" json:"hours"`
	Rate   decimal.Decimal `yaml:"rate" json:"rate"`
	Amount decimal.Decimal `yaml:"amount" json:"amount"`
}

// Earnings breaks gross pay into its components
type Earnings struct {
	HoursWorked decimal.Decimal `yaml:"hours_worked" json:"hours_worked"`
	Regular     EarningsLine    `yaml:"regular" json:"regular"`
	Overtime    EarningsLine    `yaml:"overtime" json:"overtime"`
	DoubleTime  EarningsLine    `yaml:"double_time" json:"double_time"`
	Gross       decimal.Decimal `yaml:"gross" json:"gross"`
	NonTaxable  decimal.Decimal `yaml:"non_taxable" json:"non_taxable"`
}

// Amount is a current-period value with its year-to-date projection
type Amount struct {
	Current decimal.Decimal `yaml:"current" json:"current"`
	YTD     decimal.Decimal `yaml:"ytd" json:"ytd"`
}

// PreTaxItems are deductions taken before income tax
type PreTaxItems struct {
	Health         decimal.Decimal `yaml:"health" json:"health"`
	Dental         decimal.Decimal `yaml:"dental" json:"dental"`
	Retirement401k decimal.Decimal `yaml:"retirement_401k" json:"retirement_401k"`
	HSA            decimal.Decimal `yaml:"hsa" json:"hsa"`
}

// Total sums the pre-tax items
func (p PreTaxItems) Total() decimal.Decimal {
	return decimal.Sum(p.Health, p.Dental, p.Retirement401k, p.HSA)
}

// Section125 sums the items that are also excluded from FICA wages (everything but the 401k)
func (p PreTaxItems) Section125() decimal.Decimal {
	return decimal.Sum(p.Health, p.Dental, p.HSA)
}

// PostTaxItems are deductions taken after tax
type PostTaxItems struct {
	Parking       decimal.Decimal `yaml:"parking" json:"parking"`
	LifeInsurance decimal.Decimal `yaml:"life_insurance" json:"life_insurance"`
	Garnishment   decimal.Decimal `yaml:"garnishment" json:"garnishment"`
}

// Total sums the post-tax items
func (p PostTaxItems) Total() decimal.Decimal {
	return decimal.Sum(p.Parking, p.LifeInsurance, p.Garnishment)
}

// PreTaxDeductions groups the pre-tax items with their total
type PreTaxDeductions struct {
	Items PreTaxItems     `yaml:"items" json:"items"`
	Total decimal.Decimal `yaml:"total" json:"total"`
}

// PostTaxDeductions groups the post-tax items with their total
type PostTaxDeductions struct {
	Items PostTaxItems    `yaml:"items" json:"items"`
	Total decimal.Decimal `yaml:"total" json:"total"`
}

// TaxLine is one withheld tax
type TaxLine struct {
	TaxableWages decimal.Decimal `yaml:"taxable_wages" json:"taxable_wages"`
	Current      decimal.Decimal `yaml:"current" json:"current"`
	YTD          decimal.Decimal `yaml:"ytd" json:"ytd"`
}

// SocialSecurityLine adds the wage base and annual maximum to the tax line
type SocialSecurityLine struct {
	TaxLine  `yaml:",inline"`
	WageBase decimal.Decimal `yaml:"wage_base" json:"wage_base"`
	MaxTax   decimal.Decimal `yaml:"max_tax" json:"max_tax"`
}

// AdditionalMedicareLine adds the threshold above which the additional rate applies
type AdditionalMedicareLine struct {
	TaxLine   `yaml:",inline"`
	Threshold decimal.Decimal `yaml:"threshold" json:"threshold"`
}

// Taxes itemizes every withholding
type Taxes struct {
	FederalIncomeTax   TaxLine                `yaml:"federal_income_tax" json:"federal_income_tax"`
	StateIncomeTax     TaxLine                `yaml:"state_income_tax" json:"state_income_tax"`
	SDI                TaxLine                `yaml:"sdi" json:"sdi"`
	SocialSecurity     SocialSecurityLine     `yaml:"social_security" json:"social_security"`
	Medicare           TaxLine                `yaml:"medicare" json:"medicare"`
	AdditionalMedicare AdditionalMedicareLine `yaml:"additional_medicare" json:"additional_medicare"`
}

// Deductions holds the itemized and the legacy aggregate views of everything taken from gross.
// FederalTax, StateTax (state + SDI), SocialSecurity, Medicare (base + additional) and Total
// are the aggregates older stub layouts print.
type Deductions struct {
	PreTax  PreTaxDeductions  `yaml:"pre_tax" json:"pre_tax"`
	PostTax PostTaxDeductions `yaml:"post_tax" json:"post_tax"`
	Taxes   Taxes             `yaml:"taxes" json:"taxes"`

	FederalTax     Amount `yaml:"federal_tax" json:"federal_tax"`
	StateTax       Amount `yaml:"state_tax" json:"state_tax"`
	SocialSecurity Amount `yaml:"social_security" json:"social_security"`
	Medicare       Amount `yaml:"medicare" json:"medicare"`
	Total          Amount `yaml:"total" json:"total"`
}

// YTDSummary is the estimated year-to-date position
type YTDSummary struct {
	Gross      decimal.Decimal `yaml:"gross" json:"gross"`
	Deductions decimal.Decimal `yaml:"deductions" json:"deductions"`
	Net        decimal.Decimal `yaml:"net" json:"net"`
}

// Summary feeds the percentage breakdown on the stub. TotalTaxes is income tax only
// (federal + state + SDI); FICA is reported in the itemized taxes.
type Summary struct {
	GrossWages             decimal.Decimal `yaml:"gross_wages" json:"gross_wages"`
	TotalTaxes             decimal.Decimal `yaml:"total_taxes" json:"total_taxes"`
	TotalBenefitDeductions decimal.Decimal `yaml:"total_benefit_deductions" json:"total_benefit_deductions"`
	NetPay                 decimal.Decimal `yaml:"net_pay" json:"net_pay"`
	TaxPercentage          decimal.Decimal `yaml:"tax_percentage" json:"tax_percentage"`
	BenefitPercentage      decimal.Decimal `yaml:"benefit_percentage" json:"benefit_percentage"`
	NetPercentage          decimal.Decimal `yaml:"net_percentage" json:"net_percentage"`
}
