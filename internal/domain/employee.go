package domain

import (
	"github.com/shopspring/decimal"
)

// FilingStatus is the federal filing status used to pick brackets and the standard deduction
type FilingStatus string

const (
	FilingSingle            FilingStatus = "single"
	FilingMarriedJointly    FilingStatus = "marriedJointly"
	FilingMarriedSeparately FilingStatus = "marriedSeparately"
	FilingHeadOfHousehold   FilingStatus = "headOfHousehold"
)

// FilingStatuses lists every supported filing status in display order
var FilingStatuses = []FilingStatus{
	FilingSingle,
	FilingMarriedJointly,
	FilingMarriedSeparately,
	FilingHeadOfHousehold,
}

// IsValid reports whether fs is one of the supported filing statuses
func (fs FilingStatus) IsValid() bool {
	for _, s := range FilingStatuses {
		if s == fs {
			return true
		}
	}
	return false
}

// PayFrequency is how often the employee is paid
type PayFrequency string

const (
	PayWeekly      PayFrequency = "weekly"
	PayBiweekly    PayFrequency = "biweekly"
	PaySemimonthly PayFrequency = "semimonthly"
	PayMonthly     PayFrequency = "monthly"
)

// PayFrequencies lists the supported frequencies from most to least frequent
var PayFrequencies = []PayFrequency{
	PayWeekly,
	PayBiweekly,
	PaySemimonthly,
	PayMonthly,
}

var periodsPerYear = map[PayFrequency]int{
	PayWeekly:      52,
	PayBiweekly:    26,
	PaySemimonthly: 24,
	PayMonthly:     12,
}

// DefaultPeriodsPerYear applies when the frequency is not recognized (biweekly)
const DefaultPeriodsPerYear = 26

// PeriodsPerYear returns the number of pay periods in a year for this frequency
func (pf PayFrequency) PeriodsPerYear() int {
	if n, ok := periodsPerYear[pf]; ok {
		return n
	}
	return DefaultPeriodsPerYear
}

// IsValid reports whether pf is a supported pay frequency
func (pf PayFrequency) IsValid() bool {
	_, ok := periodsPerYear[pf]
	return ok
}

// DefaultStateCode is the state table key used when a state code is unknown
const DefaultStateCode = "DEFAULT"

// EmployeeProfile holds everything about the employee that feeds a paystub
type EmployeeProfile struct {
	Name          string          `yaml:"name" json:"name"`
	EmployeeID    string          `yaml:"employee_id" json:"employee_id"`
	Address       string          `yaml:"address" json:"address"`
	HourlyRate    decimal.Decimal `yaml:"hourly_rate" json:"hourly_rate"`
	FilingStatus  FilingStatus    `yaml:"filing_status" json:"filing_status"`
	StateCode     string          `yaml:"state_code" json:"state_code"`
	PayFrequency  PayFrequency    `yaml:"pay_frequency" json:"pay_frequency"`
	YTDGrossPrior decimal.Decimal `yaml:"ytd_gross" json:"ytd_gross"` // gross earned this year before the current period

	Deductions ElectedDeductions `yaml:"deductions" json:"deductions"`
}

// ElectedDeductions are the employee's benefit elections for the period.
// Retirement401kPercent is a percentage of gross (5 means 5%), resolved to an amount by the engine.
type ElectedDeductions struct {
	// Pre-tax
	Health                decimal.Decimal `yaml:"health" json:"health"`
	Dental                decimal.Decimal `yaml:"dental" json:"dental"`
	Retirement401kPercent decimal.Decimal `yaml:"retirement_401k_percent" json:"retirement_401k_percent"`
	HSA                   decimal.Decimal `yaml:"hsa" json:"hsa"`

	// Post-tax
	Parking       decimal.Decimal `yaml:"parking" json:"parking"`
	LifeInsurance decimal.Decimal `yaml:"life_insurance" json:"life_insurance"`
	Garnishment   decimal.Decimal `yaml:"garnishment" json:"garnishment"`
}

// PaystubRequest is the fully normalized input to the engine
type PaystubRequest struct {
	Employee   EmployeeProfile `yaml:"employee" json:"employee"`
	TimeWorked TimeWorked      `yaml:"time_worked" json:"time_worked"`
	PayPeriod  PayPeriod       `yaml:"pay_period" json:"pay_period"`
}
