package domain

import (
	"github.com/shopspring/decimal"
)

// TaxTables is the reference data for one tax year: federal brackets and standard
// deductions keyed by filing status, FICA parameters and per-state withholding.
// It is loaded from tax_tables.yaml or built in, and never modified after load.
type TaxTables struct {
	Year               int                              `yaml:"year" json:"year"`
	Description        string                           `yaml:"description,omitempty" json:"description,omitempty"`
	FederalBrackets    map[FilingStatus][]TaxBracket    `yaml:"federal_brackets" json:"federal_brackets"`
	StandardDeductions map[FilingStatus]decimal.Decimal `yaml:"standard_deductions" json:"standard_deductions"`
	FICA               FICAConfig                       `yaml:"fica" json:"fica"`
	States             map[string]StateTaxConfig        `yaml:"states" json:"states"`
}

// TaxBracket is one marginal band of an annual bracket table. A nil Max is unbounded.
type TaxBracket struct {
	Min  decimal.Decimal  `yaml:"min" json:"min"`
	Max  *decimal.Decimal `yaml:"max,omitempty" json:"max,omitempty"`
	Rate decimal.Decimal  `yaml:"rate" json:"rate"`
}

// Unbounded reports whether the bracket has no upper limit
func (b TaxBracket) Unbounded() bool {
	return b.Max == nil
}

// FICAConfig holds Social Security and Medicare parameters
type FICAConfig struct {
	SocialSecurity SocialSecurityConfig `yaml:"social_security" json:"social_security"`
	Medicare       MedicareConfig       `yaml:"medicare" json:"medicare"`
}

// SocialSecurityConfig contains the OASDI rate and annual wage base
type SocialSecurityConfig struct {
	Rate     decimal.Decimal `yaml:"rate" json:"rate"`
	WageBase decimal.Decimal `yaml:"wage_base" json:"wage_base"`
}

// MaxTax is the most Social Security tax withheld in a year
func (c SocialSecurityConfig) MaxTax() decimal.Decimal {
	return c.WageBase.Mul(c.Rate)
}

// MedicareConfig contains the HI base rate and the Additional Medicare rate/threshold
type MedicareConfig struct {
	Rate                decimal.Decimal `yaml:"rate" json:"rate"`
	AdditionalRate      decimal.Decimal `yaml:"additional_rate" json:"additional_rate"`
	AdditionalThreshold decimal.Decimal `yaml:"additional_threshold" json:"additional_threshold"`
}

// StateTaxConfig is a flat state withholding rate with an optional SDI component
type StateTaxConfig struct {
	Rate        decimal.Decimal `yaml:"rate" json:"rate"`
	SDIRate     decimal.Decimal `yaml:"sdi_rate,omitempty" json:"sdi_rate,omitempty"`
	SDIWageBase decimal.Decimal `yaml:"sdi_wage_base,omitempty" json:"sdi_wage_base,omitempty"`
}

// HasSDI reports whether both the SDI rate and wage base are configured
func (c StateTaxConfig) HasSDI() bool {
	return c.SDIRate.IsPositive() && c.SDIWageBase.IsPositive()
}
