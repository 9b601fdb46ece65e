package calculation

import (
	"github.com/rgehrsitz/paygo/internal/domain"
	"github.com/shopspring/decimal"
)

// TAX TABLE ASSUMPTIONS:
//
// 1. Federal brackets: annual tables for single and married filing jointly.
//    Married filing separately and head of household use the single brackets
//    with their own standard deduction.
//
// 2. Standard deduction: 2024 amounts per filing status.
//
// 3. FICA: 6.2% Social Security up to the $168,600 wage base, 1.45% Medicare,
//    0.9% Additional Medicare above $200,000 regardless of filing status.
//
// 4. State: flat rates. CA carries SDI at 0.9% with a $153,164 base; DEFAULT is 5%.

// DefaultTaxTables2024 returns a fresh copy of the built-in 2024 reference tables
func DefaultTaxTables2024() domain.TaxTables {
	return domain.TaxTables{
		Year:        2024,
		Description: "IRS Pub. 15-T (2024) annualized percentage method, simplified state rates",
		FederalBrackets: map[domain.FilingStatus][]domain.TaxBracket{
			domain.FilingSingle: {
				bracket(0, 11000, "0.10"),
				bracket(11000, 44725, "0.12"),
				bracket(44725, 95375, "0.22"),
				bracket(95375, 182050, "0.24"),
				bracket(182050, 231250, "0.32"),
				bracket(231250, 578125, "0.35"),
				topBracket(578125, "0.37"),
			},
			domain.FilingMarriedJointly: {
				bracket(0, 22000, "0.10"),
				bracket(22000, 89450, "0.12"),
				bracket(89450, 190750, "0.22"),
				bracket(190750, 364200, "0.24"),
				bracket(364200, 462500, "0.32"),
				bracket(462500, 693750, "0.35"),
				topBracket(693750, "0.37"),
			},
		},
		StandardDeductions: map[domain.FilingStatus]decimal.Decimal{
			domain.FilingSingle:            decimal.NewFromInt(14600),
			domain.FilingMarriedJointly:    decimal.NewFromInt(29200),
			domain.FilingMarriedSeparately: decimal.NewFromInt(14600),
			domain.FilingHeadOfHousehold:   decimal.NewFromInt(21900),
		},
		FICA: domain.FICAConfig{
			SocialSecurity: domain.SocialSecurityConfig{
				Rate:     decimal.RequireFromString("0.062"),
				WageBase: decimal.NewFromInt(168600),
			},
			Medicare: domain.MedicareConfig{
				Rate:                decimal.RequireFromString("0.0145"),
				AdditionalRate:      decimal.RequireFromString("0.009"),
				AdditionalThreshold: decimal.NewFromInt(200000),
			},
		},
		States: map[string]domain.StateTaxConfig{
			"CA": {
				Rate:        decimal.RequireFromString("0.01"),
				SDIRate:     decimal.RequireFromString("0.009"),
				SDIWageBase: decimal.NewFromInt(153164),
			},
			"TX":                    {Rate: decimal.Zero},
			"NY":                    {Rate: decimal.RequireFromString("0.04")},
			"FL":                    {Rate: decimal.Zero},
			domain.DefaultStateCode: {Rate: decimal.RequireFromString("0.05")},
		},
	}
}

func bracket(lo, hi int64, rate string) domain.TaxBracket {
	m := decimal.NewFromInt(hi)
	return domain.TaxBracket{Min: decimal.NewFromInt(lo), Max: &m, Rate: decimal.RequireFromString(rate)}
}

func topBracket(lo int64, rate string) domain.TaxBracket {
	return domain.TaxBracket{Min: decimal.NewFromInt(lo), Rate: decimal.RequireFromString(rate)}
}
