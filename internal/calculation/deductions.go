package calculation

import (
	"github.com/rgehrsitz/paygo/internal/domain"
	"github.com/shopspring/decimal"
)

// DeductionSummary is the resolved set of benefit deductions for a period along with
// the two taxable wage bases they produce.
//
// IncomeTaxableWages (federal and state income tax) excludes every pre-tax item.
// FICATaxableWages excludes only the Section 125 items (health, dental, HSA); 401(k)
// deferrals remain subject to Social Security and Medicare.
type DeductionSummary struct {
	PreTax       domain.PreTaxItems
	PostTax      domain.PostTaxItems
	PreTaxTotal  decimal.Decimal
	PostTaxTotal decimal.Decimal

	IncomeTaxableWages decimal.Decimal
	FICATaxableWages   decimal.Decimal
}

// Total returns pre-tax plus post-tax deductions
func (ds DeductionSummary) Total() decimal.Decimal {
	return ds.PreTaxTotal.Add(ds.PostTaxTotal)
}

// AggregateDeductions resolves the 401(k) percentage against gross pay and partitions
// the elections into pre- and post-tax. Taxable wage bases never go below zero.
func AggregateDeductions(grossPay decimal.Decimal, elected domain.ElectedDeductions) DeductionSummary {
	preTax := domain.PreTaxItems{
		Health:         elected.Health,
		Dental:         elected.Dental,
		Retirement401k: roundCents(elected.Retirement401kPercent.Div(hundred).Mul(grossPay)),
		HSA:            elected.HSA,
	}
	postTax := domain.PostTaxItems{
		Parking:       elected.Parking,
		LifeInsurance: elected.LifeInsurance,
		Garnishment:   elected.Garnishment,
	}

	preTaxTotal := preTax.Total()
	return DeductionSummary{
		PreTax:             preTax,
		PostTax:            postTax,
		PreTaxTotal:        preTaxTotal,
		PostTaxTotal:       postTax.Total(),
		IncomeTaxableWages: nonNegative(grossPay.Sub(preTaxTotal)),
		FICATaxableWages:   nonNegative(grossPay.Sub(preTax.Section125())),
	}
}
