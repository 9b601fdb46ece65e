package calculation

import (
	"testing"

	"github.com/rgehrsitz/paygo/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAggregateDeductions(t *testing.T) {
	elected := domain.ElectedDeductions{
		Health:                d("50"),
		Dental:                d("10"),
		Retirement401kPercent: d("5"),
		HSA:                   d("20"),
		Parking:               d("15"),
		LifeInsurance:         d("5"),
		Garnishment:           decimal.Zero,
	}

	got := AggregateDeductions(d("1000"), elected)

	assert.True(t, got.PreTax.Retirement401k.Equal(d("50")), "401k: got %s", got.PreTax.Retirement401k)
	assert.True(t, got.PreTaxTotal.Equal(d("130")), "pre-tax: got %s", got.PreTaxTotal)
	assert.True(t, got.PostTaxTotal.Equal(d("20")), "post-tax: got %s", got.PostTaxTotal)
	assert.True(t, got.Total().Equal(d("150")), "total: got %s", got.Total())
	assert.True(t, got.IncomeTaxableWages.Equal(d("870")), "income taxable: got %s", got.IncomeTaxableWages)
	assert.True(t, got.FICATaxableWages.Equal(d("920")), "fica taxable: got %s", got.FICATaxableWages)
}

func TestAggregateDeductions_401kRoundsToCents(t *testing.T) {
	got := AggregateDeductions(d("225"), domain.ElectedDeductions{Retirement401kPercent: d("3.3")})
	// 225 x 3.3% = 7.425
	assert.True(t, got.PreTax.Retirement401k.Equal(d("7.43")), "got %s", got.PreTax.Retirement401k)
}

func TestAggregateDeductions_TaxableWagesFloorAtZero(t *testing.T) {
	elected := domain.ElectedDeductions{
		Health:                d("300"),
		Retirement401kPercent: d("10"),
	}

	got := AggregateDeductions(d("225"), elected)

	assert.True(t, got.IncomeTaxableWages.IsZero(), "got %s", got.IncomeTaxableWages)
	assert.True(t, got.FICATaxableWages.IsZero(), "got %s", got.FICATaxableWages)
	assert.True(t, got.PreTaxTotal.Equal(d("322.5")), "deductions are still reported in full, got %s", got.PreTaxTotal)
}

func TestAggregateDeductions_None(t *testing.T) {
	got := AggregateDeductions(d("225"), domain.ElectedDeductions{})

	assert.True(t, got.Total().IsZero())
	assert.True(t, got.IncomeTaxableWages.Equal(d("225")))
	assert.True(t, got.FICATaxableWages.Equal(d("225")))
}
