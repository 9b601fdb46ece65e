package calculation

import (
	"testing"

	"github.com/rgehrsitz/paygo/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestFederalWithholding_CalculateAnnualTax(t *testing.T) {
	fc := NewFederalWithholdingCalculator(NewDefaultTaxTableProvider())

	tests := []struct {
		name   string
		income string
		status domain.FilingStatus
		want   string
	}{
		{"zero income", "0", domain.FilingSingle, "0"},
		{"top of first bracket", "11000", domain.FilingSingle, "1100"},
		{"top of second bracket", "44725", domain.FilingSingle, "5147"},
		{"into third bracket", "50000", domain.FilingSingle, "6307.5"},
		{"unbounded top bracket", "1000000", domain.FilingSingle, "330336"},
		{"married jointly first bracket", "22000", domain.FilingMarriedJointly, "2200"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fc.CalculateAnnualTax(d(tt.income), tt.status)
			assert.True(t, got.Equal(d(tt.want)), "Expected %s, got %s", tt.want, got)
		})
	}
}

func TestFederalWithholding_CalculatePeriodTax(t *testing.T) {
	fc := NewFederalWithholdingCalculator(NewDefaultTaxTableProvider())

	tests := []struct {
		name    string
		wages   string
		status  domain.FilingStatus
		periods int
		want    string
	}{
		{"below standard deduction", "225", domain.FilingSingle, 26, "0"},
		{"single biweekly", "2000", domain.FilingSingle, 26, "164.15"},
		{"married jointly biweekly", "4000", domain.FilingMarriedJointly, 26, "328.31"},
		{"head of household uses single brackets", "2000", domain.FilingHeadOfHousehold, 26, "130.46"},
		{"married separately uses single brackets", "2000", domain.FilingMarriedSeparately, 26, "164.15"},
		{"unknown status falls back to single", "2000", domain.FilingStatus("widow"), 26, "164.15"},
		{"invalid period count defaults to biweekly", "2000", domain.FilingSingle, 0, "164.15"},
		{"zero wages", "0", domain.FilingSingle, 26, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fc.CalculatePeriodTax(d(tt.wages), tt.status, tt.periods)
			assert.True(t, got.Equal(d(tt.want)), "Expected %s, got %s", tt.want, got)
		})
	}
}

func TestFederalWithholding_Monotonic(t *testing.T) {
	fc := NewFederalWithholdingCalculator(NewDefaultTaxTableProvider())

	for _, status := range domain.FilingStatuses {
		prev := decimal.Zero
		for wages := int64(0); wages <= 20000; wages += 250 {
			got := fc.CalculatePeriodTax(decimal.NewFromInt(wages), status, 26)
			assert.True(t, got.GreaterThanOrEqual(prev), "%s: tax at %d (%s) below tax at previous step (%s)", status, wages, got, prev)
			assert.True(t, got.LessThanOrEqual(decimal.NewFromInt(wages)), "%s: tax exceeds wages at %d", status, wages)
			prev = got
		}
	}
}

func TestFICACalculator_Calculate(t *testing.T) {
	fc := NewFICACalculator(NewDefaultTaxTableProvider().FICA())

	tests := []struct {
		name      string
		wages     string
		ytdPrior  string
		wantSS    string
		wantMed   string
		wantAddl  string
		wantTotal string
	}{
		{"small period", "225", "0", "13.95", "3.26", "0", "17.21"},
		{"wage base already reached", "1000", "168600", "0", "14.5", "0", "14.5"},
		{"crosses wage base", "1000", "168000", "37.2", "14.5", "0", "51.7"},
		{"crosses additional medicare threshold", "2000", "199000", "0", "29", "9", "38"},
		{"fully above threshold", "1000", "250000", "0", "14.5", "9", "23.5"},
		{"zero wages", "0", "0", "0", "0", "0", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fc.Calculate(d(tt.wages), d(tt.ytdPrior))
			assert.True(t, got.SocialSecurity.Equal(d(tt.wantSS)), "social security: expected %s, got %s", tt.wantSS, got.SocialSecurity)
			assert.True(t, got.Medicare.Equal(d(tt.wantMed)), "medicare: expected %s, got %s", tt.wantMed, got.Medicare)
			assert.True(t, got.AdditionalMedicare.Equal(d(tt.wantAddl)), "additional medicare: expected %s, got %s", tt.wantAddl, got.AdditionalMedicare)
			assert.True(t, got.Total().Equal(d(tt.wantTotal)), "total: expected %s, got %s", tt.wantTotal, got.Total())
		})
	}
}

func TestFICACalculator_SocialSecurityNeverExceedsMaxTax(t *testing.T) {
	cfg := NewDefaultTaxTableProvider().FICA()
	fc := NewFICACalculator(cfg)

	paid := decimal.Zero
	ytd := decimal.Zero
	wages := d("10000")
	for i := 0; i < 26; i++ {
		paid = paid.Add(fc.Calculate(wages, ytd).SocialSecurity)
		ytd = ytd.Add(wages)
	}
	assert.True(t, paid.Equal(cfg.SocialSecurity.MaxTax()), "Expected %s, got %s", cfg.SocialSecurity.MaxTax(), paid)
}

func TestStateWithholding_Calculate(t *testing.T) {
	sc := NewStateWithholdingCalculator(NewDefaultTaxTableProvider())

	tests := []struct {
		name      string
		wages     string
		state     string
		wantCode  string
		wantTax   string
		wantSDI   string
		wantTotal string
	}{
		{"california with sdi", "1000", "CA", "CA", "10", "9", "19"},
		{"texas no income tax", "1000", "TX", "TX", "0", "0", "0"},
		{"new york", "1000", "NY", "NY", "40", "0", "40"},
		{"unknown state uses default", "1000", "ZZ", domain.DefaultStateCode, "50", "0", "50"},
		{"default state", "225", domain.DefaultStateCode, domain.DefaultStateCode, "11.25", "0", "11.25"},
		{"sdi capped at wage base", "200000", "CA", "CA", "2000", "1378.48", "3378.48"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sc.Calculate(d(tt.wages), tt.state)
			assert.Equal(t, tt.wantCode, got.StateCode)
			assert.True(t, got.StateTax.Equal(d(tt.wantTax)), "state tax: expected %s, got %s", tt.wantTax, got.StateTax)
			assert.True(t, got.SDI.Equal(d(tt.wantSDI)), "sdi: expected %s, got %s", tt.wantSDI, got.SDI)
			assert.True(t, got.Total().Equal(d(tt.wantTotal)), "total: expected %s, got %s", tt.wantTotal, got.Total())
		})
	}
}
