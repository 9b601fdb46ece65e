package compare

import (
	"fmt"

	"github.com/rgehrsitz/paygo/internal/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ComparisonResult represents one priced request with the metrics used to compare it
type ComparisonResult struct {
	ScenarioName string          `json:"scenarioName"`
	Description  string          `json:"description"`
	Stub         *domain.Paystub `json:"-"`

	// Key Metrics (per period)
	GrossPay          decimal.Decimal `json:"grossPay"`
	IncomeTaxes       decimal.Decimal `json:"incomeTaxes"`
	FICATaxes         decimal.Decimal `json:"ficaTaxes"`
	BenefitDeductions decimal.Decimal `json:"benefitDeductions"`
	NetPay            decimal.Decimal `json:"netPay"`

	// Annualized, so requests with different pay frequencies compare fairly
	PeriodsPerYear int             `json:"periodsPerYear"`
	AnnualNetPay   decimal.Decimal `json:"annualNetPay"`
	AnnualTaxes    decimal.Decimal `json:"annualTaxes"`

	// Comparison to Base
	NetDiffFromBase       decimal.Decimal `json:"netDiffFromBase"`
	NetPctFromBase        decimal.Decimal `json:"netPctFromBase"`
	AnnualNetDiffFromBase decimal.Decimal `json:"annualNetDiffFromBase"`
	TaxDiffFromBase       decimal.Decimal `json:"taxDiffFromBase"`

	// Request specifics (extracted for display)
	FilingStatus string          `json:"filingStatus"`
	StateCode    string          `json:"stateCode"`
	PayFrequency string          `json:"payFrequency"`
	HourlyRate   decimal.Decimal `json:"hourlyRate"`
}

// TotalTaxes returns income taxes plus FICA for the period
func (r ComparisonResult) TotalTaxes() decimal.Decimal {
	return r.IncomeTaxes.Add(r.FICATaxes)
}

// ComparisonSet represents a base paystub and its alternatives
type ComparisonSet struct {
	BaseScenarioName   string             `json:"baseScenarioName"`
	BaseResult         *ComparisonResult  `json:"baseResult"`
	AlternativeResults []ComparisonResult `json:"alternativeResults"`
	Recommendations    []string           `json:"recommendations"`
	RequestPath        string             `json:"requestPath"`
}

// MetricsCalculator extracts key metrics from paystubs
type MetricsCalculator struct{}

// NewMetricsCalculator creates a new metrics calculator
func NewMetricsCalculator() *MetricsCalculator {
	return &MetricsCalculator{}
}

// CalculateMetrics computes all comparison metrics for a paystub
func (mc *MetricsCalculator) CalculateMetrics(name string, stub *domain.Paystub) ComparisonResult {
	taxes := stub.Deductions.Taxes
	incomeTaxes := decimal.Sum(taxes.FederalIncomeTax.Current, taxes.StateIncomeTax.Current, taxes.SDI.Current)
	ficaTaxes := decimal.Sum(taxes.SocialSecurity.Current, taxes.Medicare.Current, taxes.AdditionalMedicare.Current)
	periods := decimal.NewFromInt(int64(stub.PayInfo.PeriodsPerYear))

	return ComparisonResult{
		ScenarioName:      name,
		Stub:              stub,
		GrossPay:          stub.Earnings.Gross,
		IncomeTaxes:       incomeTaxes,
		FICATaxes:         ficaTaxes,
		BenefitDeductions: stub.Summary.TotalBenefitDeductions,
		NetPay:            stub.NetPay.Current,
		PeriodsPerYear:    stub.PayInfo.PeriodsPerYear,
		AnnualNetPay:      stub.NetPay.Current.Mul(periods),
		AnnualTaxes:       incomeTaxes.Add(ficaTaxes).Mul(periods),
		FilingStatus:      string(stub.Employee.FilingStatus),
		StateCode:         stub.Employee.StateCode,
		PayFrequency:      string(stub.PayInfo.Frequency),
		HourlyRate:        stub.Earnings.Regular.Rate,
	}
}

// CalculateComparison computes comparison metrics between a result and the base
func (mc *MetricsCalculator) CalculateComparison(scenario, base ComparisonResult) ComparisonResult {
	scenario.NetDiffFromBase = scenario.NetPay.Sub(base.NetPay)

	if !base.NetPay.IsZero() {
		scenario.NetPctFromBase = scenario.NetDiffFromBase.
			Div(base.NetPay).
			Mul(hundred).
			Round(2)
	}

	scenario.AnnualNetDiffFromBase = scenario.AnnualNetPay.Sub(base.AnnualNetPay)
	scenario.TaxDiffFromBase = scenario.AnnualTaxes.Sub(base.AnnualTaxes)

	return scenario
}

// GenerateRecommendations highlights the alternatives that beat the base
func GenerateRecommendations(compSet *ComparisonSet) []string {
	recommendations := []string{}

	if compSet.BaseResult == nil || len(compSet.AlternativeResults) == 0 {
		return recommendations
	}
	base := compSet.BaseResult

	// Highest take-home per year
	best := base
	for i := range compSet.AlternativeResults {
		if alt := &compSet.AlternativeResults[i]; alt.AnnualNetPay.GreaterThan(best.AnnualNetPay) {
			best = alt
		}
	}
	if best != base {
		recommendations = append(recommendations,
			fmt.Sprintf("Highest Net Pay: %s takes home $%s more per year than the base",
				best.ScenarioName, best.AnnualNetPay.Sub(base.AnnualNetPay).StringFixed(2)))
	}

	// Lowest annual taxes
	lowest := base
	for i := range compSet.AlternativeResults {
		if alt := &compSet.AlternativeResults[i]; alt.AnnualTaxes.LessThan(lowest.AnnualTaxes) {
			lowest = alt
		}
	}
	if lowest != base {
		recommendations = append(recommendations,
			fmt.Sprintf("Lowest Taxes: %s withholds $%s less per year",
				lowest.ScenarioName, base.AnnualTaxes.Sub(lowest.AnnualTaxes).StringFixed(2)))
	}

	// Alternatives that lose take-home pay
	for _, alt := range compSet.AlternativeResults {
		if alt.AnnualNetDiffFromBase.IsNegative() {
			recommendations = append(recommendations,
				fmt.Sprintf("Reduces Net Pay: %s takes home $%s less per year",
					alt.ScenarioName, alt.AnnualNetDiffFromBase.Abs().StringFixed(2)))
		}
	}

	return recommendations
}
