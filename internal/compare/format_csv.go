package compare

import (
	"encoding/csv"
	"strconv"
	"strings"
)

// CSVFormatter formats comparison results as CSV
type CSVFormatter struct{}

// Format generates CSV output for comparison results
func (cf *CSVFormatter) Format(compSet *ComparisonSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Scenario",
		"Type",
		"Description",
		"Filing Status",
		"State",
		"Pay Frequency",
		"Hourly Rate",
		"Gross Pay",
		"Income Taxes",
		"FICA Taxes",
		"Benefit Deductions",
		"Net Pay",
		"Periods Per Year",
		"Annual Net Pay",
		"Net Diff from Base",
		"Net % Change",
		"Annual Net Diff from Base",
		"Annual Tax Diff from Base",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	if compSet.BaseResult != nil {
		if err := writer.Write(cf.formatRow(compSet.BaseResult, "base")); err != nil {
			return "", err
		}
	}

	for i := range compSet.AlternativeResults {
		if err := writer.Write(cf.formatRow(&compSet.AlternativeResults[i], "alternative")); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// formatRow formats a comparison result as a CSV row
func (cf *CSVFormatter) formatRow(result *ComparisonResult, scenarioType string) []string {
	return []string{
		result.ScenarioName,
		scenarioType,
		result.Description,
		result.FilingStatus,
		result.StateCode,
		result.PayFrequency,
		result.HourlyRate.StringFixed(2),
		result.GrossPay.StringFixed(2),
		result.IncomeTaxes.StringFixed(2),
		result.FICATaxes.StringFixed(2),
		result.BenefitDeductions.StringFixed(2),
		result.NetPay.StringFixed(2),
		strconv.Itoa(result.PeriodsPerYear),
		result.AnnualNetPay.StringFixed(2),
		result.NetDiffFromBase.StringFixed(2),
		result.NetPctFromBase.StringFixed(2),
		result.AnnualNetDiffFromBase.StringFixed(2),
		result.TaxDiffFromBase.StringFixed(2),
	}
}
