package compare

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/paygo/internal/output"
)

// TableFormatter formats comparison results as a console table
type TableFormatter struct{}

// Format generates a formatted table comparing the base paystub with its alternatives
func (tf *TableFormatter) Format(compSet *ComparisonSet) string {
	var sb strings.Builder

	// Header
	sb.WriteString("PAYSTUB WHAT-IF COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")
	if compSet.RequestPath != "" {
		sb.WriteString(fmt.Sprintf("Request: %s\n", compSet.RequestPath))
	}
	sb.WriteString("\n")

	table := tablewriter.NewWriter(&sb)
	table.SetHeader([]string{"Scenario", "Gross", "Income Tax", "FICA", "Benefits", "Net Pay", "Annual Net"})
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)

	if base := compSet.BaseResult; base != nil {
		table.Append(tf.formatRow(base, true))
	}
	for i := range compSet.AlternativeResults {
		table.Append(tf.formatRow(&compSet.AlternativeResults[i], false))
	}
	table.Render()

	// Comparison details (deltas from base)
	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString("\nCOMPARISON TO BASE\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")

		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(fmt.Sprintf("\n%s: %s\n", alt.ScenarioName, alt.Description))
			sb.WriteString(fmt.Sprintf("  Net Pay:     %s%s per period (%s%%)\n",
				tf.deltaSymbol(alt.NetDiffFromBase),
				output.FormatCurrency(alt.NetDiffFromBase.Abs()),
				alt.NetPctFromBase.StringFixed(1)))
			sb.WriteString(fmt.Sprintf("  Annual Net:  %s%s\n",
				tf.deltaSymbol(alt.AnnualNetDiffFromBase),
				output.FormatCurrency(alt.AnnualNetDiffFromBase.Abs())))

			if !alt.TaxDiffFromBase.IsZero() {
				// lower taxes read as a gain
				sb.WriteString(fmt.Sprintf("  Tax Impact:  %s%s per year\n",
					tf.deltaSymbol(alt.TaxDiffFromBase.Neg()),
					output.FormatCurrency(alt.TaxDiffFromBase.Abs())))
			}
		}
	}

	// Recommendations
	if len(compSet.Recommendations) > 0 {
		sb.WriteString("\nRECOMMENDATIONS\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, rec := range compSet.Recommendations {
			sb.WriteString(fmt.Sprintf("• %s\n", rec))
		}
	}

	return sb.String()
}

// formatRow formats a single scenario row
func (tf *TableFormatter) formatRow(result *ComparisonResult, isBase bool) []string {
	name := result.ScenarioName
	if isBase {
		name += " (base)"
	}
	return []string{
		tf.truncate(name, 28),
		output.FormatCurrency(result.GrossPay),
		output.FormatCurrency(result.IncomeTaxes),
		output.FormatCurrency(result.FICATaxes),
		output.FormatCurrency(result.BenefitDeductions),
		output.FormatCurrency(result.NetPay),
		output.FormatCurrency(result.AnnualNetPay),
	}
}

// deltaSymbol returns + for gains and - for losses
func (tf *TableFormatter) deltaSymbol(delta decimal.Decimal) string {
	if delta.IsPositive() {
		return "+"
	} else if delta.IsNegative() {
		return "-"
	}
	return " "
}

// truncate truncates a string to maxLen
func (tf *TableFormatter) truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// FormatCompact creates a compact single-line summary of the net pay change per alternative
func (tf *TableFormatter) FormatCompact(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Base: %s | ", output.FormatCurrency(compSet.BaseResult.NetPay)))

	for i, alt := range compSet.AlternativeResults {
		if i > 0 {
			sb.WriteString(" | ")
		}
		change := "="
		if !alt.NetDiffFromBase.IsZero() {
			change = tf.deltaSymbol(alt.NetDiffFromBase) + output.FormatCurrency(alt.NetDiffFromBase.Abs())
		}
		sb.WriteString(fmt.Sprintf("%s: %s", alt.ScenarioName, change))
	}

	return sb.String()
}
