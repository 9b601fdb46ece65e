package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rgehrsitz/paygo/internal/domain"
)

const consoleWidth = 78

// ConsoleFormatter renders the full earnings statement as plain text
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(stub *domain.Paystub) ([]byte, error) {
	var buf bytes.Buffer

	rule := strings.Repeat("=", consoleWidth)
	fmt.Fprintln(&buf, rule)
	fmt.Fprintln(&buf, centered("EARNINGS STATEMENT", consoleWidth))
	fmt.Fprintln(&buf, rule)
	fmt.Fprintf(&buf, "%-14s %s\n", "Employee:", stub.Employee.Name)
	fmt.Fprintf(&buf, "%-14s %s\n", "Employee ID:", stub.Employee.EmployeeID)
	for i, line := range strings.Split(stub.Employee.Address, "\n") {
		label := ""
		if i == 0 {
			label = "Address:"
		}
		fmt.Fprintf(&buf, "%-14s %s\n", label, line)
	}
	fmt.Fprintf(&buf, "%-14s %s\n", "Filing Status:", FilingStatusLabel(stub.Employee.FilingStatus))
	fmt.Fprintf(&buf, "%-14s %s\n", "State:", stub.Employee.StateCode)
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "%-14s %s\n", "Pay Period:", formatPeriod(stub.PayPeriod))
	fmt.Fprintf(&buf, "%-14s %s to %s\n", "Shift:", stub.TimeWorked.ClockIn, stub.TimeWorked.ClockOut)
	fmt.Fprintf(&buf, "%-14s %s (period %d of %d)\n", "Frequency:",
		stub.PayInfo.Frequency, stub.PayInfo.CurrentPeriod, stub.PayInfo.PeriodsPerYear)
	fmt.Fprintf(&buf, "%-14s %s\n", "Stub Number:", stub.StubNumber)
	fmt.Fprintln(&buf)

	section := ""
	for _, item := range LineItems(stub) {
		if item.Section != section {
			section = item.Section
			writeSectionHeader(&buf, section)
		}
		writeLineItem(&buf, item)
	}
	fmt.Fprintln(&buf)

	s := stub.Summary
	fmt.Fprintln(&buf, "SUMMARY")
	fmt.Fprintln(&buf, strings.Repeat("-", consoleWidth))
	fmt.Fprintf(&buf, "%-30s %14s %6s\n", "Gross Wages", FormatCurrency(s.GrossWages), "")
	fmt.Fprintf(&buf, "%-30s %14s %6s\n", "Income Taxes", FormatCurrency(s.TotalTaxes), FormatPercentage(s.TaxPercentage))
	fmt.Fprintf(&buf, "%-30s %14s %6s\n", "Benefit Deductions", FormatCurrency(s.TotalBenefitDeductions), FormatPercentage(s.BenefitPercentage))
	fmt.Fprintf(&buf, "%-30s %14s %6s\n", "Net Pay", FormatCurrency(s.NetPay), FormatPercentage(s.NetPercentage))
	fmt.Fprintln(&buf)

	fmt.Fprintf(&buf, "NOTES (%d tax tables):\n", stub.TaxYear)
	for _, a := range DefaultAssumptions {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	return buf.Bytes(), nil
}

func writeSectionHeader(buf *bytes.Buffer, section string) {
	fmt.Fprintln(buf)
	switch section {
	case SectionEarnings:
		fmt.Fprintf(buf, "%-30s %8s %10s %12s %14s\n", strings.ToUpper(section), "HOURS", "RATE", "CURRENT", "YTD")
	default:
		fmt.Fprintf(buf, "%-30s %8s %10s %12s %14s\n", strings.ToUpper(section), "", "", "CURRENT", "YTD")
	}
	fmt.Fprintln(buf, strings.Repeat("-", consoleWidth))
}

func writeLineItem(buf *bytes.Buffer, item LineItem) {
	hours, rate, ytd := "", "", ""
	if item.Section == SectionEarnings {
		hours = FormatHours(item.Hours)
	}
	if item.HasRate {
		rate = FormatCurrency(item.Rate)
	}
	if item.HasYTD {
		ytd = FormatCurrency(item.YTD)
	}
	fmt.Fprintf(buf, "%-30s %8s %10s %12s %14s\n", item.Label, hours, rate, FormatCurrency(item.Current), ytd)
}

func centered(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", (width-len(s))/2) + s
}

// ConsoleLiteFormatter prints the one-screen summary: gross, tax groups and net
type ConsoleLiteFormatter struct{}

func (c ConsoleLiteFormatter) Name() string { return "console-lite" }

func (c ConsoleLiteFormatter) Format(stub *domain.Paystub) ([]byte, error) {
	var buf bytes.Buffer
	d := stub.Deductions
	fmt.Fprintf(&buf, "%s (%s) %s\n", stub.Employee.Name, stub.Employee.EmployeeID, formatPeriod(stub.PayPeriod))
	fmt.Fprintf(&buf, "  %-20s %12s  (%s hrs)\n", "Gross Pay", FormatCurrency(stub.Earnings.Gross), FormatHours(stub.Earnings.HoursWorked))
	fmt.Fprintf(&buf, "  %-20s %12s\n", "Federal Tax", FormatCurrency(d.FederalTax.Current))
	fmt.Fprintf(&buf, "  %-20s %12s\n", "State Tax", FormatCurrency(d.StateTax.Current))
	fmt.Fprintf(&buf, "  %-20s %12s\n", "Social Security", FormatCurrency(d.SocialSecurity.Current))
	fmt.Fprintf(&buf, "  %-20s %12s\n", "Medicare", FormatCurrency(d.Medicare.Current))
	fmt.Fprintf(&buf, "  %-20s %12s\n", "Pre-Tax Deductions", FormatCurrency(d.PreTax.Total))
	fmt.Fprintf(&buf, "  %-20s %12s\n", "Post-Tax Deductions", FormatCurrency(d.PostTax.Total))
	fmt.Fprintf(&buf, "  %-20s %12s  (%s of gross)\n", "Net Pay", FormatCurrency(stub.NetPay.Current), FormatPercentage(stub.Summary.NetPercentage))
	return buf.Bytes(), nil
}
