package output

import (
	"strings"

	"github.com/rgehrsitz/paygo/internal/domain"
	"github.com/shopspring/decimal"
)

// Sections of a paystub, in print order
const (
	SectionEarnings = "Earnings"
	SectionPreTax   = "Pre-Tax Deductions"
	SectionTaxes    = "Taxes"
	SectionPostTax  = "Post-Tax Deductions"
	SectionNet      = "Net Pay"
)

// LineItem is one printable row of a paystub. HasYTD is false for rows the record
// carries no year-to-date figure for.
type LineItem struct {
	Section string
	Label   string
	Hours   decimal.Decimal
	Rate    decimal.Decimal
	Current decimal.Decimal
	YTD     decimal.Decimal
	HasYTD  bool
	HasRate bool
}

// LineItems flattens a paystub into rows in print order. Values are copied from the
// record as-is.
func LineItems(stub *domain.Paystub) []LineItem {
	e := stub.Earnings
	d := stub.Deductions
	t := d.Taxes
	pre := d.PreTax.Items
	post := d.PostTax.Items

	earning := func(label string, l domain.EarningsLine) LineItem {
		return LineItem{Section: SectionEarnings, Label: label, Hours: l.Hours, Rate: l.Rate, Current: l.Amount, HasRate: true}
	}
	item := func(section, label string, current decimal.Decimal) LineItem {
		return LineItem{Section: section, Label: label, Current: current}
	}
	tax := func(label string, l domain.TaxLine) LineItem {
		return LineItem{Section: SectionTaxes, Label: label, Current: l.Current, YTD: l.YTD, HasYTD: true}
	}

	return []LineItem{
		earning("Regular", e.Regular),
		earning("Overtime", e.Overtime),
		earning("Double Time", e.DoubleTime),
		{Section: SectionEarnings, Label: "Gross Pay", Hours: e.HoursWorked, Current: e.Gross, YTD: stub.YTD.Gross, HasYTD: true},

		item(SectionPreTax, "Health Insurance", pre.Health),
		item(SectionPreTax, "Dental", pre.Dental),
		item(SectionPreTax, "401(k)", pre.Retirement401k),
		item(SectionPreTax, "HSA", pre.HSA),

		tax("Federal Income Tax", t.FederalIncomeTax),
		tax("State Income Tax", t.StateIncomeTax),
		tax("SDI", t.SDI),
		tax("Social Security", t.SocialSecurity.TaxLine),
		tax("Medicare", t.Medicare),
		tax("Additional Medicare", t.AdditionalMedicare.TaxLine),

		item(SectionPostTax, "Parking", post.Parking),
		item(SectionPostTax, "Life Insurance", post.LifeInsurance),
		item(SectionPostTax, "Garnishment", post.Garnishment),

		{Section: SectionNet, Label: "Total Deductions", Current: d.Total.Current, YTD: d.Total.YTD, HasYTD: true},
		{Section: SectionNet, Label: "Net Pay", Current: stub.NetPay.Current, YTD: stub.NetPay.YTD, HasYTD: true},
	}
}

// Section is a titled group of consecutive line items
type Section struct {
	Name  string
	Items []LineItem
}

// GroupLineItems splits line items into sections, keeping their order
func GroupLineItems(items []LineItem) []Section {
	var sections []Section
	for _, item := range items {
		if n := len(sections); n > 0 && sections[n-1].Name == item.Section {
			sections[n-1].Items = append(sections[n-1].Items, item)
			continue
		}
		sections = append(sections, Section{Name: item.Section, Items: []LineItem{item}})
	}
	return sections
}

// FormatCurrency formats a decimal as US currency with thousands separators
func FormatCurrency(amount decimal.Decimal) string {
	s := amount.Abs().StringFixed(2)
	intPart, frac := s[:len(s)-3], s[len(s)-3:]

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	sign := ""
	if amount.IsNegative() && !amount.Round(2).IsZero() {
		sign = "-"
	}
	return sign + "$" + b.String() + frac
}

// FormatPercentage formats a whole-number percentage
func FormatPercentage(amount decimal.Decimal) string {
	return amount.StringFixed(0) + "%"
}

// FormatHours formats hours to two places
func FormatHours(hours decimal.Decimal) string {
	return hours.StringFixed(2)
}

// FilingStatusLabel returns the printed name of a filing status
func FilingStatusLabel(fs domain.FilingStatus) string {
	switch fs {
	case domain.FilingSingle:
		return "Single"
	case domain.FilingMarriedJointly:
		return "Married Filing Jointly"
	case domain.FilingMarriedSeparately:
		return "Married Filing Separately"
	case domain.FilingHeadOfHousehold:
		return "Head of Household"
	default:
		return string(fs)
	}
}

// formatPeriod renders a pay period as "Apr 1, 2024 - Apr 15, 2024"
func formatPeriod(pp domain.PayPeriod) string {
	const layout = "Jan 2, 2006"
	return pp.Start.Format(layout) + " - " + pp.End.Format(layout)
}
