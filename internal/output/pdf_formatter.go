package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"github.com/rgehrsitz/paygo/internal/domain"
)

// PDFFormatter renders a one-page printable stub
type PDFFormatter struct{}

func (p PDFFormatter) Name() string { return "pdf" }

// column widths in mm for description, hours, rate, current, ytd
var pdfColumns = []float64{70, 22, 26, 30, 32}

func (p PDFFormatter) Format(stub *domain.Paystub) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "Letter", "")
	pdf.SetTitle(fmt.Sprintf("Earnings Statement %s", stub.StubNumber), false)
	pdf.AddPage()
	// core fonts are cp1252; request text arrives as UTF-8
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Earnings Statement")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(100, 6, tr(stub.Employee.Name))
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, "Pay Period: "+formatPeriod(stub.PayPeriod))
	pdf.Ln(6)

	right := []string{
		fmt.Sprintf("Period %d of %d (%s)", stub.PayInfo.CurrentPeriod, stub.PayInfo.PeriodsPerYear, stub.PayInfo.Frequency),
		"Filing Status: " + FilingStatusLabel(stub.Employee.FilingStatus),
		"State: " + stub.Employee.StateCode,
	}
	left := append([]string{"Employee ID: " + stub.Employee.EmployeeID}, strings.Split(stub.Employee.Address, "\n")...)
	for i := 0; i < len(left) || i < len(right); i++ {
		l, r := "", ""
		if i < len(left) {
			l = left[i]
		}
		if i < len(right) {
			r = right[i]
		}
		pdf.Cell(100, 5, tr(l))
		pdf.Cell(0, 5, tr(r))
		pdf.Ln(5)
	}
	pdf.SetFont("Helvetica", "", 8)
	pdf.Cell(0, 5, "Stub Number: "+stub.StubNumber)
	pdf.Ln(9)

	pdf.SetFont("Helvetica", "B", 10)
	for i, h := range []string{"Description", "Hours", "Rate", "Current", "YTD"} {
		align := "R"
		if i == 0 {
			align = "L"
		}
		pdf.CellFormat(pdfColumns[i], 7, h, "B", 0, align, false, 0, "")
	}
	pdf.Ln(-1)

	for _, section := range GroupLineItems(LineItems(stub)) {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetFillColor(235, 235, 235)
		pdf.CellFormat(sumWidths(pdfColumns), 6, section.Name, "", 1, "L", true, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		for _, item := range section.Items {
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
			cells := []string{item.Label, hours, rate, FormatCurrency(item.Current), ytd}
			for i, c := range cells {
				align := "R"
				if i == 0 {
					align = "L"
				}
				pdf.CellFormat(pdfColumns[i], 6, c, "", 0, align, false, 0, "")
			}
			pdf.Ln(-1)
		}
	}
	pdf.Ln(4)

	s := stub.Summary
	pdf.SetFont("Helvetica", "B", 10)
	pdf.Cell(0, 6, "Summary")
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "", 10)
	rows := [][3]string{
		{"Gross Wages", FormatCurrency(s.GrossWages), ""},
		{"Income Taxes", FormatCurrency(s.TotalTaxes), FormatPercentage(s.TaxPercentage)},
		{"Benefit Deductions", FormatCurrency(s.TotalBenefitDeductions), FormatPercentage(s.BenefitPercentage)},
		{"Net Pay", FormatCurrency(s.NetPay), FormatPercentage(s.NetPercentage)},
	}
	for _, r := range rows {
		pdf.CellFormat(70, 6, r[0], "", 0, "L", false, 0, "")
		pdf.CellFormat(30, 6, r[1], "", 0, "R", false, 0, "")
		pdf.CellFormat(20, 6, r[2], "", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "I", 8)
	pdf.MultiCell(0, 4, fmt.Sprintf("%d tax tables. %s", stub.TaxYear, strings.Join(DefaultAssumptions, " ")), "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func sumWidths(ws []float64) float64 {
	var total float64
	for _, w := range ws {
		total += w
	}
	return total
}
