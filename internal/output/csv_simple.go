package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rgehrsitz/paygo/internal/domain"
)

// CSVFormatter writes one row per line item
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(stub *domain.Paystub) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"StubNumber", "EmployeeID", "PeriodStart", "PeriodEnd", "Section", "Item", "Hours", "Rate", "Current", "YTD"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	start := stub.PayPeriod.Start.Format(domain.DateLayout)
	end := stub.PayPeriod.End.Format(domain.DateLayout)
	for _, item := range LineItems(stub) {
		hours, rate, ytd := "", "", ""
		if item.Section == SectionEarnings {
			hours = item.Hours.StringFixed(2)
		}
		if item.HasRate {
			rate = item.Rate.StringFixed(2)
		}
		if item.HasYTD {
			ytd = item.YTD.StringFixed(2)
		}
		row := []string{
			stub.StubNumber,
			stub.Employee.EmployeeID,
			start,
			end,
			item.Section,
			item.Label,
			hours,
			rate,
			item.Current.StringFixed(2),
			ytd,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
