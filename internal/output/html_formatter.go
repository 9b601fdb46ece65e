package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/rgehrsitz/paygo/internal/domain"
)

// HTMLFormatter produces a printable HTML earnings statement
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/paystub.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("paystub").Funcs(template.FuncMap{
	"curr":  FormatCurrency,
	"pct":   FormatPercentage,
	"hours": FormatHours,
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(stub *domain.Paystub) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		Stub         *domain.Paystub
		Period       string
		FilingStatus string
		Sections     []Section
		Assumptions  []string
	}{stub, formatPeriod(stub.PayPeriod), FilingStatusLabel(stub.Employee.FilingStatus), GroupLineItems(LineItems(stub)), DefaultAssumptions}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
