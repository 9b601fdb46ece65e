package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/paygo/internal/domain"
	"github.com/rgehrsitz/paygo/internal/output"
	"github.com/rgehrsitz/paygo/internal/tui/components"
)

// View renders the current state of the viewer
func (m Model) View() string {
	if m.err != nil {
		return m.renderApp(m.renderError())
	}
	if m.stub == nil {
		return m.renderApp(m.renderLoading())
	}

	var content string
	switch m.currentScene {
	case SceneCurrent:
		content = m.renderCurrent()
	case SceneYTD:
		content = m.renderYTD()
	case SceneTaxes:
		content = m.renderTaxes()
	case SceneSummary:
		content = m.renderSummary()
	default:
		content = "Unknown scene"
	}

	return m.renderApp(content)
}

// renderApp wraps content with the title bar, tabs, parameters and help
func (m Model) renderApp(content string) string {
	parts := []string{m.renderTitleBar(), m.renderTabs(), content}
	if m.loaded {
		parts = append(parts, m.renderParameters())
	}
	parts = append(parts, m.help.View(m.keys))
	return AppStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m Model) renderTitleBar() string {
	title := TitleStyle.Render("PAYGO - Paystub Calculator")
	if m.stub == nil {
		return title
	}
	sub := SubtitleStyle.Render(fmt.Sprintf("%s (%s)  %s  stub %s",
		m.stub.Employee.Name, m.stub.Employee.EmployeeID, m.stub.PayPeriod, shortID(m.stub.StubNumber)))
	return lipgloss.JoinVertical(lipgloss.Left, title, sub)
}

func (m Model) renderTabs() string {
	tabs := make([]string, 0, sceneCount)
	for s := Scene(0); s < sceneCount; s++ {
		style := InactiveTabStyle
		if s == m.currentScene {
			style = ActiveTabStyle
		}
		tabs = append(tabs, style.Render(s.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderParameters() string {
	emp := m.request.Employee
	param := func(label, value string) string {
		return ParameterLabelStyle.Render(label+" ") + ParameterValueStyle.Render(value)
	}
	line := strings.Join([]string{
		param("rate", output.FormatCurrency(emp.HourlyRate)+"/hr"),
		param("filing", output.FilingStatusLabel(emp.FilingStatus)),
		param("state", emp.StateCode),
		param("frequency", string(emp.PayFrequency)),
	}, "  ")
	if n := len(m.adjustments); n > 0 {
		line += "  " + SubtitleStyle.Render(fmt.Sprintf("(%d input values defaulted)", n))
	}
	return line
}

func (m Model) renderLoading() string {
	message := m.loadingMessage
	if message == "" {
		message = "Loading..."
	}
	return BorderStyle.Render("⠋ " + message)
}

func (m Model) renderError() string {
	return ErrorStyle.Render(fmt.Sprintf("Error: %s\n\nPress any key to continue...", m.err))
}

func (m Model) renderCurrent() string {
	var b strings.Builder
	fmt.Fprintln(&b, TableHeaderStyle.Render(fmt.Sprintf("%-26s %8s %10s %12s", "", "HOURS", "RATE", "CURRENT")))
	for _, section := range output.GroupLineItems(output.LineItems(m.stub)) {
		fmt.Fprintln(&b, SectionStyle.Render(section.Name))
		for _, item := range section.Items {
			hours, rate := "", ""
			if item.Section == output.SectionEarnings {
				hours = output.FormatHours(item.Hours)
			}
			if item.HasRate {
				rate = output.FormatCurrency(item.Rate)
			}
			row := fmt.Sprintf("  %-24s %8s %10s %12s", item.Label, hours, rate, output.FormatCurrency(item.Current))
			fmt.Fprintln(&b, rowStyle(item).Render(row))
		}
	}
	return BorderStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func (m Model) renderYTD() string {
	var b strings.Builder
	fmt.Fprintln(&b, TableHeaderStyle.Render(fmt.Sprintf("%-26s %12s %14s", "", "CURRENT", "YTD")))
	for _, item := range output.LineItems(m.stub) {
		if !item.HasYTD {
			continue
		}
		row := fmt.Sprintf("  %-24s %12s %14s", item.Label, output.FormatCurrency(item.Current), output.FormatCurrency(item.YTD))
		fmt.Fprintln(&b, rowStyle(item).Render(row))
	}
	fmt.Fprintln(&b)
	fmt.Fprint(&b, SubtitleStyle.Render(fmt.Sprintf("Pay period %d of %d (%s), estimated from prior YTD gross %s",
		m.stub.PayInfo.CurrentPeriod, m.stub.PayInfo.PeriodsPerYear, m.stub.PayInfo.Frequency,
		output.FormatCurrency(m.request.Employee.YTDGrossPrior))))
	return BorderStyle.Render(b.String())
}

func (m Model) renderTaxes() string {
	t := m.stub.Deductions.Taxes
	var b strings.Builder
	fmt.Fprintln(&b, TableHeaderStyle.Render(fmt.Sprintf("%-22s %14s %12s %14s", "", "TAXABLE WAGES", "CURRENT", "YTD")))
	line := func(label string, l domain.TaxLine) {
		fmt.Fprintln(&b, TableCellStyle.Render(fmt.Sprintf("%-22s %14s %12s %14s", label,
			output.FormatCurrency(l.TaxableWages), output.FormatCurrency(l.Current), output.FormatCurrency(l.YTD))))
	}
	line("Federal Income Tax", t.FederalIncomeTax)
	line("State Income Tax", t.StateIncomeTax)
	line("SDI", t.SDI)
	line("Social Security", t.SocialSecurity.TaxLine)
	line("Medicare", t.Medicare)
	line("Additional Medicare", t.AdditionalMedicare.TaxLine)
	fmt.Fprintln(&b)
	fmt.Fprintf(&b, "%s\n", SubtitleStyle.Render(fmt.Sprintf("Social Security wage base %s (max tax %s)",
		output.FormatCurrency(t.SocialSecurity.WageBase), output.FormatCurrency(t.SocialSecurity.MaxTax))))
	fmt.Fprint(&b, SubtitleStyle.Render(fmt.Sprintf("Additional Medicare above %s  |  %d tax tables",
		output.FormatCurrency(t.AdditionalMedicare.Threshold), m.stub.TaxYear)))
	return BorderStyle.Render(b.String())
}

func (m Model) renderSummary() string {
	s := m.stub.Summary
	cards := []*components.MetricCard{
		components.NewMetricCard("Gross Wages", output.FormatCurrency(s.GrossWages)),
		components.NewMetricCard("Income Taxes", output.FormatCurrency(s.TotalTaxes)).
			WithDescription(output.FormatPercentage(s.TaxPercentage) + " of gross"),
		components.NewMetricCard("Benefits", output.FormatCurrency(s.TotalBenefitDeductions)).
			WithDescription(output.FormatPercentage(s.BenefitPercentage) + " of gross"),
		components.NewMetricCard("Net Pay", output.FormatCurrency(s.NetPay)).
			WithDescription(output.FormatPercentage(s.NetPercentage) + " of gross"),
	}
	columns := 4
	if m.width < 100 {
		columns = 2
	}

	bars := []string{
		components.NewShareBar("Income taxes", int(s.TaxPercentage.IntPart())).WithColor(ColorDanger).Render(),
		components.NewShareBar("Benefit deductions", int(s.BenefitPercentage.IntPart())).WithColor(ColorPrimary).Render(),
		components.NewShareBar("Net pay", int(s.NetPercentage.IntPart())).WithColor(ColorSuccess).Render(),
	}
	return lipgloss.JoinVertical(lipgloss.Left, components.MetricGrid(cards, columns), "", strings.Join(bars, "\n"))
}

func rowStyle(item output.LineItem) lipgloss.Style {
	if item.Label == "Net Pay" {
		return TableHighlightStyle
	}
	return TableCellStyle
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
