package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/paygo/internal/domain"
)

// Parameters the viewer can edit
const (
	ParamHourlyRate   = "hourly_rate"
	ParamFilingStatus = "filing_status"
	ParamStateCode    = "state_code"
	ParamPayFrequency = "pay_frequency"
)

var rateStep = decimal.RequireFromString("0.50")

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case NavigateMsg:
		m.currentScene = msg.Scene
		return m, nil

	case ErrorMsg:
		m.loading = false
		m.err = msg.Err
		return m, nil

	case RequestLoadedMsg:
		m.request = msg.Request
		m.adjustments = msg.Adjustments
		m.loaded = true
		m.loadingMessage = "Calculating paystub..."
		m.calcSeq++
		return m, calculatePaystubCmd(m.engine, m.request, m.calcSeq)

	case ParameterChangedMsg:
		m.loading = true
		m.loadingMessage = "Recalculating..."
		m.calcSeq++
		return m, calculatePaystubCmd(m.engine, m.request, m.calcSeq)

	case CalculationCompleteMsg:
		if msg.Seq != m.calcSeq {
			return m, nil
		}
		m.loading = false
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.err = nil
		m.stub = msg.Stub
		return m, nil
	}

	return m, nil
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	// Any other key dismisses an error
	if m.err != nil {
		m.err = nil
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.NextTab):
		next := (m.currentScene + 1) % sceneCount
		return m, navigate(next)

	case key.Matches(msg, m.keys.PrevTab):
		prev := (m.currentScene + sceneCount - 1) % sceneCount
		return m, navigate(prev)
	}

	if !m.loaded {
		return m, nil
	}

	emp := &m.request.Employee
	switch {
	case key.Matches(msg, m.keys.RateUp):
		emp.HourlyRate = emp.HourlyRate.Add(rateStep)
		return m, parameterChanged(ParamHourlyRate, emp.HourlyRate.StringFixed(2))

	case key.Matches(msg, m.keys.RateDown):
		emp.HourlyRate = emp.HourlyRate.Sub(rateStep)
		if emp.HourlyRate.IsNegative() {
			emp.HourlyRate = decimal.Zero
		}
		return m, parameterChanged(ParamHourlyRate, emp.HourlyRate.StringFixed(2))

	case key.Matches(msg, m.keys.FilingStatus):
		emp.FilingStatus = nextOf(domain.FilingStatuses, emp.FilingStatus)
		return m, parameterChanged(ParamFilingStatus, string(emp.FilingStatus))

	case key.Matches(msg, m.keys.State):
		emp.StateCode = nextOf(m.engine.Tables.StateCodes(), emp.StateCode)
		return m, parameterChanged(ParamStateCode, emp.StateCode)

	case key.Matches(msg, m.keys.Frequency):
		emp.PayFrequency = nextOf(domain.PayFrequencies, emp.PayFrequency)
		return m, parameterChanged(ParamPayFrequency, string(emp.PayFrequency))
	}

	return m, nil
}

func navigate(s Scene) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Scene: s}
	}
}

func parameterChanged(param, value string) tea.Cmd {
	return func() tea.Msg {
		return ParameterChangedMsg{Parameter: param, Value: value}
	}
}

// nextOf returns the element after current, wrapping; unknown values move to the first
func nextOf[T comparable](values []T, current T) T {
	for i, v := range values {
		if v == current {
			return values[(i+1)%len(values)]
		}
	}
	return values[0]
}
