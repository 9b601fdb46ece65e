package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/paygo/internal/calculation"
	"github.com/rgehrsitz/paygo/internal/config"
	"github.com/rgehrsitz/paygo/internal/domain"
)

// Model represents the entire viewer state
type Model struct {
	currentScene Scene

	// Terminal dimensions
	width  int
	height int

	requestPath string
	engine      *calculation.CalculationEngine

	// Working request; parameter edits recalculate from it
	request     domain.PaystubRequest
	adjustments []config.Adjustment
	loaded      bool

	stub *domain.Paystub

	keys keyMap
	help help.Model

	err error

	loading        bool
	loadingMessage string

	// calcSeq increments with every calculation started
	calcSeq int
}

// NewModel creates a viewer for the request file at requestPath. An empty path starts
// from the default request. A nil engine uses the built-in tax tables.
func NewModel(requestPath string, engine *calculation.CalculationEngine) Model {
	if engine == nil {
		engine = calculation.NewCalculationEngine()
	}
	return Model{
		currentScene:   SceneCurrent,
		requestPath:    requestPath,
		engine:         engine,
		keys:           defaultKeyMap(),
		help:           help.New(),
		width:          80,
		height:         24,
		loading:        true,
		loadingMessage: "Loading request...",
	}
}

// Init initializes the model (required by tea.Model interface)
func (m Model) Init() tea.Cmd {
	return loadRequestCmd(m.requestPath)
}

// Stub returns the paystub currently displayed, nil before the first calculation
func (m Model) Stub() *domain.Paystub {
	return m.stub
}

// Request returns the working request
func (m Model) Request() domain.PaystubRequest {
	return m.request
}

// Scene returns the active tab
func (m Model) Scene() Scene {
	return m.currentScene
}

// loadRequestCmd returns a command that loads and normalizes the request file
func loadRequestCmd(path string) tea.Cmd {
	return func() tea.Msg {
		if path == "" {
			req, adjustments, err := config.Normalize(config.RawPaystubRequest{})
			if err != nil {
				return ErrorMsg{Err: err}
			}
			return RequestLoadedMsg{Request: req, Adjustments: adjustments}
		}

		parser := config.NewInputParser()
		req, adjustments, err := parser.LoadRequest(path)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return RequestLoadedMsg{Request: req, Adjustments: adjustments}
	}
}

// calculatePaystubCmd returns a command that runs the engine on req
func calculatePaystubCmd(engine *calculation.CalculationEngine, req domain.PaystubRequest, seq int) tea.Cmd {
	return func() tea.Msg {
		stub, err := engine.GeneratePaystub(req)
		return CalculationCompleteMsg{Seq: seq, Stub: stub, Err: err}
	}
}

func (s Scene) String() string {
	switch s {
	case SceneCurrent:
		return "Current"
	case SceneYTD:
		return "Year to Date"
	case SceneTaxes:
		return "Taxes"
	case SceneSummary:
		return "Summary"
	default:
		return "Unknown"
	}
}
