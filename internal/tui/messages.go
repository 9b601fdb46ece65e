package tui

import (
	"github.com/rgehrsitz/paygo/internal/config"
	"github.com/rgehrsitz/paygo/internal/domain"
)

// Scene represents the tabs of the paystub viewer
type Scene int

const (
	SceneCurrent Scene = iota
	SceneYTD
	SceneTaxes
	SceneSummary
)

// sceneCount is the number of tabs
const sceneCount = 4

// Message types for the Bubble Tea update cycle

// NavigateMsg switches to a different tab
type NavigateMsg struct {
	Scene Scene
}

// ErrorMsg displays an error to the user
type ErrorMsg struct {
	Err error
}

// RequestLoadedMsg carries a normalized request and the values normalization replaced
type RequestLoadedMsg struct {
	Request     domain.PaystubRequest
	Adjustments []config.Adjustment
}

// ParameterChangedMsg signals an employee parameter was edited in the viewer
type ParameterChangedMsg struct {
	Parameter string
	Value     string
}

// CalculationCompleteMsg signals a paystub calculation has finished. Seq identifies the
// request that started it; results for anything but the latest request are dropped.
type CalculationCompleteMsg struct {
	Seq  int
	Stub *domain.Paystub
	Err  error
}
