package tuistyles

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	ColorPrimary   = lipgloss.AdaptiveColor{Light: "#1F4E79", Dark: "#7AB8F5"}
	ColorSecondary = lipgloss.AdaptiveColor{Light: "#5B5B5B", Dark: "#B8B8B8"}
	ColorAccent    = lipgloss.AdaptiveColor{Light: "#B35900", Dark: "#FFB454"}
	ColorSuccess   = lipgloss.AdaptiveColor{Light: "#2E7D32", Dark: "#81C784"}
	ColorDanger    = lipgloss.AdaptiveColor{Light: "#C62828", Dark: "#E57373"}

	ColorForeground = lipgloss.AdaptiveColor{Light: "#222222", Dark: "#EEEEEE"}
	ColorMuted      = lipgloss.AdaptiveColor{Light: "#8A8A8A", Dark: "#777777"}
	ColorBorder     = lipgloss.AdaptiveColor{Light: "#C0C0C0", Dark: "#444444"}
)

// Base styles
var (
	AppStyle = lipgloss.NewStyle().Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	ActiveTabStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true).
			Underline(true).
			Padding(0, 1)

	InactiveTabStyle = lipgloss.NewStyle().
				Foreground(ColorSecondary).
				Padding(0, 1)

	SectionStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	MetricLabelStyle = lipgloss.NewStyle().
				Foreground(ColorMuted)

	MetricValueStyle = lipgloss.NewStyle().
				Foreground(ColorForeground).
				Bold(true)

	TableHeaderStyle = lipgloss.NewStyle().
				Foreground(ColorSecondary).
				Bold(true)

	TableCellStyle = lipgloss.NewStyle().
			Foreground(ColorForeground)

	TableHighlightStyle = lipgloss.NewStyle().
				Foreground(ColorSuccess).
				Bold(true)

	ParameterLabelStyle = lipgloss.NewStyle().
				Foreground(ColorSecondary)

	ParameterValueStyle = lipgloss.NewStyle().
				Foreground(ColorAccent)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorDanger).
			Bold(true)
)
