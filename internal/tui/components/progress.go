package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/paygo/internal/tui/tuistyles"
)

// ShareBar draws a labelled bar for a whole-number percentage of gross pay
type ShareBar struct {
	Label   string
	Percent int
	Width   int
	Color   lipgloss.TerminalColor
}

// NewShareBar creates a share bar; percent is clamped to 0-100 when drawn
func NewShareBar(label string, percent int) *ShareBar {
	return &ShareBar{
		Label:   label,
		Percent: percent,
		Width:   30,
		Color:   tuistyles.ColorSuccess,
	}
}

// WithColor sets the filled segment color
func (b *ShareBar) WithColor(c lipgloss.TerminalColor) *ShareBar {
	b.Color = c
	return b
}

// WithWidth sets the bar width in cells
func (b *ShareBar) WithWidth(width int) *ShareBar {
	b.Width = width
	return b
}

// Filled returns the number of filled cells
func (b *ShareBar) Filled() int {
	p := b.Percent
	if p < 0 {
		p = 0
	}
	if p > 100 {
		p = 100
	}
	return b.Width * p / 100
}

// Render returns the styled bar
func (b *ShareBar) Render() string {
	filled := b.Filled()
	empty := b.Width - filled

	barStyle := lipgloss.NewStyle().Foreground(b.Color)
	emptyStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorBorder)

	var content strings.Builder
	content.WriteString(tuistyles.MetricLabelStyle.Render(fmt.Sprintf("%-20s", b.Label)))
	content.WriteString(" [")
	if filled > 0 {
		content.WriteString(barStyle.Render(strings.Repeat("█", filled)))
	}
	if empty > 0 {
		content.WriteString(emptyStyle.Render(strings.Repeat("░", empty)))
	}
	content.WriteString("] ")
	content.WriteString(tuistyles.MetricValueStyle.Render(fmt.Sprintf("%d%%", b.Percent)))
	return content.String()
}
