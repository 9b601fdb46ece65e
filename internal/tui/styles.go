package tui

import "github.com/rgehrsitz/paygo/internal/tui/tuistyles"

// Re-export styles from tuistyles so components and the root model share one palette
var (
	ColorPrimary = tuistyles.ColorPrimary
	ColorSuccess = tuistyles.ColorSuccess
	ColorDanger  = tuistyles.ColorDanger

	AppStyle            = tuistyles.AppStyle
	TitleStyle          = tuistyles.TitleStyle
	SubtitleStyle       = tuistyles.SubtitleStyle
	BorderStyle         = tuistyles.BorderStyle
	ActiveTabStyle      = tuistyles.ActiveTabStyle
	InactiveTabStyle    = tuistyles.InactiveTabStyle
	SectionStyle        = tuistyles.SectionStyle
	TableHeaderStyle    = tuistyles.TableHeaderStyle
	TableCellStyle      = tuistyles.TableCellStyle
	TableHighlightStyle = tuistyles.TableHighlightStyle
	ParameterLabelStyle = tuistyles.ParameterLabelStyle
	ParameterValueStyle = tuistyles.ParameterValueStyle
	ErrorStyle          = tuistyles.ErrorStyle
)
