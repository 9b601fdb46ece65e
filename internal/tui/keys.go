package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	NextTab      key.Binding
	PrevTab      key.Binding
	RateUp       key.Binding
	RateDown     key.Binding
	FilingStatus key.Binding
	State        key.Binding
	Frequency    key.Binding
	Help         key.Binding
	Quit         key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		NextTab: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab/→", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("shift+tab/←", "prev tab"),
		),
		RateUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "rate +$0.50"),
		),
		RateDown: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "rate -$0.50"),
		),
		FilingStatus: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "filing status"),
		),
		State: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "state"),
		),
		Frequency: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pay frequency"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.RateUp, k.RateDown, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextTab, k.PrevTab},
		{k.RateUp, k.RateDown},
		{k.FilingStatus, k.State, k.Frequency},
		{k.Help, k.Quit},
	}
}
