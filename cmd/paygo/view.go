package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rgehrsitz/paygo/internal/tui"
	"github.com/spf13/cobra"
)

var viewCmd = &cobra.Command{
	Use:   "view [request-file]",
	Short: "Open the interactive paystub viewer",
	Long: `Open the interactive paystub viewer. The hourly rate, filing status, state and
pay frequency can be changed in the viewer and the paystub is recalculated.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		requestPath := ""
		if len(args) > 0 {
			requestPath = args[0]
		}

		engine, err := newEngine()
		if err != nil {
			return err
		}
		// log output would draw over the alternate screen
		engine.SetLogger(nil)

		p := tea.NewProgram(tui.NewModel(requestPath, engine), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("error running viewer: %w", err)
		}
		return nil
	},
}
