package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var validateCmd = &cobra.Command{
	Use:   "validate [request-file]",
	Short: "Validate a request file and list the values that would be defaulted",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inputFile := args[0]

		_, adjustments, err := loadRequest(args)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(adjustments) == 0 {
			fmt.Fprintf(out, "Request file %s is valid\n", inputFile)
			return nil
		}

		fmt.Fprintf(out, "Request file %s is usable with %d adjustment(s):\n", inputFile, len(adjustments))
		for _, adj := range adjustments {
			fmt.Fprintf(out, "  %s\n", adj)
		}
		if viper.GetBool("strict") {
			return fmt.Errorf("%s: %d value(s) would be replaced with defaults", inputFile, len(adjustments))
		}
		return nil
	},
}

func init() {
	validateCmd.Flags().Bool("strict", false, "Fail when any value would be replaced with a default")
}
