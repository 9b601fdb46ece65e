package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rgehrsitz/paygo/internal/config"
	"github.com/rgehrsitz/paygo/internal/domain"
	"github.com/rgehrsitz/paygo/internal/output"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// outputAuto writes to paystub_<employee>_<start>.<ext> in the working directory
const outputAuto = "auto"

var fileExtensions = map[string]string{
	"console":      "txt",
	"console-lite": "txt",
	"json":         "json",
	"yaml":         "yaml",
	"csv":          "csv",
	"html":         "html",
	"pdf":          "pdf",
}

var generateCmd = &cobra.Command{
	Use:   "generate [request-file]",
	Short: "Calculate a paystub",
	Long: `Calculate a paystub from a YAML or JSON request file.

Missing or malformed values are replaced with defaults and logged as warnings.
Without a request file the default request is used.

Examples:
  # Print the full statement
  paygo generate request.yaml

  # Write a PDF named after the employee and pay period
  paygo generate request.yaml --format pdf --output auto

  # Use custom tax tables and fail on zero-length shifts
  paygo generate request.yaml --tables tables_2025.yaml --require-hours`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		formatName := viper.GetString("format")
		f := output.GetFormatterByName(formatName)
		if f == nil {
			return fmt.Errorf("unknown format %q (available: %s)", formatName, strings.Join(output.AvailableFormatterNames(), ", "))
		}

		req, _, err := loadRequest(args)
		if err != nil {
			return err
		}

		engine, err := newEngine()
		if err != nil {
			return err
		}
		stub, err := engine.GeneratePaystub(req)
		if err != nil {
			return err
		}

		switch dest := viper.GetString("output"); dest {
		case "", "-":
			data, err := f.Format(stub)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		case outputAuto:
			filename, err := output.WriteFormatted(f, stub, fileExtensions[f.Name()])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Paystub written to %s\n", filename)
			return nil
		default:
			data, err := f.Format(stub)
			if err != nil {
				return err
			}
			if err := os.WriteFile(dest, data, 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", dest, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Paystub written to %s\n", dest)
			return nil
		}
	},
}

// loadRequest reads and normalizes the request file named in args, or the default
// request when there is none. Adjustments are logged as warnings.
func loadRequest(args []string) (domain.PaystubRequest, []config.Adjustment, error) {
	var (
		req         domain.PaystubRequest
		adjustments []config.Adjustment
		err         error
	)
	if len(args) == 0 {
		req, adjustments, err = config.Normalize(config.RawPaystubRequest{})
	} else {
		req, adjustments, err = config.NewInputParser().LoadRequest(args[0])
	}
	for _, adj := range adjustments {
		cliLogger.Warnf("input adjusted: %s", adj)
	}
	if err != nil {
		return domain.PaystubRequest{}, adjustments, err
	}
	return req, adjustments, nil
}

func init() {
	generateCmd.Flags().StringP("format", "f", "console", "Output format ("+strings.Join(output.AvailableFormatterNames(), ", ")+")")
	generateCmd.Flags().StringP("output", "o", "", `Output file; "auto" names it after the employee and period (default: stdout)`)
	generateCmd.Flags().Bool("require-hours", false, "Fail when clock-in equals clock-out instead of producing a zero paystub")
}
