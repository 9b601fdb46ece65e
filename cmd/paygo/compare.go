package main

import (
	"fmt"

	"github.com/rgehrsitz/paygo/internal/compare"
	"github.com/rgehrsitz/paygo/internal/transform"
	"github.com/spf13/cobra"
)

var compareCmd = &cobra.Command{
	Use:   "compare [request-file]",
	Short: "Compare a paystub against what-if alternatives",
	Long: `Price the request as given and again under each template or transform, then
show how net pay and withholding change. Annual figures let requests with
different pay frequencies compare fairly.

Examples:
  paygo compare request.yaml --with file_marriedJointly,state_ca
  paygo compare request.yaml --transform set_401k:percent=10 --transform raise:percent=5
  paygo compare request.yaml --transform set_state:code=TX --transform set_rate:rate=30 --combine
  paygo compare --list-templates`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := newEngine()
		if err != nil {
			return err
		}
		compareEngine := compare.NewCompareEngine(engine)

		if listTemplates, _ := cmd.Flags().GetBool("list-templates"); listTemplates {
			fmt.Fprint(cmd.OutOrStdout(), transform.GetTemplateHelp(compareEngine.TemplateRegistry))
			fmt.Fprintf(cmd.OutOrStdout(), "\nTransforms: %v\n", compareEngine.TransformRegistry.List())
			return nil
		}

		with, _ := cmd.Flags().GetString("with")
		specs, _ := cmd.Flags().GetStringArray("transform")
		combine, _ := cmd.Flags().GetBool("combine")
		templates := transform.ParseTemplateList(with)
		if len(templates) == 0 && len(specs) == 0 {
			return fmt.Errorf("--with or --transform is required (use --list-templates to see templates)")
		}

		req, _, err := loadRequest(args)
		if err != nil {
			return err
		}

		compSet, err := compareEngine.Compare(req, compare.CompareOptions{
			Templates:  templates,
			Transforms: specs,
			Combined:   combine,
		})
		if err != nil {
			return err
		}
		if len(args) > 0 {
			compSet.RequestPath = args[0]
		}

		var out string
		switch format, _ := cmd.Flags().GetString("format"); format {
		case "table":
			out = (&compare.TableFormatter{}).Format(compSet)
		case "compact":
			out = (&compare.TableFormatter{}).FormatCompact(compSet) + "\n"
		case "csv":
			out, err = (&compare.CSVFormatter{}).Format(compSet)
		case "json":
			out, err = (&compare.JSONFormatter{Pretty: true}).Format(compSet)
		default:
			return fmt.Errorf("unknown format %q (available: table, compact, csv, json)", format)
		}
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), out)
		return err
	},
}

func init() {
	compareCmd.Flags().String("with", "", "Comma-separated list of templates to compare")
	compareCmd.Flags().StringArray("transform", nil, "Transform spec name:key=value,... (repeatable)")
	compareCmd.Flags().Bool("combine", false, "Apply all --transform specs together as one alternative")
	compareCmd.Flags().StringP("format", "f", "table", "Output format (table, compact, csv, json)")
	compareCmd.Flags().Bool("list-templates", false, "List all available templates and transforms")
	compareCmd.Flags().Bool("require-hours", false, "Fail when clock-in equals clock-out instead of producing a zero paystub")

	rootCmd.AddCommand(compareCmd)
}
