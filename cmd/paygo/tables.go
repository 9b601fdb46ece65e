package main

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/rgehrsitz/paygo/internal/calculation"
	"github.com/rgehrsitz/paygo/internal/config"
	"github.com/rgehrsitz/paygo/internal/domain"
	"github.com/rgehrsitz/paygo/internal/output"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Show the active tax tables",
	Long: `Show the federal brackets, standard deductions, FICA limits and state rates the
calculator will use. With --export the tables are written as YAML, which is a
convenient starting point for a custom --tables file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		provider, err := config.LoadTaxTables(viper.GetString("tables"))
		if err != nil {
			return err
		}

		if export := viper.GetString("export"); export != "" {
			if err := config.SaveTaxTables(provider.Tables(), export); err != nil {
				return fmt.Errorf("failed to export tax tables: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Tax tables written to %s\n", export)
			return nil
		}

		renderTaxTables(cmd.OutOrStdout(), provider)
		return nil
	},
}

func renderTaxTables(w io.Writer, provider *calculation.TaxTableProvider) {
	tables := provider.Tables()
	fmt.Fprintf(w, "%d TAX TABLES", tables.Year)
	if tables.Description != "" {
		fmt.Fprintf(w, " - %s", tables.Description)
	}
	fmt.Fprintln(w)

	for _, fs := range domain.FilingStatuses {
		fmt.Fprintf(w, "\nFederal brackets: %s (standard deduction %s)\n",
			output.FilingStatusLabel(fs), output.FormatCurrency(provider.StandardDeduction(fs)))
		t := newTable(w, []string{"Over", "Up To", "Rate"})
		for _, b := range provider.Brackets(fs) {
			upTo := "-"
			if !b.Unbounded() {
				upTo = output.FormatCurrency(*b.Max)
			}
			t.Append([]string{output.FormatCurrency(b.Min), upTo, formatRate(b.Rate)})
		}
		t.Render()
	}

	fica := provider.FICA()
	fmt.Fprintln(w, "\nFICA")
	t := newTable(w, []string{"Tax", "Rate", "Limit"})
	t.Append([]string{"Social Security", formatRate(fica.SocialSecurity.Rate),
		"wage base " + output.FormatCurrency(fica.SocialSecurity.WageBase)})
	t.Append([]string{"Medicare", formatRate(fica.Medicare.Rate), "-"})
	t.Append([]string{"Additional Medicare", formatRate(fica.Medicare.AdditionalRate),
		"over " + output.FormatCurrency(fica.Medicare.AdditionalThreshold)})
	t.Render()

	fmt.Fprintln(w, "\nState withholding")
	t = newTable(w, []string{"State", "Rate", "SDI Rate", "SDI Wage Base"})
	for _, code := range provider.StateCodes() {
		cfg, _ := provider.State(code)
		sdiRate, sdiBase := "-", "-"
		if cfg.HasSDI() {
			sdiRate = formatRate(cfg.SDIRate)
			sdiBase = output.FormatCurrency(cfg.SDIWageBase)
		}
		t.Append([]string{code, formatRate(cfg.Rate), sdiRate, sdiBase})
	}
	t.Render()
}

func newTable(w io.Writer, header []string) *tablewriter.Table {
	t := tablewriter.NewWriter(w)
	t.SetHeader(header)
	t.SetAutoFormatHeaders(false)
	t.SetAlignment(tablewriter.ALIGN_RIGHT)
	return t
}

// formatRate renders a fractional rate as a percentage, e.g. 0.0145 -> 1.45%
func formatRate(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).String() + "%"
}

func init() {
	tablesCmd.Flags().String("export", "", "Write the active tables to this YAML file instead of printing them")
}
