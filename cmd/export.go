package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/metascope/metascope-cli/internal/dataset"
	"github.com/metascope/metascope-cli/internal/utils"
)

var (
	xpInput    string
	xpOut      string
	xpYearMin  int
	xpYearMax  int
	xpSources  []string
	xpContains string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Filter a metadata CSV and write the subset",
	Long: `Export loads and normalizes the input, applies the given filter predicates, and
writes the matching rows as CSV. Predicates left unset apply no restriction.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		spec := dataset.FilterSpec{
			Sources:       xpSources,
			TitleContains: xpContains,
		}
		if cmd.Flags().Changed("year-min") {
			spec.YearMin = &xpYearMin
		}
		if cmd.Flags().Changed("year-max") {
			spec.YearMax = &xpYearMax
		}
		n, err := runExport(xpInput, xpOut, spec)
		if err != nil {
			return err
		}
		fmt.Printf("✓ Wrote %d rows to %s\n", n, xpOut)
		return nil
	},
}

// runExport loads, filters, and writes; returns the number of exported rows.
func runExport(input, out string, spec dataset.FilterSpec) (int, error) {
	set, err := dataset.Load(input)
	if err != nil {
		return 0, err
	}
	sub := dataset.Filter(set, spec)
	b, err := dataset.Export(sub)
	if err != nil {
		return 0, err
	}
	if err := utils.SafeWriteFile(out, b); err != nil {
		return 0, err
	}
	return sub.Len(), nil
}

func init() {
	exportCmd.Flags().StringVar(&xpInput, "input", "", "path to metadata CSV (required)")
	exportCmd.Flags().StringVar(&xpOut, "out", "filtered_metadata.csv", "output CSV path")
	exportCmd.Flags().IntVar(&xpYearMin, "year-min", 0, "keep rows with year >= this")
	exportCmd.Flags().IntVar(&xpYearMax, "year-max", 0, "keep rows with year <= this")
	exportCmd.Flags().StringArrayVar(&xpSources, "source", nil, "keep rows whose journal/source matches exactly (repeatable)")
	exportCmd.Flags().StringVar(&xpContains, "title-contains", "", "keep rows whose title contains this (case-insensitive)")
	_ = exportCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(exportCmd)
}
