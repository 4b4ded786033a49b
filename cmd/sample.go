package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/metascope/metascope-cli/internal/dataset"
	"github.com/metascope/metascope-cli/internal/sample"
	"github.com/metascope/metascope-cli/internal/utils"
)

var (
	smpInput  string
	smpOutdir string
	smpSize   int
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Write a deterministic sample of a metadata CSV",
	Long: `Sample draws a fixed-seed uniform subset of the input dataset and writes it to
<outdir>/sample_metadata.csv, preserving original row order. Repeated runs over
the same input produce byte-identical output.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := runSample(smpInput, smpOutdir, smpSize)
		if err != nil {
			return err
		}
		fmt.Printf("✓ Saved sample CSV: %s\n", path)
		return nil
	},
}

// runSample loads, samples, and writes; returns the output path.
func runSample(input, outdir string, size int) (string, error) {
	set, err := dataset.Load(input)
	if err != nil {
		return "", err
	}
	sub, err := sample.Pick(set, size)
	if err != nil {
		return "", err
	}
	b, err := dataset.Export(sub)
	if err != nil {
		return "", err
	}
	if err := utils.EnsureDir(outdir); err != nil {
		return "", fmt.Errorf("create outdir: %w", err)
	}
	out := filepath.Join(outdir, "sample_metadata.csv")
	if err := utils.SafeWriteFile(out, b); err != nil {
		return "", err
	}
	return out, nil
}

func init() {
	sampleCmd.Flags().StringVar(&smpInput, "input", filepath.Join("data", "metadata.csv"), "path to metadata CSV")
	sampleCmd.Flags().StringVar(&smpOutdir, "outdir", "outputs", "output directory for the sampled CSV")
	sampleCmd.Flags().IntVar(&smpSize, "sample_size", 5000, "number of rows to sample")
	rootCmd.AddCommand(sampleCmd)
}
