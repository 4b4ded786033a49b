package cmd

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/metascope/metascope-cli/internal/analysis"
	"github.com/metascope/metascope-cli/internal/dataset"
	"github.com/metascope/metascope-cli/internal/sample"
	"github.com/metascope/metascope-cli/internal/utils"
	"github.com/metascope/metascope-cli/internal/wordfreq"
)

var (
	expInput    string
	expOutdir   string
	expSize     int
	expTopN     int
	expTopWords int
)

var exploreCmd = &cobra.Command{
	Use:   "explore",
	Short: "Run the full offline analysis over a metadata CSV",
	Long: `Explore normalizes the dataset and writes the cleaned CSV, an optional
deterministic sample, and the analysis artifacts (publications per year, top
journals, top sources, top title words) into the output directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExplore(expInput, expOutdir, expSize, expTopN, expTopWords)
	},
}

func runExplore(input, outdir string, sampleSize, topN, topWords int) error {
	fmt.Printf("Loading %s ...\n", input)
	set, err := dataset.Load(input)
	if err != nil {
		return err
	}
	fmt.Printf("Rows: %d, columns: %d\n", set.Len(), len(set.Columns))

	if err := utils.EnsureDir(outdir); err != nil {
		return fmt.Errorf("create outdir: %w", err)
	}

	// Cleaned full dataset
	b, err := dataset.Export(set)
	if err != nil {
		return err
	}
	cleaned := filepath.Join(outdir, "metadata_cleaned.csv")
	if err := utils.SafeWriteFile(cleaned, b); err != nil {
		return err
	}
	fmt.Println("Saved cleaned CSV:", cleaned)

	// Sample for fast iteration
	if sampleSize > 0 {
		sub, err := sample.Pick(set, sampleSize)
		if err != nil {
			return err
		}
		sb, err := dataset.Export(sub)
		if err != nil {
			return err
		}
		spath := filepath.Join(outdir, "sample_metadata.csv")
		if err := utils.SafeWriteFile(spath, sb); err != nil {
			return err
		}
		fmt.Println("Saved sample CSV:", spath)
	}

	if topN <= 0 {
		topN = analysis.DefaultTopJournals
		if cfg != nil && cfg.TopJournals > 0 {
			topN = cfg.TopJournals
		}
	}
	if topWords <= 0 {
		topWords = 200
		if cfg != nil && cfg.TopWords > 0 {
			topWords = cfg.TopWords
		}
	}

	// Publications by year
	years := analysis.YearCounts(set)
	rows := make([][]string, 0, len(years))
	for _, yb := range years {
		rows = append(rows, []string{yb.Label(), strconv.Itoa(yb.Count)})
	}
	if err := writeCountsCSV(filepath.Join(outdir, "publications_by_year.csv"), "year", rows); err != nil {
		return err
	}

	// Top journals and top sources: one aliased field, two caps
	rows = rows[:0]
	for _, jc := range analysis.TopJournals(set, topN) {
		rows = append(rows, []string{jc.Journal, strconv.Itoa(jc.Count)})
	}
	if err := writeCountsCSV(filepath.Join(outdir, "top_journals.csv"), "journal", rows); err != nil {
		return err
	}
	rows = rows[:0]
	for _, jc := range analysis.TopJournals(set, analysis.DefaultTopSources) {
		rows = append(rows, []string{jc.Journal, strconv.Itoa(jc.Count)})
	}
	if err := writeCountsCSV(filepath.Join(outdir, "top_sources.csv"), "source", rows); err != nil {
		return err
	}

	// Top title words
	opt := wordfreq.DefaultOptions()
	if cfg != nil {
		if cfg.MinTokenLen > 0 {
			opt.MinTokenLen = cfg.MinTokenLen
		}
		opt.ExtraStopwords = cfg.ExtraStopwords
	}
	rows = rows[:0]
	for _, tc := range wordfreq.FromTitles(set, opt).TopK(topWords) {
		rows = append(rows, []string{tc.Token, strconv.Itoa(tc.Count)})
	}
	if err := writeCountsCSV(filepath.Join(outdir, "top_title_words.csv"), "word", rows); err != nil {
		return err
	}

	printSummary(set)
	return nil
}

// writeCountsCSV writes a two-column label,count artifact.
func writeCountsCSV(path, label string, rows [][]string) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{label, "count"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("write rows: %w", err)
	}
	if err := utils.SafeWriteFile(path, buf.Bytes()); err != nil {
		return err
	}
	fmt.Println("Saved:", path)
	return nil
}

func printSummary(set *dataset.RecordSet) {
	fmt.Println("\nQuick summary:")
	fmt.Println("Total papers:", set.Len())
	seen := map[int]bool{}
	var years []int
	journals := map[string]bool{}
	for _, rec := range set.Records {
		if rec.HasYear && !seen[rec.Year] {
			seen[rec.Year] = true
			years = append(years, rec.Year)
		}
		if rec.Journal != dataset.JournalUnknown {
			journals[rec.Journal] = true
		}
	}
	sort.Ints(years)
	fmt.Println("Years present:", years)
	fmt.Println("Unique journals:", len(journals))
}

func init() {
	exploreCmd.Flags().StringVar(&expInput, "input", filepath.Join("data", "metadata.csv"), "path to metadata CSV")
	exploreCmd.Flags().StringVar(&expOutdir, "outdir", "outputs", "output directory for artifacts")
	exploreCmd.Flags().IntVar(&expSize, "sample_size", 5000, "sample rows to save for fast iteration (0 to disable)")
	exploreCmd.Flags().IntVar(&expTopN, "top_n", 0, "top journals to keep (default from config)")
	exploreCmd.Flags().IntVar(&expTopWords, "top_words", 0, "top title words to keep (default from config)")
	rootCmd.AddCommand(exploreCmd)
}
