package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/comps-cli/internal/model"
)

var (
	analyzeFile     string
	analyzeFormat   string
	analyzeOutput   string
	analyzeSheet    string
	analyzeMaxPrice float64
	analyzeRecords  bool
	analyzeDryRun   bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the full analysis pipeline on one sales export",
	Long: `Detects the export format, normalizes records, maps headers onto the
canonical fields, validates, and computes neighborhood and unit-type
statistics.

Examples:
  # Dry run - parse and print records, skip analysis
  comps-cli analyze --file sutton-sales.csv --dry-run

  # Text report to stdout
  comps-cli analyze --file anthem.csv

  # Machine output, capped at $1M sales
  comps-cli analyze --file anthem.csv --format json --max-price 1000000`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if analyzeDryRun {
			ds, kind, err := readDataset(analyzeFile, analyzeSheet)
			if err != nil {
				return err
			}
			zap.L().Info("parsed export",
				zap.String("file", analyzeFile),
				zap.String("format", string(kind)),
				zap.Int("rows", len(ds.Rows)),
			)
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(ds)
		}

		a, err := runPipeline(pipelineRequest{
			Path:           analyzeFile,
			MaxPrice:       maxPriceCap(analyzeMaxPrice),
			IncludeRecords: analyzeRecords,
			Sheet:          analyzeSheet,
		})
		if err != nil {
			return err
		}
		return writeAnalysis(a, analyzeFormat, analyzeOutput)
	},
}

// maxPriceCap turns the flag value into an optional cap (0 = no cap).
func maxPriceCap(v float64) model.Number {
	if v <= 0 {
		return model.None()
	}
	return model.Num(v)
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeFile, "file", "", "path to the sales export (required)")
	analyzeCmd.Flags().StringVar(&analyzeFormat, "format", "text", "output format: text or json")
	analyzeCmd.Flags().StringVar(&analyzeOutput, "out", "", "write output to file (default: stdout)")
	analyzeCmd.Flags().StringVar(&analyzeSheet, "sheet", "", "worksheet name for xlsx input (default: first sheet)")
	analyzeCmd.Flags().Float64Var(&analyzeMaxPrice, "max-price", 0, "exclude sales above this price from aggregates (0 = no cap)")
	analyzeCmd.Flags().BoolVar(&analyzeRecords, "records", false, "include cleaned records in json output")
	analyzeCmd.Flags().BoolVar(&analyzeDryRun, "dry-run", false, "parse the export and print records, skip analysis")
	_ = analyzeCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(analyzeCmd)
}
