package main

import (
	"github.com/spf13/cobra"

	"github.com/sells-group/comps-cli/internal/model"
)

var (
	compareFile     string
	compareFormat   string
	compareOutput   string
	compareSheet    string
	compareMaxPrice float64
	compareAddress  string
	compareBeds     float64
	compareBaths    float64
	compareSqft     float64
	comparePrice    float64
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare a subject property against its neighborhood comparables",
	Long: `Runs the analysis pipeline and scores a subject property against three
baselines: the whole neighborhood, same-bed-count sales, and exact
bed/bath matches within the square-footage tolerance. The verdict is
BUY when every available baseline exceeds the asking price, PASS when at
most one does, and INVESTIGATE on mixed or missing evidence.

Example:
  comps-cli compare --file sutton.csv \
    --address "123 Main St" --beds 3 --baths 2.5 --sqft 1800 --price 300000`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		subject := model.SubjectProperty{
			Address: compareAddress,
			Beds:    compareBeds,
			Baths:   compareBaths,
			Sqft:    compareSqft,
			Price:   comparePrice,
		}

		a, err := runPipeline(pipelineRequest{
			Path:     compareFile,
			Subject:  &subject,
			MaxPrice: maxPriceCap(compareMaxPrice),
			Sheet:    compareSheet,
		})
		if err != nil {
			return err
		}
		return writeAnalysis(a, compareFormat, compareOutput)
	},
}

func init() {
	compareCmd.Flags().StringVar(&compareFile, "file", "", "path to the sales export (required)")
	compareCmd.Flags().StringVar(&compareFormat, "format", "text", "output format: text or json")
	compareCmd.Flags().StringVar(&compareOutput, "out", "", "write output to file (default: stdout)")
	compareCmd.Flags().StringVar(&compareSheet, "sheet", "", "worksheet name for xlsx input (default: first sheet)")
	compareCmd.Flags().Float64Var(&compareMaxPrice, "max-price", 0, "exclude sales above this price from aggregates (0 = no cap)")
	compareCmd.Flags().StringVar(&compareAddress, "address", "", "subject property address")
	compareCmd.Flags().Float64Var(&compareBeds, "beds", 0, "subject bedrooms (required)")
	compareCmd.Flags().Float64Var(&compareBaths, "baths", 0, "subject bathrooms (required)")
	compareCmd.Flags().Float64Var(&compareSqft, "sqft", 0, "subject living area in square feet (required)")
	compareCmd.Flags().Float64Var(&comparePrice, "price", 0, "subject asking price (required)")
	_ = compareCmd.MarkFlagRequired("file")
	_ = compareCmd.MarkFlagRequired("beds")
	_ = compareCmd.MarkFlagRequired("baths")
	_ = compareCmd.MarkFlagRequired("sqft")
	_ = compareCmd.MarkFlagRequired("price")
	rootCmd.AddCommand(compareCmd)
}
