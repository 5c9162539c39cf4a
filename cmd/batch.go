package main

import (
	"context"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/comps-cli/internal/report"
)

var (
	batchConcurrency int
	batchFormat      string
	batchOutDir      string
	batchMaxPrice    float64
)

var batchCmd = &cobra.Command{
	Use:   "batch <file> [file...]",
	Short: "Analyze multiple sales exports concurrently",
	Long: `Runs the analysis pipeline over each listed export with bounded
concurrency. A failing file is logged and skipped; it never aborts the
rest of the batch.

Example:
  comps-cli batch sutton.csv anthem.csv baylake.xlsx --out-dir reports/`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		concurrency := batchConcurrency
		if concurrency <= 0 {
			concurrency = cfg.Batch.Concurrency
		}

		analyses := runBatch(cmd.Context(), args, concurrency)

		if batchOutDir == "" {
			for _, a := range analyses {
				if err := writeAnalysis(a, batchFormat, ""); err != nil {
					return err
				}
			}
		}
		return nil
	},
}

// runBatch analyzes the listed files with bounded concurrency and
// returns the successful analyses in input order, so batch output is
// stable across runs regardless of goroutine scheduling.
func runBatch(ctx context.Context, paths []string, concurrency int) []report.Analysis {
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	// Each goroutine writes only its own slot.
	results := make([]*report.Analysis, len(paths))
	var succeeded, failed atomic.Int64

	for i, path := range paths {
		g.Go(func() error {
			zap.L().Info("batch: analyzing file",
				zap.Int("index", i+1),
				zap.Int("total", len(paths)),
				zap.String("file", path),
			)

			a, err := runPipeline(pipelineRequest{
				Path:     path,
				MaxPrice: maxPriceCap(batchMaxPrice),
			})
			if err != nil {
				failed.Add(1)
				zap.L().Error("batch: file failed",
					zap.String("file", path),
					zap.Error(err),
				)
				return nil // don't abort batch on individual failure
			}

			succeeded.Add(1)
			if batchOutDir != "" {
				out := filepath.Join(batchOutDir, outName(path, batchFormat))
				if werr := writeAnalysis(a, batchFormat, out); werr != nil {
					zap.L().Error("batch: write output", zap.String("file", path), zap.Error(werr))
				}
			}
			results[i] = &a
			return nil
		})
	}

	_ = g.Wait()

	zap.L().Info("batch: complete",
		zap.Int("total", len(paths)),
		zap.Int64("succeeded", succeeded.Load()),
		zap.Int64("failed", failed.Load()),
	)

	analyses := make([]report.Analysis, 0, len(results))
	for _, a := range results {
		if a != nil {
			analyses = append(analyses, *a)
		}
	}
	return analyses
}

// outName derives a per-file report name from the input path.
func outName(path, format string) string {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if format == "json" {
		return base + ".json"
	}
	return base + ".txt"
}

func init() {
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 0, "max files processed concurrently (default: config batch.concurrency)")
	batchCmd.Flags().StringVar(&batchFormat, "format", "json", "output format: json or text")
	batchCmd.Flags().StringVar(&batchOutDir, "out-dir", "", "write one report per input file into this directory")
	batchCmd.Flags().Float64Var(&batchMaxPrice, "max-price", 0, "exclude sales above this price from aggregates (0 = no cap)")
	rootCmd.AddCommand(batchCmd)
}
