package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sells-group/comps-cli/internal/headermap"
	"github.com/sells-group/comps-cli/internal/ingest"
	"github.com/sells-group/comps-cli/internal/model"
)

var (
	inspectFile  string
	inspectSheet string
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Show format detection and header mapping for an export",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ds, kind, err := readDataset(inspectFile, inspectSheet)
		if err != nil {
			return err
		}

		syn, err := loadSynonyms()
		if err != nil {
			return err
		}
		fields := headermap.Map(ds.Columns, syn)

		fmt.Printf("File:    %s\n", inspectFile)
		fmt.Printf("Format:  %s\n", kind)
		fmt.Printf("County:  %s\n", ingest.DetectCounty(filepath.Base(inspectFile)))
		fmt.Printf("Columns: %d, Rows: %d\n\n", len(ds.Columns), len(ds.Rows))

		fmt.Println("Canonical field resolution:")
		for _, key := range model.CanonicalFields {
			if col, ok := fields[key]; ok {
				fmt.Printf("  %-8s -> %q\n", key, col)
			} else {
				fmt.Printf("  %-8s -> (no match)\n", key)
			}
		}

		if missing := headermap.MissingRequired(fields); len(missing) > 0 {
			fmt.Fprintf(os.Stderr, "\nRequired field gap: %v (analysis would fail validation)\n", missing)
		}
		return nil
	},
}

func init() {
	inspectCmd.Flags().StringVar(&inspectFile, "file", "", "path to the sales export (required)")
	inspectCmd.Flags().StringVar(&inspectSheet, "sheet", "", "worksheet name for xlsx input (default: first sheet)")
	_ = inspectCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(inspectCmd)
}
