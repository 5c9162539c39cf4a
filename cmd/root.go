package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/comps-cli/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "comps-cli",
	Short: "Property sales comps analysis pipeline",
	Long:  "Normalizes heterogeneous real-estate sales exports (CSV, $-delimited, assessor narrative text, XLSX) into a uniform record set and derives neighborhood, unit-type, and subject-property comparison statistics.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
