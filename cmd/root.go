package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nexlume/fibercat/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "fibercat",
	Short: "Fiber-optic shop catalog, family grouping and cable configurator",
	Long:  "Serves the fiber-optic product catalog, groups length variants into product families, imports supplier price sheets and drives the custom cable configurator.",
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
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
