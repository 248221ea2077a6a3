package main

import (
	"encoding/json"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/nexlume/fibercat/internal/fetcher"
	"github.com/nexlume/fibercat/internal/importer"
)

var importCmd = &cobra.Command{
	Use:   "import <source>...",
	Short: "Import supplier price sheets (CSV, XLSX or ZIP) into the store",
	Long:  "Sources may be local paths, http(s):// URLs or ftp:// URLs. Every source is fetched and parsed before anything is written.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		dryRun, _ := cmd.Flags().GetBool("dry-run")
		asJSON, _ := cmd.Flags().GetBool("json")
		if n, _ := cmd.Flags().GetInt("concurrency"); n > 0 {
			cfg.Import.Concurrency = n
		}
		if err := cfg.Validate("import"); err != nil {
			return err
		}

		var writer importer.ProductWriter
		if !dryRun {
			st, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close() //nolint:errcheck
			writer = st
		}

		im := importer.New(writer, newSources(), importer.Options{
			Concurrency: cfg.Import.Concurrency,
			DryRun:      dryRun,
		})
		report, err := im.Import(ctx, args...)
		if err != nil {
			return eris.Wrap(err, "import")
		}

		zap.L().Info("import complete",
			zap.Int("sources", report.Sources),
			zap.Int("imported", report.Imported),
			zap.Int("skipped", report.Skipped),
			zap.Bool("dry_run", report.DryRun),
		)

		out := cmd.OutOrStdout()
		if asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		}
		formatReport(out, report)
		return nil
	},
}

func newSources() *fetcher.Sources {
	timeout := time.Duration(cfg.Fetch.TimeoutSecs) * time.Second
	return fetcher.New(fetcher.Options{
		HTTP: fetcher.HTTPOptions{
			UserAgent:  cfg.Fetch.UserAgent,
			Timeout:    timeout,
			MaxRetries: cfg.Fetch.MaxRetries,
			Rate:       rate.Limit(cfg.Fetch.RatePerHost),
		},
		FTP: fetcher.FTPOptions{Timeout: timeout},
	})
}

func init() {
	importCmd.Flags().Bool("dry-run", false, "validate and report without writing")
	importCmd.Flags().Int("concurrency", 0, "sources fetched in parallel (default from config)")
	importCmd.Flags().Bool("json", false, "print the report as JSON")
	rootCmd.AddCommand(importCmd)
}
