package main

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nexlume/fibercat/internal/catalog"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the built-in catalog into the store",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		products := catalog.Default().All()
		n, err := st.UpsertProducts(ctx, products)
		if err != nil {
			return eris.Wrap(err, "seed products")
		}

		zap.L().Info("seed complete", zap.Int("products", n))
		fmt.Fprintf(cmd.OutOrStdout(), "seeded %d products\n", n)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
