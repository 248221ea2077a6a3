package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nexlume/fibercat/internal/model"
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "Query the product catalog",
}

var productsSearchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search products by name, SKU or spec",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		cat, err := loadCatalog(ctx, st)
		if err != nil {
			return err
		}

		filter := model.ProductFilter{}
		if len(args) == 1 {
			filter.Query = args[0]
		}
		filter.Category, _ = cmd.Flags().GetString("category")
		filter.InStockOnly, _ = cmd.Flags().GetBool("in-stock")
		filter.Limit, _ = cmd.Flags().GetInt("limit")

		products := cat.Filter(filter)
		if len(products) == 0 {
			fmt.Fprintln(cmd.ErrOrStderr(), "No products found.")
			return nil
		}
		formatProducts(cmd.OutOrStdout(), products)
		return nil
	},
}

func init() {
	productsSearchCmd.Flags().String("category", "", "filter by category slug")
	productsSearchCmd.Flags().Bool("in-stock", false, "only products in stock")
	productsSearchCmd.Flags().Int("limit", 50, "max number of products to display")

	productsCmd.AddCommand(productsSearchCmd)
	rootCmd.AddCommand(productsCmd)
}
