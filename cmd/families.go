package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nexlume/fibercat/internal/family"
	"github.com/nexlume/fibercat/internal/importer"
	"github.com/nexlume/fibercat/internal/model"
)

var familiesCmd = &cobra.Command{
	Use:   "families",
	Short: "Browse product families (SKUs grouped by cable length)",
}

// -- families list --

var familiesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List product families",
	RunE: func(cmd *cobra.Command, _ []string) error {
		families, err := loadFamilies(cmd)
		if err != nil {
			return err
		}
		if len(families) == 0 {
			fmt.Fprintln(cmd.ErrOrStderr(), "No families found.")
			return nil
		}
		formatFamilies(cmd.OutOrStdout(), families)
		return nil
	},
}

// -- families show --

var familiesShowCmd = &cobra.Command{
	Use:   "show <slug>",
	Short: "Show one family and its length variants",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		families, err := loadFamilies(cmd)
		if err != nil {
			return err
		}
		f, ok := family.Find(families, args[0])
		if !ok {
			return eris.Errorf("family %q not found", args[0])
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(f)
		}
		formatFamily(cmd.OutOrStdout(), f)
		return nil
	},
}

// -- families export --

var familiesExportCmd = &cobra.Command{
	Use:   "export <file.xlsx>",
	Short: "Export families to an XLSX workbook, one row per variant",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		families, err := loadFamilies(cmd)
		if err != nil {
			return err
		}

		f, err := os.Create(args[0])
		if err != nil {
			return eris.Wrap(err, "create export file")
		}
		if err := importer.ExportFamiliesXLSX(f, families); err != nil {
			f.Close() //nolint:errcheck
			return err
		}
		if err := f.Close(); err != nil {
			return eris.Wrap(err, "close export file")
		}

		zap.L().Info("families exported", zap.Int("families", len(families)), zap.String("file", args[0]))
		fmt.Fprintf(cmd.OutOrStdout(), "exported %d families to %s\n", len(families), args[0])
		return nil
	},
}

// loadFamilies groups the current catalog, narrowed by the persistent
// --category and --subcategory flags.
func loadFamilies(cmd *cobra.Command) ([]model.ProductFamily, error) {
	ctx := cmd.Context()

	st, err := initStore(ctx)
	if err != nil {
		return nil, err
	}
	defer st.Close() //nolint:errcheck

	cat, err := loadCatalog(ctx, st)
	if err != nil {
		return nil, err
	}

	category, _ := cmd.Flags().GetString("category")
	subcategory, _ := cmd.Flags().GetString("subcategory")
	return family.Filter(cat.Families(), category, subcategory), nil
}

func init() {
	familiesCmd.PersistentFlags().String("category", "", "filter by category slug")
	familiesCmd.PersistentFlags().String("subcategory", "", "filter by subcategory slug")
	familiesShowCmd.Flags().Bool("json", false, "print the family as JSON")

	familiesCmd.AddCommand(familiesListCmd, familiesShowCmd, familiesExportCmd)
	rootCmd.AddCommand(familiesCmd)
}
