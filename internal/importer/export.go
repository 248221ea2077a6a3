package importer

import (
	"io"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/nexlume/fibercat/internal/model"
)

// FamilyColumns is the header row written by ExportFamiliesXLSX.
var FamilyColumns = []string{
	"family", "slug", "category", "subcategory", "connector_a", "connector_b",
	"fiber", "config", "jacket", "sku", "length", "length_m", "price",
	"compare_at", "in_stock", "quick_ship", "badge",
}

// ExportFamiliesXLSX writes one row per family variant to a single
// "Families" worksheet.
func ExportFamiliesXLSX(w io.Writer, families []model.ProductFamily) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Families")
	if err != nil {
		return eris.Wrap(err, "importer: add sheet")
	}

	header := sheet.AddRow()
	for _, c := range FamilyColumns {
		header.AddCell().SetString(c)
	}

	for _, f := range families {
		for _, v := range f.Variants {
			row := sheet.AddRow()
			for _, s := range []string{
				f.Name, f.Slug, f.Category, f.Subcategory, f.ConnectorA, f.ConnectorB,
				f.Fiber, f.Config, f.Jacket, v.SKU, v.Length,
			} {
				row.AddCell().SetString(s)
			}
			row.AddCell().SetFloat(v.LengthNum)
			row.AddCell().SetFloat(v.Price)
			if v.CompareAt != nil {
				row.AddCell().SetFloat(*v.CompareAt)
			} else {
				row.AddCell().SetString("")
			}
			row.AddCell().SetString(yesNo(v.InStock))
			row.AddCell().SetString(yesNo(v.QuickShip))
			row.AddCell().SetString(string(v.Badge))
		}
	}

	if err := file.Write(w); err != nil {
		return eris.Wrap(err, "importer: write xlsx")
	}
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
