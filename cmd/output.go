package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"

	"github.com/nexlume/fibercat/internal/configurator"
	"github.com/nexlume/fibercat/internal/importer"
	"github.com/nexlume/fibercat/internal/model"
)

var (
	green = color.New(color.FgGreen).SprintFunc()
	red   = color.New(color.FgRed).SprintFunc()
	bold  = color.New(color.Bold).SprintFunc()
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func stockLabel(inStock bool) string {
	if inStock {
		return green("in stock")
	}
	return red("backorder")
}

func money(v float64) string {
	return "$" + strconv.FormatFloat(v, 'f', 2, 64)
}

func formatProducts(w io.Writer, products []model.Product) {
	tw := newTable(w)
	fmt.Fprintln(tw, "SKU\tNAME\tPRICE\tSTOCK\tBADGE")
	for _, p := range products {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", p.SKU, p.Name, money(p.Price), stockLabel(p.InStock), p.Badge)
	}
	tw.Flush() //nolint:errcheck
}

func formatFamilies(w io.Writer, families []model.ProductFamily) {
	tw := newTable(w)
	fmt.Fprintln(tw, "SLUG\tNAME\tLENGTHS\tFROM\tTO\tIN STOCK")
	for _, f := range families {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\t%d/%d\n",
			f.Slug, f.Name, len(f.Variants), money(f.PriceFrom()), money(f.PriceTo()),
			f.InStockCount(), len(f.Variants))
	}
	tw.Flush() //nolint:errcheck
}

func formatFamily(w io.Writer, f model.ProductFamily) {
	fmt.Fprintln(w, bold(f.Name))
	fmt.Fprintf(w, "key:        %s\n", f.Key)
	fmt.Fprintf(w, "connectors: %s / %s\n", f.ConnectorA, f.ConnectorB)
	fmt.Fprintf(w, "fiber:      %s %s, %s jacket\n", f.Fiber, f.Config, f.Jacket)
	if len(f.Specs) > 0 {
		fmt.Fprintf(w, "specs:      %s\n", strings.Join(f.Specs, ", "))
	}
	fmt.Fprintln(w)

	tw := newTable(w)
	fmt.Fprintln(tw, "LENGTH\tSKU\tPRICE\tSTOCK\tQUICK SHIP")
	for _, v := range f.Variants {
		quick := ""
		if v.QuickShip {
			quick = "yes"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", v.Length, v.SKU, money(v.Price), stockLabel(v.InStock), quick)
	}
	tw.Flush() //nolint:errcheck
}

func formatReport(w io.Writer, r *importer.Report) {
	mode := "imported"
	if r.DryRun {
		mode = "would import"
	}
	fmt.Fprintf(w, "%d sources, %d rows: %s %d, skipped %d, duplicates %d (%s)\n",
		r.Sources, r.Rows, mode, r.Imported, r.Skipped, r.Duplicates, r.Duration.Round(time.Millisecond))
	if len(r.Issues) == 0 {
		return
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "SOURCE\tROW\tLEVEL\tSKU\tMESSAGE")
	for _, is := range r.Issues {
		level := string(is.Level)
		if is.Level == importer.LevelError {
			level = red(level)
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\n", is.Source, is.Row, level, is.SKU, is.Message)
	}
	tw.Flush() //nolint:errcheck
}

func formatSummary(w io.Writer, rows []configurator.SummaryRow, problems []string) {
	tw := newTable(w)
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\n", r.Label, r.Value)
	}
	tw.Flush() //nolint:errcheck

	if len(problems) == 0 {
		fmt.Fprintln(w, green("ready for review"))
		return
	}
	fmt.Fprintln(w, red("incomplete:"))
	for _, p := range problems {
		fmt.Fprintf(w, "  - %s\n", p)
	}
}
