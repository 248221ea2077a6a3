// Package importer loads supplier price sheets (CSV, XLSX, or a ZIP holding
// one of them) into the product store, and exports family tables to XLSX.
package importer

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"

	"github.com/jszwec/csvutil"
	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/nexlume/fibercat/internal/model"
)

// SpecSeparator splits the specs column into individual specs.
const SpecSeparator = "|"

// requiredColumns must appear in every sheet header.
var requiredColumns = []string{"sku", "name", "price"}

// sheetRow is one price-sheet line as decoded by csvutil.
type sheetRow struct {
	SKU         string   `csv:"sku"`
	Name        string   `csv:"name"`
	Category    string   `csv:"category,omitempty"`
	Subcategory string   `csv:"subcategory,omitempty"`
	Specs       string   `csv:"specs,omitempty"`
	Price       float64  `csv:"price"`
	CompareAt   *float64 `csv:"compare_at,omitempty"`
	InStock     flag     `csv:"in_stock,omitempty"`
	QuickShip   flag     `csv:"quick_ship,omitempty"`
	Tier        string   `csv:"tier,omitempty"`
	Badge       string   `csv:"badge,omitempty"`
	Image       string   `csv:"image,omitempty"`
}

// flag accepts the spellings suppliers use for yes/no columns.
type flag bool

func (f *flag) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "1", "t", "true", "y", "yes", "x":
		*f = true
	case "0", "f", "false", "n", "no", "":
		*f = false
	default:
		return eris.Errorf("invalid boolean %q", text)
	}
	return nil
}

// Line is a decoded product and the sheet line it came from.
type Line struct {
	Row     int
	Product model.Product
}

// Sheet is the parse result of one source.
type Sheet struct {
	Source string
	Lines  []Line
	Issues []Issue
}

// ParseCSV decodes a comma-separated price sheet. The first record is the
// header; column names are matched case-insensitively.
func ParseCSV(r io.Reader) (*Sheet, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	return decode(cr)
}

// ParseXLSX reads the first worksheet of an XLSX price sheet with the same
// columns as ParseCSV.
func ParseXLSX(path string) (*Sheet, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "importer: open xlsx")
	}
	if len(f.Sheets) == 0 {
		return nil, eris.New("importer: xlsx has no sheets")
	}

	rows := make([][]string, 0, len(f.Sheets[0].Rows))
	for _, row := range f.Sheets[0].Rows {
		cells := make([]string, len(row.Cells))
		for i, cell := range row.Cells {
			cells[i] = cell.String()
		}
		rows = append(rows, cells)
	}
	return decode(&sliceReader{rows: rows})
}

// sliceReader feeds pre-read rows to csvutil.
type sliceReader struct {
	rows [][]string
	next int
}

func (s *sliceReader) Read() ([]string, error) {
	if s.next >= len(s.rows) {
		return nil, io.EOF
	}
	row := s.rows[s.next]
	s.next++
	return row, nil
}

// paddedReader pads or truncates every record to the header width, so short
// rows and trailing empty cells decode as empty values. Blank records are
// skipped. line is the sheet line of the last record returned.
type paddedReader struct {
	r     csvutil.Reader
	width int
	line  int
}

func (p *paddedReader) Read() ([]string, error) {
	var rec []string
	for {
		var err error
		rec, err = p.r.Read()
		if err != nil {
			return nil, err
		}
		p.line++
		if !blank(rec) {
			break
		}
	}
	switch {
	case len(rec) > p.width:
		rec = rec[:p.width]
	case len(rec) < p.width:
		rec = append(rec, make([]string, p.width-len(rec))...)
	}
	return rec, nil
}

func decode(r csvutil.Reader) (*Sheet, error) {
	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, eris.New("importer: empty sheet")
	}
	if err != nil {
		return nil, eris.Wrap(err, "importer: read header")
	}
	header = normalizeHeader(header)
	if missing := missingColumns(header); len(missing) > 0 {
		return nil, eris.Errorf("importer: missing columns: %s", strings.Join(missing, ", "))
	}

	pr := &paddedReader{r: r, width: len(header), line: 1}
	dec, err := csvutil.NewDecoder(pr, header...)
	if err != nil {
		return nil, eris.Wrap(err, "importer: new decoder")
	}

	sheet := &Sheet{}
	for {
		var row sheetRow
		err := dec.Decode(&row)
		if errors.Is(err, io.EOF) {
			break
		}
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			return nil, eris.Wrapf(err, "importer: line %d", pr.line)
		}
		if err != nil {
			sheet.Issues = append(sheet.Issues, Issue{
				Row: pr.line, SKU: strings.TrimSpace(row.SKU), Level: LevelError, Message: err.Error(),
			})
			continue
		}
		sheet.Lines = append(sheet.Lines, Line{Row: pr.line, Product: row.product()})
	}
	return sheet, nil
}

func (r sheetRow) product() model.Product {
	return model.Product{
		SKU:         strings.TrimSpace(r.SKU),
		Name:        strings.TrimSpace(r.Name),
		Category:    strings.TrimSpace(r.Category),
		Subcategory: strings.TrimSpace(r.Subcategory),
		Specs:       splitSpecs(r.Specs),
		Price:       r.Price,
		CompareAt:   r.CompareAt,
		InStock:     bool(r.InStock),
		QuickShip:   bool(r.QuickShip),
		Tier:        model.Tier(strings.ToUpper(strings.TrimSpace(r.Tier))),
		Badge:       model.Badge(strings.TrimSpace(r.Badge)),
		Image:       strings.TrimSpace(r.Image),
	}
}

func splitSpecs(s string) []string {
	out := make([]string, 0)
	for _, part := range strings.Split(s, SpecSeparator) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func normalizeHeader(header []string) []string {
	out := make([]string, len(header))
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		out[i] = strings.NewReplacer(" ", "_", "-", "_").Replace(h)
	}
	return out
}

func missingColumns(header []string) []string {
	have := make(map[string]bool, len(header))
	for _, h := range header {
		have[h] = true
	}
	var missing []string
	for _, c := range requiredColumns {
		if !have[c] {
			missing = append(missing, c)
		}
	}
	return missing
}

func blank(rec []string) bool {
	for _, f := range rec {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
