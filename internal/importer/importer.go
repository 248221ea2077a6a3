package importer

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/nexlume/fibercat/internal/fetcher"
	"github.com/nexlume/fibercat/internal/model"
)

// Level grades an import issue.
type Level string

const (
	LevelWarning Level = "warning" // row kept
	LevelError   Level = "error"   // row skipped
)

// Issue is a problem found in one sheet row.
type Issue struct {
	Source  string `json:"source"`
	Row     int    `json:"row"`
	SKU     string `json:"sku,omitempty"`
	Level   Level  `json:"level"`
	Message string `json:"message"`
}

func (i Issue) String() string {
	return fmt.Sprintf("%s:%d %s %s: %s", i.Source, i.Row, i.Level, i.SKU, i.Message)
}

// Report summarizes one import.
type Report struct {
	Sources    int           `json:"sources"`
	Rows       int           `json:"rows"`
	Imported   int           `json:"imported"`
	Skipped    int           `json:"skipped"`
	Duplicates int           `json:"duplicates"`
	DryRun     bool          `json:"dry_run"`
	Issues     []Issue       `json:"issues"`
	Duration   time.Duration `json:"duration"`
}

// ProductWriter is the part of the store the importer writes to.
type ProductWriter interface {
	UpsertProducts(ctx context.Context, products []model.Product) (int, error)
}

// Opener resolves a source string to its content.
type Opener interface {
	Open(ctx context.Context, src string) (io.ReadCloser, error)
	Local(ctx context.Context, src, dir string) (string, error)
}

// Options configures an Importer.
type Options struct {
	Concurrency int
	DryRun      bool
}

// Importer fetches, parses and validates price sheets, then upserts them.
type Importer struct {
	store   ProductWriter
	sources Opener
	opts    Options
}

// New creates an Importer.
func New(st ProductWriter, sources Opener, opts Options) *Importer {
	if opts.Concurrency <= 0 {
		opts.Concurrency = 4
	}
	return &Importer{store: st, sources: sources, opts: opts}
}

// Import loads every source concurrently. Any source that cannot be fetched
// or parsed fails the whole import before anything is written. Rows are
// merged in source order; a repeated SKU replaces the earlier row.
func (im *Importer) Import(ctx context.Context, sources ...string) (*Report, error) {
	if len(sources) == 0 {
		return nil, eris.New("importer: no sources")
	}
	start := time.Now()
	log := zap.L().With(zap.Int("sources", len(sources)))

	tmp, err := os.MkdirTemp("", "fibercat-import-*")
	if err != nil {
		return nil, eris.Wrap(err, "importer: temp dir")
	}
	defer os.RemoveAll(tmp) //nolint:errcheck

	sheets := make([]*Sheet, len(sources))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(im.opts.Concurrency)
	for i, src := range sources {
		g.Go(func() error {
			dir := filepath.Join(tmp, fmt.Sprintf("%d", i))
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return eris.Wrap(err, "importer: temp dir")
			}
			sheet, err := im.load(gctx, src, dir)
			if err != nil {
				return eris.Wrapf(err, "importer: source %s", src)
			}
			sheet.Source = src
			sheets[i] = sheet
			log.Debug("importer: parsed source",
				zap.String("source", src),
				zap.Int("rows", len(sheet.Lines)),
				zap.Int("issues", len(sheet.Issues)),
			)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	products, report := merge(sheets)
	report.Sources = len(sources)
	report.DryRun = im.opts.DryRun

	if !im.opts.DryRun && len(products) > 0 {
		n, err := im.store.UpsertProducts(ctx, products)
		if err != nil {
			return nil, eris.Wrap(err, "importer: upsert")
		}
		report.Imported = n
	} else {
		report.Imported = len(products)
	}
	report.Duration = time.Since(start)

	log.Info("importer: import complete",
		zap.Int("rows", report.Rows),
		zap.Int("imported", report.Imported),
		zap.Int("skipped", report.Skipped),
		zap.Int("duplicates", report.Duplicates),
		zap.Bool("dry_run", report.DryRun),
		zap.Duration("duration", report.Duration),
	)
	return report, nil
}

// load parses one source, choosing the format from its extension.
func (im *Importer) load(ctx context.Context, src, dir string) (*Sheet, error) {
	switch ext := fetcher.Ext(src); ext {
	case ".csv", ".txt":
		rc, err := im.sources.Open(ctx, src)
		if err != nil {
			return nil, err
		}
		defer rc.Close() //nolint:errcheck
		return ParseCSV(rc)
	case ".xlsx":
		path, err := im.sources.Local(ctx, src, dir)
		if err != nil {
			return nil, err
		}
		return ParseXLSX(path)
	case ".zip":
		path, err := im.sources.Local(ctx, src, dir)
		if err != nil {
			return nil, err
		}
		inner, err := fetcher.ExtractZIPSingle(path, filepath.Join(dir, "unzipped"))
		if err != nil {
			return nil, err
		}
		if fetcher.Ext(inner) == ".zip" {
			return nil, eris.New("nested zip archives are not supported")
		}
		return im.load(ctx, inner, dir)
	default:
		return nil, eris.Errorf("unsupported format %q", ext)
	}
}

// merge validates every line and de-duplicates by SKU, last wins. The
// surviving row keeps the position of the SKU's first appearance.
func merge(sheets []*Sheet) ([]model.Product, *Report) {
	report := &Report{Issues: make([]Issue, 0)}
	index := make(map[string]int)
	origin := make(map[string]string)
	var products []model.Product

	for _, sheet := range sheets {
		for _, issue := range sheet.Issues {
			issue.Source = sheet.Source
			report.Issues = append(report.Issues, issue)
			report.Rows++
			report.Skipped++
		}
		for _, line := range sheet.Lines {
			report.Rows++
			p, issues := Validate(line.Product)
			for _, issue := range issues {
				issue.Source, issue.Row = sheet.Source, line.Row
				report.Issues = append(report.Issues, issue)
			}
			if hasError(issues) {
				report.Skipped++
				continue
			}

			where := fmt.Sprintf("%s:%d", sheet.Source, line.Row)
			if i, ok := index[p.SKU]; ok {
				report.Duplicates++
				report.Issues = append(report.Issues, Issue{
					Source: sheet.Source, Row: line.Row, SKU: p.SKU, Level: LevelWarning,
					Message: "duplicate sku replaces row at " + origin[p.SKU],
				})
				products[i] = p
				origin[p.SKU] = where
				continue
			}
			index[p.SKU] = len(products)
			origin[p.SKU] = where
			products = append(products, p)
		}
	}
	return products, report
}

var knownBadges = []model.Badge{
	model.BadgeBestSeller, model.BadgeNew, model.BadgeSale, model.BadgeBEADReady, model.BadgeQuickShip,
}

// Validate checks a decoded product. Error-level issues mean the row must be
// skipped; warnings describe fields that were cleared.
func Validate(p model.Product) (model.Product, []Issue) {
	var issues []Issue
	add := func(level Level, msg string) {
		issues = append(issues, Issue{SKU: p.SKU, Level: level, Message: msg})
	}

	if p.SKU == "" {
		add(LevelError, "sku is required")
	}
	if p.Name == "" {
		add(LevelError, "name is required")
	}
	if p.Price < 0 {
		add(LevelError, "price must not be negative")
	}
	if p.CompareAt != nil && *p.CompareAt <= 0 {
		add(LevelWarning, "compare_at must be positive; cleared")
		p.CompareAt = nil
	}

	switch p.Tier {
	case "", model.TierA, model.TierB, model.TierC:
	default:
		add(LevelWarning, fmt.Sprintf("unknown tier %q; cleared", p.Tier))
		p.Tier = ""
	}

	if p.Badge != model.BadgeNone {
		badge := model.BadgeNone
		for _, b := range knownBadges {
			if strings.EqualFold(string(b), string(p.Badge)) {
				badge = b
			}
		}
		if badge == model.BadgeNone {
			add(LevelWarning, fmt.Sprintf("unknown badge %q; cleared", p.Badge))
		}
		p.Badge = badge
	}
	return p, issues
}

func hasError(issues []Issue) bool {
	for _, i := range issues {
		if i.Level == LevelError {
			return true
		}
	}
	return false
}
