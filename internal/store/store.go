// Package store persists catalog products and saved cable configurations.
package store

import (
	"context"
	"time"

	"github.com/rotisserie/eris"

	"github.com/nexlume/fibercat/internal/model"
)

// ErrNotFound is returned, wrapped, when a product or configuration does
// not exist. Check it with errors.Is.
var ErrNotFound = eris.New("not found")

// DefaultListLimit caps configuration list queries that set no limit.
// Product listings are unbounded unless the filter sets a limit.
const DefaultListLimit = 100

// Store defines the persistence interface for fibercat.
type Store interface {
	// Products
	UpsertProducts(ctx context.Context, products []model.Product) (int, error)
	ListProducts(ctx context.Context, filter model.ProductFilter) ([]model.Product, error)
	GetProduct(ctx context.Context, sku string) (*model.Product, error)
	CountProducts(ctx context.Context) (int, error)

	// Saved configurations
	SaveConfiguration(ctx context.Context, cfg *model.SavedConfiguration) error
	GetConfiguration(ctx context.Context, id string) (*model.SavedConfiguration, error)
	ListConfigurations(ctx context.Context, limit int) ([]model.SavedConfiguration, error)
	DeleteConfiguration(ctx context.Context, id string) error

	// Lifecycle
	Migrate(ctx context.Context) error
	Close() error
}

// productColumns is the column order shared by every product query.
var productColumns = []string{
	"sku", "name", "category", "subcategory", "specs", "price", "compare_at",
	"in_stock", "quick_ship", "tier", "badge", "image", "updated_at",
}

// pushdown builds the SQL predicate for the filter fields that map to plain
// columns. The remaining criteria are applied in Go by ProductFilter.Matches.
// ph renders the placeholder for the n-th argument.
func pushdown(f model.ProductFilter, ph func(n int) string) (string, []any) {
	var (
		where string
		args  []any
	)
	add := func(cond string, v any) {
		args = append(args, v)
		where += " AND " + cond + ph(len(args))
	}

	if f.Category != "" {
		add("category = ", f.Category)
	}
	if f.Subcategory != "" {
		add("subcategory = ", f.Subcategory)
	}
	if f.Badge != model.BadgeNone {
		add("badge = ", string(f.Badge))
	}
	if f.InStockOnly {
		add("in_stock = ", true)
	}
	if f.QuickShipOnly {
		add("quick_ship = ", true)
	}
	if f.MinPrice > 0 {
		add("price >= ", f.MinPrice)
	}
	if f.MaxPrice > 0 {
		add("price <= ", f.MaxPrice)
	}
	return where, args
}

// finish applies the in-memory criteria and pagination to rows already
// narrowed by pushdown.
func finish(f model.ProductFilter, products []model.Product) []model.Product {
	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		if f.Matches(p) {
			out = append(out, p)
		}
	}
	return f.Page(out)
}

// prepareConfiguration fills in the ID and timestamps before a save.
func prepareConfiguration(cfg *model.SavedConfiguration, newID func() string) {
	now := time.Now().UTC()
	if cfg.ID == "" {
		cfg.ID = newID()
	}
	if cfg.CreatedAt.IsZero() {
		cfg.CreatedAt = now
	}
	cfg.UpdatedAt = now
}
