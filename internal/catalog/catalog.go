// Package catalog serves the seed product catalog: search, category and
// badge views, SKU lookup and family grouping.
package catalog

import (
	"strings"

	"github.com/nexlume/fibercat/internal/family"
	"github.com/nexlume/fibercat/internal/model"
)

// Catalog is an immutable, ordered set of products.
type Catalog struct {
	products   []model.Product
	categories []model.Category
	bundles    []model.Bundle
}

// New builds a catalog over products, dropping later duplicates of a SKU.
func New(products []model.Product, categories []model.Category, bundles []model.Bundle) *Catalog {
	return &Catalog{
		products:   Dedupe(products),
		categories: categories,
		bundles:    bundles,
	}
}

// Default is the full catalog followed by the best sellers, de-duplicated.
func Default() *Catalog {
	return New(append(FullCatalog(), TopSKUs()...), Categories(), Bundles())
}

// Dedupe keeps the first product for every SKU, preserving order.
func Dedupe(products []model.Product) []model.Product {
	seen := make(map[string]struct{}, len(products))
	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		if _, ok := seen[p.SKU]; ok {
			continue
		}
		seen[p.SKU] = struct{}{}
		out = append(out, p)
	}
	return out
}

// All returns every product.
func (c *Catalog) All() []model.Product {
	return c.products
}

func (c *Catalog) Categories() []model.Category { return c.categories }

func (c *Catalog) Bundles() []model.Bundle { return c.bundles }

// Category returns the category with the given slug.
func (c *Catalog) Category(slug string) (model.Category, bool) {
	for _, cat := range c.categories {
		if cat.Slug == slug {
			return cat, true
		}
	}
	return model.Category{}, false
}

// Search returns products whose name, SKU or specs contain q, ignoring case.
// An empty query returns everything.
func (c *Catalog) Search(q string) []model.Product {
	return c.where(func(p model.Product) bool { return p.MatchesQuery(q) })
}

// ByCategory returns the products in a category.
func (c *Catalog) ByCategory(slug string) []model.Product {
	return c.where(func(p model.Product) bool { return p.Category == slug })
}

// ByBadge returns the products carrying badge.
func (c *Catalog) ByBadge(badge model.Badge) []model.Product {
	return c.where(func(p model.Product) bool { return p.Badge == badge })
}

// FindBySKU returns the first product whose SKU contains fragment, ignoring
// case.
func (c *Catalog) FindBySKU(fragment string) (model.Product, bool) {
	f := strings.ToLower(fragment)
	if f == "" {
		return model.Product{}, false
	}
	for _, p := range c.products {
		if strings.Contains(strings.ToLower(p.SKU), f) {
			return p, true
		}
	}
	return model.Product{}, false
}

// Related returns up to n other products from p's category.
func (c *Catalog) Related(p model.Product, n int) []model.Product {
	if n < 0 {
		n = 0
	}
	out := make([]model.Product, 0, n)
	for _, q := range c.products {
		if len(out) == n {
			break
		}
		if q.Category == p.Category && q.SKU != p.SKU {
			out = append(out, q)
		}
	}
	return out
}

// Filter returns the page of products matching f.
func (c *Catalog) Filter(f model.ProductFilter) []model.Product {
	return f.Page(c.where(f.Matches))
}

// Families groups the catalog's length variants.
func (c *Catalog) Families() []model.ProductFamily {
	return family.Group(c.products)
}

func (c *Catalog) where(keep func(model.Product) bool) []model.Product {
	out := make([]model.Product, 0)
	for _, p := range c.products {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}
