package model

import (
	"strings"

	"golang.org/x/text/cases"
)

// Fold case-folds s for case-insensitive matching. A Caser carries state,
// so each call builds its own.
func Fold(s string) string {
	return cases.Fold().String(s)
}

// MatchesQuery reports whether q occurs in the product's name, SKU or any
// spec, ignoring case. Only the empty query matches everything; whitespace
// is searched for like any other text.
func (p Product) MatchesQuery(q string) bool {
	q = Fold(q)
	if q == "" {
		return true
	}
	if strings.Contains(Fold(p.Name), q) || strings.Contains(Fold(p.SKU), q) {
		return true
	}
	for _, s := range p.Specs {
		if strings.Contains(Fold(s), q) {
			return true
		}
	}
	return false
}

// Matches reports whether p satisfies every criterion set on f. Limit and
// Offset are ignored.
func (f ProductFilter) Matches(p Product) bool {
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.Subcategory != "" && p.Subcategory != f.Subcategory {
		return false
	}
	if f.Badge != BadgeNone && p.Badge != f.Badge {
		return false
	}
	if f.InStockOnly && !p.InStock {
		return false
	}
	if f.QuickShipOnly && !p.QuickShip {
		return false
	}
	if f.MinPrice > 0 && p.Price < f.MinPrice {
		return false
	}
	if f.MaxPrice > 0 && p.Price > f.MaxPrice {
		return false
	}
	if !p.MatchesQuery(f.Query) {
		return false
	}
	if len(f.FiberTypes) > 0 && !anyIn(f.FiberTypes, p.Specs, strings.HasPrefix) {
		return false
	}
	if len(f.Connectors) > 0 && !anyIn(f.Connectors, []string{p.Name}, strings.Contains) {
		return false
	}
	if len(f.Jackets) > 0 && !anyIn(f.Jackets, p.Specs, func(a, b string) bool { return a == b }) {
		return false
	}
	return true
}

// Page applies Offset and Limit to a matched slice.
func (f ProductFilter) Page(products []Product) []Product {
	if f.Offset > 0 {
		if f.Offset >= len(products) {
			return []Product{}
		}
		products = products[f.Offset:]
	}
	if f.Limit > 0 && f.Limit < len(products) {
		products = products[:f.Limit]
	}
	return products
}

// anyIn reports whether match(field, want) holds, case-folded, for any
// field and wanted value.
func anyIn(wants, fields []string, match func(s, sub string) bool) bool {
	for _, w := range wants {
		w = Fold(w)
		for _, field := range fields {
			if match(Fold(field), w) {
				return true
			}
		}
	}
	return false
}
