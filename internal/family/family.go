// Package family collapses per-length catalog SKUs into product families.
//
// A family is every SKU sharing a category, subcategory and display name once
// the trailing length ("— 3m") is removed. Connector, fiber and construction
// metadata are parsed from the family name; variants are ordered by length.
package family

import (
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/nexlume/fibercat/internal/model"
)

// DefaultJacket is used when no product spec names a jacket rating.
const DefaultJacket = "LSZH"

var (
	// Whitespace classes include \p{Z} so no-break and other Unicode
	// spaces separate words too.

	// lengthRe finds the first "— 3m" / "—2.5m" marker anywhere in a name.
	lengthRe = regexp.MustCompile(`—[\s\p{Z}]*(\d+(?:\.\d+)?m)`)
	// suffixRe strips the marker only when it ends the name.
	suffixRe = regexp.MustCompile(`[\s\p{Z}]*—[\s\p{Z}]*\d+(?:\.\d+)?m$`)
	// connRe reads "A-B FIBER Duplex|Simplex" from the front of a family name.
	connRe       = regexp.MustCompile(`^(.+?)-(.+?)[\s\p{Z}]+(\w+)[\s\p{Z}]+(Duplex|Simplex)`)
	lengthSpecRe = regexp.MustCompile(`^\d+(\.\d+)?m$`)
	nonAlnumRe   = regexp.MustCompile(`[^a-z0-9]`)
	nonAlnumRun  = regexp.MustCompile(`[^a-z0-9]+`)
)

// jacketRatings lists the specs recognized as a jacket rating, in priority
// order of appearance in the spec list.
var jacketRatings = []string{"LSZH", "PVC", "OFNP", "OFNR", "Plenum"}

// ParseLength extracts the length label and its value in meters from a
// product name. ok is false when the name carries no length marker.
func ParseLength(name string) (length string, meters float64, ok bool) {
	m := lengthRe.FindStringSubmatch(name)
	if m == nil {
		return "", 0, false
	}
	length = m[1]
	meters, err := strconv.ParseFloat(strings.TrimSuffix(length, "m"), 64)
	if err != nil {
		return "", 0, false
	}
	return length, meters, true
}

// FamilyName returns the product name with a trailing length marker removed.
func FamilyName(name string) string {
	return strings.TrimSpace(suffixRe.ReplaceAllString(name, ""))
}

// Key builds the grouping key for a product family.
func Key(category, subcategory, familyName string) string {
	return category + ":" + subcategory + ":" + familyName
}

// Group collapses products into families. Products without a length marker
// are skipped. Families keep the order in which their first product appears;
// variants are sorted by length, equal lengths keeping input order.
func Group(products []model.Product) []model.ProductFamily {
	families := make([]model.ProductFamily, 0)
	index := make(map[string]int)

	for _, p := range products {
		length, meters, ok := ParseLength(p.Name)
		if !ok {
			continue
		}

		name := FamilyName(p.Name)
		key := Key(p.Category, p.Subcategory, name)

		i, seen := index[key]
		if !seen {
			i = len(families)
			index[key] = i
			families = append(families, newFamily(key, name, p))
		}

		families[i].Variants = append(families[i].Variants, model.ProductVariant{
			SKU:       p.SKU,
			Length:    length,
			LengthNum: meters,
			Price:     p.Price,
			CompareAt: p.CompareAt,
			InStock:   p.InStock,
			QuickShip: p.QuickShip,
			Badge:     p.Badge,
		})
	}

	for i := range families {
		slices.SortStableFunc(families[i].Variants, func(a, b model.ProductVariant) int {
			switch {
			case a.LengthNum < b.LengthNum:
				return -1
			case a.LengthNum > b.LengthNum:
				return 1
			}
			return 0
		})
	}

	return families
}

// newFamily seeds a family's shared metadata from its first product.
func newFamily(key, name string, p model.Product) model.ProductFamily {
	specs := make([]string, 0, len(p.Specs))
	for _, s := range p.Specs {
		if !lengthSpecRe.MatchString(s) {
			specs = append(specs, s)
		}
	}

	f := model.ProductFamily{
		Key:         key,
		Name:        name,
		Slug:        Slug(name),
		Category:    p.Category,
		Subcategory: p.Subcategory,
		Jacket:      DefaultJacket,
		Specs:       specs,
	}

	if m := connRe.FindStringSubmatch(name); m != nil {
		f.ConnectorA, f.ConnectorB, f.Fiber, f.Config = m[1], m[2], m[3], m[4]
	}
	if f.Fiber == "" && len(specs) > 0 {
		f.Fiber = specs[0]
	}
	if f.Config == "" && len(specs) > 1 {
		f.Config = specs[1]
	}
	for _, s := range specs {
		if slices.Contains(jacketRatings, s) {
			f.Jacket = s
			break
		}
	}
	return f
}

// Find returns the first family whose key, or whose dashed lowercase name,
// contains slug (case-insensitive).
func Find(families []model.ProductFamily, slug string) (model.ProductFamily, bool) {
	s := strings.ToLower(slug)
	for _, f := range families {
		if strings.Contains(strings.ToLower(f.Key), s) ||
			strings.Contains(nonAlnumRe.ReplaceAllString(strings.ToLower(f.Name), "-"), s) {
			return f, true
		}
	}
	return model.ProductFamily{}, false
}

// Slug turns a family name into a URL-safe slug.
func Slug(name string) string {
	s := nonAlnumRun.ReplaceAllString(strings.ToLower(name), "-")
	s = strings.TrimPrefix(s, "-")
	return strings.TrimSuffix(s, "-")
}

// Filter returns the families in the given category and, when set,
// subcategory. Empty arguments match everything.
func Filter(families []model.ProductFamily, category, subcategory string) []model.ProductFamily {
	out := make([]model.ProductFamily, 0, len(families))
	for _, f := range families {
		if category != "" && f.Category != category {
			continue
		}
		if subcategory != "" && f.Subcategory != subcategory {
			continue
		}
		out = append(out, f)
	}
	return out
}
