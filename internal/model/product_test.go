package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSavingsPercent(t *testing.T) {
	tests := []struct {
		name      string
		price     float64
		compareAt *float64
		want      int
	}{
		{"no compare-at", 10, nil, 0},
		{"zero compare-at", 10, Price(0), 0},
		{"rounds half up", 12.99, Price(45), 71},
		{"small discount", 3.99, Price(4.50), 11},
		{"priced above compare-at", 5, Price(4), -25},
		{"exact half rounds up", 3, Price(8), 63},
		{"negative half rounds toward zero", 41, Price(40), -2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Product{Price: tt.price, CompareAt: tt.compareAt}
			assert.Equal(t, tt.want, p.SavingsPercent())
		})
	}
}

func TestBundleItemValue(t *testing.T) {
	b := Bundle{Items: []BundleItem{
		{Name: "cleaner", Qty: 2, Value: 14},
		{Name: "wipes", Qty: 1, Value: 8},
	}}
	assert.InDelta(t, 36.0, b.ItemValue(), 1e-9)
	assert.Zero(t, Bundle{}.ItemValue())
}

func TestFamilyHelpers(t *testing.T) {
	f := ProductFamily{Variants: []ProductVariant{
		{Length: "1m", Price: 4.39, InStock: true},
		{Length: "3m", Price: 5.19, InStock: true},
		{Length: "50m", Price: 23.99},
	}}
	assert.Equal(t, 4.39, f.PriceFrom())
	assert.Equal(t, 23.99, f.PriceTo())
	assert.Equal(t, 2, f.InStockCount())

	v, ok := f.Variant("3m")
	assert.True(t, ok)
	assert.Equal(t, 5.19, v.Price)

	_, ok = f.Variant("7m")
	assert.False(t, ok)

	assert.Zero(t, ProductFamily{}.PriceFrom())
	assert.Zero(t, ProductFamily{}.PriceTo())
}

func TestMatchesQuery(t *testing.T) {
	p := Product{
		SKU:   "NX-SFP-10G-LR",
		Name:  "10G SFP+ LR Singlemode Transceiver — 1310nm 10km",
		Specs: []string{"10Gbps", "1310nm", "OS2 10km", "DDM"},
	}
	assert.True(t, p.MatchesQuery(""))
	assert.True(t, p.MatchesQuery(" "), "single space occurs in the name")
	assert.False(t, p.MatchesQuery("  "), "whitespace is not trimmed")
	assert.True(t, p.MatchesQuery("singlemode"))
	assert.True(t, p.MatchesQuery("nx-sfp"))
	assert.True(t, p.MatchesQuery("ddm"))
	assert.True(t, p.MatchesQuery("os2 10KM"))
	assert.False(t, p.MatchesQuery("multimode"))
}

func TestFilterMatches(t *testing.T) {
	cord := Product{
		SKU:         "NX-PC-LCUPCLCUPC-OS2-DX-3M",
		Name:        "LC/UPC-LC/UPC OS2 Duplex Patch Cord — 3m",
		Category:    "patch-cords",
		Subcategory: "sm-duplex",
		Specs:       []string{"OS2 9/125μm", "Duplex", "LSZH", "3m"},
		Price:       5.19,
		InStock:     true,
		QuickShip:   true,
		Badge:       BadgeBestSeller,
	}

	tests := []struct {
		name   string
		filter ProductFilter
		want   bool
	}{
		{"empty filter", ProductFilter{}, true},
		{"category", ProductFilter{Category: "patch-cords"}, true},
		{"other category", ProductFilter{Category: "transceivers"}, false},
		{"subcategory", ProductFilter{Subcategory: "om4-duplex"}, false},
		{"badge", ProductFilter{Badge: BadgeBestSeller}, true},
		{"other badge", ProductFilter{Badge: BadgeNew}, false},
		{"fiber prefix", ProductFilter{FiberTypes: []string{"om4", "os2"}}, true},
		{"fiber miss", ProductFilter{FiberTypes: []string{"OM3"}}, false},
		{"connector", ProductFilter{Connectors: []string{"lc/upc"}}, true},
		{"connector miss", ProductFilter{Connectors: []string{"SC/APC"}}, false},
		{"jacket", ProductFilter{Jackets: []string{"lszh"}}, true},
		{"jacket miss", ProductFilter{Jackets: []string{"OFNP"}}, false},
		{"price band", ProductFilter{MinPrice: 5, MaxPrice: 6}, true},
		{"below min", ProductFilter{MinPrice: 6}, false},
		{"above max", ProductFilter{MaxPrice: 5}, false},
		{"in stock", ProductFilter{InStockOnly: true, QuickShipOnly: true}, true},
		{"query", ProductFilter{Query: "patch cord"}, true},
		{"query miss", ProductFilter{Query: "transceiver"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Matches(cord))
		})
	}

	out := cord
	out.InStock = false
	assert.False(t, ProductFilter{InStockOnly: true}.Matches(out))
}

func TestFilterPage(t *testing.T) {
	ps := []Product{{SKU: "a"}, {SKU: "b"}, {SKU: "c"}, {SKU: "d"}}

	assert.Len(t, ProductFilter{}.Page(ps), 4)
	assert.Equal(t, []Product{{SKU: "b"}, {SKU: "c"}}, ProductFilter{Offset: 1, Limit: 2}.Page(ps))
	assert.Equal(t, []Product{{SKU: "d"}}, ProductFilter{Offset: 3, Limit: 10}.Page(ps))
	assert.Empty(t, ProductFilter{Offset: 4}.Page(ps))
	assert.NotNil(t, ProductFilter{Offset: 9}.Page(ps))
}
