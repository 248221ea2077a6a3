package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexlume/fibercat/internal/family"
	"github.com/nexlume/fibercat/internal/model"
)

func TestFullCatalog_CordSeries(t *testing.T) {
	all := FullCatalog()
	require.Len(t, all, 250)

	first := all[0]
	assert.Equal(t, "NX-PC-LCUPCLCUPC-OS2-DX-1M", first.SKU)
	assert.Equal(t, "LC/UPC-LC/UPC OS2 Duplex Patch Cord — 1m", first.Name)
	assert.Equal(t, []string{"OS2 9/125μm", "Duplex", "LSZH", "1m"}, first.Specs)
	assert.Equal(t, model.BadgeBestSeller, first.Badge)
	assert.Equal(t, model.TierA, first.Tier)

	ten := all[5]
	assert.Equal(t, "NX-PC-LCUPCLCUPC-OS2-DX-10M", ten.SKU)
	assert.InDelta(t, 7.99, ten.Price, 1e-9)
	require.NotNil(t, ten.CompareAt)
	assert.InDelta(t, 9.99, *ten.CompareAt, 1e-9)
	assert.True(t, ten.InStock)
	assert.True(t, ten.QuickShip)
	assert.Equal(t, model.TierB, ten.Tier)
	assert.Empty(t, ten.Badge)

	fifteen := all[6]
	assert.True(t, fifteen.InStock)
	assert.False(t, fifteen.QuickShip)

	fifty := all[10]
	assert.Equal(t, "NX-PC-LCUPCLCUPC-OS2-DX-50M", fifty.SKU)
	assert.InDelta(t, 23.99, fifty.Price, 1e-9)
	assert.False(t, fifty.InStock)
	assert.Equal(t, model.TierC, fifty.Tier)

	st := FullCatalog()[99]
	assert.Equal(t, "NX-PC-STST-OS2-SX-1M", st.SKU)
	assert.Equal(t, "PVC", st.Specs[2])
}

func TestFullCatalog_Optics(t *testing.T) {
	c := New(FullCatalog(), nil, nil)
	p, ok := c.FindBySKU("NX-10G-SFP+-SR")
	require.True(t, ok)
	assert.Equal(t, "10G SFP+-SR Transceiver — 850nm 300m", p.Name)
	assert.Equal(t, []string{"10G", "850nm", "OM3 300m", "LC Duplex", "DDM"}, p.Specs)
	assert.Equal(t, "transceivers", p.Category)
	assert.Equal(t, model.BadgeBestSeller, p.Badge)
	assert.Equal(t, 71, p.SavingsPercent())

	_, _, ok = family.ParseLength(p.Name)
	assert.False(t, ok, "optic names carry no cable length")
}

func TestDefault_Dedupes(t *testing.T) {
	c := Default()
	assert.Len(t, c.All(), 268)

	seen := map[string]bool{}
	for _, p := range c.All() {
		assert.False(t, seen[p.SKU], "duplicate %s", p.SKU)
		seen[p.SKU] = true
	}

	p, ok := c.FindBySKU("nx-vfl-10mw")
	require.True(t, ok)
	assert.Equal(t, "Visual Fault Locator 10mW — Pro", p.Name, "first listing wins")
}

func TestSearch(t *testing.T) {
	c := Default()

	assert.Len(t, c.Search(""), len(c.All()))

	for _, p := range c.Search("apc") {
		assert.True(t, p.MatchesQuery("APC"))
	}
	assert.NotEmpty(t, c.Search("blockless"))
	assert.Empty(t, c.Search("no such product"))

	om5 := c.Search("om5")
	assert.Empty(t, om5)
}

func TestViews(t *testing.T) {
	products := []model.Product{
		{SKU: "A-1", Category: "patch-cords", Badge: model.BadgeBestSeller},
		{SKU: "A-2", Category: "patch-cords"},
		{SKU: "B-1", Category: "transceivers", Badge: model.BadgeNew},
		{SKU: "A-3", Category: "patch-cords"},
		{SKU: "A-4", Category: "patch-cords"},
		{SKU: "A-5", Category: "patch-cords"},
		{SKU: "A-1", Category: "adapters"},
	}
	c := New(products, Categories(), Bundles())

	assert.Len(t, c.All(), 6)
	assert.Len(t, c.ByCategory("patch-cords"), 5)
	assert.Empty(t, c.ByCategory("racks"))
	assert.NotNil(t, c.ByCategory("racks"))

	badged := c.ByBadge(model.BadgeNew)
	require.Len(t, badged, 1)
	assert.Equal(t, "B-1", badged[0].SKU)

	related := c.Related(products[0], 4)
	require.Len(t, related, 4)
	for _, r := range related {
		assert.NotEqual(t, "A-1", r.SKU)
		assert.Equal(t, "patch-cords", r.Category)
	}
	assert.Len(t, c.Related(products[2], 4), 0)
	assert.Empty(t, c.Related(products[0], -1))

	_, ok := c.FindBySKU("")
	assert.False(t, ok)
	p, ok := c.FindBySKU("a-")
	require.True(t, ok)
	assert.Equal(t, "A-1", p.SKU)
}

func TestCategoriesAndBundles(t *testing.T) {
	c := Default()

	cats := c.Categories()
	require.Len(t, cats, 5)
	assert.Equal(t, "patch-cords", cats[0].Slug)

	cat, ok := c.Category("test-equipment")
	require.True(t, ok)
	assert.Len(t, cat.Subcategories, 10)
	_, ok = c.Category("cables")
	assert.False(t, ok)

	bundles := c.Bundles()
	require.Len(t, bundles, 5)
	assert.Equal(t, "ftth-installer", bundles[0].ID)
	assert.InDelta(t, 176.0, bundles[0].ItemValue(), 1e-9)
	assert.Equal(t, "BEAD Ready", bundles[0].Badge)
}

func TestFilter(t *testing.T) {
	c := Default()

	page := c.Filter(model.ProductFilter{Category: "patch-cords", Subcategory: "om3-duplex", Limit: 5})
	require.Len(t, page, 5)
	for _, p := range page {
		assert.Equal(t, "om3-duplex", p.Subcategory)
	}

	stocked := c.Filter(model.ProductFilter{Subcategory: "om3-duplex", InStockOnly: true})
	assert.Len(t, stocked, 16)

	cheap := c.Filter(model.ProductFilter{Category: "transceivers", MaxPrice: 10})
	for _, p := range cheap {
		assert.LessOrEqual(t, p.Price, 10.0)
	}
	assert.NotEmpty(t, cheap)
}

func TestFamilies(t *testing.T) {
	fams := Default().Families()
	cords := family.Filter(fams, "patch-cords", "")
	assert.Len(t, cords, 20)

	f, ok := family.Find(fams, "sc-apc-sc-apc-os2-simplex")
	require.True(t, ok)
	assert.Equal(t, "sm-simplex", f.Subcategory)
	assert.Len(t, f.Variants, 11)
	assert.Equal(t, "SC/APC", f.ConnectorA)
	assert.Equal(t, model.BadgeBEADReady, f.Variants[0].Badge)
	assert.Equal(t, 8, f.InStockCount())
}
