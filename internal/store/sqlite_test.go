package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexlume/fibercat/internal/model"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	st, err := NewSQLite(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() }) //nolint:errcheck
	require.NoError(t, st.Migrate(context.Background()))
	return st
}

func testProducts() []model.Product {
	return []model.Product{
		{
			SKU: "NX-PC-LCUPCLCUPC-OS2-DX-1M", Name: "LC/UPC-LC/UPC OS2 Duplex Patch Cord — 1m",
			Category: "patch-cords", Subcategory: "sm-duplex",
			Specs: []string{"OS2 9/125μm", "Duplex", "LSZH", "1m"},
			Price: 4.39, CompareAt: model.Price(5.49), InStock: true, QuickShip: true,
			Tier: model.TierA, Badge: model.BadgeBestSeller,
		},
		{
			SKU: "NX-PC-SCAPCSCAPC-OS2-SX-3M", Name: "SC/APC-SC/APC OS2 Simplex Patch Cord — 3m",
			Category: "patch-cords", Subcategory: "sm-simplex",
			Specs: []string{"OS2 9/125μm", "Simplex", "LSZH", "3m"},
			Price: 5.19, InStock: true, Tier: model.TierB,
		},
		{
			SKU: "NX-10G-SFP+-SR", Name: "10G SFP+-SR Transceiver — 850nm 300m",
			Category: "transceivers", Subcategory: "10g",
			Specs: []string{"10G", "850nm", "OM3 300m", "LC Duplex", "DDM"},
			Price: 12.99, CompareAt: model.Price(45), Tier: model.TierA, Badge: model.BadgeNew,
		},
	}
}

func TestSQLite_UpsertAndGetProduct(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	n, err := st.UpsertProducts(ctx, testProducts())
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	p, err := st.GetProduct(ctx, "NX-10G-SFP+-SR")
	require.NoError(t, err)
	assert.Equal(t, "transceivers", p.Category)
	assert.Equal(t, []string{"10G", "850nm", "OM3 300m", "LC Duplex", "DDM"}, p.Specs)
	require.NotNil(t, p.CompareAt)
	assert.InDelta(t, 45.0, *p.CompareAt, 1e-9)
	assert.Equal(t, model.BadgeNew, p.Badge)
	assert.Equal(t, model.TierA, p.Tier)

	p, err = st.GetProduct(ctx, "NX-PC-SCAPCSCAPC-OS2-SX-3M")
	require.NoError(t, err)
	assert.Nil(t, p.CompareAt)
	assert.Empty(t, p.Badge)
}

func TestSQLite_GetProduct_NotFound(t *testing.T) {
	st := newTestSQLiteStore(t)

	_, err := st.GetProduct(context.Background(), "NX-MISSING")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestSQLite_UpsertProducts_UpdatesInPlace(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	_, err := st.UpsertProducts(ctx, testProducts())
	require.NoError(t, err)

	changed := testProducts()[0]
	changed.Price = 3.99
	changed.InStock = false
	_, err = st.UpsertProducts(ctx, []model.Product{changed})
	require.NoError(t, err)

	count, err := st.CountProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	all, err := st.ListProducts(ctx, model.ProductFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, changed.SKU, all[0].SKU, "update keeps insertion order")
	assert.InDelta(t, 3.99, all[0].Price, 1e-9)
	assert.False(t, all[0].InStock)
}

func TestSQLite_ListProducts_Filter(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()
	_, err := st.UpsertProducts(ctx, testProducts())
	require.NoError(t, err)

	tests := []struct {
		name   string
		filter model.ProductFilter
		want   []string
	}{
		{"category", model.ProductFilter{Category: "patch-cords"}, []string{"NX-PC-LCUPCLCUPC-OS2-DX-1M", "NX-PC-SCAPCSCAPC-OS2-SX-3M"}},
		{"in stock", model.ProductFilter{InStockOnly: true, QuickShipOnly: true}, []string{"NX-PC-LCUPCLCUPC-OS2-DX-1M"}},
		{"badge", model.ProductFilter{Badge: model.BadgeNew}, []string{"NX-10G-SFP+-SR"}},
		{"price band", model.ProductFilter{MinPrice: 5, MaxPrice: 13}, []string{"NX-PC-SCAPCSCAPC-OS2-SX-3M", "NX-10G-SFP+-SR"}},
		{"query", model.ProductFilter{Query: "simplex"}, []string{"NX-PC-SCAPCSCAPC-OS2-SX-3M"}},
		{"connector", model.ProductFilter{Connectors: []string{"sc/apc"}}, []string{"NX-PC-SCAPCSCAPC-OS2-SX-3M"}},
		{"paged", model.ProductFilter{Offset: 1, Limit: 1}, []string{"NX-PC-SCAPCSCAPC-OS2-SX-3M"}},
		{"none", model.ProductFilter{Category: "racks"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := st.ListProducts(ctx, tt.filter)
			require.NoError(t, err)
			skus := make([]string, 0, len(got))
			for _, p := range got {
				skus = append(skus, p.SKU)
			}
			assert.Equal(t, tt.want, skus)
		})
	}
}

func TestSQLite_Configurations(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	cfg := &model.SavedConfiguration{
		Name:    "rack 12 uplink",
		Profile: model.ProfilePatchCord,
		Config: model.CableConfiguration{
			Application: model.AppDataCenter,
			FiberType:   "OS2",
			ConnectorA:  "LC/UPC",
			ConnectorB:  "LC/UPC",
			Length:      3,
			JacketColor: "yellow",
			FiberCount:  2,
			PolishA:     model.PolishUPC,
			PolishB:     model.PolishUPC,
		},
	}
	require.NoError(t, st.SaveConfiguration(ctx, cfg))
	require.NotEmpty(t, cfg.ID)

	got, err := st.GetConfiguration(ctx, cfg.ID)
	require.NoError(t, err)
	assert.Equal(t, cfg.Name, got.Name)
	assert.Equal(t, model.ProfilePatchCord, got.Profile)
	assert.Equal(t, cfg.Config, got.Config)

	cfg.Name = "rack 12 uplink v2"
	require.NoError(t, st.SaveConfiguration(ctx, cfg))

	list, err := st.ListConfigurations(ctx, 0)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "rack 12 uplink v2", list[0].Name)

	require.NoError(t, st.DeleteConfiguration(ctx, cfg.ID))
	_, err = st.GetConfiguration(ctx, cfg.ID)
	assert.True(t, errors.Is(err, ErrNotFound))

	err = st.DeleteConfiguration(ctx, cfg.ID)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestSQLite_SaveConfiguration_RequiresName(t *testing.T) {
	st := newTestSQLiteStore(t)

	err := st.SaveConfiguration(context.Background(), &model.SavedConfiguration{Name: "  "})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name is required")
}
