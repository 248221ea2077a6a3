package store

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nexlume/fibercat/internal/model"
)

func TestPushdown(t *testing.T) {
	qmark := func(int) string { return "?" }

	where, args := pushdown(model.ProductFilter{}, qmark)
	assert.Empty(t, where)
	assert.Empty(t, args)

	where, args = pushdown(model.ProductFilter{
		Category:    "patch-cords",
		Badge:       model.BadgeNew,
		InStockOnly: true,
		MinPrice:    5,
		MaxPrice:    20,
		Query:       "lc",
	}, func(n int) string { return "$" + strconv.Itoa(n) })
	assert.Equal(t, " AND category = $1 AND badge = $2 AND in_stock = $3 AND price >= $4 AND price <= $5", where)
	assert.Equal(t, []any{"patch-cords", "New", true, 5.0, 20.0}, args)
}

func TestFinish(t *testing.T) {
	ps := make([]model.Product, 0, 150)
	for i := 0; i < 150; i++ {
		ps = append(ps, model.Product{SKU: "NX-" + strconv.Itoa(i), Name: "cord"})
	}
	assert.Len(t, finish(model.ProductFilter{}, ps), 150, "no limit means every match")
	assert.Len(t, finish(model.ProductFilter{Limit: 5, Offset: 2}, ps), 5)
	assert.Empty(t, finish(model.ProductFilter{Query: "transceiver"}, ps))
}

func TestPrepareConfiguration(t *testing.T) {
	cfg := &model.SavedConfiguration{Name: "rack a"}
	prepareConfiguration(cfg, func() string { return "id-1" })
	assert.Equal(t, "id-1", cfg.ID)
	assert.False(t, cfg.CreatedAt.IsZero())
	assert.Equal(t, cfg.CreatedAt, cfg.UpdatedAt)

	created := cfg.CreatedAt
	prepareConfiguration(cfg, func() string { return "id-2" })
	assert.Equal(t, "id-1", cfg.ID)
	assert.Equal(t, created, cfg.CreatedAt)
}
