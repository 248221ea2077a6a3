package db

import (
	"context"
	"fmt"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var productUpsert = UpsertConfig{
	Table:        "products",
	Columns:      []string{"sku", "name", "price"},
	ConflictKeys: []string{"sku"},
}

func TestBulkUpsert_EmptyRows(t *testing.T) {
	n, err := BulkUpsert(context.TODO(), nil, productUpsert, nil)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestBulkUpsert_NoColumns(t *testing.T) {
	_, err := BulkUpsert(context.TODO(), nil, UpsertConfig{
		Table:        "products",
		ConflictKeys: []string{"sku"},
	}, [][]any{{"NX-1"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no columns specified")
}

func TestBulkUpsert_NoConflictKeys(t *testing.T) {
	_, err := BulkUpsert(context.TODO(), nil, UpsertConfig{
		Table:   "products",
		Columns: []string{"sku", "name"},
	}, [][]any{{"NX-1", "a"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no conflict keys specified")
}

func TestBulkUpsert_Success(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`CREATE TEMP TABLE "_tmp_upsert_products" (LIKE "products" INCLUDING DEFAULTS, "_ord" BIGINT) ON COMMIT DROP`)).
		WillReturnResult(pgxmock.NewResult("CREATE TABLE", 0))
	mock.ExpectCopyFrom(pgx.Identifier{"_tmp_upsert_products"}, []string{"sku", "name", "price", "_ord"}).
		WillReturnResult(2)
	mock.ExpectExec(regexp.QuoteMeta(`ON CONFLICT ("sku") DO UPDATE SET "name" = EXCLUDED."name", "price" = EXCLUDED."price"`)).
		WillReturnResult(pgxmock.NewResult("INSERT", 2))
	mock.ExpectCommit()

	rows := [][]any{{"NX-1", "a", 1.5}, {"NX-2", "b", 2.5}}
	n, err := BulkUpsert(context.Background(), mock, productUpsert, rows)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBulkUpsert_CopyFailsRollsBack(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`CREATE TEMP TABLE`).WillReturnResult(pgxmock.NewResult("CREATE TABLE", 0))
	mock.ExpectCopyFrom(pgx.Identifier{"_tmp_upsert_products"}, []string{"sku", "name", "price", "_ord"}).
		WillReturnError(fmt.Errorf("disk full"))
	mock.ExpectRollback()

	_, err = BulkUpsert(context.Background(), mock, productUpsert, [][]any{{"NX-1", "a", 1.5}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "COPY into temp table for products")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertSQL(t *testing.T) {
	got := upsertSQL(UpsertConfig{
		Table:        "catalog.products",
		Columns:      []string{"sku", "name"},
		ConflictKeys: []string{"sku"},
	}, tempTableName("catalog.products"), []string{"name"})
	assert.Equal(t,
		`INSERT INTO "catalog"."products" ("sku", "name") SELECT "sku", "name" FROM "_tmp_upsert_catalog_products" ORDER BY "_ord" ON CONFLICT ("sku") DO UPDATE SET "name" = EXCLUDED."name"`,
		got)

	keysOnly := upsertSQL(UpsertConfig{
		Table:        "tags",
		Columns:      []string{"tag"},
		ConflictKeys: []string{"tag"},
	}, "tmp", nil)
	assert.Contains(t, keysOnly, "ON CONFLICT (\"tag\") DO NOTHING")
}

func TestWithOrdinals(t *testing.T) {
	rows := [][]any{{"NX-2", "b"}, {"NX-1", "a"}}
	got := withOrdinals(rows)
	assert.Equal(t, [][]any{{"NX-2", "b", int64(0)}, {"NX-1", "a", int64(1)}}, got)
	assert.Len(t, rows[0], 2, "input rows are not modified")
	assert.Equal(t, []string{"sku", "name", "_ord"}, copyColumns([]string{"sku", "name"}))
}

func TestQuoteAndJoin(t *testing.T) {
	assert.Equal(t, `"sku", "name", "price"`, quoteAndJoin([]string{"sku", "name", "price"}))
}
