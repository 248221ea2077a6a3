package db

import (
	"context"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopyFrom_EmptyRows(t *testing.T) {
	n, err := CopyFrom(context.TODO(), nil, "products", []string{"sku", "name"}, nil)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestCopyFrom_Success(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectCopyFrom(pgx.Identifier{"products"}, []string{"sku", "name"}).WillReturnResult(3)

	rows := [][]any{{"NX-1", "a"}, {"NX-2", "b"}, {"NX-3", "c"}}
	n, err := CopyFrom(context.Background(), mock, "products", []string{"sku", "name"}, rows)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCopyFrom_SchemaQualified(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectCopyFrom(pgx.Identifier{"catalog", "products"}, []string{"sku"}).WillReturnResult(1)

	n, err := CopyFrom(context.Background(), mock, "catalog.products", []string{"sku"}, [][]any{{"NX-1"}})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCopyFrom_Error(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectCopyFrom(pgx.Identifier{"products"}, []string{"sku"}).WillReturnError(fmt.Errorf("copy failed"))

	_, err = CopyFrom(context.Background(), mock, "products", []string{"sku"}, [][]any{{"NX-1"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "COPY INTO products")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdentifier(t *testing.T) {
	assert.Equal(t, pgx.Identifier{"products"}, identifier("products"))
	assert.Equal(t, pgx.Identifier{"catalog", "products"}, identifier("catalog.products"))
	assert.Equal(t, `"catalog"."products"`, identifier("catalog.products").Sanitize())
}
