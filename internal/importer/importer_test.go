package importer

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"

	"github.com/nexlume/fibercat/internal/fetcher"
	"github.com/nexlume/fibercat/internal/model"
)

type recordingStore struct {
	mu       sync.Mutex
	calls    int
	products []model.Product
	err      error
}

func (s *recordingStore) UpsertProducts(_ context.Context, products []model.Product) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return 0, s.err
	}
	s.products = append(s.products, products...)
	return len(products), nil
}

func testSources() *fetcher.Sources {
	return &fetcher.Sources{
		HTTP: fetcher.NewHTTPFetcher(fetcher.HTTPOptions{Timeout: 5 * time.Second, Rate: 1000, Burst: 100, BaseBackoff: time.Millisecond}),
		FTP:  fetcher.NewFTPFetcher(fetcher.FTPOptions{}),
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestImport_MergesSources(t *testing.T) {
	first := writeFile(t, "a.csv", "sku,name,price,badge\n"+
		"NX-1,Cord 1m,4.00,new\n"+
		"NX-2,Cord 2m,4.40,\n"+
		",Nameless,1.00,\n")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("sku,name,price,tier\nNX-1,Cord 1m v2,3.90,B\nNX-3,Cord 3m,-1,\nNX-4,Cord 5m,5.60,Z\n"))
	}))
	defer srv.Close()

	st := &recordingStore{}
	im := New(st, testSources(), Options{Concurrency: 2})

	report, err := im.Import(context.Background(), first, srv.URL+"/b.csv")
	require.NoError(t, err)

	assert.Equal(t, 2, report.Sources)
	assert.Equal(t, 6, report.Rows)
	assert.Equal(t, 2, report.Skipped)
	assert.Equal(t, 1, report.Duplicates)
	assert.Equal(t, 3, report.Imported)

	require.Equal(t, 1, st.calls)
	require.Len(t, st.products, 3)
	assert.Equal(t, "NX-1", st.products[0].SKU)
	assert.Equal(t, "Cord 1m v2", st.products[0].Name, "later row wins")
	assert.Equal(t, model.TierB, st.products[0].Tier)
	assert.Equal(t, "NX-2", st.products[1].SKU)
	assert.Equal(t, "NX-4", st.products[2].SKU)
	assert.Empty(t, st.products[2].Tier)

	var dup *Issue
	for i, is := range report.Issues {
		if is.Message != "" && is.SKU == "NX-1" && is.Level == LevelWarning {
			dup = &report.Issues[i]
		}
	}
	require.NotNil(t, dup)
	assert.Contains(t, dup.Message, first+":2")
}

func TestImport_DryRun(t *testing.T) {
	src := writeFile(t, "a.csv", "sku,name,price\nNX-1,Cord,4\nNX-2,Cord,5\n")
	st := &recordingStore{}

	report, err := New(st, testSources(), Options{DryRun: true}).Import(context.Background(), src)
	require.NoError(t, err)
	assert.True(t, report.DryRun)
	assert.Equal(t, 2, report.Imported)
	assert.Zero(t, st.calls)
}

func TestImport_XLSXAndZIP(t *testing.T) {
	xlsxPath := writeTestXLSX(t, [][]string{
		{"sku", "name", "price"},
		{"NX-X-1", "Xlsx Cord", "2.50"},
	})

	zipPath := filepath.Join(t.TempDir(), "sheet.zip")
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("inner.csv")
	require.NoError(t, err)
	_, err = w.Write([]byte("sku,name,price\nNX-Z-1,Zipped Cord,1.25\n"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, os.WriteFile(zipPath, buf.Bytes(), 0o644))

	st := &recordingStore{}
	report, err := New(st, testSources(), Options{}).Import(context.Background(), xlsxPath, zipPath)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Imported)
	require.Len(t, st.products, 2)
	assert.Equal(t, "NX-X-1", st.products[0].SKU)
	assert.Equal(t, "NX-Z-1", st.products[1].SKU)
}

func TestImport_FailingSourceWritesNothing(t *testing.T) {
	good := writeFile(t, "a.csv", "sku,name,price\nNX-1,Cord,4\n")
	st := &recordingStore{}

	_, err := New(st, testSources(), Options{}).Import(context.Background(), good, filepath.Join(t.TempDir(), "gone.csv"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gone.csv")
	assert.Zero(t, st.calls)

	_, err = New(st, testSources(), Options{}).Import(context.Background(), writeFile(t, "a.json", "{}"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unsupported format ".json"`)

	_, err = New(st, testSources(), Options{}).Import(context.Background())
	require.Error(t, err)
}

func TestImport_StoreError(t *testing.T) {
	src := writeFile(t, "a.csv", "sku,name,price\nNX-1,Cord,4\n")
	st := &recordingStore{err: errors.New("disk full")}

	_, err := New(st, testSources(), Options{}).Import(context.Background(), src)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "importer: upsert")
}

func TestValidate(t *testing.T) {
	p, issues := Validate(model.Product{SKU: "NX-1", Name: "Cord", Price: 1, Badge: "bead ready", CompareAt: model.Price(0)})
	require.Len(t, issues, 1)
	assert.Equal(t, LevelWarning, issues[0].Level)
	assert.Nil(t, p.CompareAt)
	assert.Equal(t, model.BadgeBEADReady, p.Badge)

	_, issues = Validate(model.Product{Price: -1})
	assert.Len(t, issues, 3)
	assert.True(t, hasError(issues))
}

func TestExportFamiliesXLSX(t *testing.T) {
	families := []model.ProductFamily{{
		Name: "LC/UPC-LC/UPC OS2 Duplex Patch Cord", Slug: "lc-upc-lc-upc-os2-duplex",
		Category: "patch-cords", Subcategory: "sm-duplex",
		Variants: []model.ProductVariant{
			{SKU: "NX-1M", Length: "1m", LengthNum: 1, Price: 4.39, CompareAt: model.Price(5.49), InStock: true},
			{SKU: "NX-2M", Length: "2m", LengthNum: 2, Price: 4.79},
		},
	}}

	var buf bytes.Buffer
	require.NoError(t, ExportFamiliesXLSX(&buf, families))

	file, err := xlsx.OpenBinary(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, file.Sheets, 1)
	sheet := file.Sheets[0]
	assert.Equal(t, "Families", sheet.Name)
	require.Len(t, sheet.Rows, 3)

	assert.Equal(t, "family", sheet.Rows[0].Cells[0].String())
	assert.Equal(t, "NX-1M", sheet.Rows[1].Cells[9].String())
	assert.Equal(t, "yes", sheet.Rows[1].Cells[14].String())
	assert.Equal(t, "no", sheet.Rows[2].Cells[14].String())
	assert.Equal(t, "lc-upc-lc-upc-os2-duplex", sheet.Rows[2].Cells[1].String())
}
