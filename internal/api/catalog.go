package api

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/nexlume/fibercat/internal/family"
	"github.com/nexlume/fibercat/internal/model"
	"github.com/nexlume/fibercat/internal/store"
)

type categoryResponse struct {
	model.Category
	Products []model.Product `json:"products"`
}

type productsResponse struct {
	Products []model.Product `json:"products"`
	Count    int             `json:"count"` // length of this page
	Total    int             `json:"total"` // matches before limit/offset
}

type productResponse struct {
	Product        model.Product   `json:"product"`
	SavingsPercent int             `json:"savings_percent"`
	Related        []model.Product `json:"related"`
}

type familiesResponse struct {
	Families []model.ProductFamily `json:"families"`
	Count    int                   `json:"count"`
}

func (s *Server) listCategories(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.seed.Categories())
}

func (s *Server) getCategory(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	cat, ok := s.seed.Category(slug)
	if !ok {
		writeError(w, http.StatusNotFound, "category not found")
		return
	}
	c, err := s.catalog(r.Context())
	if err != nil {
		writeStoreError(w, r, err, "category")
		return
	}
	writeJSON(w, http.StatusOK, categoryResponse{Category: cat, Products: c.ByCategory(slug)})
}

func (s *Server) listProducts(w http.ResponseWriter, r *http.Request) {
	f, err := parseProductFilter(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	all := f
	all.Limit, all.Offset = 0, 0

	var matches []model.Product
	if s.store != nil {
		matches, err = s.store.ListProducts(r.Context(), all)
		if err != nil {
			writeStoreError(w, r, err, "products")
			return
		}
	} else {
		matches = s.seed.Filter(all)
	}
	products := f.Page(matches)
	if products == nil {
		products = []model.Product{}
	}
	writeJSON(w, http.StatusOK, productsResponse{Products: products, Count: len(products), Total: len(matches)})
}

// getProduct resolves an exact SKU first, then the first SKU containing the
// fragment.
func (s *Server) getProduct(w http.ResponseWriter, r *http.Request) {
	sku := chi.URLParam(r, "sku")
	c, err := s.catalog(r.Context())
	if err != nil {
		writeStoreError(w, r, err, "product")
		return
	}

	var (
		p     model.Product
		found bool
	)
	if s.store != nil {
		exact, err := s.store.GetProduct(r.Context(), sku)
		switch {
		case err == nil:
			p, found = *exact, true
		case !errors.Is(err, store.ErrNotFound):
			writeStoreError(w, r, err, "product")
			return
		}
	}
	if !found {
		p, found = c.FindBySKU(sku)
	}
	if !found {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}

	writeJSON(w, http.StatusOK, productResponse{
		Product:        p,
		SavingsPercent: p.SavingsPercent(),
		Related:        c.Related(p, RelatedCount),
	})
}

func (s *Server) listFamilies(w http.ResponseWriter, r *http.Request) {
	c, err := s.catalog(r.Context())
	if err != nil {
		writeStoreError(w, r, err, "families")
		return
	}
	q := r.URL.Query()
	fams := family.Filter(c.Families(), q.Get("category"), q.Get("subcategory"))
	writeJSON(w, http.StatusOK, familiesResponse{Families: fams, Count: len(fams)})
}

func (s *Server) getFamily(w http.ResponseWriter, r *http.Request) {
	c, err := s.catalog(r.Context())
	if err != nil {
		writeStoreError(w, r, err, "family")
		return
	}
	f, ok := family.Find(c.Families(), chi.URLParam(r, "slug"))
	if !ok {
		writeError(w, http.StatusNotFound, "family not found")
		return
	}
	writeJSON(w, http.StatusOK, f)
}

func (s *Server) listBundles(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.seed.Bundles())
}

// parseProductFilter reads the product query string. List parameters may be
// repeated or comma separated.
func parseProductFilter(q url.Values) (model.ProductFilter, error) {
	f := model.ProductFilter{
		Query:       q.Get("q"),
		Category:    q.Get("category"),
		Subcategory: q.Get("subcategory"),
		Badge:       model.Badge(q.Get("badge")),
		FiberTypes:  list(q, "fiber"),
		Connectors:  list(q, "connector"),
		Jackets:     list(q, "jacket"),
	}

	var err error
	if f.MinPrice, err = floatParam(q, "min_price"); err != nil {
		return f, err
	}
	if f.MaxPrice, err = floatParam(q, "max_price"); err != nil {
		return f, err
	}
	if f.InStockOnly, err = boolParam(q, "in_stock"); err != nil {
		return f, err
	}
	if f.QuickShipOnly, err = boolParam(q, "quick_ship"); err != nil {
		return f, err
	}
	if f.Limit, err = intParam(q, "limit"); err != nil {
		return f, err
	}
	if f.Offset, err = intParam(q, "offset"); err != nil {
		return f, err
	}
	return f, nil
}

func list(q url.Values, key string) []string {
	var out []string
	for _, v := range q[key] {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func floatParam(q url.Values, key string) (float64, error) {
	v := q.Get(key)
	if v == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f < 0 {
		return 0, errors.New("invalid " + key)
	}
	return f, nil
}

func intParam(q url.Values, key string) (int, error) {
	v := q.Get(key)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, errors.New("invalid " + key)
	}
	return n, nil
}

func boolParam(q url.Values, key string) (bool, error) {
	v := q.Get(key)
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, errors.New("invalid " + key)
	}
	return b, nil
}
