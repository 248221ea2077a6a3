// Package api serves the catalog, family, configurator and saved
// configuration endpoints as JSON over HTTP.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/time/rate"

	"github.com/nexlume/fibercat/internal/catalog"
	"github.com/nexlume/fibercat/internal/configurator"
	"github.com/nexlume/fibercat/internal/model"
	"github.com/nexlume/fibercat/internal/store"
)

// RelatedCount is how many related products a product lookup returns.
const RelatedCount = 4

// Options configures the HTTP surface.
type Options struct {
	CORSOrigins []string
	RateLimit   rate.Limit // requests per second per client; 0 disables
	RateBurst   int
}

// Server holds the dependencies shared by every handler. With a nil Store
// products come from the seed catalog and configuration endpoints answer 503.
type Server struct {
	seed  *catalog.Catalog
	store store.Store
	conf  *configurator.Configurator
	opts  Options
}

// New creates a Server.
func New(seed *catalog.Catalog, st store.Store, conf *configurator.Configurator, opts Options) *Server {
	if seed == nil {
		seed = catalog.Default()
	}
	if conf == nil {
		conf = configurator.New(nil)
	}
	return &Server{seed: seed, store: st, conf: conf, opts: opts}
}

// Handler returns the routed handler with middleware applied.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.opts.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	if s.opts.RateLimit > 0 {
		r.Use(newClientLimiter(s.opts.RateLimit, s.opts.RateBurst).middleware)
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/categories", s.listCategories)
		r.Get("/categories/{slug}", s.getCategory)
		r.Get("/products", s.listProducts)
		r.Get("/products/{sku}", s.getProduct)
		r.Get("/families", s.listFamilies)
		r.Get("/families/{slug}", s.getFamily)
		r.Get("/bundles", s.listBundles)

		r.Route("/configurator", func(r chi.Router) {
			r.Get("/options", s.configuratorOptions)
			r.Get("/profiles", s.configuratorProfiles)
			r.Post("/apply", s.configuratorApply)
			r.Post("/validate", s.configuratorValidate)
		})

		r.Route("/configurations", func(r chi.Router) {
			r.Post("/", s.saveConfiguration)
			r.Get("/", s.listConfigurations)
			r.Get("/{id}", s.getConfiguration)
			r.Delete("/{id}", s.deleteConfiguration)
		})
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})
	return r
}

// NewHTTPServer wraps the handler in an http.Server with sane timeouts.
func (s *Server) NewHTTPServer(addr string) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}

// catalog returns the products currently served, as a Catalog. Categories and
// bundles always come from the seed.
func (s *Server) catalog(ctx context.Context) (*catalog.Catalog, error) {
	if s.store == nil {
		return s.seed, nil
	}
	n, err := s.store.CountProducts(ctx)
	if err != nil {
		return nil, err
	}
	products := []model.Product{}
	if n > 0 {
		products, err = s.store.ListProducts(ctx, model.ProductFilter{Limit: n})
		if err != nil {
			return nil, err
		}
	}
	return catalog.New(products, s.seed.Categories(), s.seed.Bundles()), nil
}
