package main

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/nexlume/fibercat/internal/catalog"
	"github.com/nexlume/fibercat/internal/configurator"
	"github.com/nexlume/fibercat/internal/model"
	"github.com/nexlume/fibercat/internal/store"
)

// initStore opens the configured backend and brings its schema up to date.
func initStore(ctx context.Context) (store.Store, error) {
	if err := cfg.Validate("store"); err != nil {
		return nil, err
	}

	var st store.Store
	switch cfg.Store.Driver {
	case "sqlite":
		s, err := store.NewSQLite(cfg.Store.Path)
		if err != nil {
			return nil, err
		}
		st = s
	case "postgres":
		s, err := store.NewPostgres(ctx, cfg.Store.DatabaseURL, &store.PoolConfig{
			MaxConns: cfg.Store.MaxConns,
			MinConns: cfg.Store.MinConns,
		})
		if err != nil {
			return nil, err
		}
		st = s
	default:
		return nil, eris.Errorf("unsupported store driver: %s", cfg.Store.Driver)
	}

	if err := st.Migrate(ctx); err != nil {
		_ = st.Close()
		return nil, eris.Wrap(err, "migrate store")
	}
	return st, nil
}

// initConfigurator builds the configurator, layering the profiles file over
// the built-in profiles when one is configured.
func initConfigurator() (*configurator.Configurator, error) {
	if cfg.Configurator.ProfilesFile == "" {
		return configurator.New(nil), nil
	}
	profiles, err := configurator.LoadProfiles(cfg.Configurator.ProfilesFile)
	if err != nil {
		return nil, err
	}
	return configurator.New(profiles), nil
}

// loadCatalog returns the stored products as a Catalog. An empty store falls
// back to the seed catalog.
func loadCatalog(ctx context.Context, st store.Store) (*catalog.Catalog, error) {
	n, err := st.CountProducts(ctx)
	if err != nil {
		return nil, eris.Wrap(err, "count products")
	}
	if n == 0 {
		zap.L().Warn("store has no products, using the seed catalog; run `fibercat seed` to load it")
		return catalog.Default(), nil
	}

	products, err := st.ListProducts(ctx, model.ProductFilter{Limit: n})
	if err != nil {
		return nil, eris.Wrap(err, "list products")
	}
	return catalog.New(products, catalog.Categories(), catalog.Bundles()), nil
}
