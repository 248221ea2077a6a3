package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"

	"github.com/nexlume/fibercat/internal/db"
	"github.com/nexlume/fibercat/internal/model"
)

// PostgresStore implements Store using pgxpool.
type PostgresStore struct {
	pool    db.Pool
	closeFn func()
}

// PoolConfig holds optional connection pool tuning parameters.
type PoolConfig struct {
	MaxConns int32 `yaml:"max_conns" mapstructure:"max_conns"`
	MinConns int32 `yaml:"min_conns" mapstructure:"min_conns"`
}

const (
	pgGetProduct       = `SELECT sku, name, category, subcategory, specs, price, compare_at, in_stock, quick_ship, tier, badge, image, updated_at FROM products WHERE sku = $1`
	pgCountProducts    = `SELECT COUNT(*) FROM products`
	pgSaveConfig       = `INSERT INTO configurations (id, name, profile, config, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6) ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, profile = EXCLUDED.profile, config = EXCLUDED.config, updated_at = EXCLUDED.updated_at`
	pgGetConfig        = `SELECT id, name, profile, config, created_at, updated_at FROM configurations WHERE id = $1`
	pgListConfigs      = `SELECT id, name, profile, config, created_at, updated_at FROM configurations ORDER BY created_at DESC, id LIMIT $1`
	pgDeleteConfig     = `DELETE FROM configurations WHERE id = $1`
	productUpsertTable = "products"
)

// preparedStatements lists queries to prepare on each new connection.
var preparedStatements = map[string]string{
	"get_product":          pgGetProduct,
	"count_products":       pgCountProducts,
	"save_configuration":   pgSaveConfig,
	"get_configuration":    pgGetConfig,
	"list_configurations":  pgListConfigs,
	"delete_configuration": pgDeleteConfig,
}

// NewPostgres creates a PostgresStore with a connection pool.
func NewPostgres(ctx context.Context, connString string, poolCfg *PoolConfig) (*PostgresStore, error) {
	pgxCfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: parse config")
	}

	maxConns := int32(10)
	minConns := int32(2)
	if poolCfg != nil {
		if poolCfg.MaxConns > 0 {
			maxConns = poolCfg.MaxConns
		}
		if poolCfg.MinConns > 0 {
			minConns = poolCfg.MinConns
		}
	}
	pgxCfg.MaxConns = maxConns
	pgxCfg.MinConns = minConns
	pgxCfg.MaxConnLifetime = 30 * time.Minute
	pgxCfg.MaxConnIdleTime = 5 * time.Minute

	pgxCfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		for name, sql := range preparedStatements {
			if _, err := conn.Prepare(ctx, name, sql); err != nil {
				return eris.Wrapf(err, "postgres: prepare %s", name)
			}
		}
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, pgxCfg)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: create pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, eris.Wrap(err, "postgres: ping")
	}
	return &PostgresStore{pool: pool, closeFn: pool.Close}, nil
}

// NewPostgresFromPool wraps an existing pool. The caller keeps ownership of
// the pool; Close is a no-op.
func NewPostgresFromPool(pool db.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

const postgresMigration = `
CREATE TABLE IF NOT EXISTS products (
	seq         BIGSERIAL,
	sku         TEXT PRIMARY KEY,
	name        TEXT NOT NULL,
	category    TEXT NOT NULL,
	subcategory TEXT NOT NULL DEFAULT '',
	specs       JSONB NOT NULL DEFAULT '[]',
	price       DOUBLE PRECISION NOT NULL,
	compare_at  DOUBLE PRECISION,
	in_stock    BOOLEAN NOT NULL DEFAULT false,
	quick_ship  BOOLEAN NOT NULL DEFAULT false,
	tier        TEXT NOT NULL DEFAULT '',
	badge       TEXT NOT NULL DEFAULT '',
	image       TEXT NOT NULL DEFAULT '',
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS configurations (
	id         TEXT PRIMARY KEY DEFAULT gen_random_uuid()::text,
	name       TEXT NOT NULL,
	profile    TEXT NOT NULL DEFAULT '',
	config     JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_products_seq ON products(seq);
CREATE INDEX IF NOT EXISTS idx_products_category ON products(category, subcategory);
CREATE INDEX IF NOT EXISTS idx_products_badge ON products(badge);
CREATE INDEX IF NOT EXISTS idx_products_specs ON products USING GIN (specs);
CREATE INDEX IF NOT EXISTS idx_configurations_created_at ON configurations(created_at DESC);
`

func (s *PostgresStore) Ping(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, "SELECT 1")
	return eris.Wrap(err, "postgres: ping")
}

func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, postgresMigration)
	return eris.Wrap(err, "postgres: migrate")
}

func (s *PostgresStore) Close() error {
	if s.closeFn != nil {
		s.closeFn()
	}
	return nil
}

// UpsertProducts merges products through a COPY-loaded temp table.
func (s *PostgresStore) UpsertProducts(ctx context.Context, products []model.Product) (int, error) {
	now := time.Now().UTC()
	rows := make([][]any, 0, len(products))
	for _, p := range products {
		row, err := productRow(p, now)
		if err != nil {
			return 0, err
		}
		// specs is JSONB; COPY needs raw bytes rather than a text value.
		row[4] = []byte(row[4].(string))
		rows = append(rows, row)
	}

	n, err := db.BulkUpsert(ctx, s.pool, db.UpsertConfig{
		Table:        productUpsertTable,
		Columns:      productColumns,
		ConflictKeys: []string{"sku"},
	}, rows)
	if err != nil {
		return 0, eris.Wrap(err, "postgres: upsert products")
	}
	return int(n), nil
}

func (s *PostgresStore) ListProducts(ctx context.Context, filter model.ProductFilter) ([]model.Product, error) {
	where, args := pushdown(filter, func(n int) string { return fmt.Sprintf("$%d", n) })
	query := `SELECT ` + strings.Join(productColumns, ", ") + ` FROM products WHERE true` + where + ` ORDER BY seq`

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: list products")
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		p, err := scanPgProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, eris.Wrap(err, "postgres: list products iterate")
	}
	return finish(filter, products), nil
}

func (s *PostgresStore) GetProduct(ctx context.Context, sku string) (*model.Product, error) {
	p, err := scanPgProduct(s.pool.QueryRow(ctx, pgGetProduct, sku))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, eris.Wrapf(ErrNotFound, "postgres: product %s", sku)
	}
	return p, err
}

func (s *PostgresStore) CountProducts(ctx context.Context) (int, error) {
	var n int
	err := s.pool.QueryRow(ctx, pgCountProducts).Scan(&n)
	return n, eris.Wrap(err, "postgres: count products")
}

func (s *PostgresStore) SaveConfiguration(ctx context.Context, cfg *model.SavedConfiguration) error {
	if strings.TrimSpace(cfg.Name) == "" {
		return eris.New("postgres: save configuration: name is required")
	}
	prepareConfiguration(cfg, uuid.NewString)

	configJSON, err := json.Marshal(cfg.Config)
	if err != nil {
		return eris.Wrap(err, "postgres: marshal configuration")
	}

	_, err = s.pool.Exec(ctx, pgSaveConfig,
		cfg.ID, cfg.Name, string(cfg.Profile), configJSON, cfg.CreatedAt, cfg.UpdatedAt,
	)
	return eris.Wrapf(err, "postgres: save configuration %s", cfg.ID)
}

func (s *PostgresStore) GetConfiguration(ctx context.Context, id string) (*model.SavedConfiguration, error) {
	c, err := scanPgConfiguration(s.pool.QueryRow(ctx, pgGetConfig, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, eris.Wrapf(ErrNotFound, "postgres: configuration %s", id)
	}
	return c, err
}

func (s *PostgresStore) ListConfigurations(ctx context.Context, limit int) ([]model.SavedConfiguration, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	rows, err := s.pool.Query(ctx, pgListConfigs, limit)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: list configurations")
	}
	defer rows.Close()

	out := make([]model.SavedConfiguration, 0)
	for rows.Next() {
		c, err := scanPgConfiguration(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, eris.Wrap(rows.Err(), "postgres: list configurations iterate")
}

func (s *PostgresStore) DeleteConfiguration(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, pgDeleteConfig, id)
	if err != nil {
		return eris.Wrapf(err, "postgres: delete configuration %s", id)
	}
	if tag.RowsAffected() == 0 {
		return eris.Wrapf(ErrNotFound, "configuration %s", id)
	}
	return nil
}

func scanPgProduct(row pgx.Row) (*model.Product, error) {
	var (
		p         model.Product
		specsJSON []byte
		tier      string
		badge     string
		updatedAt time.Time
	)
	err := row.Scan(&p.SKU, &p.Name, &p.Category, &p.Subcategory, &specsJSON, &p.Price, &p.CompareAt,
		&p.InStock, &p.QuickShip, &tier, &badge, &p.Image, &updatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, eris.Wrap(err, "postgres: scan product")
	}
	if err := json.Unmarshal(specsJSON, &p.Specs); err != nil {
		return nil, eris.Wrapf(err, "postgres: unmarshal specs for %s", p.SKU)
	}
	p.Tier, p.Badge = model.Tier(tier), model.Badge(badge)
	return &p, nil
}

func scanPgConfiguration(row pgx.Row) (*model.SavedConfiguration, error) {
	var (
		c          model.SavedConfiguration
		profile    string
		configJSON []byte
	)
	err := row.Scan(&c.ID, &c.Name, &profile, &configJSON, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, eris.Wrap(err, "postgres: scan configuration")
	}
	if err := json.Unmarshal(configJSON, &c.Config); err != nil {
		return nil, eris.Wrapf(err, "postgres: unmarshal configuration %s", c.ID)
	}
	c.Profile = model.Profile(profile)
	return &c, nil
}
