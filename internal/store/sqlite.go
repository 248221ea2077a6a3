package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/nexlume/fibercat/internal/model"
)

// SQLiteStore implements Store using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS products (
	sku         TEXT PRIMARY KEY,
	name        TEXT NOT NULL,
	category    TEXT NOT NULL,
	subcategory TEXT NOT NULL DEFAULT '',
	specs       TEXT NOT NULL DEFAULT '[]',
	price       REAL NOT NULL,
	compare_at  REAL,
	in_stock    BOOLEAN NOT NULL DEFAULT 0,
	quick_ship  BOOLEAN NOT NULL DEFAULT 0,
	tier        TEXT NOT NULL DEFAULT '',
	badge       TEXT NOT NULL DEFAULT '',
	image       TEXT NOT NULL DEFAULT '',
	updated_at  DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS configurations (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	profile    TEXT NOT NULL DEFAULT '',
	config     TEXT NOT NULL,
	created_at DATETIME NOT NULL DEFAULT (datetime('now')),
	updated_at DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_products_category ON products(category, subcategory);
CREATE INDEX IF NOT EXISTS idx_products_badge ON products(badge);
CREATE INDEX IF NOT EXISTS idx_configurations_created_at ON configurations(created_at);
`

const sqliteUpsertProduct = `INSERT INTO products (sku, name, category, subcategory, specs, price, compare_at, in_stock, quick_ship, tier, badge, image, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(sku) DO UPDATE SET
	name = excluded.name, category = excluded.category, subcategory = excluded.subcategory,
	specs = excluded.specs, price = excluded.price, compare_at = excluded.compare_at,
	in_stock = excluded.in_stock, quick_ship = excluded.quick_ship, tier = excluded.tier,
	badge = excluded.badge, image = excluded.image, updated_at = excluded.updated_at`

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// UpsertProducts writes every product in one transaction. Existing rows keep
// their original position in listings.
func (s *SQLiteStore) UpsertProducts(ctx context.Context, products []model.Product) (int, error) {
	if len(products) == 0 {
		return 0, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, eris.Wrap(err, "sqlite: begin upsert products")
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, sqliteUpsertProduct)
	if err != nil {
		return 0, eris.Wrap(err, "sqlite: prepare upsert products")
	}
	defer stmt.Close()

	now := time.Now().UTC()
	for _, p := range products {
		row, err := productRow(p, now)
		if err != nil {
			return 0, err
		}
		if _, err := stmt.ExecContext(ctx, row...); err != nil {
			return 0, eris.Wrapf(err, "sqlite: upsert product %s", p.SKU)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, eris.Wrap(err, "sqlite: commit upsert products")
	}
	return len(products), nil
}

func (s *SQLiteStore) ListProducts(ctx context.Context, filter model.ProductFilter) ([]model.Product, error) {
	where, args := pushdown(filter, func(int) string { return "?" })
	query := `SELECT ` + strings.Join(productColumns, ", ") + ` FROM products WHERE 1=1` + where + ` ORDER BY rowid`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list products")
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, eris.Wrap(err, "sqlite: list products iterate")
	}
	return finish(filter, products), nil
}

func (s *SQLiteStore) GetProduct(ctx context.Context, sku string) (*model.Product, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+strings.Join(productColumns, ", ")+` FROM products WHERE sku = ?`,
		sku,
	)
	p, err := scanProduct(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, eris.Wrapf(ErrNotFound, "sqlite: product %s", sku)
	}
	return p, err
}

func (s *SQLiteStore) CountProducts(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&n)
	return n, eris.Wrap(err, "sqlite: count products")
}

func (s *SQLiteStore) SaveConfiguration(ctx context.Context, cfg *model.SavedConfiguration) error {
	if strings.TrimSpace(cfg.Name) == "" {
		return eris.New("sqlite: save configuration: name is required")
	}
	prepareConfiguration(cfg, uuid.NewString)

	configJSON, err := json.Marshal(cfg.Config)
	if err != nil {
		return eris.Wrap(err, "sqlite: marshal configuration")
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO configurations (id, name, profile, config, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET name = excluded.name, profile = excluded.profile, config = excluded.config, updated_at = excluded.updated_at`,
		cfg.ID, cfg.Name, string(cfg.Profile), string(configJSON), cfg.CreatedAt, cfg.UpdatedAt,
	)
	return eris.Wrapf(err, "sqlite: save configuration %s", cfg.ID)
}

func (s *SQLiteStore) GetConfiguration(ctx context.Context, id string) (*model.SavedConfiguration, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, profile, config, created_at, updated_at FROM configurations WHERE id = ?`,
		id,
	)
	c, err := scanConfiguration(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, eris.Wrapf(ErrNotFound, "sqlite: configuration %s", id)
	}
	return c, err
}

func (s *SQLiteStore) ListConfigurations(ctx context.Context, limit int) ([]model.SavedConfiguration, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, profile, config, created_at, updated_at FROM configurations ORDER BY created_at DESC, id LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list configurations")
	}
	defer rows.Close()

	out := make([]model.SavedConfiguration, 0)
	for rows.Next() {
		c, err := scanConfiguration(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, eris.Wrap(rows.Err(), "sqlite: list configurations iterate")
}

func (s *SQLiteStore) DeleteConfiguration(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM configurations WHERE id = ?`, id)
	if err != nil {
		return eris.Wrapf(err, "sqlite: delete configuration %s", id)
	}
	return checkRowsAffected(res, "configuration", id)
}

// helpers

func checkRowsAffected(res sql.Result, entity, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return eris.Wrap(err, "rows affected")
	}
	if n == 0 {
		return eris.Wrapf(ErrNotFound, "%s %s", entity, id)
	}
	return nil
}

type scannable interface {
	Scan(dest ...any) error
}

// productRow flattens p into productColumns order.
func productRow(p model.Product, now time.Time) ([]any, error) {
	specs := p.Specs
	if specs == nil {
		specs = []string{}
	}
	specsJSON, err := json.Marshal(specs)
	if err != nil {
		return nil, eris.Wrapf(err, "marshal specs for %s", p.SKU)
	}
	return []any{
		p.SKU, p.Name, p.Category, p.Subcategory, string(specsJSON), p.Price, p.CompareAt,
		p.InStock, p.QuickShip, string(p.Tier), string(p.Badge), p.Image, now,
	}, nil
}

func scanProduct(row scannable) (*model.Product, error) {
	var (
		p         model.Product
		specsJSON string
		compareAt sql.NullFloat64
		tier      string
		badge     string
		updatedAt time.Time
	)
	err := row.Scan(&p.SKU, &p.Name, &p.Category, &p.Subcategory, &specsJSON, &p.Price, &compareAt,
		&p.InStock, &p.QuickShip, &tier, &badge, &p.Image, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: scan product")
	}
	if err := json.Unmarshal([]byte(specsJSON), &p.Specs); err != nil {
		return nil, eris.Wrapf(err, "sqlite: unmarshal specs for %s", p.SKU)
	}
	if compareAt.Valid {
		p.CompareAt = model.Price(compareAt.Float64)
	}
	p.Tier, p.Badge = model.Tier(tier), model.Badge(badge)
	return &p, nil
}

func scanConfiguration(row scannable) (*model.SavedConfiguration, error) {
	var (
		c          model.SavedConfiguration
		profile    string
		configJSON string
	)
	err := row.Scan(&c.ID, &c.Name, &profile, &configJSON, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: scan configuration")
	}
	if err := json.Unmarshal([]byte(configJSON), &c.Config); err != nil {
		return nil, eris.Wrapf(err, "sqlite: unmarshal configuration %s", c.ID)
	}
	c.Profile = model.Profile(profile)
	return &c, nil
}
