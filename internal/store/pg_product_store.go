package store

import (
	"context"
	"errors"
	"fmt"

	smerrors "github.com/abgdnv/storemanager/internal/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgProductStore implements ProductStore using PostgreSQL as the data store.
// All variable values are passed as bound parameters.
type PgProductStore struct {
	db *pgxpool.Pool
}

// NewPgProductStore creates a new instance of ProductStore using a PostgreSQL connection pool.
func NewPgProductStore(dbp *pgxpool.Pool) *PgProductStore {
	return &PgProductStore{db: dbp}
}

// FindAll returns all products ordered by ascending id.
func (p *PgProductStore) FindAll(ctx context.Context) ([]Product, error) {
	rows, err := p.db.Query(ctx, `SELECT id, name FROM products ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to find all products: %w", err)
	}
	products, err := pgx.CollectRows(rows, pgx.RowToStructByPos[Product])
	if err != nil {
		return nil, fmt.Errorf("failed to scan products: %w", err)
	}
	return products, nil
}

// FindByID retrieves a product by its unique identifier.
// Returns ErrProductNotFound if no product exists with the given ID.
func (p *PgProductStore) FindByID(ctx context.Context, id int64) (*Product, error) {
	var product Product
	err := p.db.QueryRow(ctx, `SELECT id, name FROM products WHERE id = $1`, id).
		Scan(&product.ID, &product.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, smerrors.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to find product by ID: %w", err)
	}
	return &product, nil
}

// FindByName returns products whose name contains the fragment, case-insensitively.
func (p *PgProductStore) FindByName(ctx context.Context, fragment string) ([]Product, error) {
	rows, err := p.db.Query(ctx,
		`SELECT id, name FROM products WHERE name ILIKE '%' || $1 || '%' ORDER BY id ASC`, fragment)
	if err != nil {
		return nil, fmt.Errorf("failed to find products by name: %w", err)
	}
	products, err := pgx.CollectRows(rows, pgx.RowToStructByPos[Product])
	if err != nil {
		return nil, fmt.Errorf("failed to scan products: %w", err)
	}
	return products, nil
}

// Create adds a new product and returns the database-assigned id.
func (p *PgProductStore) Create(ctx context.Context, name string) (int64, error) {
	var id int64
	err := p.db.QueryRow(ctx, `INSERT INTO products (name) VALUES ($1) RETURNING id`, name).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create product: %w", err)
	}
	return id, nil
}

// Update renames an existing product. Unknown ids are a no-op; the service
// layer checks existence before calling.
func (p *PgProductStore) Update(ctx context.Context, id int64, name string) error {
	_, err := p.db.Exec(ctx, `UPDATE products SET name = $1 WHERE id = $2`, name, id)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	return nil
}

// DeleteByID removes a product by its unique identifier.
func (p *PgProductStore) DeleteByID(ctx context.Context, id int64) error {
	_, err := p.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product by ID: %w", err)
	}
	return nil
}
