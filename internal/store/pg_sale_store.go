package store

import (
	"context"
	"fmt"

	smerrors "github.com/abgdnv/storemanager/internal/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"
)

// PgSaleStore implements SaleStore using PostgreSQL as the data store.
type PgSaleStore struct {
	db *pgxpool.Pool
}

// NewPgSaleStore creates a new instance of SaleStore using a PostgreSQL connection pool.
func NewPgSaleStore(dbp *pgxpool.Pool) *PgSaleStore {
	return &PgSaleStore{db: dbp}
}

// FindAll returns all sale headers and all line items, unjoined.
func (p *PgSaleStore) FindAll(ctx context.Context) ([]Sale, []SaleProduct, error) {
	saleRows, err := p.db.Query(ctx, `SELECT id, date FROM sales ORDER BY id ASC`)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to find sales: %w", err)
	}
	sales, err := pgx.CollectRows(saleRows, pgx.RowToStructByPos[Sale])
	if err != nil {
		return nil, nil, fmt.Errorf("failed to scan sales: %w", err)
	}

	itemRows, err := p.db.Query(ctx,
		`SELECT sale_id, product_id, quantity FROM sales_products ORDER BY sale_id ASC, product_id ASC`)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to find sale line items: %w", err)
	}
	items, err := pgx.CollectRows(itemRows, pgx.RowToStructByPos[SaleProduct])
	if err != nil {
		return nil, nil, fmt.Errorf("failed to scan sale line items: %w", err)
	}

	return sales, items, nil
}

// CreateSale inserts the sale header first and then dispatches one insert per
// line item concurrently, all referencing the generated sale id. Line items
// run as independent statements: when one fails, the sale row and any
// committed siblings stay in place and the first failure is returned.
func (p *PgSaleStore) CreateSale(ctx context.Context, items []SaleItemParams) (int64, error) {
	var saleID int64
	err := p.db.QueryRow(ctx, `INSERT INTO sales (date) VALUES (now()) RETURNING id`).Scan(&saleID)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", smerrors.ErrCreateSale, err)
	}

	g, gCtx := errgroup.WithContext(ctx)
	for _, item := range items {
		g.Go(func() error {
			_, err := p.db.Exec(gCtx,
				`INSERT INTO sales_products (sale_id, product_id, quantity) VALUES ($1, $2, $3)`,
				saleID, item.ProductID, item.Quantity)
			if err != nil {
				return fmt.Errorf("%w: %w", smerrors.ErrCreateSaleItem, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	return saleID, nil
}
