// Package store provides interfaces for product and sale storage operations.
package store

import (
	"context"
	"time"
)

// Product is a product row as stored.
type Product struct {
	ID   int64
	Name string
}

// Sale is a sale header row. Date is assigned by the database at insert time
// and never updated.
type Sale struct {
	ID   int64
	Date time.Time
}

// SaleProduct is one line item of a sale. It references its product without
// lifecycle coupling: deleting a product leaves line items in place.
type SaleProduct struct {
	SaleID    int64
	ProductID int64
	Quantity  int32
}

// SaleItemParams carries one line item of a sale to be created.
type SaleItemParams struct {
	ProductID int64
	Quantity  int32
}

// ProductStore is an interface for product storage operations.
// It abstracts the underlying data store, allowing for different implementations (e.g., in-memory, database).
type ProductStore interface {
	// FindAll returns all products ordered by ascending id.
	// Returns an empty slice if no products exist.
	FindAll(ctx context.Context) ([]Product, error)

	// FindByID retrieves a single product by its unique identifier.
	// Returns ErrProductNotFound if no product exists with the given ID.
	FindByID(ctx context.Context, id int64) (*Product, error)

	// FindByName returns products whose name contains the fragment,
	// matched case-insensitively. Returns an empty slice if nothing matches.
	FindByName(ctx context.Context, fragment string) ([]Product, error)

	// Create adds a new product and returns its generated id.
	Create(ctx context.Context, name string) (int64, error)

	// Update renames an existing product. It is a no-op when the id does
	// not exist; callers check existence first.
	Update(ctx context.Context, id int64, name string) error

	// DeleteByID removes a product by its ID.
	DeleteByID(ctx context.Context, id int64) error
}

// SaleStore is an interface for sale storage operations.
type SaleStore interface {
	// FindAll returns all sale headers and all line items as two separate
	// sequences. Joining them is the caller's responsibility.
	FindAll(ctx context.Context) ([]Sale, []SaleProduct, error)

	// CreateSale inserts one sale row plus one line item row per entry and
	// returns the generated sale id.
	CreateSale(ctx context.Context, items []SaleItemParams) (int64, error)
}
