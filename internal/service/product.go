// Package service provides the implementation of product and sale business logic.
package service

import (
	"context"
	"fmt"
	"strings"

	smerrors "github.com/abgdnv/storemanager/internal/errors"
	"github.com/abgdnv/storemanager/internal/store"
	"github.com/abgdnv/storemanager/internal/validation"
)

// ProductService defines the methods for managing products.
// It abstracts the underlying business logic and data access.
type ProductService interface {
	// FindAll returns all products ordered by ascending id.
	// Returns ErrProductNotFound when no products exist.
	FindAll(ctx context.Context) ([]ProductDto, error)

	// FindByName returns products whose name contains the fragment. An
	// empty fragment behaves as FindAll. Returns ErrProductNotFound when
	// nothing matches a non-empty fragment.
	FindByName(ctx context.Context, fragment string) ([]ProductDto, error)

	// FindByID retrieves a single product by its unique identifier.
	// Returns ErrProductNotFound for unknown and non-positive ids; the
	// latter never reach storage.
	FindByID(ctx context.Context, id int64) (*ProductDto, error)

	// Create validates the name candidate, inserts the product and returns
	// the canonical stored row. Returns *validation.Error on violations;
	// nothing is inserted in that case.
	Create(ctx context.Context, name any) (*ProductDto, error)

	// Update validates the name candidate, checks existence and renames
	// the product. Returns *validation.Error or ErrProductNotFound.
	Update(ctx context.Context, id int64, name any) (*ProductDto, error)

	// DeleteByID removes a product by its ID.
	// Returns ErrProductNotFound if no product exists with the given ID.
	DeleteByID(ctx context.Context, id int64) error
}

// Service implements ProductService and provides methods to manage products.
type Service struct {
	repository store.ProductStore
}

// NewService creates a new instance of ProductService with the provided repository.
func NewService(repo store.ProductStore) *Service {
	return &Service{
		repository: repo,
	}
}

// ProductDto represents the data transfer object for a product.
type ProductDto struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// FindAll retrieves all products and returns them as ProductDtos.
// An empty store yields ErrProductNotFound.
func (s *Service) FindAll(ctx context.Context) ([]ProductDto, error) {
	products, err := s.repository.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	if len(products) == 0 {
		return nil, smerrors.ErrProductNotFound
	}
	return toDtos(products), nil
}

// FindByName searches products by name fragment. An empty fragment delegates
// to FindAll instead of searching.
func (s *Service) FindByName(ctx context.Context, fragment string) ([]ProductDto, error) {
	if strings.TrimSpace(fragment) == "" {
		return s.FindAll(ctx)
	}
	products, err := s.repository.FindByName(ctx, fragment)
	if err != nil {
		return nil, fmt.Errorf("failed to search products by name: %w", err)
	}
	if len(products) == 0 {
		return nil, smerrors.ErrProductNotFound
	}
	return toDtos(products), nil
}

// FindByID retrieves a product by its ID and returns it as a ProductDto.
// Non-positive ids short-circuit to ErrProductNotFound without a storage
// round trip.
func (s *Service) FindByID(ctx context.Context, id int64) (*ProductDto, error) {
	if id <= 0 {
		return nil, smerrors.ErrProductNotFound
	}
	product, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product by ID %d: %w", id, err)
	}
	return toDto(product), nil
}

// Create validates the name, inserts the product and re-fetches the stored
// row by the generated id to return its canonical form.
func (s *Service) Create(ctx context.Context, name any) (*ProductDto, error) {
	if verr := validation.Name(name); verr != nil {
		return nil, verr
	}
	id, err := s.repository.Create(ctx, name.(string))
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	created, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch created product %d: %w", id, err)
	}
	return toDto(created), nil
}

// Update validates the name first, then checks the product exists before
// renaming it.
func (s *Service) Update(ctx context.Context, id int64, name any) (*ProductDto, error) {
	if verr := validation.Name(name); verr != nil {
		return nil, verr
	}
	if _, err := s.FindByID(ctx, id); err != nil {
		return nil, err
	}
	newName := name.(string)
	if err := s.repository.Update(ctx, id, newName); err != nil {
		return nil, fmt.Errorf("failed to update product with ID %d: %w", id, err)
	}
	return &ProductDto{ID: id, Name: newName}, nil
}

// DeleteByID checks the product exists and removes it. Deletion is physical.
func (s *Service) DeleteByID(ctx context.Context, id int64) error {
	if _, err := s.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repository.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete product with ID %d: %w", id, err)
	}
	return nil
}

// toDto converts a store.Product to a ProductDto.
func toDto(product *store.Product) *ProductDto {
	return &ProductDto{
		ID:   product.ID,
		Name: product.Name,
	}
}

func toDtos(products []store.Product) []ProductDto {
	dtos := make([]ProductDto, len(products))
	for i, item := range products {
		dtos[i] = *toDto(&item)
	}
	return dtos
}
