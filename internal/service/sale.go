package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/abgdnv/storemanager/internal/store"
	"github.com/abgdnv/storemanager/pkg/messaging"
	"github.com/abgdnv/storemanager/pkg/messaging/events"
)

// SaleService defines the methods for managing sales.
type SaleService interface {
	// FindAll returns all sale headers and all line items, unjoined.
	FindAll(ctx context.Context) (*SalesDto, error)

	// Create stores one sale with its line items and returns the generated
	// sale id.
	Create(ctx context.Context, items []SaleItemCreateDto) (*SaleCreatedDto, error)
}

// SaleSvc implements SaleService.
type SaleSvc struct {
	saleStore store.SaleStore
	publisher messaging.Publisher
}

// NewSaleService creates a new instance of SaleService with the provided
// store. The publisher may be nil; sale events are then not emitted.
func NewSaleService(saleStore store.SaleStore, publisher messaging.Publisher) *SaleSvc {
	return &SaleSvc{
		saleStore: saleStore,
		publisher: publisher,
	}
}

// SaleDto represents the data transfer object for a sale header.
type SaleDto struct {
	ID   int64     `json:"id"`
	Date time.Time `json:"date"`
}

// SaleProductDto represents one stored line item of a sale.
type SaleProductDto struct {
	SaleID    int64 `json:"saleId"`
	ProductID int64 `json:"productId"`
	Quantity  int32 `json:"quantity"`
}

// SalesDto carries all sale headers and all line items as two parallel
// sequences; callers join them as needed.
type SalesDto struct {
	Sales    []SaleDto        `json:"sales"`
	Products []SaleProductDto `json:"products"`
}

// SaleItemCreateDto represents the data transfer object for one line item of
// a new sale.
type SaleItemCreateDto struct {
	ProductID int64 `json:"productId"`
	Quantity  int32 `json:"quantity"`
}

// SaleCreatedDto carries the generated id of a stored sale.
type SaleCreatedDto struct {
	ID int64 `json:"id"`
}

// FindAll retrieves all sales and line items and returns them as a SalesDto.
func (s *SaleSvc) FindAll(ctx context.Context) (*SalesDto, error) {
	sales, items, err := s.saleStore.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sales: %w", err)
	}

	dto := &SalesDto{
		Sales:    make([]SaleDto, len(sales)),
		Products: make([]SaleProductDto, len(items)),
	}
	for i, sale := range sales {
		dto.Sales[i] = SaleDto{ID: sale.ID, Date: sale.Date}
	}
	for i, item := range items {
		dto.Products[i] = SaleProductDto{SaleID: item.SaleID, ProductID: item.ProductID, Quantity: item.Quantity}
	}
	return dto, nil
}

// Create stores one sale with its line items. Line items are stored as
// received; quantity and product references are not checked at this layer.
func (s *SaleSvc) Create(ctx context.Context, items []SaleItemCreateDto) (*SaleCreatedDto, error) {
	params := make([]store.SaleItemParams, len(items))
	for i, item := range items {
		params[i] = store.SaleItemParams{ProductID: item.ProductID, Quantity: item.Quantity}
	}

	saleID, err := s.saleStore.CreateSale(ctx, params)
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		event := events.SaleCreatedEvent{
			SaleID:    saleID,
			ItemCount: len(items),
			CreatedAt: time.Now().UTC(),
		}
		if err := s.publisher.Publish(ctx, event); err != nil {
			// Event delivery is best effort; the sale is already stored.
			slog.ErrorContext(ctx, "Failed to publish SaleCreatedEvent", "sale_id", saleID, "error", err)
		}
	}

	return &SaleCreatedDto{ID: saleID}, nil
}
