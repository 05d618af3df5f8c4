package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abgdnv/storemanager/internal/store"
	"github.com/abgdnv/storemanager/pkg/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockSaleStore is a mock implementation of the SaleStore interface.
type mockSaleStore struct {
	sales    []store.Sale
	items    []store.SaleProduct
	saleID   int64
	error    error
	received []store.SaleItemParams
}

func (m *mockSaleStore) FindAll(_ context.Context) ([]store.Sale, []store.SaleProduct, error) {
	if m.error != nil {
		return nil, nil, m.error
	}
	return m.sales, m.items, nil
}

func (m *mockSaleStore) CreateSale(_ context.Context, items []store.SaleItemParams) (int64, error) {
	m.received = items
	if m.error != nil {
		return 0, m.error
	}
	return m.saleID, nil
}

// mockPublisher records published events.
type mockPublisher struct {
	events []messaging.Event
	error  error
}

func (m *mockPublisher) Publish(_ context.Context, event messaging.Event) error {
	m.events = append(m.events, event)
	return m.error
}

func Test_SaleService_FindAll(t *testing.T) {
	saleDate := time.Date(2022, 8, 27, 14, 22, 0, 0, time.UTC)
	testCases := []struct {
		name        string
		mockStore   *mockSaleStore
		expected    *SalesDto
		expectError error
	}{
		{
			name: "Success - headers and line items stay unjoined",
			mockStore: &mockSaleStore{
				sales: []store.Sale{{ID: 1, Date: saleDate}},
				items: []store.SaleProduct{
					{SaleID: 1, ProductID: 1, Quantity: 2},
					{SaleID: 1, ProductID: 2, Quantity: 1},
				},
			},
			expected: &SalesDto{
				Sales: []SaleDto{{ID: 1, Date: saleDate}},
				Products: []SaleProductDto{
					{SaleID: 1, ProductID: 1, Quantity: 2},
					{SaleID: 1, ProductID: 2, Quantity: 1},
				},
			},
		},
		{
			name:      "Success - empty store yields empty sequences",
			mockStore: &mockSaleStore{},
			expected:  &SalesDto{Sales: []SaleDto{}, Products: []SaleProductDto{}},
		},
		{
			name:        "Error - store error",
			mockStore:   &mockSaleStore{error: errors.New("store error")},
			expectError: errors.New("store error"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			service := NewSaleService(tc.mockStore, nil)
			// when
			found, err := service.FindAll(context.Background())
			// then
			if tc.expectError != nil {
				assert.Error(t, err)
				assert.Nil(t, found)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, found)
		})
	}
}

func Test_SaleService_Create(t *testing.T) {
	// given
	mockStore := &mockSaleStore{saleID: 7}
	publisher := &mockPublisher{}
	service := NewSaleService(mockStore, publisher)
	items := []SaleItemCreateDto{
		{ProductID: 1, Quantity: 2},
		{ProductID: 2, Quantity: 1},
	}

	// when
	created, err := service.Create(context.Background(), items)

	// then
	require.NoError(t, err)
	assert.Equal(t, &SaleCreatedDto{ID: 7}, created)
	assert.Equal(t, []store.SaleItemParams{
		{ProductID: 1, Quantity: 2},
		{ProductID: 2, Quantity: 1},
	}, mockStore.received)
	require.Len(t, publisher.events, 1)
	assert.Equal(t, messaging.SalesCreatedSubject, publisher.events[0].Subject())
}

func Test_SaleService_Create_StoreError(t *testing.T) {
	// given
	storeErr := errors.New("insert failed")
	mockStore := &mockSaleStore{error: storeErr}
	publisher := &mockPublisher{}
	service := NewSaleService(mockStore, publisher)

	// when
	created, err := service.Create(context.Background(), []SaleItemCreateDto{{ProductID: 1, Quantity: 1}})

	// then
	assert.ErrorIs(t, err, storeErr)
	assert.Nil(t, created)
	assert.Empty(t, publisher.events)
}

func Test_SaleService_Create_PublishFailureIsNotSurfaced(t *testing.T) {
	// given
	mockStore := &mockSaleStore{saleID: 3}
	publisher := &mockPublisher{error: errors.New("nats unavailable")}
	service := NewSaleService(mockStore, publisher)

	// when
	created, err := service.Create(context.Background(), []SaleItemCreateDto{{ProductID: 1, Quantity: 1}})

	// then
	require.NoError(t, err)
	assert.Equal(t, &SaleCreatedDto{ID: 3}, created)
}

func Test_SaleService_Create_WithoutPublisher(t *testing.T) {
	// given
	mockStore := &mockSaleStore{saleID: 5}
	service := NewSaleService(mockStore, nil)

	// when
	created, err := service.Create(context.Background(), []SaleItemCreateDto{{ProductID: 9, Quantity: 4}})

	// then
	require.NoError(t, err)
	assert.Equal(t, &SaleCreatedDto{ID: 5}, created)
}
