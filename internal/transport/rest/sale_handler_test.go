package rest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/abgdnv/storemanager/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

// mockSaleService is a mock implementation of the SaleService interface.
type mockSaleService struct {
	sales   *service.SalesDto
	created *service.SaleCreatedDto
	error   error

	receivedItems []service.SaleItemCreateDto
}

func (m *mockSaleService) FindAll(_ context.Context) (*service.SalesDto, error) {
	if m.error != nil {
		return nil, m.error
	}
	return m.sales, nil
}

func (m *mockSaleService) Create(_ context.Context, items []service.SaleItemCreateDto) (*service.SaleCreatedDto, error) {
	m.receivedItems = items
	if m.error != nil {
		return nil, m.error
	}
	return m.created, nil
}

func newSaleRouter(svc service.SaleService) *chi.Mux {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	mux := chi.NewRouter()
	NewSaleHandler(svc, logger).RegisterRoutes(mux)
	return mux
}

func Test_SaleHandler_FindAll(t *testing.T) {
	saleDate := time.Date(2022, 8, 27, 14, 22, 0, 0, time.UTC)
	testCases := []struct {
		name         string
		mockService  mockSaleService
		expectedCode int
		expectedBody string
	}{
		{
			name: "Success - headers and line items returned unjoined",
			mockService: mockSaleService{
				sales: &service.SalesDto{
					Sales: []service.SaleDto{{ID: 1, Date: saleDate}},
					Products: []service.SaleProductDto{
						{SaleID: 1, ProductID: 1, Quantity: 2},
						{SaleID: 1, ProductID: 2, Quantity: 1},
					},
				},
			},
			expectedCode: http.StatusOK,
			expectedBody: `{
				"sales":[{"id":1,"date":"2022-08-27T14:22:00Z"}],
				"products":[
					{"saleId":1,"productId":1,"quantity":2},
					{"saleId":1,"productId":2,"quantity":1}
				]
			}`,
		},
		{
			name:         "Error - store failure",
			mockService:  mockSaleService{error: errors.New("connection refused")},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"message":"Failed to fetch sales"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			mux := newSaleRouter(&tc.mockService)
			// when
			rec := doRequest(t, mux, http.MethodGet, "/sales", "")
			// then
			assert.Equal(t, tc.expectedCode, rec.Code)
			assert.JSONEq(t, tc.expectedBody, rec.Body.String())
		})
	}
}

func Test_SaleHandler_Create(t *testing.T) {
	testCases := []struct {
		name          string
		mockService   mockSaleService
		body          string
		expectedCode  int
		expectedBody  string
		expectedItems []service.SaleItemCreateDto
	}{
		{
			name:         "Success - sale created",
			mockService:  mockSaleService{created: &service.SaleCreatedDto{ID: 7}},
			body:         `[{"productId":1,"quantity":2},{"productId":2,"quantity":1}]`,
			expectedCode: http.StatusCreated,
			expectedBody: `{"id":7}`,
			expectedItems: []service.SaleItemCreateDto{
				{ProductID: 1, Quantity: 2},
				{ProductID: 2, Quantity: 1},
			},
		},
		{
			name:         "Error - malformed JSON body",
			mockService:  mockSaleService{},
			body:         `{"productId":1}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"Invalid request body"}`,
		},
		{
			name:         "Error - store failure",
			mockService:  mockSaleService{error: errors.New("insert failed")},
			body:         `[{"productId":1,"quantity":2}]`,
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"message":"Failed to create sale"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			mux := newSaleRouter(&tc.mockService)
			// when
			rec := doRequest(t, mux, http.MethodPost, "/sales", tc.body)
			// then
			assert.Equal(t, tc.expectedCode, rec.Code)
			assert.JSONEq(t, tc.expectedBody, rec.Body.String())
			if tc.expectedItems != nil {
				assert.Equal(t, tc.expectedItems, tc.mockService.receivedItems)
			}
		})
	}
}
