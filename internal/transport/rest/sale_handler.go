package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/abgdnv/storemanager/internal/service"
	"github.com/abgdnv/storemanager/pkg/web"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type SaleHandler struct {
	service service.SaleService
	logger  *slog.Logger
}

// NewSaleHandler creates a new instance of SaleHandler with the provided service.
func NewSaleHandler(service service.SaleService, logger *slog.Logger) *SaleHandler {
	return &SaleHandler{
		service: service,
		logger:  logger.With("component", "rest"),
	}
}

// RegisterRoutes registers the HTTP routes for sales.
func (h *SaleHandler) RegisterRoutes(r *chi.Mux) {
	r.Route("/sales", func(r chi.Router) {
		r.Get("/", h.FindAll)
		r.Post("/", h.Create)
	})
}

// FindAll retrieves all sale headers and all line items.
func (h *SaleHandler) FindAll(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	mLogger.DebugContext(r.Context(), "Received request to find all sales")
	sales, err := h.service.FindAll(r.Context())
	if err != nil {
		mLogger.ErrorContext(r.Context(), "Error retrieving sales", "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to fetch sales")
		return
	}
	mLogger.DebugContext(r.Context(), "Successfully retrieved sales", "count", len(sales.Sales))
	web.RespondJSON(w, mLogger, http.StatusOK, sales)
}

// Create stores one sale composed of the posted line items.
func (h *SaleHandler) Create(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	var items []service.SaleItemCreateDto
	if err := json.NewDecoder(r.Body).Decode(&items); err != nil {
		mLogger.ErrorContext(r.Context(), "Error decoding request body", "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
		return
	}
	mLogger.DebugContext(r.Context(), "Received request to create sale", "items", len(items))

	created, err := h.service.Create(r.Context(), items)
	if err != nil {
		mLogger.ErrorContext(r.Context(), "Error creating sale", "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to create sale")
		return
	}
	mLogger.InfoContext(r.Context(), "Sale created successfully", "ID", created.ID, "items", len(items))
	web.RespondJSON(w, mLogger, http.StatusCreated, created)
}

// loggerWithReqID creates a logger with the request ID from the context.
func (h *SaleHandler) loggerWithReqID(r *http.Request) *slog.Logger {
	reqID := middleware.GetReqID(r.Context())
	return h.logger.With("request_id", reqID)
}
