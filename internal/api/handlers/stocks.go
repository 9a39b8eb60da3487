package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ndegroot/Stock-Portfolio-Tracker-Backend/internal/api/request"
	"github.com/ndegroot/Stock-Portfolio-Tracker-Backend/internal/api/response"
	"github.com/ndegroot/Stock-Portfolio-Tracker-Backend/internal/service"
	"github.com/ndegroot/Stock-Portfolio-Tracker-Backend/internal/validation"
)

// StockHandler handles HTTP requests for stock endpoints.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the stockService.
type StockHandler struct {
	stockService *service.StockService
}

// NewStockHandler creates a new StockHandler with the provided service dependency.
func NewStockHandler(stockService *service.StockService) *StockHandler {
	return &StockHandler{
		stockService: stockService,
	}
}

// CreateStock handles POST requests to create a new stock position.
//
// Endpoint: POST /api/stocks/
// Request: StockRequest body (buy price accepted as buy_price or buyPrice)
// Response: 201 Created with the created Stock incl. id, current_price, created_at
// Errors: 400 on validation failure, 500 on quote or store failure
func (h *StockHandler) CreateStock(w http.ResponseWriter, r *http.Request) {
	var req request.StockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateStockRequest(req); err != nil {
		respondServiceError(w, "validation failed", err)
		return
	}

	stock, err := h.stockService.CreateStock(r.Context(), req)
	if err != nil {
		respondServiceError(w, "Failed to create stock", err)
		return
	}

	response.RespondJSON(w, http.StatusCreated, stock)
}

// GetAllStocks handles GET requests to retrieve all stocks.
// Every returned stock carries a freshly fetched current price.
//
// Endpoint: GET /api/stocks/
// Response: 200 OK with array of Stock
// Errors: 500 on quote or store failure
func (h *StockHandler) GetAllStocks(w http.ResponseWriter, r *http.Request) {
	stocks, err := h.stockService.GetAllStocks(r.Context())
	if err != nil {
		respondServiceError(w, "Failed to retrieve stocks", err)
		return
	}

	response.RespondJSON(w, http.StatusOK, stocks)
}

// GetStock handles GET requests for a single stock by ID.
//
// Endpoint: GET /api/stocks/{stockId}
// Response: 200 OK with the Stock incl. fresh current_price
// Errors: 404 if the ID does not exist, 500 on quote or store failure
func (h *StockHandler) GetStock(w http.ResponseWriter, r *http.Request) {
	stockID := chi.URLParam(r, "stockId")

	stock, err := h.stockService.GetStock(r.Context(), stockID)
	if err != nil {
		respondServiceError(w, "Failed to retrieve stock", err)
		return
	}

	response.RespondJSON(w, http.StatusOK, stock)
}

// UpdateStock handles PUT requests to replace an existing stock position.
//
// Endpoint: PUT /api/stocks/{stockId}
// Request: StockRequest body; all fields are replaced
// Response: 200 OK with the updated Stock incl. fresh current_price
// Errors: 404 if the ID does not exist, 400 on validation failure, 500 otherwise
func (h *StockHandler) UpdateStock(w http.ResponseWriter, r *http.Request) {
	stockID := chi.URLParam(r, "stockId")

	var req request.StockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateStockRequest(req); err != nil {
		respondServiceError(w, "validation failed", err)
		return
	}

	stock, err := h.stockService.UpdateStock(r.Context(), stockID, req)
	if err != nil {
		respondServiceError(w, "Failed to update stock", err)
		return
	}

	response.RespondJSON(w, http.StatusOK, stock)
}

// DeleteStock handles DELETE requests to remove a stock permanently.
//
// Endpoint: DELETE /api/stocks/{stockId}
// Response: 200 OK with a confirmation message
// Errors: 404 if the ID does not exist, 500 on store failure
func (h *StockHandler) DeleteStock(w http.ResponseWriter, r *http.Request) {
	stockID := chi.URLParam(r, "stockId")

	if err := h.stockService.DeleteStock(r.Context(), stockID); err != nil {
		respondServiceError(w, "Failed to delete stock", err)
		return
	}

	response.RespondMessage(w, "Stock deleted successfully")
}
