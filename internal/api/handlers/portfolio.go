package handlers

import (
	"net/http"

	"github.com/ndegroot/Stock-Portfolio-Tracker-Backend/internal/api/response"
	"github.com/ndegroot/Stock-Portfolio-Tracker-Backend/internal/service"
)

// PortfolioHandler handles HTTP requests for portfolio-level endpoints.
type PortfolioHandler struct {
	portfolioService *service.PortfolioService
}

// NewPortfolioHandler creates a new PortfolioHandler with the provided service dependency.
func NewPortfolioHandler(portfolioService *service.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{
		portfolioService: portfolioService,
	}
}

// Metrics handles GET requests for the aggregate portfolio view.
//
// Endpoint: GET /api/portfolio/metrics
// Response: 200 OK with PortfolioMetrics
// Errors: 500 on any quote or store failure during aggregation; no partial
// metrics are returned
func (h *PortfolioHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	metrics, err := h.portfolioService.GetMetrics(r.Context())
	if err != nil {
		respondServiceError(w, "Failed to compute portfolio metrics", err)
		return
	}

	response.RespondJSON(w, http.StatusOK, metrics)
}
