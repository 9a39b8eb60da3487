package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ndegroot/Stock-Portfolio-Tracker-Backend/internal/api/handlers"
	custommiddleware "github.com/ndegroot/Stock-Portfolio-Tracker-Backend/internal/api/middleware"
	"github.com/ndegroot/Stock-Portfolio-Tracker-Backend/internal/config"
	"github.com/ndegroot/Stock-Portfolio-Tracker-Backend/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(
	systemService *service.SystemService,
	stockService *service.StockService,
	portfolioService *service.PortfolioService,
	cfg *config.Config,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(systemService)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Route("/stocks", func(r chi.Router) {
			stockHandler := handlers.NewStockHandler(stockService)
			r.Post("/", stockHandler.CreateStock)
			r.Get("/", stockHandler.GetAllStocks)

			r.Route("/{stockId}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateStockIDMiddleware)
				r.Get("/", stockHandler.GetStock)
				r.Put("/", stockHandler.UpdateStock)
				r.Delete("/", stockHandler.DeleteStock)
			})
		})

		r.Route("/portfolio", func(r chi.Router) {
			portfolioHandler := handlers.NewPortfolioHandler(portfolioService)
			r.Get("/metrics", portfolioHandler.Metrics)
		})
	})

	return r
}
