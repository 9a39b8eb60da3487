package testutil

import (
	"database/sql"

	"github.com/ndegroot/Stock-Portfolio-Tracker-Backend/internal/quote"
	"github.com/ndegroot/Stock-Portfolio-Tracker-Backend/internal/repository"
	"github.com/ndegroot/Stock-Portfolio-Tracker-Backend/internal/service"
)

// NewTestStockService wires a StockService over the given database and quote client.
func NewTestStockService(db *sql.DB, quoteClient quote.Client) *service.StockService {
	return service.NewStockService(repository.NewStockRepository(db), quoteClient)
}

// NewTestPortfolioService wires a PortfolioService over the given database and quote client.
func NewTestPortfolioService(db *sql.DB, quoteClient quote.Client) *service.PortfolioService {
	return service.NewPortfolioService(repository.NewStockRepository(db), quoteClient)
}
