package service

import (
	"context"
	"log"

	"github.com/ndegroot/Stock-Portfolio-Tracker-Backend/internal/quote"
	"github.com/ndegroot/Stock-Portfolio-Tracker-Backend/internal/repository"
)

// PriceRefreshService keeps the persisted current_price column up to date.
// The column is an audit trail only; live reads always fetch a fresh quote.
// It is run on a schedule by the cron wiring in main.
type PriceRefreshService struct {
	stockRepo   *repository.StockRepository
	quoteClient quote.Client
}

// NewPriceRefreshService creates a new PriceRefreshService with the provided dependencies.
func NewPriceRefreshService(stockRepo *repository.StockRepository, quoteClient quote.Client) *PriceRefreshService {
	return &PriceRefreshService{
		stockRepo:   stockRepo,
		quoteClient: quoteClient,
	}
}

// RefreshAll fetches a quote for every stored stock and writes it to the
// current_price column. Unlike the metrics path, a failed quote does not
// abort the run: the stale value is kept and the failure is logged, since a
// background job has no caller to propagate to. Only a store failure is
// returned.
func (s *PriceRefreshService) RefreshAll(ctx context.Context) error {
	stocks, err := s.stockRepo.List(ctx)
	if err != nil {
		return err
	}

	refreshed := 0
	for _, stock := range stocks {
		price, err := s.quoteClient.GetPrice(ctx, stock.Symbol)
		if err != nil {
			log.Printf("price refresh: skipping %s: %v", stock.Symbol, err)
			continue
		}

		if err := s.stockRepo.UpdateCurrentPrice(ctx, stock.ID, price); err != nil {
			log.Printf("price refresh: failed to store price for %s: %v", stock.Symbol, err)
			continue
		}
		refreshed++
	}

	log.Printf("price refresh: updated %d of %d stocks", refreshed, len(stocks))
	return nil
}
