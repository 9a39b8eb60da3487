package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/ndegroot/Stock-Portfolio-Tracker-Backend/internal/model"
	"github.com/ndegroot/Stock-Portfolio-Tracker-Backend/internal/quote"
)

// maxConcurrentQuoteFetches bounds how many quote requests are in flight at
// once when pricing a whole portfolio.
const maxConcurrentQuoteFetches = 4

// fetchCurrentPrices fetches a live price for every stock. Results are
// index-aligned with the input slice so callers keep the store's ordering
// even though fetches run concurrently. A single failed fetch cancels the
// remaining ones and fails the whole call; there are no partial results.
func fetchCurrentPrices(ctx context.Context, client quote.Client, stocks []model.Stock) ([]float64, error) {
	prices := make([]float64, len(stocks))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentQuoteFetches)

	for i, s := range stocks {
		g.Go(func() error {
			price, err := client.GetPrice(ctx, s.Symbol)
			if err != nil {
				return err
			}
			prices[i] = price
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return prices, nil
}
