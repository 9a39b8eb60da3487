package service

import (
	"context"

	"github.com/ndegroot/Stock-Portfolio-Tracker-Backend/internal/model"
	"github.com/ndegroot/Stock-Portfolio-Tracker-Backend/internal/quote"
	"github.com/ndegroot/Stock-Portfolio-Tracker-Backend/internal/repository"
)

// PortfolioService computes portfolio-level metrics over the full stock set.
type PortfolioService struct {
	stockRepo   *repository.StockRepository
	quoteClient quote.Client
}

// NewPortfolioService creates a new PortfolioService with the provided dependencies.
func NewPortfolioService(stockRepo *repository.StockRepository, quoteClient quote.Client) *PortfolioService {
	return &PortfolioService{
		stockRepo:   stockRepo,
		quoteClient: quoteClient,
	}
}

// GetMetrics loads all stocks, prices each one with a live quote taken during
// this request, and reduces them into portfolio metrics:
//
//   - TotalValue: sum of quantity * current price, rounded to two decimals
//   - TopPerformer: the stock with the highest gain/loss percentage; on a
//     tie the first stock in store order wins
//   - TotalGainLoss: the unweighted mean of the per-stock gain/loss
//     percentages, rounded to two decimals
//   - Distribution: each stock's share of TotalValue in percent, in store
//     order, unrounded; all entries use the same denominator so the
//     percentages sum to 100 within floating point tolerance
//
// An empty portfolio short-circuits to zero metrics; the division by total
// value never happens. Any quote failure aborts the whole computation: no
// partial metrics are ever returned.
func (s *PortfolioService) GetMetrics(ctx context.Context) (*model.PortfolioMetrics, error) {
	stocks, err := s.stockRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	if len(stocks) == 0 {
		return &model.PortfolioMetrics{
			TotalValue:    0,
			TopPerformer:  nil,
			TotalGainLoss: 0,
			Distribution:  []model.Distribution{},
		}, nil
	}

	prices, err := fetchCurrentPrices(ctx, s.quoteClient, stocks)
	if err != nil {
		return nil, err
	}

	// First pass: attach prices, total the portfolio, find the top performer.
	var totalValue, gainLossSum float64
	topIndex := 0
	topGainLoss := 0.0

	gainLosses := make([]float64, len(stocks))
	for i := range stocks {
		stocks[i].CurrentPrice = prices[i]
		totalValue += CurrentValue(stocks[i], prices[i])

		gainLoss, err := GainLossPct(stocks[i], prices[i])
		if err != nil {
			return nil, err
		}
		gainLosses[i] = gainLoss
		gainLossSum += gainLoss

		// Strict comparison keeps the first stock on ties.
		if gainLoss > topGainLoss || i == 0 {
			topIndex = i
			topGainLoss = gainLoss
		}
	}

	// Second pass: distribution shares against the single final total.
	distribution := make([]model.Distribution, len(stocks))
	for i := range stocks {
		distribution[i] = model.Distribution{
			Symbol:     stocks[i].Symbol,
			Percentage: CurrentValue(stocks[i], prices[i]) / totalValue * 100,
		}
	}

	return &model.PortfolioMetrics{
		TotalValue:    round(totalValue),
		TopPerformer:  &stocks[topIndex],
		TotalGainLoss: round(gainLossSum / float64(len(stocks))),
		Distribution:  distribution,
	}, nil
}
