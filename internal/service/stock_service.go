package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ndegroot/Stock-Portfolio-Tracker-Backend/internal/api/request"
	"github.com/ndegroot/Stock-Portfolio-Tracker-Backend/internal/apperrors"
	"github.com/ndegroot/Stock-Portfolio-Tracker-Backend/internal/model"
	"github.com/ndegroot/Stock-Portfolio-Tracker-Backend/internal/quote"
	"github.com/ndegroot/Stock-Portfolio-Tracker-Backend/internal/repository"
)

// StockService handles stock-related business logic operations. Every read
// path attaches a freshly fetched current price; the persisted current_price
// column is never served to callers.
type StockService struct {
	stockRepo   *repository.StockRepository
	quoteClient quote.Client
}

// NewStockService creates a new StockService with the provided dependencies.
func NewStockService(stockRepo *repository.StockRepository, quoteClient quote.Client) *StockService {
	return &StockService{
		stockRepo:   stockRepo,
		quoteClient: quoteClient,
	}
}

// normalizeSymbol fixes the case convention for ticker symbols.
func normalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

// guardInvariants rejects records that would break valuation downstream.
// Validation at the HTTP boundary reports field-level messages; this guard
// protects non-HTTP callers too.
func guardInvariants(req request.StockRequest) error {
	if req.BuyPrice <= 0 {
		return fmt.Errorf("%w: buy price must be greater than 0", apperrors.ErrInvalidStock)
	}
	if req.Quantity < 1 {
		return fmt.Errorf("%w: quantity must be at least 1", apperrors.ErrInvalidStock)
	}
	return nil
}

// CreateStock creates a new stock position. The current price is fetched
// before anything is written, so a quote failure leaves the store untouched.
func (s *StockService) CreateStock(ctx context.Context, req request.StockRequest) (*model.Stock, error) {
	if err := guardInvariants(req); err != nil {
		return nil, err
	}

	symbol := normalizeSymbol(req.Symbol)

	currentPrice, err := s.quoteClient.GetPrice(ctx, symbol)
	if err != nil {
		return nil, err
	}

	stock := &model.Stock{
		ID:           uuid.New().String(),
		Symbol:       symbol,
		Name:         req.Name,
		Quantity:     req.Quantity,
		BuyPrice:     req.BuyPrice,
		CurrentPrice: currentPrice,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.stockRepo.Insert(ctx, stock); err != nil {
		return nil, fmt.Errorf("failed to create stock: %w", err)
	}

	return stock, nil
}

// GetAllStocks retrieves all stocks with freshly fetched current prices.
// A single quote failure fails the whole call.
func (s *StockService) GetAllStocks(ctx context.Context) ([]model.Stock, error) {
	stocks, err := s.stockRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	prices, err := fetchCurrentPrices(ctx, s.quoteClient, stocks)
	if err != nil {
		return nil, err
	}

	for i := range stocks {
		stocks[i].CurrentPrice = prices[i]
	}

	return stocks, nil
}

// GetStock retrieves a single stock by ID with a freshly fetched current price.
// Returns apperrors.ErrStockNotFound if the ID does not exist.
func (s *StockService) GetStock(ctx context.Context, id string) (*model.Stock, error) {
	stock, err := s.stockRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	currentPrice, err := s.quoteClient.GetPrice(ctx, stock.Symbol)
	if err != nil {
		return nil, err
	}
	stock.CurrentPrice = currentPrice

	return &stock, nil
}

// UpdateStock replaces the symbol, name, quantity and buy price of an
// existing stock and re-fetches the current price afterwards.
//
// The created_at column is overwritten with the update time: the field
// tracks the last write, not the original creation.
//
// Returns apperrors.ErrStockNotFound if the ID does not exist; the store is
// not altered in that case.
func (s *StockService) UpdateStock(ctx context.Context, id string, req request.StockRequest) (*model.Stock, error) {
	if err := guardInvariants(req); err != nil {
		return nil, err
	}

	stock := &model.Stock{
		ID:        id,
		Symbol:    normalizeSymbol(req.Symbol),
		Name:      req.Name,
		Quantity:  req.Quantity,
		BuyPrice:  req.BuyPrice,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.stockRepo.Update(ctx, stock); err != nil {
		return nil, err
	}

	currentPrice, err := s.quoteClient.GetPrice(ctx, stock.Symbol)
	if err != nil {
		return nil, err
	}
	stock.CurrentPrice = currentPrice

	return stock, nil
}

// DeleteStock removes a stock permanently.
// Returns apperrors.ErrStockNotFound if the ID does not exist.
func (s *StockService) DeleteStock(ctx context.Context, id string) error {
	return s.stockRepo.Delete(ctx, id)
}
