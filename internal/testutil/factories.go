package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ndegroot/Stock-Portfolio-Tracker-Backend/internal/model"
)

// StockBuilder provides a fluent interface for creating test stocks.
//
// Example usage:
//
//	// Simple creation with defaults
//	stock := testutil.NewStock().Build(t, db)
//
//	// Customized stock
//	stock := testutil.NewStock().
//	    WithSymbol("AAPL").
//	    WithQuantity(10).
//	    WithBuyPrice(100).
//	    Build(t, db)
type StockBuilder struct {
	ID           string
	Symbol       string
	Name         string
	Quantity     int
	BuyPrice     float64
	CurrentPrice float64
	CreatedAt    time.Time
}

// NewStock creates a StockBuilder with sensible defaults.
func NewStock() *StockBuilder {
	return &StockBuilder{
		ID:           MakeID(),
		Symbol:       "TEST",
		Name:         "Test Stock",
		Quantity:     1,
		BuyPrice:     100,
		CurrentPrice: 100,
		CreatedAt:    time.Now().UTC(),
	}
}

// WithID sets a custom ID.
func (b *StockBuilder) WithID(id string) *StockBuilder {
	b.ID = id
	return b
}

// WithSymbol sets a custom ticker symbol.
func (b *StockBuilder) WithSymbol(symbol string) *StockBuilder {
	b.Symbol = symbol
	return b
}

// WithName sets a custom display name.
func (b *StockBuilder) WithName(name string) *StockBuilder {
	b.Name = name
	return b
}

// WithQuantity sets a custom share quantity.
func (b *StockBuilder) WithQuantity(quantity int) *StockBuilder {
	b.Quantity = quantity
	return b
}

// WithBuyPrice sets a custom buy price.
func (b *StockBuilder) WithBuyPrice(buyPrice float64) *StockBuilder {
	b.BuyPrice = buyPrice
	return b
}

// Build inserts the stock into the database and returns the model.
func (b *StockBuilder) Build(t *testing.T, db *sql.DB) model.Stock {
	t.Helper()

	stock := model.Stock{
		ID:           b.ID,
		Symbol:       b.Symbol,
		Name:         b.Name,
		Quantity:     b.Quantity,
		BuyPrice:     b.BuyPrice,
		CurrentPrice: b.CurrentPrice,
		CreatedAt:    b.CreatedAt,
	}

	_, err := db.Exec(`
		INSERT INTO stocks (id, symbol, name, quantity, buy_price, current_price, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		stock.ID, stock.Symbol, stock.Name, stock.Quantity,
		stock.BuyPrice, stock.CurrentPrice, stock.CreatedAt,
	)
	if err != nil {
		t.Fatalf("Failed to insert test stock: %v", err)
	}

	return stock
}

// MakeID generates a unique identifier for test records.
func MakeID() string {
	return uuid.New().String()
}
