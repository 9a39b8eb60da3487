package testutil

import (
	"context"
	"fmt"
	"sync"

	"github.com/ndegroot/Stock-Portfolio-Tracker-Backend/internal/apperrors"
)

// MockQuoteClient is a configurable in-memory implementation of quote.Client.
// It returns predefined prices instead of making network calls.
//
// The mock is safe for concurrent use: the aggregation path fetches quotes
// from multiple goroutines.
type MockQuoteClient struct {
	mu sync.Mutex

	// Prices maps symbol to the price returned for it.
	Prices map[string]float64
	// DefaultPrice is returned for symbols not present in Prices.
	DefaultPrice float64
	// Err, when set, is returned from every call.
	Err error
	// FailSymbols lists symbols whose lookup fails with ErrQuoteUnavailable.
	FailSymbols map[string]bool
	// CallCount tracks how many times GetPrice was called.
	CallCount int
}

// NewMockQuoteClient creates a mock quote client with a default price of 100.
func NewMockQuoteClient() *MockQuoteClient {
	return &MockQuoteClient{
		Prices:       map[string]float64{},
		DefaultPrice: 100,
		FailSymbols:  map[string]bool{},
	}
}

// WithPrice configures the price returned for a symbol.
func (m *MockQuoteClient) WithPrice(symbol string, price float64) *MockQuoteClient {
	m.Prices[symbol] = price
	return m
}

// WithError configures the mock to fail every call with the given error.
func (m *MockQuoteClient) WithError(err error) *MockQuoteClient {
	m.Err = err
	return m
}

// WithFailingSymbol configures lookups for one symbol to fail with
// apperrors.ErrQuoteUnavailable while other symbols keep working.
func (m *MockQuoteClient) WithFailingSymbol(symbol string) *MockQuoteClient {
	m.FailSymbols[symbol] = true
	return m
}

// GetPrice returns the configured price for a symbol.
func (m *MockQuoteClient) GetPrice(_ context.Context, symbol string) (float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.CallCount++

	if m.Err != nil {
		return 0, m.Err
	}
	if m.FailSymbols[symbol] {
		return 0, fmt.Errorf("%w: no price for %s", apperrors.ErrQuoteUnavailable, symbol)
	}
	if price, ok := m.Prices[symbol]; ok {
		return price, nil
	}
	return m.DefaultPrice, nil
}

// Calls returns how many times GetPrice was invoked.
func (m *MockQuoteClient) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.CallCount
}
