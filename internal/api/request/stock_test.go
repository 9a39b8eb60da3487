package request_test

import (
	"encoding/json"
	"testing"

	"github.com/ndegroot/Stock-Portfolio-Tracker-Backend/internal/api/request"
)

func TestStockRequest_BuyPriceAlias(t *testing.T) {
	t.Run("accepts snake_case buy_price", func(t *testing.T) {
		var req request.StockRequest
		err := json.Unmarshal([]byte(`{"symbol":"AAPL","name":"Apple","quantity":10,"buy_price":100.5}`), &req)
		if err != nil {
			t.Fatalf("Unmarshal failed: %v", err)
		}
		if req.BuyPrice != 100.5 {
			t.Errorf("Expected buy price 100.5, got %f", req.BuyPrice)
		}
	})

	t.Run("accepts legacy camelCase buyPrice", func(t *testing.T) {
		var req request.StockRequest
		err := json.Unmarshal([]byte(`{"symbol":"AAPL","name":"Apple","quantity":10,"buyPrice":100.5}`), &req)
		if err != nil {
			t.Fatalf("Unmarshal failed: %v", err)
		}
		if req.BuyPrice != 100.5 {
			t.Errorf("Expected buy price 100.5, got %f", req.BuyPrice)
		}
	})

	t.Run("snake_case wins when both are present", func(t *testing.T) {
		var req request.StockRequest
		err := json.Unmarshal([]byte(`{"symbol":"AAPL","name":"Apple","quantity":10,"buy_price":100,"buyPrice":999}`), &req)
		if err != nil {
			t.Fatalf("Unmarshal failed: %v", err)
		}
		if req.BuyPrice != 100 {
			t.Errorf("Expected buy_price to win with 100, got %f", req.BuyPrice)
		}
	})
}
