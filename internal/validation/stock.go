package validation

import (
	"strings"

	"github.com/ndegroot/Stock-Portfolio-Tracker-Backend/internal/api/request"
)

// ValidateStockRequest checks a create/update stock request against the model
// invariants: non-empty symbol and name, quantity of at least one share and a
// strictly positive buy price (a zero buy price would make gain/loss
// undefined).
func ValidateStockRequest(req request.StockRequest) error {
	errors := make(map[string]string)

	// Required fields
	if strings.TrimSpace(req.Symbol) == "" {
		errors["symbol"] = "symbol is required"
	} else if len(req.Symbol) > 10 {
		errors["symbol"] = "symbol must be 10 characters or less"
	}

	if strings.TrimSpace(req.Name) == "" {
		errors["name"] = "name is required"
	} else if len(req.Name) > 100 {
		errors["name"] = "name must be 100 characters or less"
	}

	if req.Quantity < 1 {
		errors["quantity"] = "quantity must be at least 1"
	}

	if req.BuyPrice <= 0 {
		errors["buy_price"] = "buy price must be greater than 0"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
