package request

import "encoding/json"

// StockRequest is the wire body for creating and updating a stock. Create and
// update take the same full set of fields; updates replace every field.
type StockRequest struct {
	Symbol   string  `json:"symbol"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	BuyPrice float64 `json:"buy_price"`
}

// stockRequestWire is the explicit mapping between wire field names and the
// request struct. The buy price is accepted under both its snake_case name
// and the legacy camelCase alias "buyPrice"; buy_price wins when both are set.
type stockRequestWire struct {
	Symbol        string   `json:"symbol"`
	Name          string   `json:"name"`
	Quantity      int      `json:"quantity"`
	BuyPrice      *float64 `json:"buy_price"`
	BuyPriceAlias *float64 `json:"buyPrice"`
}

// UnmarshalJSON decodes a stock request, resolving the buy price field alias.
func (r *StockRequest) UnmarshalJSON(data []byte) error {
	var wire stockRequestWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	r.Symbol = wire.Symbol
	r.Name = wire.Name
	r.Quantity = wire.Quantity

	switch {
	case wire.BuyPrice != nil:
		r.BuyPrice = *wire.BuyPrice
	case wire.BuyPriceAlias != nil:
		r.BuyPrice = *wire.BuyPriceAlias
	}

	return nil
}
