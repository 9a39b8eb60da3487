package model

// Distribution is one holding's share of the total portfolio value.
type Distribution struct {
	Symbol     string  `json:"symbol"`
	Percentage float64 `json:"percentage"`
}

// PortfolioMetrics is the request-scoped aggregate view over all stocks.
// It is computed on demand and never persisted.
//
// For an empty portfolio TotalValue and TotalGainLoss are 0, TopPerformer is
// nil and Distribution is an empty slice.
type PortfolioMetrics struct {
	TotalValue    float64        `json:"total_value"`
	TopPerformer  *Stock         `json:"top_performer"`
	TotalGainLoss float64        `json:"total_gain_loss"`
	Distribution  []Distribution `json:"distribution"`
}
