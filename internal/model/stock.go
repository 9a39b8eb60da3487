package model

import "time"

// Stock represents a single tracked equity position.
//
// CurrentPrice is derived, not authoritative: every read path fetches a fresh
// quote and overwrites it before the record leaves the service layer. The
// persisted current_price column is only an audit trail maintained by the
// price refresh job.
type Stock struct {
	ID       string  `json:"id"`
	Symbol   string  `json:"symbol"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	BuyPrice float64 `json:"buy_price"`

	CurrentPrice float64 `json:"current_price"`

	// CreatedAt tracks the last write, not the original creation: updates
	// overwrite it with the update time.
	CreatedAt time.Time `json:"created_at"`
}
