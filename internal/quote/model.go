package quote

// Response is the raw quote payload returned by the Finnhub quote endpoint.
// Only the current price is used; the remaining fields are decoded for
// completeness.
type Response struct {
	Current       float64 `json:"c"`
	Change        float64 `json:"d"`
	PercentChange float64 `json:"dp"`
	High          float64 `json:"h"`
	Low           float64 `json:"l"`
	Open          float64 `json:"o"`
	PreviousClose float64 `json:"pc"`
	Timestamp     int64   `json:"t"`
}
