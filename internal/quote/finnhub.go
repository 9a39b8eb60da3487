package quote

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/ndegroot/Stock-Portfolio-Tracker-Backend/internal/apperrors"
)

// Client fetches a live market price for a ticker symbol.
// Implementations issue one outbound request per call: no caching, no
// retries. Callers that need many prices call GetPrice once per symbol.
type Client interface {
	GetPrice(ctx context.Context, symbol string) (float64, error)
}

// FinnhubClient fetches live quotes from the Finnhub quote API.
type FinnhubClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewFinnhubClient creates a Finnhub quote client. baseURL is the API root
// (e.g. "https://finnhub.io/api/v1"); apiKey is the Finnhub token.
func NewFinnhubClient(baseURL, apiKey string) *FinnhubClient {
	return &FinnhubClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    baseURL,
		apiKey:     apiKey,
	}
}

// GetPrice fetches the current price for a symbol.
//
// Every failure mode, including transport errors, non-2xx statuses,
// undecodable bodies and unknown symbols (Finnhub reports those with a zero
// price), wraps apperrors.ErrQuoteUnavailable. The upstream API does not let
// us distinguish "symbol not found" from transient failure, so neither do we.
func (c *FinnhubClient) GetPrice(ctx context.Context, symbol string) (float64, error) {
	if symbol == "" {
		return 0, fmt.Errorf("%w: empty symbol", apperrors.ErrQuoteUnavailable)
	}

	reqURL := fmt.Sprintf("%s/quote?symbol=%s&token=%s",
		c.baseURL, url.QueryEscape(symbol), url.QueryEscape(c.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to build request for %s: %v", apperrors.ErrQuoteUnavailable, symbol, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: request for %s failed: %v", apperrors.ErrQuoteUnavailable, symbol, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to read response for %s: %v", apperrors.ErrQuoteUnavailable, symbol, err)
	}

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("%w: quote API returned %d for %s", apperrors.ErrQuoteUnavailable, resp.StatusCode, symbol)
	}

	var quote Response
	if err := json.Unmarshal(data, &quote); err != nil {
		return 0, fmt.Errorf("%w: failed to parse response for %s: %v", apperrors.ErrQuoteUnavailable, symbol, err)
	}

	if quote.Current <= 0 {
		return 0, fmt.Errorf("%w: no price for %s", apperrors.ErrQuoteUnavailable, symbol)
	}

	return quote.Current, nil
}
