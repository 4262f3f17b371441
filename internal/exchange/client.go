// Package exchange resolves conversion rates between currencies. It prefers a
// live quote API and degrades through a static table down to an identity rate,
// caching results per pair for a bounded freshness window.
package exchange

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://api.exchangerate-api.com"
	requestTimeout = 5 * time.Second
	maxBodySize    = 1 << 20 // 1 MB
)

// ErrMissingTarget indicates the quote response did not include the requested
// target currency.
var ErrMissingTarget = errors.New("exchange: target currency not in response")

// Client fetches live currency quotes from an exchange-rate API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a quote client. An empty baseURL selects the default
// public API endpoint.
func NewClient(baseURL string) *Client {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{},
	}
}

// quoteResponse is the wire shape of the latest-rates endpoint.
type quoteResponse struct {
	Base  string             `json:"base"`
	Rates map[string]float64 `json:"rates"`
}

// Quotes returns the live rate table for the given base currency: one rate
// per target code, meaning "1 base = rate target units". The request is
// bounded by a short timeout so callers never block indefinitely.
func (c *Client) Quotes(ctx context.Context, base string) (map[string]float64, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	url := fmt.Sprintf("%s/v4/latest/%s", c.baseURL, base)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("exchange: creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("exchange: request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("exchange: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("exchange: reading response: %w", err)
	}

	var quote quoteResponse
	if err := json.Unmarshal(body, &quote); err != nil {
		return nil, fmt.Errorf("exchange: parsing quotes: %w", err)
	}
	if len(quote.Rates) == 0 {
		return nil, errors.New("exchange: empty rate table")
	}
	return quote.Rates, nil
}

// Quote returns the live rate for a single pair.
func (c *Client) Quote(ctx context.Context, from, to string) (float64, error) {
	rates, err := c.Quotes(ctx, from)
	if err != nil {
		return 0, err
	}
	rate, ok := rates[to]
	if !ok {
		return 0, ErrMissingTarget
	}
	if rate <= 0 {
		return 0, fmt.Errorf("exchange: non-positive rate %v for %s/%s", rate, from, to)
	}
	return rate, nil
}
