// Package marketdata fetches daily closing-price series from the Alpha
// Vantage TIME_SERIES_DAILY endpoint and classifies every outcome as a
// usable series, an empty result, or a transport/schema failure.
package marketdata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	"github.com/TAnomaly/Fintech-TUI/internal/series"
)

const (
	defaultBaseURL = "https://www.alphavantage.co/query"
	function       = "TIME_SERIES_DAILY"

	outputSizeCompact = "compact" // latest 100 data points
	outputSizeFull    = "full"    // full history

	compactLimit = 100
)

// dailyResponse is the provider's TIME_SERIES_DAILY payload. Error and
// rate-limit responses omit the time series field entirely and carry a
// note instead.
type dailyResponse struct {
	TimeSeries map[string]dailyBar `json:"Time Series (Daily)"`
	ErrorMsg   string              `json:"Error Message"`
	Note       string              `json:"Note"`
}

type dailyBar struct {
	Open   string `json:"1. open"`
	High   string `json:"2. high"`
	Low    string `json:"3. low"`
	Close  string `json:"4. close"`
	Volume string `json:"5. volume"`
}

// Client is an Alpha Vantage API client. The credential is opaque to the
// rest of the system.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at a different endpoint. Used by tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient replaces the default 10s-timeout HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient creates an Alpha Vantage client.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchDaily retrieves up to days of the most recent daily closes for
// symbol, oldest first. It performs a single request with no retries.
//
// Outcomes: a non-empty series on success; ErrNoData when the request
// succeeded but produced no usable price points; a *FetchError classified
// as transport or schema otherwise.
func (c *Client) FetchDaily(ctx context.Context, symbol string, days int) (series.PriceSeries, error) {
	params := url.Values{}
	params.Set("function", function)
	params.Set("symbol", symbol)
	params.Set("apikey", c.apiKey)
	if days > compactLimit {
		params.Set("outputsize", outputSizeFull)
	} else {
		params.Set("outputsize", outputSizeCompact)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, transportErr(err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, transportErr(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, transportErr(fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, transportErr(fmt.Errorf("reading response: %w", err))
	}

	var payload dailyResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, schemaErr(fmt.Errorf("decoding response: %w", err))
	}

	// Error-shaped and rate-limit payloads are well-formed JSON without a
	// time series; they count as empty results, not failures.
	if len(payload.TimeSeries) == 0 {
		return nil, ErrNoData
	}

	closes := make(series.PriceSeries, 0, len(payload.TimeSeries))
	for date, bar := range payload.TimeSeries {
		price, err := strconv.ParseFloat(bar.Close, 64)
		if err != nil {
			// A single bad date does not poison the series.
			continue
		}
		closes = append(closes, series.Close{Date: date, Price: price})
	}
	if len(closes) == 0 {
		return nil, ErrNoData
	}

	sort.Slice(closes, func(i, j int) bool { return closes[i].Date < closes[j].Date })
	if len(closes) > days {
		closes = closes[len(closes)-days:]
	}
	return closes, nil
}
