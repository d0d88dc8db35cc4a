package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"coindash-api/pkg/market"
)

const (
	defaultBaseURL     = "https://query1.finance.yahoo.com"
	defaultHTTPTimeout = 10 * time.Second
)

// Client wraps the Yahoo Finance chart API. No internal retries; one
// failed call is one failed tier.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a new Client.
type Option func(*Client)

// WithHTTPClient injects a custom http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithBaseURL overrides the default API base URL.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.baseURL = u
		}
	}
}

// NewClient constructs a Yahoo Finance chart client.
func NewClient(opts ...Option) *Client {
	client := &Client{
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: defaultHTTPTimeout},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// chartResponse is the chart API payload shape.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []*float64 `json:"open"`
					High   []*float64 `json:"high"`
					Low    []*float64 `json:"low"`
					Close  []*float64 `json:"close"`
					Volume []*float64 `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// FetchChart fetches candles for the ticker over the given range at the
// given interval. Yahoo intervals and the dashboard's coincide for the
// supported set (1m, 5m, 1h, 1d).
func (c *Client) FetchChart(ctx context.Context, ticker, interval, rng string) (market.Series, error) {
	u := fmt.Sprintf("%s/v8/finance/chart/%s?interval=%s&range=%s",
		c.baseURL, url.PathEscape(ticker), interval, rng)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("yahoo: build request: %w", err)
	}
	// Yahoo rejects requests without a browser-looking agent.
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("yahoo: fetch chart: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("yahoo: read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("yahoo: http status %d: %s", resp.StatusCode, string(body))
	}

	var chart chartResponse
	if err := json.Unmarshal(body, &chart); err != nil {
		return nil, fmt.Errorf("yahoo: decode response: %w", err)
	}
	if chart.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo: api error %s: %s", chart.Chart.Error.Code, chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 || len(chart.Chart.Result[0].Timestamp) == 0 {
		return nil, fmt.Errorf("yahoo: empty chart result for %s", ticker)
	}

	result := chart.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return nil, fmt.Errorf("yahoo: missing quote block for %s", ticker)
	}
	quote := result.Indicators.Quote[0]
	n := len(result.Timestamp)
	for name, col := range map[string][]*float64{
		"open": quote.Open, "high": quote.High, "low": quote.Low, "close": quote.Close,
	} {
		if len(col) != n {
			return nil, fmt.Errorf("yahoo: column %s has %d rows, want %d", name, len(col), n)
		}
	}

	series := make(market.Series, 0, n)
	for i, ts := range result.Timestamp {
		o, h, l, cl := deref(quote.Open[i]), deref(quote.High[i]), deref(quote.Low[i]), deref(quote.Close[i])
		if o == 0 && h == 0 && l == 0 && cl == 0 {
			continue // null bars: holidays and venue downtime
		}
		var v float64
		if i < len(quote.Volume) {
			v = deref(quote.Volume[i])
		}
		series = append(series, market.Candle{
			Time:   time.Unix(ts, 0),
			Open:   o,
			High:   h,
			Low:    l,
			Close:  cl,
			Volume: v,
		})
	}
	if len(series) < 2 {
		return nil, market.ErrSeriesTooShort
	}
	series.Sort()
	return series, nil
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
