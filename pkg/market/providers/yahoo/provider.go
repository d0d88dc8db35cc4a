package yahoo

import (
	"context"
	"net/http"

	"coindash-api/pkg/market"
)

// Provider adapts the Yahoo chart client to the market.Provider
// contract. The lookback range depends on the requested interval
// (1m/5m over 7 days, 1h over 60 days, 1d over a year).
type Provider struct {
	client *Client
	name   string
}

// NewProvider constructs a Yahoo market provider.
func NewProvider(opts ...Option) *Provider {
	return &Provider{client: NewClient(opts...), name: "yahoo"}
}

func (p *Provider) Name() string { return p.name }

// Candles implements market.Provider. Dashboard symbols like BTC-USD
// are valid Yahoo tickers as-is, so no mapping table is needed.
func (p *Provider) Candles(ctx context.Context, symbol string, interval market.Interval) (market.Series, error) {
	return p.client.FetchChart(ctx, symbol, string(interval), interval.LookbackRange())
}

func init() {
	market.RegisterProvider("yahoo", func(name string, cfg *market.ProviderConfig) (market.Provider, error) {
		opts := []Option{}
		if cfg.BaseURL != "" {
			opts = append(opts, WithBaseURL(cfg.BaseURL))
		}
		if cfg.HTTPTimeout > 0 {
			opts = append(opts, WithHTTPClient(&http.Client{Timeout: cfg.HTTPTimeout}))
		}
		provider := NewProvider(opts...)
		provider.name = name
		return provider, nil
	})
}
