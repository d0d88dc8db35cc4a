package coingecko

import (
	"context"
	"fmt"
	"net/http"

	"coindash-api/pkg/market"
)

// lookbackDays is the fixed primary-tier window: one year of daily
// candles regardless of the requested display interval.
const lookbackDays = 365

// coinIDs maps dashboard symbols to CoinGecko coin ids.
var coinIDs = map[string]string{
	"BTC-USD": "bitcoin",
	"ETH-USD": "ethereum",
	"SOL-USD": "solana",
}

// Provider adapts the CoinGecko client to the market.Provider contract.
type Provider struct {
	client *Client
	name   string
}

// NewProvider constructs a CoinGecko market provider.
func NewProvider(opts ...Option) *Provider {
	return &Provider{client: NewClient(opts...), name: "coingecko"}
}

func (p *Provider) Name() string { return p.name }

// Candles implements market.Provider. Symbols without a CoinGecko
// mapping fail fast with ErrSymbolNotSupported so the fetcher moves on
// to the next tier without a network call.
func (p *Provider) Candles(ctx context.Context, symbol string, _ market.Interval) (market.Series, error) {
	coinID, ok := coinIDs[symbol]
	if !ok {
		return nil, fmt.Errorf("coingecko: %s: %w", symbol, market.ErrSymbolNotSupported)
	}
	return p.client.FetchOHLC(ctx, coinID, lookbackDays)
}

func init() {
	market.RegisterProvider("coingecko", func(name string, cfg *market.ProviderConfig) (market.Provider, error) {
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
