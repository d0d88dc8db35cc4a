package market

import (
	"context"
	"errors"
)

// ErrSymbolNotSupported indicates a provider has no mapping for the
// requested symbol. The fetcher treats it like any other tier failure.
var ErrSymbolNotSupported = errors.New("market: symbol not supported by provider")

// ErrSeriesTooShort indicates a provider answered with fewer than two
// candles, which is useless for metrics and charting.
var ErrSeriesTooShort = errors.New("market: series shorter than two candles")

// Provider exposes one OHLCV candle source.
type Provider interface {
	// Candles returns the candle history for the symbol at the given
	// interval, oldest first. An empty series is an error, never a
	// valid result.
	Candles(ctx context.Context, symbol string, interval Interval) (Series, error)
	// Name identifies the provider for logging and source labelling.
	Name() string
}

// Asset describes one instrument the dashboard can display.
type Asset struct {
	Name   string // Display name, e.g. "Bitcoin"
	Symbol string // Dashboard symbol, e.g. "BTC-USD"
}

// SupportedAssets is the asset selector table.
var SupportedAssets = []Asset{
	{Name: "Bitcoin", Symbol: "BTC-USD"},
	{Name: "Ethereum", Symbol: "ETH-USD"},
	{Name: "Solana", Symbol: "SOL-USD"},
}

// SupportedIntervals lists the selectable candle granularities.
var SupportedIntervals = []Interval{Interval1m, Interval5m, Interval1h, Interval1d}
