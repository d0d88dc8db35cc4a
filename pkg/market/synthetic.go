package market

import (
	"context"
	"math/rand"
	"sync"
	"time"
)

// Base prices used to seed the random walk per symbol. Unknown symbols
// fall back to defaultBasePrice so the generator still always succeeds.
var basePrices = map[string]float64{
	"BTC-USD": 42500,
	"ETH-USD": 2300,
	"SOL-USD": 105,
}

const defaultBasePrice = 1000

const (
	driftMean   = 0.002
	driftStddev = 0.03
)

// SyntheticProvider generates a plausible OHLCV series locally. It is
// the terminal fallback tier and never fails.
type SyntheticProvider struct {
	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

// SyntheticOption customises the synthetic provider.
type SyntheticOption func(*SyntheticProvider)

// WithRand injects a seeded random source for deterministic output.
func WithRand(rng *rand.Rand) SyntheticOption {
	return func(p *SyntheticProvider) {
		if rng != nil {
			p.rng = rng
		}
	}
}

// WithNow overrides the clock used for timestamp generation.
func WithNow(now func() time.Time) SyntheticOption {
	return func(p *SyntheticProvider) {
		if now != nil {
			p.now = now
		}
	}
}

// NewSyntheticProvider constructs the generator.
func NewSyntheticProvider(opts ...SyntheticOption) *SyntheticProvider {
	p := &SyntheticProvider{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *SyntheticProvider) Name() string { return SourceSynthetic }

// Candles implements Provider. The series walks a multiplicative random
// walk with drift; high/low are derived from open/close so the candle
// invariant low <= min(open,close) <= max(open,close) <= high holds by
// construction. Timestamps step backward from now by one interval per
// row, so synthetic granularity matches the request.
func (p *SyntheticProvider) Candles(_ context.Context, symbol string, interval Interval) (Series, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	base, ok := basePrices[symbol]
	if !ok {
		base = defaultBasePrice
	}

	rows := interval.SyntheticRows()
	step := interval.Duration()
	start := p.now().Add(-time.Duration(rows) * step)

	series := make(Series, 0, rows)
	price := base
	for i := 0; i < rows; i++ {
		ret := p.rng.NormFloat64()*driftStddev + driftMean
		price *= 1 + ret
		if price <= 0 {
			price = base
		}

		open := price * p.uniform(0.98, 1.02)
		closing := price * p.uniform(0.98, 1.02)
		high := maxOf(open, closing) * p.uniform(1.0, 1.02)
		low := minOf(open, closing) * p.uniform(0.98, 1.0)

		series = append(series, Candle{
			Time:   start.Add(time.Duration(i+1) * step),
			Open:   open,
			High:   high,
			Low:    low,
			Close:  closing,
			Volume: p.uniform(1e9, 5e9),
		})
	}
	return series, nil
}

func (p *SyntheticProvider) uniform(lo, hi float64) float64 {
	return lo + p.rng.Float64()*(hi-lo)
}

func maxOf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func minOf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func init() {
	RegisterProvider(SourceSynthetic, func(name string, _ *ProviderConfig) (Provider, error) {
		return NewSyntheticProvider(), nil
	})
}
