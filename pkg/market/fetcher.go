package market

import (
	"context"
	"time"

	"github.com/sony/gobreaker"
	"github.com/zeromicro/go-zero/core/logx"
)

// SeriesCache is the caching collaborator injected around the fetcher.
// Implementations live outside this package (memory or redis backed).
type SeriesCache interface {
	Get(ctx context.Context, symbol string, interval Interval) (FetchResult, bool)
	Set(ctx context.Context, symbol string, interval Interval, result FetchResult)
}

const (
	breakerTripAfter = 3
	breakerCooldown  = 30 * time.Second
)

type tier struct {
	provider Provider
	breaker  *gobreaker.CircuitBreaker
}

// Fetcher walks the configured live provider tiers in order and falls
// back to the synthetic generator. Fetch never fails: there is always a
// series to render.
type Fetcher struct {
	tiers     []tier
	synthetic Provider
	cache     SeriesCache
	timeout   time.Duration
}

// FetcherOption customises the fetcher.
type FetcherOption func(*Fetcher)

// WithCache injects the series cache collaborator.
func WithCache(cache SeriesCache) FetcherOption {
	return func(f *Fetcher) { f.cache = cache }
}

// WithSynthetic overrides the terminal fallback provider.
func WithSynthetic(provider Provider) FetcherOption {
	return func(f *Fetcher) {
		if provider != nil {
			f.synthetic = provider
		}
	}
}

// WithTierTimeout bounds each live tier call.
func WithTierTimeout(timeout time.Duration) FetcherOption {
	return func(f *Fetcher) {
		if timeout > 0 {
			f.timeout = timeout
		}
	}
}

// NewFetcher constructs a tiered fetcher over the live providers, in
// fallback order. Each live tier gets its own circuit breaker so a
// provider that keeps failing is skipped without a network round-trip
// until the breaker half-opens.
func NewFetcher(live []Provider, opts ...FetcherOption) *Fetcher {
	f := &Fetcher{
		synthetic: NewSyntheticProvider(),
		timeout:   12 * time.Second,
	}
	for _, provider := range live {
		f.tiers = append(f.tiers, tier{
			provider: provider,
			breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
				Name:    provider.Name(),
				Timeout: breakerCooldown,
				ReadyToTrip: func(counts gobreaker.Counts) bool {
					return counts.ConsecutiveFailures >= breakerTripAfter
				},
			}),
		})
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch returns candles for the symbol, consulting the cache first.
func (f *Fetcher) Fetch(ctx context.Context, symbol string, interval Interval) FetchResult {
	if f.cache != nil {
		if result, ok := f.cache.Get(ctx, symbol, interval); ok {
			return result
		}
	}
	return f.FetchFresh(ctx, symbol, interval)
}

// FetchFresh bypasses the cache, walks the tiers, and stores the result
// back so subsequent Fetch calls within the TTL reuse it.
func (f *Fetcher) FetchFresh(ctx context.Context, symbol string, interval Interval) FetchResult {
	result := f.fetchTiered(ctx, symbol, interval)
	if f.cache != nil {
		f.cache.Set(ctx, symbol, interval, result)
	}
	return result
}

func (f *Fetcher) fetchTiered(ctx context.Context, symbol string, interval Interval) FetchResult {
	for _, t := range f.tiers {
		series, err := f.tryTier(ctx, t, symbol, interval)
		if err != nil {
			logx.WithContext(ctx).Infof("market: tier %s failed for %s/%s: %v",
				t.provider.Name(), symbol, interval, err)
			continue
		}
		return FetchResult{Series: series, Source: t.provider.Name(), Live: true}
	}

	series, err := f.synthetic.Candles(ctx, symbol, interval)
	if err != nil {
		// The generator cannot fail; guard against a misbehaving override.
		logx.WithContext(ctx).Errorf("market: synthetic tier failed for %s/%s: %v", symbol, interval, err)
		series = Series{}
	}
	return FetchResult{Series: series, Source: SourceSynthetic, Live: false}
}

func (f *Fetcher) tryTier(ctx context.Context, t tier, symbol string, interval Interval) (Series, error) {
	callCtx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	raw, err := t.breaker.Execute(func() (interface{}, error) {
		series, err := t.provider.Candles(callCtx, symbol, interval)
		if err != nil {
			return nil, err
		}
		if len(series) < 2 {
			return nil, ErrSeriesTooShort
		}
		if err := series.Validate(); err != nil {
			return nil, err
		}
		return series, nil
	})
	if err != nil {
		return nil, err
	}
	return raw.(Series), nil
}
