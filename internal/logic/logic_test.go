package logic

import (
	"context"
	"math/rand"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"coindash-api/internal/cache"
	"coindash-api/internal/svc"
	"coindash-api/internal/types"
	"coindash-api/pkg/market"
	"coindash-api/pkg/sentiment"
)

type stubProvider struct {
	name   string
	series market.Series
	calls  atomic.Int64
}

func (p *stubProvider) Name() string { return p.name }

func (p *stubProvider) Candles(context.Context, string, market.Interval) (market.Series, error) {
	p.calls.Add(1)
	return p.series, nil
}

func stubSeries(n int) market.Series {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	series := make(market.Series, 0, n)
	price := 100.0
	for i := 0; i < n; i++ {
		open := price
		price += 10
		series = append(series, market.Candle{
			Time:   base.Add(time.Duration(i) * 24 * time.Hour),
			Open:   open,
			High:   price + 1,
			Low:    open - 1,
			Close:  price,
			Volume: 1e9,
		})
	}
	return series
}

func newTestSvc(t *testing.T, provider market.Provider) *svc.ServiceContext {
	t.Helper()
	store, err := cache.NewMemoryStore(cache.NewTTLSet(10, 60, 300))
	require.NoError(t, err)
	return &svc.ServiceContext{
		Store:     store,
		Fetcher:   market.NewFetcher([]market.Provider{provider}, market.WithCache(store)),
		Sentiment: sentiment.NewScorer(sentiment.WithRand(rand.New(rand.NewSource(1)))),
	}
}

func TestCandlesLogic(t *testing.T) {
	provider := &stubProvider{name: "stub", series: stubSeries(5)}
	l := NewCandlesLogic(context.Background(), newTestSvc(t, provider))

	resp, err := l.Candles(&types.CandlesRequest{Symbol: "BTC-USD", Interval: "1d"})
	require.NoError(t, err)
	require.Equal(t, "BTC-USD", resp.Symbol)
	require.Equal(t, "1d", resp.Interval)
	require.Equal(t, "stub", resp.Source)
	require.True(t, resp.Live)
	require.Len(t, resp.Candles, 5)
	require.Equal(t, provider.series[0].Time.Unix(), resp.Candles[0].Time)
	require.InDelta(t, provider.series[4].Close, resp.Candles[4].Close, 1e-9)
}

func TestCandlesLogicRejectsBadInterval(t *testing.T) {
	l := NewCandlesLogic(context.Background(), newTestSvc(t, &stubProvider{name: "stub"}))

	_, err := l.Candles(&types.CandlesRequest{Symbol: "BTC-USD", Interval: "2h"})
	require.Error(t, err)
}

func TestMetricsLogic(t *testing.T) {
	provider := &stubProvider{name: "stub", series: stubSeries(5)}
	l := NewMetricsLogic(context.Background(), newTestSvc(t, provider))

	resp, err := l.Metrics(&types.MetricsRequest{Symbol: "ETH-USD", Interval: "1h"})
	require.NoError(t, err)
	require.Equal(t, "ETH-USD", resp.Symbol)
	require.Equal(t, "1h", resp.Interval)
	require.InDelta(t, 150.0, resp.CurrentPrice, 1e-9)
	require.InDelta(t, 140.0, resp.PreviousPrice, 1e-9)
	require.InDelta(t, 10.0, resp.ChangeAbs, 1e-9)
	require.InDelta(t, 10.0/140.0*100, resp.ChangePct, 1e-9)
	require.InDelta(t, 151.0, resp.High24, 1e-9)
	require.InDelta(t, 99.0, resp.Low24, 1e-9)
}

func TestDashboardLogic(t *testing.T) {
	provider := &stubProvider{name: "stub", series: stubSeries(5)}
	l := NewDashboardLogic(context.Background(), newTestSvc(t, provider))

	resp, err := l.Dashboard(&types.DashboardRequest{Symbol: "BTC-USD", Interval: "1d"})
	require.NoError(t, err)
	require.Equal(t, "BTC-USD", resp.Symbol)
	require.Equal(t, "stub", resp.Source)
	require.True(t, resp.Live)
	require.NotZero(t, resp.FetchedAt)
	require.Len(t, resp.Candles, 5)

	// The KPI block is derived from the same series as the candles.
	require.Equal(t, resp.Source, resp.Metrics.Source)
	require.InDelta(t, resp.Candles[4].Close, resp.Metrics.CurrentPrice, 1e-9)

	require.GreaterOrEqual(t, resp.Sentiment.Score, 0.0)
	require.LessOrEqual(t, resp.Sentiment.Score, 100.0)
	require.NotEmpty(t, resp.Sentiment.Headlines)
	require.Equal(t, string(sentiment.Classify(resp.Sentiment.Score)), resp.Sentiment.Label)
}

func TestSentimentLogic(t *testing.T) {
	l := NewSentimentLogic(context.Background(), newTestSvc(t, &stubProvider{name: "stub"}))

	resp, err := l.Sentiment()
	require.NoError(t, err)
	require.GreaterOrEqual(t, resp.Score, 0.0)
	require.LessOrEqual(t, resp.Score, 100.0)
	require.GreaterOrEqual(t, len(resp.Headlines), 3)
	require.LessOrEqual(t, len(resp.Headlines), 5)
}

func TestAssetsLogic(t *testing.T) {
	l := NewAssetsLogic(context.Background(), newTestSvc(t, &stubProvider{name: "stub"}))

	resp, err := l.Assets()
	require.NoError(t, err)
	require.Len(t, resp.Assets, len(market.SupportedAssets))
	require.Equal(t, "BTC-USD", resp.Assets[0].Symbol)
	require.Contains(t, resp.Intervals, "1d")
	require.Contains(t, resp.Intervals, "1m")
}

func TestRefreshLogicSingleSymbol(t *testing.T) {
	provider := &stubProvider{name: "stub", series: stubSeries(5)}
	svcCtx := newTestSvc(t, provider)
	ctx := context.Background()

	// Warm the cache, then refresh: the provider must be hit again.
	svcCtx.Fetcher.Fetch(ctx, "BTC-USD", market.Interval1d)
	require.Equal(t, int64(1), provider.calls.Load())

	l := NewRefreshLogic(ctx, svcCtx)
	resp, err := l.Refresh(&types.RefreshRequest{Symbol: "BTC-USD", Interval: "1d"})
	require.NoError(t, err)
	require.True(t, resp.Refreshed)
	require.Equal(t, "BTC-USD", resp.Symbol)
	require.Equal(t, "stub", resp.Source)
	require.Equal(t, int64(2), provider.calls.Load())
}

func TestRefreshLogicWithoutSymbolClearsAll(t *testing.T) {
	provider := &stubProvider{name: "stub", series: stubSeries(5)}
	svcCtx := newTestSvc(t, provider)
	ctx := context.Background()

	svcCtx.Fetcher.Fetch(ctx, "BTC-USD", market.Interval1d)
	svcCtx.Fetcher.Fetch(ctx, "ETH-USD", market.Interval1d)

	l := NewRefreshLogic(ctx, svcCtx)
	resp, err := l.Refresh(&types.RefreshRequest{})
	require.NoError(t, err)
	require.True(t, resp.Refreshed)
	require.Empty(t, resp.Symbol)

	_, ok := svcCtx.Store.Get(ctx, "BTC-USD", market.Interval1d)
	require.False(t, ok)
	_, ok = svcCtx.Store.Get(ctx, "ETH-USD", market.Interval1d)
	require.False(t, ok)
}

func TestResetLogic(t *testing.T) {
	provider := &stubProvider{name: "stub", series: stubSeries(5)}
	svcCtx := newTestSvc(t, provider)
	ctx := context.Background()

	svcCtx.Fetcher.Fetch(ctx, "BTC-USD", market.Interval1d)

	l := NewRefreshLogic(ctx, svcCtx)
	resp, err := l.Reset()
	require.NoError(t, err)
	require.True(t, resp.Cleared)

	_, ok := svcCtx.Store.Get(ctx, "BTC-USD", market.Interval1d)
	require.False(t, ok)
}
