package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"coindash-api/pkg/market"
)

func testResult() market.FetchResult {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return market.FetchResult{
		Series: market.Series{
			{Time: base, Open: 100, High: 105, Low: 95, Close: 102, Volume: 1e9},
			{Time: base.Add(24 * time.Hour), Open: 102, High: 112, Low: 101, Close: 110, Volume: 2e9},
		},
		Source: "coingecko",
		Live:   true,
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	store, err := NewMemoryStore(NewTTLSet(10, 60, 300))
	require.NoError(t, err)
	ctx := context.Background()

	_, ok := store.Get(ctx, "BTC-USD", market.Interval1d)
	require.False(t, ok)

	want := testResult()
	store.Set(ctx, "BTC-USD", market.Interval1d, want)

	got, ok := store.Get(ctx, "BTC-USD", market.Interval1d)
	require.True(t, ok)
	require.Equal(t, want, got)
}

func TestMemoryStoreInvalidate(t *testing.T) {
	store, err := NewMemoryStore(NewTTLSet(10, 60, 300))
	require.NoError(t, err)
	ctx := context.Background()

	store.Set(ctx, "BTC-USD", market.Interval1d, testResult())
	store.Invalidate(ctx, "BTC-USD", market.Interval1d)

	_, ok := store.Get(ctx, "BTC-USD", market.Interval1d)
	require.False(t, ok)
}

func TestMemoryStoreInvalidateAll(t *testing.T) {
	store, err := NewMemoryStore(NewTTLSet(10, 60, 300))
	require.NoError(t, err)
	ctx := context.Background()

	store.Set(ctx, "BTC-USD", market.Interval1d, testResult())
	store.Set(ctx, "ETH-USD", market.Interval1h, testResult())
	store.InvalidateAll(ctx)

	_, ok := store.Get(ctx, "BTC-USD", market.Interval1d)
	require.False(t, ok)
	_, ok = store.Get(ctx, "ETH-USD", market.Interval1h)
	require.False(t, ok)
}

func TestMemoryStoreKeysAreScoped(t *testing.T) {
	store, err := NewMemoryStore(NewTTLSet(10, 60, 300))
	require.NoError(t, err)
	ctx := context.Background()

	store.Set(ctx, "BTC-USD", market.Interval1d, testResult())

	// Same symbol at a different interval is a distinct entry.
	_, ok := store.Get(ctx, "BTC-USD", market.Interval1h)
	require.False(t, ok)
}
