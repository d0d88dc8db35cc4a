package coingecko

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"coindash-api/pkg/market"
)

func newOHLCServer(t *testing.T, rows int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v3/coins/bitcoin/ohlc", r.URL.Path)
		require.Equal(t, "usd", r.URL.Query().Get("vs_currency"))
		require.Equal(t, "365", r.URL.Query().Get("days"))

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, "[")
		base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).UnixMilli()
		for i := 0; i < rows; i++ {
			if i > 0 {
				fmt.Fprint(w, ",")
			}
			price := 42000 + float64(i)*10
			fmt.Fprintf(w, "[%d,%f,%f,%f,%f]",
				base+int64(i)*86400000, price, price*1.02, price*0.98, price*1.01)
		}
		fmt.Fprint(w, "]")
	}))
}

func testClient(baseURL string) *Client {
	return NewClient(
		WithBaseURL(baseURL),
		WithRand(rand.New(rand.NewSource(1))),
	)
}

func TestFetchOHLC(t *testing.T) {
	server := newOHLCServer(t, 5)
	defer server.Close()

	client := testClient(server.URL)
	series, err := client.FetchOHLC(context.Background(), "bitcoin", 365)
	require.NoError(t, err)
	require.Len(t, series, 5)
	require.NoError(t, series.Validate())

	first := series[0]
	require.InDelta(t, 42000, first.Open, 1e-6)
	require.InDelta(t, 42000*1.02, first.High, 1e-6)
	require.InDelta(t, 42000*0.98, first.Low, 1e-6)
	require.InDelta(t, 42000*1.01, first.Close, 1e-6)
	// Volume is synthesized: the endpoint does not supply one.
	require.GreaterOrEqual(t, first.Volume, 1e9)
	require.LessOrEqual(t, first.Volume, 5e9)
}

func TestFetchOHLCTooFewRows(t *testing.T) {
	server := newOHLCServer(t, 1)
	defer server.Close()

	client := testClient(server.URL)
	_, err := client.FetchOHLC(context.Background(), "bitcoin", 365)
	require.ErrorIs(t, err, market.ErrSeriesTooShort)
}

func TestFetchOHLCHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := testClient(server.URL)
	_, err := client.FetchOHLC(context.Background(), "bitcoin", 365)
	require.Error(t, err)
	require.Contains(t, err.Error(), "429")
}

func TestFetchOHLCMalformedPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"error":"not an array"}`)
	}))
	defer server.Close()

	client := testClient(server.URL)
	_, err := client.FetchOHLC(context.Background(), "bitcoin", 365)
	require.Error(t, err)
}

func TestFetchOHLCShortTuple(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[[1,2,3],[4,5,6]]`)
	}))
	defer server.Close()

	client := testClient(server.URL)
	_, err := client.FetchOHLC(context.Background(), "bitcoin", 365)
	require.Error(t, err)
	require.Contains(t, err.Error(), "want 5")
}
