package market

import (
	"fmt"
	"sort"
	"time"
)

// Candle represents a single OHLCV candlestick.
type Candle struct {
	Time   time.Time // Candle open time
	Open   float64   // Open price
	High   float64   // High price
	Low    float64   // Low price
	Close  float64   // Close price
	Volume float64   // Traded volume
}

// Series is an ordered sequence of candles, oldest first.
type Series []Candle

// Sort orders the series by candle time ascending.
func (s Series) Sort() {
	sort.Slice(s, func(i, j int) bool { return s[i].Time.Before(s[j].Time) })
}

// Validate checks the series ordering invariants: strictly increasing
// timestamps and positive close prices.
func (s Series) Validate() error {
	for i := range s {
		if s[i].Close <= 0 {
			return fmt.Errorf("market: candle %d has non-positive close %f", i, s[i].Close)
		}
		if i > 0 && !s[i].Time.After(s[i-1].Time) {
			return fmt.Errorf("market: candle %d time %s not after previous %s",
				i, s[i].Time, s[i-1].Time)
		}
	}
	return nil
}

// Closes returns the close price series, oldest first.
func (s Series) Closes() []float64 {
	closes := make([]float64, len(s))
	for i := range s {
		closes[i] = s[i].Close
	}
	return closes
}

// Last returns the most recent candle. ok is false for an empty series.
func (s Series) Last() (Candle, bool) {
	if len(s) == 0 {
		return Candle{}, false
	}
	return s[len(s)-1], true
}

// Interval identifies the candle granularity requested by the dashboard.
type Interval string

const (
	Interval1m Interval = "1m"
	Interval5m Interval = "5m"
	Interval1h Interval = "1h"
	Interval1d Interval = "1d"
)

// ParseInterval validates a user-supplied interval string.
func ParseInterval(raw string) (Interval, error) {
	switch Interval(raw) {
	case Interval1m, Interval5m, Interval1h, Interval1d:
		return Interval(raw), nil
	}
	return "", fmt.Errorf("market: unsupported interval %q", raw)
}

// Duration returns the nominal length of one candle at this interval.
func (iv Interval) Duration() time.Duration {
	switch iv {
	case Interval1m:
		return time.Minute
	case Interval5m:
		return 5 * time.Minute
	case Interval1h:
		return time.Hour
	default:
		return 24 * time.Hour
	}
}

// SyntheticRows returns how many candles the synthetic generator emits
// for the interval.
func (iv Interval) SyntheticRows() int {
	switch iv {
	case Interval1d:
		return 365
	case Interval1h:
		return 1440
	case Interval5m:
		return 2016
	default:
		return 10080
	}
}

// LookbackRange maps the interval to the secondary provider's
// period keyword.
func (iv Interval) LookbackRange() string {
	switch iv {
	case Interval1m, Interval5m:
		return "7d"
	case Interval1h:
		return "60d"
	default:
		return "1y"
	}
}

// FetchResult bundles a series with the tier that produced it.
type FetchResult struct {
	Series Series `msgpack:"series"`
	Source string `msgpack:"source"` // tier name, e.g. "coingecko", "yahoo", "synthetic"
	Live   bool   `msgpack:"live"`   // true when any live provider tier supplied the data
}

// SourceSynthetic names the terminal fallback tier.
const SourceSynthetic = "synthetic"
