package cache

import (
	"strings"
	"time"

	"coindash-api/pkg/market"
)

// Namespace is the cache key prefix for the coindash application.
const Namespace = "coindash"

// TTLClass represents a config-driven TTL bucket.
type TTLClass string

const (
	TTLShort  TTLClass = "short"
	TTLMedium TTLClass = "medium"
	TTLLong   TTLClass = "long"
)

// TTLSet normalises cache TTLs from config into time.Duration values.
type TTLSet struct {
	Short  time.Duration
	Medium time.Duration
	Long   time.Duration
}

// NewTTLSet converts TTL seconds into durations, substituting the
// defaults (10s / 60s / 300s) for zero values.
func NewTTLSet(short, medium, long int) TTLSet {
	return TTLSet{
		Short:  durationOrDefault(short, 10*time.Second),
		Medium: durationOrDefault(medium, time.Minute),
		Long:   durationOrDefault(long, 5*time.Minute),
	}
}

func durationOrDefault(seconds int, fallback time.Duration) time.Duration {
	if seconds < 0 {
		return 0
	}
	if seconds == 0 {
		return fallback
	}
	return time.Duration(seconds) * time.Second
}

// Duration returns the configured duration for the given TTL class.
func (t TTLSet) Duration(class TTLClass) time.Duration {
	switch class {
	case TTLShort:
		return t.Short
	case TTLMedium:
		return t.Medium
	case TTLLong:
		return t.Long
	default:
		return 0
	}
}

func formatKey(parts ...string) string {
	values := make([]string, 0, len(parts)+1)
	values = append(values, Namespace)
	for _, part := range parts {
		clean := strings.TrimSpace(part)
		if clean == "" {
			continue
		}
		values = append(values, clean)
	}
	return strings.Join(values, ":")
}

// SeriesKey addresses one cached fetch result per (symbol, interval).
func SeriesKey(symbol string, interval market.Interval) string {
	return formatKey("series", symbol, string(interval))
}

// SeriesKeyPattern matches every cached series key, for bulk
// invalidation.
func SeriesKeyPattern() string {
	return formatKey("series", "*")
}

// SeriesTTL returns the validity window for cached series. Candle data
// is refreshed at most every five minutes by default.
func SeriesTTL(ttl TTLSet) time.Duration {
	return ttl.Duration(TTLLong)
}
