package sentiment

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScoreRangeAndSampleSize(t *testing.T) {
	scorer := NewScorer(WithRand(rand.New(rand.NewSource(1))))

	for i := 0; i < 50; i++ {
		result := scorer.Score()
		require.GreaterOrEqual(t, result.Score, 0.0)
		require.LessOrEqual(t, result.Score, 100.0)
		require.GreaterOrEqual(t, len(result.Headlines), 3)
		require.LessOrEqual(t, len(result.Headlines), 5)
		require.Equal(t, Classify(result.Score), result.Label)
	}
}

func TestScoreSamplesWithoutReplacement(t *testing.T) {
	scorer := NewScorer(WithRand(rand.New(rand.NewSource(2))))
	result := scorer.Score()

	seen := make(map[string]bool, len(result.Headlines))
	for _, headline := range result.Headlines {
		require.False(t, seen[headline], "headline sampled twice: %s", headline)
		seen[headline] = true
	}
}

func TestClassifyThresholds(t *testing.T) {
	tests := []struct {
		score float64
		label Label
	}{
		{100, LabelBullish},
		{60, LabelBullish}, // boundary inclusive
		{59.999, LabelNeutral},
		{40, LabelNeutral}, // boundary inclusive
		{39.999, LabelBearish},
		{0, LabelBearish},
	}
	for _, tc := range tests {
		require.Equal(t, tc.label, Classify(tc.score), "score %f", tc.score)
	}
}

func TestScoreEmptyPoolFallsBackNeutral(t *testing.T) {
	scorer := NewScorer(WithRand(rand.New(rand.NewSource(3))))
	scorer.pool = nil

	result := scorer.Score()
	require.InDelta(t, 50.0, result.Score, 1e-9)
	require.Equal(t, LabelNeutral, result.Label)
	require.Empty(t, result.Headlines)
}

func TestScoreSmallPoolClampsSample(t *testing.T) {
	scorer := NewScorer(
		WithRand(rand.New(rand.NewSource(4))),
		WithPool([]string{"markets rally on strong gains", "crash fears deepen losses"}),
	)
	result := scorer.Score()
	require.Len(t, result.Headlines, 2)
}

func TestPolarity(t *testing.T) {
	require.Greater(t, Polarity("Bitcoin rallies as institutional investors show strong interest"), 0.0)
	require.Less(t, Polarity("Market volatility raises concerns among traders"), 0.0)
	require.Zero(t, Polarity("the quick brown fox"))
	require.Zero(t, Polarity(""))
}

func TestPolarityBounds(t *testing.T) {
	for _, headline := range headlinePool {
		p := Polarity(headline)
		require.GreaterOrEqual(t, p, -1.0)
		require.LessOrEqual(t, p, 1.0)
	}
}
