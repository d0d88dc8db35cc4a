package sentiment

import (
	"math/rand"
	"sync"
	"time"
)

// Label is the three-way sentiment classification.
type Label string

const (
	LabelBullish Label = "BULLISH"
	LabelNeutral Label = "NEUTRAL"
	LabelBearish Label = "BEARISH"
)

// Thresholds on the 0-100 score, both boundaries inclusive downward:
// >= 60 bullish, >= 40 neutral, otherwise bearish.
const (
	bullishThreshold = 60
	neutralThreshold = 40
)

// Result is one sentiment reading. Recomputed fresh on every call; the
// headline sample is random so consecutive readings differ.
type Result struct {
	Score     float64  `json:"score"` // 0-100
	Label     Label    `json:"label"`
	Headlines []string `json:"headlines"`
}

// headlinePool is the canned headline set the dashboard samples from.
// There is no real news feed behind it.
var headlinePool = []string{
	"Bitcoin rallies as institutional investors show strong interest",
	"Ethereum network upgrade improves transaction efficiency significantly",
	"Solana addresses scalability concerns with latest protocol update",
	"Cryptocurrency market shows signs of recovery and stability",
	"New regulatory framework could boost crypto adoption",
	"Market volatility raises concerns among traders",
	"Technical analysis indicates potential breakout patterns",
	"Experts remain optimistic about long-term crypto potential",
}

const (
	sampleMin = 3
	sampleMax = 5
)

// Scorer samples canned headlines and aggregates their polarity into a
// 0-100 sentiment score.
type Scorer struct {
	mu   sync.Mutex
	rng  *rand.Rand
	pool []string
}

// ScorerOption customises the scorer.
type ScorerOption func(*Scorer)

// WithRand injects a seeded random source for deterministic sampling.
func WithRand(rng *rand.Rand) ScorerOption {
	return func(s *Scorer) {
		if rng != nil {
			s.rng = rng
		}
	}
}

// WithPool overrides the headline pool.
func WithPool(pool []string) ScorerOption {
	return func(s *Scorer) {
		if len(pool) > 0 {
			s.pool = pool
		}
	}
}

// NewScorer constructs a sentiment scorer over the canned pool.
func NewScorer(opts ...ScorerOption) *Scorer {
	s := &Scorer{
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
		pool: headlinePool,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Score draws 3-5 headlines without replacement, averages their
// polarity, and rescales to 0-100. It never fails: an unusable pool
// degrades to a neutral reading.
func (s *Scorer) Score() Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.pool) == 0 {
		return neutralResult()
	}

	k := sampleMin + s.rng.Intn(sampleMax-sampleMin+1)
	if k > len(s.pool) {
		k = len(s.pool)
	}
	selected := s.sample(k)

	var sum float64
	for _, headline := range selected {
		sum += Polarity(headline)
	}
	avg := sum / float64(len(selected))
	score := (avg + 1) / 2 * 100

	return Result{
		Score:     score,
		Label:     Classify(score),
		Headlines: selected,
	}
}

// Classify maps a 0-100 score to its label.
func Classify(score float64) Label {
	switch {
	case score >= bullishThreshold:
		return LabelBullish
	case score >= neutralThreshold:
		return LabelNeutral
	default:
		return LabelBearish
	}
}

func (s *Scorer) sample(k int) []string {
	indexes := s.rng.Perm(len(s.pool))[:k]
	selected := make([]string, 0, k)
	for _, i := range indexes {
		selected = append(selected, s.pool[i])
	}
	return selected
}

func neutralResult() Result {
	return Result{Score: 50, Label: LabelNeutral, Headlines: []string{}}
}
