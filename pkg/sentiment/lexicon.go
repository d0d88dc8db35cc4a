package sentiment

import "strings"

// polarityLexicon maps lowercase words to a valence in [-1, 1]. The
// entries are a small general-purpose polarity table in the style of
// pattern-based analyzers; it is intentionally generic and carries no
// asset-specific modelling.
var polarityLexicon = map[string]float64{
	"strong":      0.5,
	"strength":    0.4,
	"rally":       0.5,
	"rallies":     0.5,
	"boost":       0.6,
	"boosts":      0.6,
	"gain":        0.5,
	"gains":       0.5,
	"recovery":    0.4,
	"recover":     0.4,
	"stability":   0.3,
	"stable":      0.3,
	"improve":     0.5,
	"improves":    0.5,
	"improved":    0.5,
	"efficiency":  0.3,
	"significant": 0.3,
	"optimistic":  0.6,
	"optimism":    0.6,
	"positive":    0.5,
	"potential":   0.2,
	"interest":    0.2,
	"adoption":    0.3,
	"upgrade":     0.4,
	"breakout":    0.3,
	"success":     0.6,
	"successful":  0.6,

	"concern":    -0.4,
	"concerns":   -0.4,
	"volatile":   -0.4,
	"volatility": -0.4,
	"risk":       -0.4,
	"risks":      -0.4,
	"drop":       -0.5,
	"drops":      -0.5,
	"fall":       -0.5,
	"falls":      -0.5,
	"crash":      -0.8,
	"fear":       -0.6,
	"fears":      -0.6,
	"weak":       -0.5,
	"weakness":   -0.5,
	"loss":       -0.6,
	"losses":     -0.6,
	"negative":   -0.5,
	"decline":    -0.5,
	"declines":   -0.5,
	"uncertain":  -0.4,
}

// Polarity scores a piece of text in [-1, 1] by averaging the valences
// of lexicon words it contains. Text with no scored words is neutral.
func Polarity(text string) float64 {
	var sum float64
	var hits int
	for _, word := range strings.Fields(strings.ToLower(text)) {
		word = strings.Trim(word, ".,!?:;\"'()")
		if valence, ok := polarityLexicon[word]; ok {
			sum += valence
			hits++
		}
	}
	if hits == 0 {
		return 0
	}
	avg := sum / float64(hits)
	if avg > 1 {
		return 1
	}
	if avg < -1 {
		return -1
	}
	return avg
}
