package sentiment

import (
	"context"
	"math"

	"github.com/jonreiter/govader"
)

// LexiconEstimator scores text with a VADER-style polarity analyzer.
// The compound polarity in [-1,1] is remapped linearly onto [1,10];
// the rounded result is clamped so an analyzer that drifts slightly
// outside [-1,1] cannot escape the score range.
type LexiconEstimator struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewLexiconEstimator() *LexiconEstimator {
	return &LexiconEstimator{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

func (l *LexiconEstimator) Estimate(_ context.Context, text string) (int, error) {
	polarity := l.analyzer.PolarityScores(text).Compound
	return scoreFromPolarity(polarity), nil
}

func scoreFromPolarity(polarity float64) int {
	return Clamp(int(math.Round(((polarity+1)/2)*9 + 1)))
}
