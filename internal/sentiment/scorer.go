// Package sentiment scores free-form review text on a 1-10 scale.
//
// A Scorer holds one primary Estimator (remote model or lexicon
// analyzer, chosen by configuration) and always falls back to keyword
// counting when the primary strategy fails. Scoring never returns an
// error to the caller: every failure path degrades to a fallback score.
package sentiment

import (
	"context"
	"log/slog"
	"strings"
)

const (
	// NeutralScore is returned for blank input and tied keyword counts.
	NeutralScore = 5

	MinScore = 1
	MaxScore = 10
)

// Estimator is a single scoring strategy. Implementations return a
// score in [1,10] or an error; callers decide how to degrade.
type Estimator interface {
	Estimate(ctx context.Context, text string) (int, error)
}

// Scorer scores review text using a primary strategy with a keyword
// fallback. It is stateless and safe for concurrent use.
type Scorer struct {
	primary  Estimator // may be nil, then only the fallback runs
	fallback KeywordEstimator
	logger   *slog.Logger
}

func NewScorer(primary Estimator, logger *slog.Logger) *Scorer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scorer{primary: primary, logger: logger}
}

// Score returns a sentiment score in [1,10] for the given text.
// Blank input scores neutral without touching any strategy.
func (s *Scorer) Score(ctx context.Context, text string) int {
	if strings.TrimSpace(text) == "" {
		return NeutralScore
	}

	if s.primary != nil {
		score, err := s.primary.Estimate(ctx, text)
		if err == nil {
			return Clamp(score)
		}
		s.logger.Warn("sentiment estimate failed, using keyword fallback", "error", err)
	}

	score, _ := s.fallback.Estimate(ctx, text) // never errors
	return Clamp(score)
}

// Label maps a 1-10 score to its 5-tier label. The thresholds are
// intentionally asymmetric: Neutral spans 4-6.
func Label(score int) string {
	switch {
	case score >= 9:
		return "Very Positive"
	case score >= 7:
		return "Positive"
	case score >= 4:
		return "Neutral"
	case score >= 2:
		return "Negative"
	default:
		return "Very Negative"
	}
}

// Clamp bounds a score to [1,10].
func Clamp(score int) int {
	if score < MinScore {
		return MinScore
	}
	if score > MaxScore {
		return MaxScore
	}
	return score
}
