package sentiment

import (
	"context"
	"strings"
)

var positiveWords = []string{
	"excellent", "amazing", "great", "wonderful", "fantastic",
	"love", "loved", "perfect", "best", "brilliant", "outstanding",
	"masterpiece", "incredible", "superb", "awesome",
}

var negativeWords = []string{
	"terrible", "awful", "horrible", "worst", "bad", "poor",
	"disappointing", "waste", "boring", "dull", "hate", "hated",
}

// KeywordEstimator is the last-resort strategy: it counts occurrences
// of fixed positive and negative word sets. Positive majority scores
// 7 + min(count, 3), negative majority scores 4 - min(count, 3), a tie
// scores neutral. It never returns an error.
type KeywordEstimator struct{}

func (KeywordEstimator) Estimate(_ context.Context, text string) (int, error) {
	lower := strings.ToLower(text)

	var positive, negative int
	for _, w := range positiveWords {
		if strings.Contains(lower, w) {
			positive++
		}
	}
	for _, w := range negativeWords {
		if strings.Contains(lower, w) {
			negative++
		}
	}

	switch {
	case positive > negative:
		return 7 + min(positive, 3), nil // 7-10
	case negative > positive:
		return 4 - min(negative, 3), nil // 1-4
	default:
		return NeutralScore, nil
	}
}
