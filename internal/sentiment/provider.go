package sentiment

import (
	"log/slog"

	"moviezone/internal/config"
)

// NewScorerFromConfig builds a Scorer with the primary strategy named
// by SENTIMENT_PROVIDER. "none" leaves only the keyword fallback.
func NewScorerFromConfig(cfg *config.Config, logger *slog.Logger) *Scorer {
	var primary Estimator
	switch cfg.SentimentProvider {
	case "gemini":
		primary = NewGeminiEstimator(cfg.GeminiAPIURL, cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiTimeout)
	case "lexicon":
		primary = NewLexiconEstimator()
	}
	return NewScorer(primary, logger)
}
