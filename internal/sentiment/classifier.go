// Package sentiment classifies free text into positive, negative, or neutral
// using fixed keyword lists.
package sentiment

import (
	"strings"

	"github.com/Ken123King/PariahAI/internal/domain"
	"github.com/Ken123King/PariahAI/internal/metrics"
)

// The word lists are part of the stored-data contract and must not change.
var (
	positiveWords = []string{"moon", "pump", "bullish", "gain", "profit", "up", "win", "good", "great", "best"}
	negativeWords = []string{"dump", "bearish", "crash", "loss", "down", "bad", "worst", "rug", "scam", "fail"}
)

// Classify returns the sentiment of text. Matching is case-insensitive
// substring containment; each keyword counts once no matter how often it
// appears. Ties, including no matches at all, are neutral.
func Classify(text string) domain.Sentiment {
	lower := strings.ToLower(text)

	positive := 0
	for _, word := range positiveWords {
		if strings.Contains(lower, word) {
			positive++
		}
	}
	negative := 0
	for _, word := range negativeWords {
		if strings.Contains(lower, word) {
			negative++
		}
	}

	result := domain.SentimentNeutral
	switch {
	case positive > negative:
		result = domain.SentimentPositive
	case negative > positive:
		result = domain.SentimentNegative
	}

	metrics.ClassifierResultsTotal.WithLabelValues(string(result)).Inc()
	return result
}
