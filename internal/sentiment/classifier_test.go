package sentiment

import (
	"testing"

	"github.com/Ken123King/PariahAI/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestClassify_Positive(t *testing.T) {
	assert.Equal(t, domain.SentimentPositive, Classify("SOL to the moon, massive pump incoming"))
}

func TestClassify_Negative(t *testing.T) {
	assert.Equal(t, domain.SentimentNegative, Classify("another rug, total scam, im out"))
}

func TestClassify_Neutral_NoKeywords(t *testing.T) {
	assert.Equal(t, domain.SentimentNeutral, Classify("the sky is blue"))
}

func TestClassify_Neutral_Tie(t *testing.T) {
	// one positive (moon) vs one negative (dump)
	assert.Equal(t, domain.SentimentNeutral, Classify("moon or dump, who knows"))
}

func TestClassify_CaseInsensitive(t *testing.T) {
	assert.Equal(t, domain.SentimentPositive, Classify("BULLISH! HUGE GAINS!"))
	assert.Equal(t, domain.SentimentNegative, Classify("CRASH AND BURN, WORST DAY"))
}

func TestClassify_RepeatedWordCountsOnce(t *testing.T) {
	// "dump" three times is still one negative match; "gain" and "profit" win
	assert.Equal(t, domain.SentimentPositive, Classify("dump dump dump but still gain and profit"))
}

func TestClassify_EmptyText(t *testing.T) {
	assert.Equal(t, domain.SentimentNeutral, Classify(""))
}

func TestClassify_SubstringMatch(t *testing.T) {
	// "up" matches inside "update" by design (containment, not word boundary)
	assert.Equal(t, domain.SentimentPositive, Classify("waiting for the update"))
}
