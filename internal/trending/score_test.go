package trending

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore_ZeroChangeIsMidpoint(t *testing.T) {
	assert.Equal(t, 50.0, Score(0, 0))
}

func TestScore_KnownValue(t *testing.T) {
	// clamp(55.2)*0.6 + clamp(62.3)*0.4 = 33.12 + 24.92 = 58.04
	assert.InDelta(t, 58.04, Score(5.2, 12.3), 1e-9)
}

func TestScore_SaturatesHigh(t *testing.T) {
	assert.Equal(t, 100.0, Score(50, 50))
	assert.Equal(t, 100.0, Score(500, 9999))
}

func TestScore_SaturatesLow(t *testing.T) {
	assert.Equal(t, 0.0, Score(-50, -50))
	assert.Equal(t, 0.0, Score(-120, -99))
}

func TestScore_MonotoneWithinBounds(t *testing.T) {
	prev := Score(-50, 0)
	for v := -49.0; v <= 50; v++ {
		cur := Score(v, 0)
		assert.GreaterOrEqual(t, cur, prev)
		prev = cur
	}

	prev = Score(0, -50)
	for m := -49.0; m <= 50; m++ {
		cur := Score(0, m)
		assert.GreaterOrEqual(t, cur, prev)
		prev = cur
	}
}

func TestScore_VolumeWeighedHeavier(t *testing.T) {
	assert.Greater(t, Score(20, 0), Score(0, 20))
}

func TestDetectAnomaly_FlagsSpike(t *testing.T) {
	detail, ok := DetectAnomaly([]float64{100, 110, 90}, 500)
	assert.True(t, ok)
	assert.Contains(t, detail, "24h volume")
}

func TestDetectAnomaly_NormalVolume(t *testing.T) {
	_, ok := DetectAnomaly([]float64{100, 110, 90}, 150)
	assert.False(t, ok)
}

func TestDetectAnomaly_ShortHistory(t *testing.T) {
	_, ok := DetectAnomaly([]float64{100}, 10000)
	assert.False(t, ok)

	_, ok = DetectAnomaly(nil, 10000)
	assert.False(t, ok)
}

func TestDetectAnomaly_ZeroMean(t *testing.T) {
	_, ok := DetectAnomaly([]float64{0, 0, 0}, 100)
	assert.False(t, ok)
}
