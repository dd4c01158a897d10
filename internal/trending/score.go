// Package trending computes composite trending scores and volume anomalies.
package trending

import "fmt"

// Weight factors. Volume leads social mention velocity; the exact split is
// part of the stored-score contract and must not change.
const (
	volumeWeight   = 0.6
	mentionsWeight = 0.4
)

// Score computes the composite trending score from 24h volume and mentions
// change percentages. Each input is normalized onto [0,100] with 0% mapping
// to the midpoint 50 and ±50% saturating at the bounds. The result is in
// [0,100].
func Score(volumeChangePct, mentionsChangePct float64) float64 {
	normalizedVolume := clamp(volumeChangePct+50, 0, 100)
	normalizedMentions := clamp(mentionsChangePct+50, 0, 100)
	return normalizedVolume*volumeWeight + normalizedMentions*mentionsWeight
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// anomalyFactor flags a volume print this many times above the trailing mean.
const anomalyFactor = 3.0

// DetectAnomaly reports whether latest is anomalous against the trailing
// history (most-recent-first, excluding latest). Returns a human-readable
// detail when it is. History shorter than two points never flags.
func DetectAnomaly(history []float64, latest float64) (string, bool) {
	if len(history) < 2 {
		return "", false
	}

	var sum float64
	for _, v := range history {
		sum += v
	}
	mean := sum / float64(len(history))
	if mean <= 0 {
		return "", false
	}

	if latest > mean*anomalyFactor {
		return fmt.Sprintf("24h volume %.0f is %.1fx the trailing mean %.0f", latest, latest/mean, mean), true
	}
	return "", false
}
