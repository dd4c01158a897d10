// Package xpost posts composed messages to X. The transport is stubbed; the
// poster validates credentials and builds the final text, but does not call
// the network.
package xpost

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	apperrors "github.com/Ken123King/PariahAI/internal/errors"
	"github.com/jonboulle/clockwork"
)

// Poster composes and posts status updates to X.
type Poster struct {
	apiKey    string
	apiSecret string
	clock     clockwork.Clock
}

func NewPoster(apiKey, apiSecret string, clock clockwork.Clock) *Poster {
	return &Poster{apiKey: apiKey, apiSecret: apiSecret, clock: clock}
}

// Result is the outcome of a post attempt.
type Result struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Post appends the hashtags to the text and submits the status update.
// Returns the posted text and a generated post id.
func (p *Poster) Post(ctx context.Context, text string, hashtags []string) (Result, error) {
	if p.apiKey == "" || p.apiSecret == "" {
		return Result{}, apperrors.ExternalError("x api credentials not configured", nil)
	}

	composed := text
	if len(hashtags) > 0 {
		tags := make([]string, len(hashtags))
		for i, tag := range hashtags {
			tags[i] = "#" + strings.TrimPrefix(tag, "#")
		}
		composed = text + " " + strings.Join(tags, " ")
	}

	id := fmt.Sprintf("post-%d", p.clock.Now().UnixMilli())
	slog.Info("Posting to X", "id", id, "length", len(composed))
	return Result{ID: id, Text: composed}, nil
}
