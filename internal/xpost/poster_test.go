package xpost

import (
	"context"
	"testing"
	"time"

	apperrors "github.com/Ken123King/PariahAI/internal/errors"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPoster(apiKey, apiSecret string) *Poster {
	clock := clockwork.NewFakeClockAt(time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC))
	return NewPoster(apiKey, apiSecret, clock)
}

func TestPost_AppendsHashtags(t *testing.T) {
	poster := newTestPoster("key", "secret")

	result, err := poster.Post(context.Background(), "SOL is trending", []string{"solana", "#defi"})
	require.NoError(t, err)
	assert.Equal(t, "SOL is trending #solana #defi", result.Text)
	assert.NotEmpty(t, result.ID)
}

func TestPost_NoHashtags(t *testing.T) {
	poster := newTestPoster("key", "secret")

	result, err := poster.Post(context.Background(), "gm", nil)
	require.NoError(t, err)
	assert.Equal(t, "gm", result.Text)
}

func TestPost_MissingCredentials(t *testing.T) {
	poster := newTestPoster("", "")

	_, err := poster.Post(context.Background(), "gm", nil)
	require.Error(t, err)

	structured := apperrors.AsStructuredError(err)
	assert.Equal(t, apperrors.TypeExternal, structured.Type)
}
