package redis

import (
	"context"
	"testing"

	"github.com/Ken123King/PariahAI/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRankedStore(t *testing.T) *RankedStore {
	t.Helper()
	return NewRankedStore(setupTestClient(t))
}

func TestIncrRank_AccumulatesAcrossCalls(t *testing.T) {
	store := setupTestRankedStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, store.IncrRank(ctx, domain.DomainHashtags, "solanarugpull", 1))
	}
	require.NoError(t, store.IncrRank(ctx, domain.DomainHashtags, "solanarugpull", 1))

	top, err := store.TopRanked(ctx, domain.DomainHashtags, 10)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, "solanarugpull", top[0].Member)
	assert.Equal(t, 4.0, top[0].Score)
}

func TestSetRank_Overwrites(t *testing.T) {
	store := setupTestRankedStore(t)
	ctx := context.Background()

	require.NoError(t, store.SetRank(ctx, domain.DomainCoins, "SOL", 85))
	require.NoError(t, store.SetRank(ctx, domain.DomainCoins, "SOL", 42))

	top, err := store.TopRanked(ctx, domain.DomainCoins, 1)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, 42.0, top[0].Score)
}

func TestTopRanked_DescendingAndLimited(t *testing.T) {
	store := setupTestRankedStore(t)
	ctx := context.Background()

	require.NoError(t, store.SetRank(ctx, domain.DomainCoins, "SOL", 58))
	require.NoError(t, store.SetRank(ctx, domain.DomainCoins, "BONK", 92))
	require.NoError(t, store.SetRank(ctx, domain.DomainCoins, "MDOGE", 12))

	top, err := store.TopRanked(ctx, domain.DomainCoins, 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "BONK", top[0].Member)
	assert.Equal(t, "SOL", top[1].Member)
}

func TestSnapshot_RoundTripAndMiss(t *testing.T) {
	store := setupTestRankedStore(t)
	ctx := context.Background()

	coin := domain.Coin{Symbol: "SOL", Name: "Solana", Price: 150, Score: 58.04}
	require.NoError(t, store.WriteSnapshot(ctx, domain.DomainCoins, "SOL", coin))

	var got domain.Coin
	found, err := store.ReadSnapshot(ctx, domain.DomainCoins, "SOL", &got)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, coin, got)

	found, err = store.ReadSnapshot(ctx, domain.DomainCoins, "NOPE", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSnapshot_UnsupportedDomain(t *testing.T) {
	store := setupTestRankedStore(t)
	ctx := context.Background()

	err := store.WriteSnapshot(ctx, domain.DomainHashtags, "x", struct{}{})
	require.Error(t, err)

	_, err = store.ReadSnapshot(ctx, domain.DomainHashtags, "x", &struct{}{})
	require.Error(t, err)
}

func TestPushHistory_CapEnforced(t *testing.T) {
	store := setupTestRankedStore(t)
	ctx := context.Background()

	for i := 1; i <= 20; i++ {
		require.NoError(t, store.PushHistory(ctx, domain.DomainCoins, "SOL", MetricVolume, float64(i), 14))
	}

	history, err := store.ReadHistory(ctx, domain.DomainCoins, "SOL", MetricVolume, 14)
	require.NoError(t, err)
	require.Len(t, history, 14)
	assert.Equal(t, 20.0, history[0])
	assert.Equal(t, 7.0, history[13])
}

func TestReadHistory_SkipsMalformedEntries(t *testing.T) {
	client := setupTestClient(t)
	store := NewRankedStore(client)
	ctx := context.Background()

	require.NoError(t, store.PushHistory(ctx, domain.DomainCoins, "SOL", MetricMentions, 5600, 7))
	require.NoError(t, client.LPush(ctx, coinMentionsPrefix+"SOL", "not-a-number").Err())

	history, err := store.ReadHistory(ctx, domain.DomainCoins, "SOL", MetricMentions, 7)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, 5600.0, history[0])
}

func TestHistory_UnknownMetric(t *testing.T) {
	store := setupTestRankedStore(t)
	ctx := context.Background()

	err := store.PushHistory(ctx, domain.DomainTopics, "Solana Crash", MetricVolume, 1, 14)
	require.Error(t, err)
}
