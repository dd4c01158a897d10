package redis

import (
	"context"
	"testing"

	"github.com/Ken123King/PariahAI/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestWalletStore(t *testing.T) *WalletStore {
	t.Helper()
	return NewWalletStore(setupTestClient(t))
}

func TestTrackUntrack(t *testing.T) {
	store := setupTestWalletStore(t)
	ctx := context.Background()

	require.NoError(t, store.Track(ctx, "wallet-a"))
	require.NoError(t, store.Track(ctx, "wallet-b"))
	require.NoError(t, store.Track(ctx, "wallet-a")) // idempotent

	tracked, err := store.Tracked(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"wallet-a", "wallet-b"}, tracked)

	require.NoError(t, store.Untrack(ctx, "wallet-a"))
	tracked, err = store.Tracked(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"wallet-b"}, tracked)
}

func TestWalletData_RoundTrip(t *testing.T) {
	store := setupTestWalletStore(t)
	ctx := context.Background()

	data, err := store.GetData(ctx, "unknown")
	require.NoError(t, err)
	assert.Nil(t, data)

	saved := domain.WalletData{Address: "wallet-a", Balance: 5.234, USDValue: 785.1, RiskScore: 65, IsTracked: true}
	require.NoError(t, store.SaveData(ctx, saved))

	data, err = store.GetData(ctx, "wallet-a")
	require.NoError(t, err)
	require.NotNil(t, data)
	assert.Equal(t, saved, *data)
}

func TestPushTransaction_CapEnforced(t *testing.T) {
	store := setupTestWalletStore(t)
	ctx := context.Background()

	for i := 0; i < 105; i++ {
		tx := domain.Transaction{Signature: "sig", Slot: int64(i), Status: "success"}
		require.NoError(t, store.PushTransaction(ctx, "wallet-a", tx))
	}

	txs, err := store.Transactions(ctx, "wallet-a", 200)
	require.NoError(t, err)
	require.Len(t, txs, 100)
	assert.Equal(t, int64(104), txs[0].Slot) // most recent first
}

func TestTokens_RoundTrip(t *testing.T) {
	store := setupTestWalletStore(t)
	ctx := context.Background()

	tokens, err := store.GetTokens(ctx, "wallet-a")
	require.NoError(t, err)
	assert.Empty(t, tokens)

	saved := []domain.TokenHolding{
		{Mint: "So111", Symbol: "SOL", Name: "Solana", Amount: 5.234, USDValue: 785.1, PriceChange24h: -2.3},
	}
	require.NoError(t, store.SaveTokens(ctx, "wallet-a", saved))

	tokens, err = store.GetTokens(ctx, "wallet-a")
	require.NoError(t, err)
	assert.Equal(t, saved, tokens)
}

func TestFeedStore_CapAndOrder(t *testing.T) {
	client := setupTestClient(t)
	feeds := NewFeedStore(client)
	ctx := context.Background()

	type note struct {
		N int `json:"n"`
	}
	for i := 0; i < 15; i++ {
		require.NoError(t, feeds.Push(ctx, AnomalyAlertsFeed, note{N: i}, AnomalyAlertsCap))
	}

	items, err := feeds.Recent(ctx, AnomalyAlertsFeed, 20)
	require.NoError(t, err)
	require.Len(t, items, AnomalyAlertsCap)
	assert.JSONEq(t, `{"n":14}`, items[0])
	assert.JSONEq(t, `{"n":5}`, items[9])
}
