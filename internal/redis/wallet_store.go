package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Ken123King/PariahAI/internal/domain"
	goredis "github.com/redis/go-redis/v9"
)

const (
	trackedWalletsKey = "tracked:wallets"

	walletDataPrefix   = "wallet:data:"
	walletTxsPrefix    = "wallet:txs:"
	walletTokensPrefix = "wallet:tokens:"

	walletTxsCap = 100
)

// WalletStore holds the tracked-wallet set and per-wallet state.
type WalletStore struct {
	rdb *goredis.Client
}

func NewWalletStore(rdb *goredis.Client) *WalletStore {
	return &WalletStore{rdb: rdb}
}

// Track adds the address to the tracked set.
func (s *WalletStore) Track(ctx context.Context, address string) error {
	if err := s.rdb.SAdd(ctx, trackedWalletsKey, address).Err(); err != nil {
		return fmt.Errorf("failed to track wallet %s: %w", address, err)
	}
	return nil
}

// Untrack removes the address from the tracked set.
func (s *WalletStore) Untrack(ctx context.Context, address string) error {
	if err := s.rdb.SRem(ctx, trackedWalletsKey, address).Err(); err != nil {
		return fmt.Errorf("failed to untrack wallet %s: %w", address, err)
	}
	return nil
}

// Tracked returns all tracked wallet addresses.
func (s *WalletStore) Tracked(ctx context.Context) ([]string, error) {
	addrs, err := s.rdb.SMembers(ctx, trackedWalletsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list tracked wallets: %w", err)
	}
	return addrs, nil
}

// SaveData fully replaces the wallet's data record.
func (s *WalletStore) SaveData(ctx context.Context, data domain.WalletData) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal wallet data for %s: %w", data.Address, err)
	}
	if err := s.rdb.Set(ctx, walletDataPrefix+data.Address, payload, 0).Err(); err != nil {
		return fmt.Errorf("failed to save wallet data for %s: %w", data.Address, err)
	}
	return nil
}

// GetData returns the wallet's data record, or nil when none is stored.
func (s *WalletStore) GetData(ctx context.Context, address string) (*domain.WalletData, error) {
	raw, err := s.rdb.Get(ctx, walletDataPrefix+address).Result()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get wallet data for %s: %w", address, err)
	}

	var data domain.WalletData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil, fmt.Errorf("malformed wallet data for %s: %w", address, err)
	}
	return &data, nil
}

// PushTransaction prepends tx to the wallet's transaction history (capped).
func (s *WalletStore) PushTransaction(ctx context.Context, address string, tx domain.Transaction) error {
	payload, err := json.Marshal(tx)
	if err != nil {
		return fmt.Errorf("failed to marshal transaction for %s: %w", address, err)
	}

	key := walletTxsPrefix + address
	_, err = s.rdb.Pipelined(ctx, func(p goredis.Pipeliner) error {
		p.LPush(ctx, key, payload)
		p.LTrim(ctx, key, 0, walletTxsCap-1)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to push transaction for %s: %w", address, err)
	}
	return nil
}

// Transactions returns up to limit most-recent transactions.
// Malformed entries are skipped.
func (s *WalletStore) Transactions(ctx context.Context, address string, limit int64) ([]domain.Transaction, error) {
	raw, err := s.rdb.LRange(ctx, walletTxsPrefix+address, 0, limit-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read transactions for %s: %w", address, err)
	}

	txs := make([]domain.Transaction, 0, len(raw))
	for _, item := range raw {
		var tx domain.Transaction
		if err := json.Unmarshal([]byte(item), &tx); err != nil {
			continue
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

// SaveTokens fully replaces the wallet's token holdings.
func (s *WalletStore) SaveTokens(ctx context.Context, address string, tokens []domain.TokenHolding) error {
	payload, err := json.Marshal(tokens)
	if err != nil {
		return fmt.Errorf("failed to marshal tokens for %s: %w", address, err)
	}
	if err := s.rdb.Set(ctx, walletTokensPrefix+address, payload, 0).Err(); err != nil {
		return fmt.Errorf("failed to save tokens for %s: %w", address, err)
	}
	return nil
}

// GetTokens returns the wallet's token holdings, empty when none stored.
func (s *WalletStore) GetTokens(ctx context.Context, address string) ([]domain.TokenHolding, error) {
	raw, err := s.rdb.Get(ctx, walletTokensPrefix+address).Result()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get tokens for %s: %w", address, err)
	}

	var tokens []domain.TokenHolding
	if err := json.Unmarshal([]byte(raw), &tokens); err != nil {
		return nil, fmt.Errorf("malformed token holdings for %s: %w", address, err)
	}
	return tokens, nil
}
