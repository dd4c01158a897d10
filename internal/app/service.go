// Package app orchestrates the ranked stores, the score engine, and the
// feeds behind the four ranked domains (hashtags, mentions, topics, coins)
// and the wallet tracker.
package app

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Ken123King/PariahAI/internal/domain"
	"github.com/Ken123King/PariahAI/internal/metrics"
	"github.com/Ken123King/PariahAI/internal/redis"
	"github.com/Ken123King/PariahAI/internal/trending"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

// History caps. Part of the stored-data contract.
const (
	volumeHistoryCap   = 14
	mentionsHistoryCap = 7
)

// RankedStore is the subset of ranked-collection operations the facade needs.
type RankedStore interface {
	IncrRank(ctx context.Context, d domain.RankedDomain, member string, delta float64) error
	SetRank(ctx context.Context, d domain.RankedDomain, member string, score float64) error
	WriteSnapshot(ctx context.Context, d domain.RankedDomain, member string, record any) error
	ReadSnapshot(ctx context.Context, d domain.RankedDomain, member string, out any) (bool, error)
	TopRanked(ctx context.Context, d domain.RankedDomain, limit int64) ([]domain.RankedEntry, error)
	PushHistory(ctx context.Context, d domain.RankedDomain, member, metric string, value float64, cap int64) error
	ReadHistory(ctx context.Context, d domain.RankedDomain, member, metric string, cap int64) ([]float64, error)
}

// FeedStore is the capped-list feed interface.
type FeedStore interface {
	Push(ctx context.Context, feed string, record any, cap int64) error
	Recent(ctx context.Context, feed string, limit int64) ([]string, error)
}

// WalletStore is the wallet-tracking interface.
type WalletStore interface {
	Track(ctx context.Context, address string) error
	Untrack(ctx context.Context, address string) error
	Tracked(ctx context.Context) ([]string, error)
	SaveData(ctx context.Context, data domain.WalletData) error
	GetData(ctx context.Context, address string) (*domain.WalletData, error)
	PushTransaction(ctx context.Context, address string, tx domain.Transaction) error
	Transactions(ctx context.Context, address string, limit int64) ([]domain.Transaction, error)
	SaveTokens(ctx context.Context, address string, tokens []domain.TokenHolding) error
	GetTokens(ctx context.Context, address string) ([]domain.TokenHolding, error)
}

// Service is the aggregation facade. Read paths absorb backend failures and
// degrade to empty results; write paths surface them to the caller.
type Service struct {
	ranked  RankedStore
	feeds   FeedStore
	wallets WalletStore
	clock   clockwork.Clock
}

func NewService(ranked RankedStore, feeds FeedStore, wallets WalletStore, clock clockwork.Clock) *Service {
	return &Service{
		ranked:  ranked,
		feeds:   feeds,
		wallets: wallets,
		clock:   clock,
	}
}

// --- Tweets ---

// IngestTweet stores the tweet on the recent feed and counts its hashtags
// and mentions. Sentiment is not derived here; tweet ingestion and topic
// aggregation are independent write paths.
func (s *Service) IngestTweet(ctx context.Context, tweet domain.Tweet) (domain.Tweet, error) {
	if tweet.ID == "" {
		tweet.ID = uuid.NewString()
	}
	if tweet.Timestamp.IsZero() {
		tweet.Timestamp = s.clock.Now().UTC()
	}

	if err := s.feeds.Push(ctx, redis.RecentTweetsFeed, tweet, redis.RecentTweetsCap); err != nil {
		return domain.Tweet{}, fmt.Errorf("failed to store tweet: %w", err)
	}

	for _, hashtag := range tweet.Hashtags {
		if err := s.RecordOccurrence(ctx, domain.DomainHashtags, hashtag); err != nil {
			return domain.Tweet{}, err
		}
	}
	for _, mention := range tweet.Mentions {
		if err := s.RecordOccurrence(ctx, domain.DomainMentions, mention); err != nil {
			return domain.Tweet{}, err
		}
	}

	metrics.TweetsIngestedTotal.Inc()
	return tweet, nil
}

// RecordOccurrence adds one occurrence of name (lower-cased) to the domain's
// ranking. Counting is cumulative by design: repeated calls keep increasing
// the score.
func (s *Service) RecordOccurrence(ctx context.Context, d domain.RankedDomain, name string) error {
	member := strings.ToLower(name)
	if err := s.ranked.IncrRank(ctx, d, member, 1); err != nil {
		return fmt.Errorf("failed to record occurrence of %s/%s: %w", d, member, err)
	}
	metrics.OccurrencesRecordedTotal.WithLabelValues(string(d)).Inc()
	return nil
}

// RecentTweets returns up to limit most-recent tweets, empty on failure.
func (s *Service) RecentTweets(ctx context.Context, limit int64) []domain.Tweet {
	items, err := s.feeds.Recent(ctx, redis.RecentTweetsFeed, limit)
	if err != nil {
		s.degradeRead("recent_tweets", err)
		return []domain.Tweet{}
	}
	return decodeFeed[domain.Tweet](items)
}

// TopHashtags returns the highest-counted hashtags, empty on failure.
func (s *Service) TopHashtags(ctx context.Context, limit int64) []domain.RankedEntry {
	return s.topOccurrences(ctx, domain.DomainHashtags, limit)
}

// TopMentions returns the highest-counted mentions, empty on failure.
func (s *Service) TopMentions(ctx context.Context, limit int64) []domain.RankedEntry {
	return s.topOccurrences(ctx, domain.DomainMentions, limit)
}

func (s *Service) topOccurrences(ctx context.Context, d domain.RankedDomain, limit int64) []domain.RankedEntry {
	entries, err := s.ranked.TopRanked(ctx, d, limit)
	if err != nil {
		s.degradeRead("top_"+string(d), err)
		return []domain.RankedEntry{}
	}
	return entries
}

// --- Topics ---

// UpsertTopic replaces the topic's snapshot and re-ranks it by tweet count.
func (s *Service) UpsertTopic(ctx context.Context, topic string, tweetCount int64, change24h float64, sentiment domain.Sentiment) (domain.Topic, error) {
	record := domain.Topic{
		Topic:       topic,
		TweetCount:  tweetCount,
		Change24h:   change24h,
		Sentiment:   sentiment,
		LastUpdated: s.clock.Now().UTC(),
	}

	if err := s.ranked.WriteSnapshot(ctx, domain.DomainTopics, topic, record); err != nil {
		metrics.TrendingUpdatesTotal.WithLabelValues(string(domain.DomainTopics), "error").Inc()
		return domain.Topic{}, fmt.Errorf("failed to upsert topic %s: %w", topic, err)
	}
	if err := s.ranked.SetRank(ctx, domain.DomainTopics, topic, float64(tweetCount)); err != nil {
		metrics.TrendingUpdatesTotal.WithLabelValues(string(domain.DomainTopics), "error").Inc()
		return domain.Topic{}, fmt.Errorf("failed to rank topic %s: %w", topic, err)
	}

	metrics.TrendingUpdatesTotal.WithLabelValues(string(domain.DomainTopics), "success").Inc()
	return record, nil
}

// TrendingTopics returns snapshots of the top-ranked topics, empty on
// failure. Members whose snapshot cannot be read are excluded.
func (s *Service) TrendingTopics(ctx context.Context, limit int64) []domain.Topic {
	return topSnapshots[domain.Topic](ctx, s, domain.DomainTopics, limit)
}

// --- Coins ---

// UpsertCoin computes the coin's trending score, replaces its snapshot,
// extends both history series, and re-ranks it. Returns the stored record.
func (s *Service) UpsertCoin(ctx context.Context, coin domain.Coin) (domain.Coin, error) {
	// Read the trailing volume history before pushing the new print, so the
	// anomaly check compares against the past only. Best effort: a failed
	// read just disables the check for this update.
	prior, err := s.ranked.ReadHistory(ctx, domain.DomainCoins, coin.Symbol, redis.MetricVolume, volumeHistoryCap)
	if err != nil {
		s.degradeRead("coin_volume_history", err)
		prior = nil
	}

	coin.Score = trending.Score(coin.VolumeChange24h, coin.MentionsChange24h)
	coin.LastUpdated = s.clock.Now().UTC()

	if err := s.ranked.WriteSnapshot(ctx, domain.DomainCoins, coin.Symbol, coin); err != nil {
		metrics.TrendingUpdatesTotal.WithLabelValues(string(domain.DomainCoins), "error").Inc()
		return domain.Coin{}, fmt.Errorf("failed to upsert coin %s: %w", coin.Symbol, err)
	}
	if err := s.ranked.PushHistory(ctx, domain.DomainCoins, coin.Symbol, redis.MetricVolume, coin.Volume24h, volumeHistoryCap); err != nil {
		metrics.TrendingUpdatesTotal.WithLabelValues(string(domain.DomainCoins), "error").Inc()
		return domain.Coin{}, fmt.Errorf("failed to push volume history for %s: %w", coin.Symbol, err)
	}
	if err := s.ranked.PushHistory(ctx, domain.DomainCoins, coin.Symbol, redis.MetricMentions, coin.Mentions24h, mentionsHistoryCap); err != nil {
		metrics.TrendingUpdatesTotal.WithLabelValues(string(domain.DomainCoins), "error").Inc()
		return domain.Coin{}, fmt.Errorf("failed to push mentions history for %s: %w", coin.Symbol, err)
	}
	if err := s.ranked.SetRank(ctx, domain.DomainCoins, coin.Symbol, coin.Score); err != nil {
		metrics.TrendingUpdatesTotal.WithLabelValues(string(domain.DomainCoins), "error").Inc()
		return domain.Coin{}, fmt.Errorf("failed to rank coin %s: %w", coin.Symbol, err)
	}

	if detail, ok := trending.DetectAnomaly(prior, coin.Volume24h); ok {
		anomaly := domain.Anomaly{
			Symbol:     coin.Symbol,
			Kind:       "volume_spike",
			Detail:     detail,
			DetectedAt: coin.LastUpdated,
		}
		// Alerts are best effort; losing one must not fail the update.
		if err := s.feeds.Push(ctx, redis.AnomalyAlertsFeed, anomaly, redis.AnomalyAlertsCap); err != nil {
			slog.Warn("Failed to push anomaly alert", "symbol", coin.Symbol, "error", err)
		} else {
			metrics.AnomaliesDetectedTotal.Inc()
		}
	}

	metrics.TrendingUpdatesTotal.WithLabelValues(string(domain.DomainCoins), "success").Inc()
	return coin, nil
}

// TopCoins returns snapshots of the top-ranked coins, empty on failure.
func (s *Service) TopCoins(ctx context.Context, limit int64) []domain.Coin {
	return topSnapshots[domain.Coin](ctx, s, domain.DomainCoins, limit)
}

// CoinVolumeHistory returns the coin's volume series, most-recent first.
func (s *Service) CoinVolumeHistory(ctx context.Context, symbol string) []float64 {
	history, err := s.ranked.ReadHistory(ctx, domain.DomainCoins, symbol, redis.MetricVolume, volumeHistoryCap)
	if err != nil {
		s.degradeRead("coin_volume_history", err)
		return []float64{}
	}
	return history
}

// CoinMentionsHistory returns the coin's mentions series, most-recent first.
func (s *Service) CoinMentionsHistory(ctx context.Context, symbol string) []float64 {
	history, err := s.ranked.ReadHistory(ctx, domain.DomainCoins, symbol, redis.MetricMentions, mentionsHistoryCap)
	if err != nil {
		s.degradeRead("coin_mentions_history", err)
		return []float64{}
	}
	return history
}

// Anomalies returns the most recent volume alerts, empty on failure.
func (s *Service) Anomalies(ctx context.Context, limit int64) []domain.Anomaly {
	items, err := s.feeds.Recent(ctx, redis.AnomalyAlertsFeed, limit)
	if err != nil {
		s.degradeRead("anomalies", err)
		return []domain.Anomaly{}
	}
	return decodeFeed[domain.Anomaly](items)
}

// --- Wallets ---

// TrackWallet adds the address to the tracked set and flips the tracked flag
// on any existing wallet data.
func (s *Service) TrackWallet(ctx context.Context, address string) error {
	if err := s.wallets.Track(ctx, address); err != nil {
		return err
	}
	return s.setTrackedFlag(ctx, address, true)
}

// UntrackWallet removes the address from the tracked set and clears the flag.
func (s *Service) UntrackWallet(ctx context.Context, address string) error {
	if err := s.wallets.Untrack(ctx, address); err != nil {
		return err
	}
	return s.setTrackedFlag(ctx, address, false)
}

func (s *Service) setTrackedFlag(ctx context.Context, address string, tracked bool) error {
	data, err := s.wallets.GetData(ctx, address)
	if err != nil {
		// Membership change already succeeded; the flag catches up on the
		// next data refresh.
		slog.Warn("Failed to load wallet data for tracked flag update", "address", address, "error", err)
		return nil
	}
	if data == nil {
		return nil
	}
	data.IsTracked = tracked
	return s.UpdateWalletData(ctx, *data)
}

// TrackedWallets returns all tracked addresses, empty on failure.
func (s *Service) TrackedWallets(ctx context.Context) []string {
	addrs, err := s.wallets.Tracked(ctx)
	if err != nil {
		s.degradeRead("tracked_wallets", err)
		return []string{}
	}
	return addrs
}

// UpdateWalletData stamps and stores the wallet's data record.
func (s *Service) UpdateWalletData(ctx context.Context, data domain.WalletData) error {
	data.LastUpdated = s.clock.Now().UTC()
	return s.wallets.SaveData(ctx, data)
}

// AddWalletTransaction prepends the transaction to the wallet's history and
// refreshes the wallet's last-active time.
func (s *Service) AddWalletTransaction(ctx context.Context, address string, tx domain.Transaction) error {
	if err := s.wallets.PushTransaction(ctx, address, tx); err != nil {
		return err
	}

	data, err := s.wallets.GetData(ctx, address)
	if err != nil {
		slog.Warn("Failed to load wallet data for last-active update", "address", address, "error", err)
		return nil
	}
	if data == nil {
		return nil
	}
	data.LastActive = time.Unix(tx.BlockTime, 0).UTC()
	return s.UpdateWalletData(ctx, *data)
}

// UpdateWalletTokens fully replaces the wallet's token holdings.
func (s *Service) UpdateWalletTokens(ctx context.Context, address string, tokens []domain.TokenHolding) error {
	return s.wallets.SaveTokens(ctx, address, tokens)
}

// WalletOverview returns the wallet's data, transactions, and tokens.
// Each read degrades independently; data is nil when none is stored.
func (s *Service) WalletOverview(ctx context.Context, address string, txLimit int64) (*domain.WalletData, []domain.Transaction, []domain.TokenHolding) {
	data, err := s.wallets.GetData(ctx, address)
	if err != nil {
		s.degradeRead("wallet_data", err)
		data = nil
	}

	txs, err := s.wallets.Transactions(ctx, address, txLimit)
	if err != nil {
		s.degradeRead("wallet_transactions", err)
		txs = []domain.Transaction{}
	}

	tokens, err := s.wallets.GetTokens(ctx, address)
	if err != nil {
		s.degradeRead("wallet_tokens", err)
		tokens = nil
	}
	if tokens == nil {
		tokens = []domain.TokenHolding{}
	}

	return data, txs, tokens
}

// FallenWallets returns the memorial feed, empty on failure.
func (s *Service) FallenWallets(ctx context.Context, limit int64) []domain.FallenWallet {
	items, err := s.feeds.Recent(ctx, redis.FallenWalletsFeed, limit)
	if err != nil {
		s.degradeRead("fallen_wallets", err)
		return []domain.FallenWallet{}
	}
	return decodeFeed[domain.FallenWallet](items)
}

// --- helpers ---

func (s *Service) degradeRead(operation string, err error) {
	slog.Error("Read degraded to empty result", "operation", operation, "error", err)
	metrics.DegradedReadsTotal.WithLabelValues(operation).Inc()
}

// topSnapshots joins the top-ranked members of a domain with their
// snapshots. Members whose snapshot is missing or unreadable are excluded
// rather than failing the whole query.
func topSnapshots[T any](ctx context.Context, s *Service, d domain.RankedDomain, limit int64) []T {
	entries, err := s.ranked.TopRanked(ctx, d, limit)
	if err != nil {
		s.degradeRead("top_"+string(d), err)
		return []T{}
	}

	records := make([]T, 0, len(entries))
	for _, entry := range entries {
		var record T
		found, err := s.ranked.ReadSnapshot(ctx, d, entry.Member, &record)
		if err != nil {
			slog.Warn("Skipping member with unreadable snapshot", "domain", d, "member", entry.Member, "error", err)
			continue
		}
		if !found {
			continue
		}
		records = append(records, record)
	}
	return records
}

// decodeFeed parses raw JSON feed items, skipping malformed entries.
func decodeFeed[T any](items []string) []T {
	records := make([]T, 0, len(items))
	for _, item := range items {
		var record T
		if err := json.Unmarshal([]byte(item), &record); err != nil {
			continue
		}
		records = append(records, record)
	}
	return records
}
