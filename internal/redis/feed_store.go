package redis

import (
	"context"
	"encoding/json"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
)

// Feed keys and caps, preserved from the original deployment.
const (
	RecentTweetsFeed  = "recent:tweets"
	AnomalyAlertsFeed = "anomaly:alerts"
	FallenWalletsFeed = "fallen:wallets"

	RecentTweetsCap  = 10
	AnomalyAlertsCap = 10
)

// FeedStore maintains capped most-recent-first lists of JSON records.
type FeedStore struct {
	rdb *goredis.Client
}

func NewFeedStore(rdb *goredis.Client) *FeedStore {
	return &FeedStore{rdb: rdb}
}

// Push prepends record to the feed and trims it to cap entries.
func (s *FeedStore) Push(ctx context.Context, feed string, record any, cap int64) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal record for feed %s: %w", feed, err)
	}

	_, err = s.rdb.Pipelined(ctx, func(p goredis.Pipeliner) error {
		p.LPush(ctx, feed, data)
		p.LTrim(ctx, feed, 0, cap-1)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to push to feed %s: %w", feed, err)
	}
	return nil
}

// Recent returns up to limit raw JSON records, most-recent first.
func (s *FeedStore) Recent(ctx context.Context, feed string, limit int64) ([]string, error) {
	items, err := s.rdb.LRange(ctx, feed, 0, limit-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read feed %s: %w", feed, err)
	}
	return items, nil
}
