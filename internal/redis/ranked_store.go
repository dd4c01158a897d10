package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/Ken123King/PariahAI/internal/domain"
	goredis "github.com/redis/go-redis/v9"
)

// Key layout, preserved from the original deployment so existing data stays
// readable:
//
//	tweet:hashtags / tweet:mentions / trending:topics / trending:coins  (zsets)
//	trending:topic:<member> / coin:data:<symbol>                        (snapshots)
//	coin:volume:<symbol> / coin:mentions:<symbol>                       (history lists)
const (
	hashtagsRankKey = "tweet:hashtags"
	mentionsRankKey = "tweet:mentions"
	topicsRankKey   = "trending:topics"
	coinsRankKey    = "trending:coins"

	topicSnapshotPrefix = "trending:topic:"
	coinSnapshotPrefix  = "coin:data:"

	coinVolumePrefix   = "coin:volume:"
	coinMentionsPrefix = "coin:mentions:"
)

// MetricVolume and MetricMentions name the per-member history series.
const (
	MetricVolume   = "volume"
	MetricMentions = "mentions"
)

type domainKeys struct {
	rank     string
	snapshot string            // key prefix, empty if the domain keeps no snapshots
	history  map[string]string // metric name -> key prefix
}

var rankedDomains = map[domain.RankedDomain]domainKeys{
	domain.DomainHashtags: {rank: hashtagsRankKey},
	domain.DomainMentions: {rank: mentionsRankKey},
	domain.DomainTopics:   {rank: topicsRankKey, snapshot: topicSnapshotPrefix},
	domain.DomainCoins: {
		rank:     coinsRankKey,
		snapshot: coinSnapshotPrefix,
		history: map[string]string{
			MetricVolume:   coinVolumePrefix,
			MetricMentions: coinMentionsPrefix,
		},
	},
}

// RankedStore maintains the named ranked collections: one sorted set per
// domain, plus optional per-member JSON snapshots and bounded history lists.
type RankedStore struct {
	rdb *goredis.Client
}

func NewRankedStore(rdb *goredis.Client) *RankedStore {
	return &RankedStore{rdb: rdb}
}

// IncrRank adds delta to the member's score, creating it at delta if absent.
func (s *RankedStore) IncrRank(ctx context.Context, d domain.RankedDomain, member string, delta float64) error {
	keys, err := keysFor(d)
	if err != nil {
		return err
	}
	if err := s.rdb.ZIncrBy(ctx, keys.rank, delta, member).Err(); err != nil {
		return fmt.Errorf("failed to increment rank for %s/%s: %w", d, member, err)
	}
	return nil
}

// SetRank overwrites the member's score.
func (s *RankedStore) SetRank(ctx context.Context, d domain.RankedDomain, member string, score float64) error {
	keys, err := keysFor(d)
	if err != nil {
		return err
	}
	if err := s.rdb.ZAdd(ctx, keys.rank, goredis.Z{Score: score, Member: member}).Err(); err != nil {
		return fmt.Errorf("failed to set rank for %s/%s: %w", d, member, err)
	}
	return nil
}

// WriteSnapshot serializes record and fully replaces the member's snapshot.
func (s *RankedStore) WriteSnapshot(ctx context.Context, d domain.RankedDomain, member string, record any) error {
	keys, err := keysFor(d)
	if err != nil {
		return err
	}
	if keys.snapshot == "" {
		return fmt.Errorf("domain %s keeps no snapshots", d)
	}

	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot for %s/%s: %w", d, member, err)
	}
	if err := s.rdb.Set(ctx, keys.snapshot+member, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to write snapshot for %s/%s: %w", d, member, err)
	}
	return nil
}

// ReadSnapshot loads the member's snapshot into out. Returns (false, nil)
// when no snapshot exists.
func (s *RankedStore) ReadSnapshot(ctx context.Context, d domain.RankedDomain, member string, out any) (bool, error) {
	keys, err := keysFor(d)
	if err != nil {
		return false, err
	}
	if keys.snapshot == "" {
		return false, fmt.Errorf("domain %s keeps no snapshots", d)
	}

	data, err := s.rdb.Get(ctx, keys.snapshot+member).Result()
	if errors.Is(err, goredis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read snapshot for %s/%s: %w", d, member, err)
	}
	if err := json.Unmarshal([]byte(data), out); err != nil {
		return false, fmt.Errorf("malformed snapshot for %s/%s: %w", d, member, err)
	}
	return true, nil
}

// TopRanked returns up to limit members ordered by descending score.
func (s *RankedStore) TopRanked(ctx context.Context, d domain.RankedDomain, limit int64) ([]domain.RankedEntry, error) {
	keys, err := keysFor(d)
	if err != nil {
		return nil, err
	}

	zs, err := s.rdb.ZRevRangeWithScores(ctx, keys.rank, 0, limit-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read top ranked for %s: %w", d, err)
	}

	entries := make([]domain.RankedEntry, 0, len(zs))
	for _, z := range zs {
		member, ok := z.Member.(string)
		if !ok {
			continue
		}
		entries = append(entries, domain.RankedEntry{Member: member, Score: z.Score})
	}
	return entries, nil
}

// PushHistory prepends value to the member's metric series and trims it to cap.
func (s *RankedStore) PushHistory(ctx context.Context, d domain.RankedDomain, member, metric string, value float64, cap int64) error {
	key, err := historyKey(d, member, metric)
	if err != nil {
		return err
	}

	arg := strconv.FormatFloat(value, 'f', -1, 64)
	_, err = s.rdb.Pipelined(ctx, func(p goredis.Pipeliner) error {
		p.LPush(ctx, key, arg)
		p.LTrim(ctx, key, 0, cap-1)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to push %s history for %s/%s: %w", metric, d, member, err)
	}
	return nil
}

// ReadHistory returns up to cap most-recent values, most-recent first.
// Entries that fail to parse are skipped.
func (s *RankedStore) ReadHistory(ctx context.Context, d domain.RankedDomain, member, metric string, cap int64) ([]float64, error) {
	key, err := historyKey(d, member, metric)
	if err != nil {
		return nil, err
	}

	raw, err := s.rdb.LRange(ctx, key, 0, cap-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s history for %s/%s: %w", metric, d, member, err)
	}

	values := make([]float64, 0, len(raw))
	for _, item := range raw {
		v, err := strconv.ParseFloat(item, 64)
		if err != nil {
			continue
		}
		values = append(values, v)
	}
	return values, nil
}

func keysFor(d domain.RankedDomain) (domainKeys, error) {
	keys, ok := rankedDomains[d]
	if !ok {
		return domainKeys{}, fmt.Errorf("unknown ranked domain %q", d)
	}
	return keys, nil
}

func historyKey(d domain.RankedDomain, member, metric string) (string, error) {
	keys, err := keysFor(d)
	if err != nil {
		return "", err
	}
	prefix, ok := keys.history[metric]
	if !ok {
		return "", fmt.Errorf("domain %s keeps no %q history", d, metric)
	}
	return prefix + member, nil
}
