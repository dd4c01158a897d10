package server

import (
	"github.com/labstack/echo/v4"

	"github.com/Ken123King/PariahAI/internal/domain"
	apperrors "github.com/Ken123King/PariahAI/internal/errors"
	"github.com/Ken123King/PariahAI/internal/mockdata"
	"github.com/Ken123King/PariahAI/internal/sentiment"
)

const (
	tweetsLimit  = 10
	rankingLimit = 10
	topicsLimit  = 5
)

func (s *Server) handleTweets(c echo.Context) error {
	ctx := c.Request().Context()
	now := s.clock.Now().UTC()

	tweets := s.app.RecentTweets(ctx, tweetsLimit)
	if len(tweets) == 0 {
		tweets = mockdata.Tweets(now)
	}

	hashtags := hashtagCounts(s.app.TopHashtags(ctx, rankingLimit))
	if len(hashtags) == 0 {
		hashtags = mockdata.Hashtags()
	}

	mentions := mentionCounts(s.app.TopMentions(ctx, rankingLimit))
	if len(mentions) == 0 {
		mentions = mockdata.Mentions()
	}

	topics := s.app.TrendingTopics(ctx, topicsLimit)
	if len(topics) == 0 {
		topics = mockdata.Topics(now)
	}

	return respondOK(c, map[string]any{
		"tweets":   tweets,
		"hashtags": hashtags,
		"mentions": mentions,
		"topics":   topics,
	})
}

func (s *Server) handleIngestTweet(c echo.Context) error {
	var tweet domain.Tweet
	if err := c.Bind(&tweet); err != nil {
		return apperrors.ValidationError("invalid tweet payload")
	}
	if tweet.Content == "" {
		return apperrors.ValidationError("content is required")
	}

	stored, err := s.app.IngestTweet(c.Request().Context(), tweet)
	if err != nil {
		return apperrors.ExternalError("failed to store tweet", err)
	}

	return respondOK(c, stored)
}

func (s *Server) handleTrendingTopics(c echo.Context) error {
	topics := s.app.TrendingTopics(c.Request().Context(), topicsLimit)
	if len(topics) == 0 {
		topics = mockdata.Topics(s.clock.Now().UTC())
	}
	return respondOK(c, topics)
}

type upsertTopicRequest struct {
	Topic      string           `json:"topic"`
	TweetCount int64            `json:"tweetCount"`
	Change24h  float64          `json:"change24h"`
	Sentiment  domain.Sentiment `json:"sentiment"`
}

func (s *Server) handleUpsertTopic(c echo.Context) error {
	var req upsertTopicRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("invalid topic payload")
	}
	if req.Topic == "" {
		return apperrors.ValidationError("topic is required")
	}

	// Callers may omit the sentiment; classify the topic text in that case.
	if req.Sentiment == "" {
		req.Sentiment = sentiment.Classify(req.Topic)
	}
	switch req.Sentiment {
	case domain.SentimentPositive, domain.SentimentNegative, domain.SentimentNeutral:
	default:
		return apperrors.ValidationError("invalid sentiment").WithField("sentiment", string(req.Sentiment))
	}

	topic, err := s.app.UpsertTopic(c.Request().Context(), req.Topic, req.TweetCount, req.Change24h, req.Sentiment)
	if err != nil {
		return apperrors.ExternalError("failed to upsert topic", err).WithField("topic", req.Topic)
	}

	return respondOK(c, topic)
}

func hashtagCounts(entries []domain.RankedEntry) []domain.HashtagCount {
	counts := make([]domain.HashtagCount, len(entries))
	for i, entry := range entries {
		counts[i] = domain.HashtagCount{Hashtag: entry.Member, Count: int64(entry.Score)}
	}
	return counts
}

func mentionCounts(entries []domain.RankedEntry) []domain.MentionCount {
	counts := make([]domain.MentionCount, len(entries))
	for i, entry := range entries {
		counts[i] = domain.MentionCount{Mention: entry.Member, Count: int64(entry.Score)}
	}
	return counts
}
