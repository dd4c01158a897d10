package server

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) registerRoutes() {
	// Observability endpoints
	s.echo.GET("/health/live", s.handleLiveness)
	s.echo.GET("/health/ready", s.handleReadiness)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Trending
	s.echo.GET("/api/trending", s.handleTrending)

	// Tweets
	s.echo.GET("/api/tweets", s.handleTweets)
	s.echo.POST("/api/tweets", s.handleIngestTweet)
	s.echo.GET("/api/tweets/topics", s.handleTrendingTopics)
	s.echo.POST("/api/topics", s.handleUpsertTopic)

	// Coins
	s.echo.POST("/api/coins", s.handleUpsertCoin)
	s.echo.GET("/api/coins/:symbol/history", s.handleCoinHistory)
	s.echo.GET("/api/anomalies", s.handleAnomalies)

	// Wallets
	s.echo.POST("/api/wallets/track", s.handleTrackWallet)
	s.echo.POST("/api/wallets/untrack", s.handleUntrackWallet)
	s.echo.GET("/api/wallets/:address", s.handleWallet)

	// X posting
	s.echo.POST("/api/x/post", s.handlePostToX)
}
