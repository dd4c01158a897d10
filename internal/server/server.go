package server

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"

	"github.com/Ken123King/PariahAI/internal/config"
	"github.com/Ken123King/PariahAI/internal/domain"
	apperrors "github.com/Ken123King/PariahAI/internal/errors"
	"github.com/Ken123King/PariahAI/internal/xpost"
)

// appService is the facade surface the handlers consume.
type appService interface {
	IngestTweet(ctx context.Context, tweet domain.Tweet) (domain.Tweet, error)
	RecentTweets(ctx context.Context, limit int64) []domain.Tweet
	TopHashtags(ctx context.Context, limit int64) []domain.RankedEntry
	TopMentions(ctx context.Context, limit int64) []domain.RankedEntry

	UpsertTopic(ctx context.Context, topic string, tweetCount int64, change24h float64, sentiment domain.Sentiment) (domain.Topic, error)
	TrendingTopics(ctx context.Context, limit int64) []domain.Topic

	UpsertCoin(ctx context.Context, coin domain.Coin) (domain.Coin, error)
	TopCoins(ctx context.Context, limit int64) []domain.Coin
	CoinVolumeHistory(ctx context.Context, symbol string) []float64
	CoinMentionsHistory(ctx context.Context, symbol string) []float64
	Anomalies(ctx context.Context, limit int64) []domain.Anomaly

	TrackWallet(ctx context.Context, address string) error
	UntrackWallet(ctx context.Context, address string) error
	WalletOverview(ctx context.Context, address string, txLimit int64) (*domain.WalletData, []domain.Transaction, []domain.TokenHolding)
	FallenWallets(ctx context.Context, limit int64) []domain.FallenWallet
}

// xPoster posts composed status updates to X.
type xPoster interface {
	Post(ctx context.Context, text string, hashtags []string) (xpost.Result, error)
}

// redisPinger is the minimal interface for the readiness check.
type redisPinger interface {
	Ping(ctx context.Context) *goredis.StatusCmd
}

type Server struct {
	echo      *echo.Echo
	config    *config.Config
	app       appService
	poster    xPoster
	redis     redisPinger
	clock     clockwork.Clock
	startTime time.Time
}

func NewServer(cfg *config.Config, app appService, poster xPoster, redis redisPinger, clock clockwork.Clock) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(apperrors.Middleware())

	srv := &Server{
		echo:      e,
		config:    cfg,
		app:       app,
		poster:    poster,
		redis:     redis,
		clock:     clock,
		startTime: clock.Now(),
	}

	srv.registerRoutes()

	return srv
}

func (s *Server) Start() error {
	slog.Info("Starting server", "port", s.config.Port)
	return s.echo.Start(fmt.Sprintf(":%s", s.config.Port))
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
