package server

import (
	"github.com/labstack/echo/v4"

	"github.com/Ken123King/PariahAI/internal/domain"
	apperrors "github.com/Ken123King/PariahAI/internal/errors"
	"github.com/Ken123King/PariahAI/internal/mockdata"
)

const (
	coinsLimit         = 5
	fallenWalletsLimit = 5
	anomaliesLimit     = 10
)

func (s *Server) handleTrending(c echo.Context) error {
	ctx := c.Request().Context()
	now := s.clock.Now().UTC()

	coins := s.app.TopCoins(ctx, coinsLimit)
	if len(coins) == 0 {
		coins = mockdata.Coins(now)
	}

	topics := s.app.TrendingTopics(ctx, topicsLimit)
	if len(topics) == 0 {
		topics = mockdata.Topics(now)
	}

	fallen := s.app.FallenWallets(ctx, fallenWalletsLimit)
	if len(fallen) == 0 {
		fallen = mockdata.FallenWallets(now)
	}

	return respondOK(c, map[string]any{
		"coins":         coins,
		"topics":        topics,
		"fallenWallets": fallen,
	})
}

func (s *Server) handleUpsertCoin(c echo.Context) error {
	var coin domain.Coin
	if err := c.Bind(&coin); err != nil {
		return apperrors.ValidationError("invalid coin payload")
	}
	if coin.Symbol == "" {
		return apperrors.ValidationError("symbol is required")
	}

	stored, err := s.app.UpsertCoin(c.Request().Context(), coin)
	if err != nil {
		return apperrors.ExternalError("failed to upsert coin", err).WithField("symbol", coin.Symbol)
	}

	return respondOK(c, stored)
}

func (s *Server) handleCoinHistory(c echo.Context) error {
	symbol := c.Param("symbol")
	ctx := c.Request().Context()

	return respondOK(c, map[string]any{
		"symbol":   symbol,
		"volume":   s.app.CoinVolumeHistory(ctx, symbol),
		"mentions": s.app.CoinMentionsHistory(ctx, symbol),
	})
}

func (s *Server) handleAnomalies(c echo.Context) error {
	return respondOK(c, s.app.Anomalies(c.Request().Context(), anomaliesLimit))
}
