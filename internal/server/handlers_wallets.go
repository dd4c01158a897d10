package server

import (
	"github.com/labstack/echo/v4"

	apperrors "github.com/Ken123King/PariahAI/internal/errors"
	"github.com/Ken123King/PariahAI/internal/mockdata"
)

const walletTxLimit = 100

type walletRequest struct {
	Address string `json:"address"`
}

func (s *Server) handleTrackWallet(c echo.Context) error {
	var req walletRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("invalid payload")
	}
	if req.Address == "" {
		return apperrors.ValidationError("address is required")
	}

	if err := s.app.TrackWallet(c.Request().Context(), req.Address); err != nil {
		return apperrors.ExternalError("failed to track wallet", err).WithField("address", req.Address)
	}

	return respondOK(c, nil)
}

func (s *Server) handleUntrackWallet(c echo.Context) error {
	var req walletRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("invalid payload")
	}
	if req.Address == "" {
		return apperrors.ValidationError("address is required")
	}

	if err := s.app.UntrackWallet(c.Request().Context(), req.Address); err != nil {
		return apperrors.ExternalError("failed to untrack wallet", err).WithField("address", req.Address)
	}

	return respondOK(c, nil)
}

func (s *Server) handleWallet(c echo.Context) error {
	address := c.Param("address")
	ctx := c.Request().Context()

	data, txs, tokens := s.app.WalletOverview(ctx, address, walletTxLimit)
	if data == nil {
		// No stored state for this wallet; serve the demo payload.
		now := s.clock.Now().UTC()
		mock := mockdata.Wallet(address, now)
		return respondOK(c, map[string]any{
			"wallet":       mock,
			"transactions": mockdata.Transactions(now),
			"tokens":       mockdata.Tokens(),
		})
	}

	return respondOK(c, map[string]any{
		"wallet":       data,
		"transactions": txs,
		"tokens":       tokens,
	})
}
