package server

import (
	"github.com/labstack/echo/v4"

	apperrors "github.com/Ken123King/PariahAI/internal/errors"
)

type xPostRequest struct {
	Text     string   `json:"text"`
	Hashtags []string `json:"hashtags"`
}

func (s *Server) handlePostToX(c echo.Context) error {
	var req xPostRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("invalid payload")
	}
	if req.Text == "" {
		return apperrors.ValidationError("text is required")
	}

	result, err := s.poster.Post(c.Request().Context(), req.Text, req.Hashtags)
	if err != nil {
		return err
	}

	return respondOK(c, result)
}
