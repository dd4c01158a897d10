package server

import (
	"github.com/labstack/echo/v4"
)

// dataResponse is the envelope every successful response uses.
type dataResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data,omitempty"`
}

func respondOK(c echo.Context, data any) error {
	return c.JSON(200, dataResponse{Success: true, Data: data})
}
