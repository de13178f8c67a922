package handler

import "github.com/labstack/echo/v4"

// envelope is the standard response body. Errors use the same shape with
// success=false and no data, rendered by the central error handler.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func respond(c echo.Context, code int, message string, data any) error {
	return c.JSON(code, envelope{Success: true, Message: message, Data: data})
}
