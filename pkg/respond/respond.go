// Package respond shapes every API response into the uniform envelope
// {success, message, data}.
package respond

import (
	"github.com/labstack/echo/v4"
)

type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func OK(c echo.Context, data any) error {
	return c.JSON(200, Envelope{Success: true, Data: data})
}

func Created(c echo.Context, data any) error {
	return c.JSON(201, Envelope{Success: true, Data: data})
}

func Fail(c echo.Context, status int, msg string) error {
	return c.JSON(status, Envelope{Success: false, Message: msg})
}
