// Package response holds the helpers that shape HTTP response bodies.
package response

import (
	"github.com/labstack/echo/v4"
)

// Text writes a plain-text body. The account endpoints answer with bare
// status messages that existing frontends display verbatim.
func Text(c echo.Context, statusCode int, message string) error {
	return c.String(statusCode, message)
}

// JSON writes the payload as-is, without an envelope. The timetable
// endpoints serve bare arrays and objects.
func JSON(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}
