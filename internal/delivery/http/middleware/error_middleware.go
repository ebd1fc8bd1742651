package middleware

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	domainerrors "stundenplan/internal/domain/errors"
)

// ErrorMiddleware renders handler errors as plain-text responses. The wire
// format is a bare status code plus a short human-readable message, which is
// what the existing frontends parse.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		// 5xx AppErrors carry the wrapped cause in their details, which the
		// plain-text body deliberately hides. Log it here or it is lost.
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logger.Error("Internal application error",
				"code", appErr.ErrorCode(),
				"details", appErr.Details(),
				"path", c.Request().URL.Path,
				"method", c.Request().Method,
			)
		}

		_ = c.String(appErr.HTTPCode(), appErr.Message())

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if msg, ok := httpErr.Message.(string); ok {
			_ = c.String(httpErr.Code, msg)
		} else {
			_ = c.String(httpErr.Code, http.StatusText(httpErr.Code))
		}

		return
	}

	m.logger.Error("Unhandled error",
		"error", err.Error(),
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
	)

	_ = c.String(http.StatusInternalServerError, "Internal server error")
}
