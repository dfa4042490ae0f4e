package server

import (
	"errors"
	"log/slog"
	"runtime/debug"

	"github.com/labstack/echo/v4"
)

// setupErrorHandling installs a central error handler that logs unhandled
// errors with a stack trace before delegating to Echo's default handler.
// Expected errors (echo.HTTPError) pass through without the stack noise.
func setupErrorHandling(e *echo.Echo) {
	defaultHandler := e.HTTPErrorHandler

	e.HTTPErrorHandler = func(err error, c echo.Context) {
		var httpErr *echo.HTTPError
		if !errors.As(err, &httpErr) {
			slog.Error("Internal Server Error (Unhandled)",
				"error", err,
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
				"stack_trace", string(debug.Stack()),
			)
		}
		defaultHandler(err, c)
	}
}
