package middleware

import (
	"fmt"
	"log/slog"
	"runtime/debug"

	"sales-dashboard/internal/errors"
	"sales-dashboard/internal/handlers"

	"github.com/labstack/echo/v4"
)

// PanicRecovery turns a handler panic into a SYSTEM_001 envelope. Nothing is
// written when the handler already committed a response.
func PanicRecovery(logger *slog.Logger) echo.MiddlewareFunc {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				req := c.Request()
				logger.ErrorContext(req.Context(), "handler panicked",
					"trace_id", GetTraceID(c),
					"panic", fmt.Sprint(r),
					"method", req.Method,
					"path", req.URL.Path,
					"stack", string(debug.Stack()),
				)

				if c.Response().Committed {
					return
				}
				err = handlers.SendError(c, errors.SystemInternalError)
			}()

			return next(c)
		}
	}
}
