package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"heritage-api/internal/apperr"
	"heritage-api/internal/logging"
)

// RequestLogger tags every request with its id, stores a child logger in the
// request context and writes one access line when the request completes.
// RequireAuth later extends that logger with the caller's user_id.
// It expects echo's RequestID middleware to have run first.
func RequestLogger(base logging.Logger) echo.MiddlewareFunc {
	attach := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Response().Header().Get(echo.HeaderXRequestID)
			l := base.With("request_id", id)
			c.SetRequest(c.Request().WithContext(logging.WithContext(c.Request().Context(), l)))
			return next(c)
		}
	}
	access := echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogStatus:    true,
		LogMethod:    true,
		LogURI:       true,
		LogLatency:   true,
		LogError:     true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			ctx := c.Request().Context()
			status := v.Status
			if v.Error != nil {
				status = errorStatus(v.Error)
			}
			args := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", status,
				"latency", v.Latency,
			}
			level := slog.LevelInfo
			if v.Error != nil {
				args = append(args, "error", v.Error.Error())
				if status >= http.StatusInternalServerError {
					level = slog.LevelError
				}
			}
			logAt(ctx, logging.FromContext(ctx), level, "request", args...)
			return nil
		},
	})
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return attach(access(next))
	}
}

// errorStatus mirrors the status the error handler will send, which has
// not been written yet when the access line is logged.
func errorStatus(err error) int {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code
	}
	return apperr.Status(err)
}

func logAt(ctx context.Context, l logging.Logger, level slog.Level, msg string, args ...any) {
	if level >= slog.LevelError {
		l.Error(ctx, msg, args...)
		return
	}
	l.Info(ctx, msg, args...)
}
