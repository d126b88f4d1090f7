package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"heritage-api/internal/api"
	"heritage-api/internal/cache"
	"heritage-api/internal/database"
	"heritage-api/internal/logging"
)

const pingKey = "health:ping"

// PingHandler checks the database and, when configured, the cache.
// @Summary     Health Check
// @Description Returns pong after checking the database and the cache
// @Tags        health
// @Produce     json
// @Success     200 {object} api.PingResponse
// @Failure     500 {object} api.HTTPError
// @Router      /ping [get]
func PingHandler(db database.DB, c cache.Cache) echo.HandlerFunc {
	return func(ec echo.Context) error {
		ctx := ec.Request().Context()
		log := logging.FromContext(ctx)
		if err := db.Ping(ctx); err != nil {
			log.Error(ctx, "database ping failed", "error", err)
			return ec.JSON(http.StatusInternalServerError, api.HTTPError{Message: "database unhealthy"})
		}
		if c == nil {
			return ec.JSON(http.StatusOK, api.PingResponse{Message: "pong"})
		}
		if err := c.Set(ctx, pingKey, time.Now().Unix(), time.Minute).Err(); err != nil {
			log.Error(ctx, "cache ping failed", "error", err)
			return ec.JSON(http.StatusInternalServerError, api.HTTPError{Message: "cache unhealthy"})
		}
		return ec.JSON(http.StatusOK, api.PingResponse{Message: "pong"})
	}
}
