// File: internal/handler/ping.go
package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"speaksmart/internal/api"
	"speaksmart/internal/cache"
	"speaksmart/internal/database"
)

// PingResponse is the health check body.
// swagger:model PingResponse
type PingResponse struct {
	Message string `json:"message" example:"pong"`
}

// PingHandler checks both backing stores.
// @Summary     Health Check
// @Description Risponde pong dopo aver verificato database e Redis.
// @Tags        health
// @Produce     json
// @Success     200 {object} PingResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /ping [get]
func PingHandler(db database.DB, c cache.Cache) echo.HandlerFunc {
	return func(ec echo.Context) error {
		ctx := ec.Request().Context()
		if err := db.Ping(ctx); err != nil {
			zerolog.Ctx(ctx).Error().Err(err).Msg("database ping")
			return ec.JSON(http.StatusInternalServerError, api.Fail("database unhealthy"))
		}
		if err := c.Ping(ctx).Err(); err != nil {
			zerolog.Ctx(ctx).Error().Err(err).Msg("cache ping")
			return ec.JSON(http.StatusInternalServerError, api.Fail("cache unhealthy"))
		}
		return ec.JSON(http.StatusOK, PingResponse{Message: "pong"})
	}
}
