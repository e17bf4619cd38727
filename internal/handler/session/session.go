package session

import (
	"context"
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"speaksmart/internal/api"
	"speaksmart/internal/database"
	"speaksmart/internal/middleware"
	"speaksmart/internal/store"
)

var getUserByID = store.GetUserByID

// Revoker ends a session.
type Revoker interface {
	Revoke(ctx context.Context, id string) error
}

// @Summary     Current session
// @Description Restituisce il profilo dell'utente della sessione, letto dal database.
// @Tags        sessione
// @Produce     json
// @Success     200 {object} api.SessionResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /sessione [get]
func GetSessionHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		s := middleware.SessionFrom(c)
		if s == nil {
			return c.JSON(http.StatusUnauthorized, api.Fail(api.MsgMissingToken))
		}
		ctx := c.Request().Context()

		u, err := getUserByID(ctx, db, s.User.ID)
		if errors.Is(err, pgx.ErrNoRows) {
			return c.JSON(http.StatusUnauthorized, api.Fail(api.MsgInvalidSession))
		}
		if err != nil {
			zerolog.Ctx(ctx).Error().Err(err).Int("user_id", s.User.ID).Msg("load session user")
			return c.JSON(http.StatusInternalServerError, api.Fail(api.MsgSessionError))
		}

		return c.JSON(http.StatusOK, api.SessionResponse{Success: true, Utente: *u, ExpiresAt: s.ExpiresAt})
	}
}

// @Summary     Logout
// @Description Revoca la sessione corrente. Il token smette di funzionare subito.
// @Tags        sessione
// @Produce     json
// @Success     200 {object} api.OKResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /sessione [delete]
func DeleteSessionHandler(sessions Revoker) echo.HandlerFunc {
	return func(c echo.Context) error {
		s := middleware.SessionFrom(c)
		if s == nil {
			return c.JSON(http.StatusUnauthorized, api.Fail(api.MsgMissingToken))
		}
		ctx := c.Request().Context()
		if err := sessions.Revoke(ctx, s.ID); err != nil {
			zerolog.Ctx(ctx).Error().Err(err).Msg("revoke session")
			return c.JSON(http.StatusInternalServerError, api.Fail(api.MsgSessionError))
		}
		return c.JSON(http.StatusOK, api.OKResponse{Success: true})
	}
}
