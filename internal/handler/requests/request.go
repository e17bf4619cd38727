package requests

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"speaksmart/internal/api"
	"speaksmart/internal/cache"
	"speaksmart/internal/database"
	"speaksmart/internal/model"
	"speaksmart/internal/store"
)

const table = "richieste"

var (
	createHelpRequest = store.CreateHelpRequest
	listHelpRequests  = store.ListHelpRequests
)

// @Summary     Send a help request
// @Description Uno studente chiede aiuto su una categoria. Nome ed email sono facoltativi.
// @Tags        richieste
// @Accept      json
// @Produce     json
// @Param       body body     api.CreateHelpRequestRequest true "Richiesta"
// @Success     200  {object} api.CreatedResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Router      /richieste [post]
func CreateHelpRequestHandler(db database.DB, lists *cache.ListCache) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateHelpRequestRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.Fail(api.MsgInvalidBody))
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.Fail(api.ValidationMessage(err, api.MsgRequestRequired)))
		}

		ctx := c.Request().Context()
		r, err := createHelpRequest(ctx, db, &model.HelpRequest{
			NomeStudente:  api.Optional(req.Nome),
			EmailStudente: api.Optional(req.Email),
			Categoria:     req.Categoria,
			Messaggio:     req.Messaggio,
		})
		if err != nil {
			zerolog.Ctx(ctx).Error().Err(err).Msg("create help request")
			return c.JSON(http.StatusInternalServerError, api.Fail(api.MsgRequestSave))
		}
		lists.Invalidate(ctx, table)

		return c.JSON(http.StatusOK, api.Created(r.ID, r.CreatedAt))
	}
}

// @Summary     List help requests
// @Description Richieste dalla più recente, filtrabili per categoria. Con ENFORCE_ROLES attivo richiede un token docente.
// @Tags        richieste
// @Produce     json
// @Param       categoria query    string false "Categoria esatta"
// @Success     200       {object} api.HelpRequestListResponse
// @Failure     401       {object} api.ErrorResponse
// @Failure     403       {object} api.ErrorResponse
// @Failure     500       {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /richieste [get]
func ListHelpRequestsHandler(db database.DB, lists *cache.ListCache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		categoria := c.QueryParam("categoria")

		var cached []model.HelpRequest
		hit, key := lists.Lookup(ctx, table, categoria, &cached)
		if hit {
			return c.JSON(http.StatusOK, api.HelpRequestListResponse{Success: true, Richieste: cached})
		}

		out, err := listHelpRequests(ctx, db, categoria)
		if err != nil {
			zerolog.Ctx(ctx).Error().Err(err).Str("categoria", categoria).Msg("list help requests")
			return c.JSON(http.StatusInternalServerError, api.Fail(api.MsgRequestList))
		}
		lists.Fill(key, out)

		return c.JSON(http.StatusOK, api.HelpRequestListResponse{Success: true, Richieste: out})
	}
}
