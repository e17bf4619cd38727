package lessons

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

const table = "lezioni"

var (
	createLesson = store.CreateLesson
	listLessons  = store.ListLessons
)

// @Summary     Create a lesson
// @Description Pubblica una lezione. Con ENFORCE_ROLES attivo richiede un token docente.
// @Tags        lezioni
// @Accept      json
// @Produce     json
// @Param       body body     api.CreateLessonRequest true "Lezione"
// @Success     200  {object} api.CreatedResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     401  {object} api.ErrorResponse
// @Failure     403  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /lezioni [post]
func CreateLessonHandler(db database.DB, lists *cache.ListCache) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateLessonRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.Fail(api.MsgInvalidBody))
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.Fail(api.ValidationMessage(err, api.MsgLessonRequired)))
		}

		ctx := c.Request().Context()
		l, err := createLesson(ctx, db, &model.Lesson{
			Titolo:      req.Titolo,
			Descrizione: api.Optional(req.Descrizione),
			Link:        api.Optional(req.Link),
			Categoria:   req.Categoria,
		})
		if err != nil {
			zerolog.Ctx(ctx).Error().Err(err).Msg("create lesson")
			return c.JSON(http.StatusInternalServerError, api.Fail(api.MsgLessonSave))
		}
		lists.Invalidate(ctx, table)

		return c.JSON(http.StatusOK, api.Created(l.ID, l.CreatedAt))
	}
}

// @Summary     List lessons
// @Description Lezioni dalla più recente, filtrabili per categoria.
// @Tags        lezioni
// @Produce     json
// @Param       categoria query    string false "Categoria esatta"
// @Success     200       {object} api.LessonListResponse
// @Failure     500       {object} api.ErrorResponse
// @Router      /lezioni [get]
func ListLessonsHandler(db database.DB, lists *cache.ListCache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		categoria := c.QueryParam("categoria")

		var cached []model.Lesson
		hit, key := lists.Lookup(ctx, table, categoria, &cached)
		if hit {
			return c.JSON(http.StatusOK, api.LessonListResponse{Success: true, Lezioni: cached})
		}

		out, err := listLessons(ctx, db, categoria)
		if err != nil {
			zerolog.Ctx(ctx).Error().Err(err).Str("categoria", categoria).Msg("list lessons")
			return c.JSON(http.StatusInternalServerError, api.Fail(api.MsgLessonList))
		}
		lists.Fill(key, out)

		return c.JSON(http.StatusOK, api.LessonListResponse{Success: true, Lezioni: out})
	}
}
