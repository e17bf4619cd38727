package enrollments

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"speaksmart/internal/api"
	"speaksmart/internal/database"
	"speaksmart/internal/model"
	"speaksmart/internal/store"
)

var (
	createEnrollment = store.CreateEnrollment
	listEnrollments  = store.ListEnrollments
)

// @Summary     Enroll in a course edition
// @Description Iscrizione pubblica a un'edizione del corso. Telefono, età, obiettivi ed esperienza sono facoltativi.
// @Tags        iscrizioni
// @Accept      json
// @Produce     json
// @Param       body body     api.CreateEnrollmentRequest true "Iscrizione"
// @Success     200  {object} api.CreatedResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Router      /iscrizioni [post]
func CreateEnrollmentHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateEnrollmentRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.Fail(api.MsgInvalidBody))
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.Fail(api.MsgEnrollmentRequired))
		}

		ctx := c.Request().Context()
		en, err := createEnrollment(ctx, db, &model.Enrollment{
			Nome:       req.Nome,
			Email:      req.Email,
			Telefono:   api.Optional(req.Telefono),
			Eta:        req.Eta.Ptr(),
			Edizione:   req.Edizione,
			Obiettivi:  api.Optional(req.Obiettivi),
			Esperienza: api.Optional(req.Esperienza),
		})
		if err != nil {
			zerolog.Ctx(ctx).Error().Err(err).Msg("create enrollment")
			return c.JSON(http.StatusInternalServerError, api.Fail(api.MsgEnrollmentSave))
		}

		return c.JSON(http.StatusOK, api.Created(en.ID, en.CreatedAt))
	}
}

// @Summary     List enrollments
// @Description Tutte le iscrizioni, dalla più recente. Solo docenti.
// @Tags        iscrizioni
// @Produce     json
// @Success     200 {object} api.EnrollmentListResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /iscrizioni [get]
func ListEnrollmentsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		out, err := listEnrollments(ctx, db)
		if err != nil {
			zerolog.Ctx(ctx).Error().Err(err).Msg("list enrollments")
			return c.JSON(http.StatusInternalServerError, api.Fail(api.MsgEnrollmentList))
		}
		return c.JSON(http.StatusOK, api.EnrollmentListResponse{Success: true, Iscrizioni: out})
	}
}
