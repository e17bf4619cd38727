package registration

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"speaksmart/internal/api"
	"speaksmart/internal/database"
	"speaksmart/internal/model"
	"speaksmart/internal/service"
	"speaksmart/internal/store"
)

var createUser = store.CreateUser

// Issuer starts a session for a newly registered user.
type Issuer interface {
	Issue(ctx context.Context, u model.User) (string, *service.Session, error)
}

// register stores u and opens its session. saveMsg is the client message when the
// insert fails. Once the row exists the response is a success, with no token if the
// session could not be opened.
func register(c echo.Context, db database.DB, sessions Issuer, u *model.User, saveMsg string) error {
	ctx := c.Request().Context()
	log := zerolog.Ctx(ctx)

	created, err := createUser(ctx, db, u)
	if err != nil {
		log.Error().Err(err).Str("ruolo", u.Ruolo).Msg("create user")
		return c.JSON(http.StatusInternalServerError, api.Fail(saveMsg))
	}
	token, s, err := sessions.Issue(ctx, *created)
	if err != nil {
		log.Warn().Err(err).Int("user_id", created.ID).Msg("user stored without session")
		return c.JSON(http.StatusOK, api.Created(created.ID, created.CreatedAt))
	}

	return c.JSON(http.StatusOK, api.RegistrationResponse{
		CreatedResponse: api.Created(created.ID, created.CreatedAt),
		Token:           token,
		ExpiresAt:       s.ExpiresAt,
	})
}

// @Summary     Register a student
// @Description Registra uno studente con almeno una categoria di interesse e apre una sessione.
// @Tags        registrazione
// @Accept      json
// @Produce     json
// @Param       body body     api.RegisterStudentRequest true "Studente"
// @Success     200  {object} api.RegistrationResponse "token is absent when the session could not be opened"
// @Failure     400  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Router      /registrazione-studente [post]
func RegisterStudentHandler(db database.DB, sessions Issuer) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RegisterStudentRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.Fail(api.MsgInvalidBody))
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.Fail(api.ValidationMessage(err, api.MsgStudentRequired)))
		}

		return register(c, db, sessions, &model.User{
			Nome:      api.Optional(req.Nome),
			Email:     req.Email,
			Ruolo:     model.RoleStudent,
			Categorie: req.Categorie,
		}, api.MsgStudentSave)
	}
}

// @Summary     Register a teacher
// @Description Registra un docente e apre una sessione. Le categorie non servono.
// @Tags        registrazione
// @Accept      json
// @Produce     json
// @Param       body body     api.RegisterTeacherRequest true "Docente"
// @Success     200  {object} api.RegistrationResponse "token is absent when the session could not be opened"
// @Failure     400  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Router      /registrazione-docente [post]
func RegisterTeacherHandler(db database.DB, sessions Issuer) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RegisterTeacherRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.Fail(api.MsgInvalidBody))
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.Fail(api.MsgTeacherRequired))
		}

		return register(c, db, sessions, &model.User{
			Nome:  api.Optional(req.Nome),
			Email: req.Email,
			Ruolo: model.RoleTeacher,
		}, api.MsgTeacherSave)
	}
}
