package registration

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"speaksmart/internal/api"
	"speaksmart/internal/database"
	"speaksmart/internal/model"
	"speaksmart/internal/service"
	"speaksmart/internal/store"
)

type testValidator struct{ v *validator.Validate }

func (tv *testValidator) Validate(i interface{}) error { return tv.v.Struct(i) }

type fakeIssuer struct {
	user model.User
	err  error
}

func (f *fakeIssuer) Issue(_ context.Context, u model.User) (string, *service.Session, error) {
	f.user = u
	if f.err != nil {
		return "", nil, f.err
	}
	return "tok-" + u.Ruolo, &service.Session{ID: "sid", User: u, ExpiresAt: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)}, nil
}

func newEcho(t *testing.T, strict bool) *echo.Echo {
	t.Helper()
	v := validator.New()
	require.NoError(t, api.RegisterValidations(v, strict))
	e := echo.New()
	e.Validator = &testValidator{v: v}
	return e
}

func newJSONCtx(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func restore() {
	createUser = store.CreateUser
}

func stubCreate(id int) func(context.Context, database.DB, *model.User) (*model.User, error) {
	return func(_ context.Context, _ database.DB, u *model.User) (*model.User, error) {
		u.ID = id
		u.CreatedAt = time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
		return u, nil
	}
}

func TestRegisterStudentHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		t.Cleanup(restore)
		createUser = stubCreate(4)
		iss := &fakeIssuer{}
		ctx, rec := newJSONCtx(newEcho(t, false), `{"nome":"Ada","email":"ada@example.com","categorie":["problemi-ansia","strategie-colloquio"]}`)
		require.NoError(t, RegisterStudentHandler(nil, iss)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)

		var body api.RegistrationResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.True(t, body.Success)
		require.Equal(t, 4, body.ID)
		require.Equal(t, "tok-studente", body.Token)
		require.False(t, body.ExpiresAt.IsZero())

		require.Equal(t, model.RoleStudent, iss.user.Ruolo)
		require.Equal(t, 4, iss.user.ID)
		require.Equal(t, []string{"problemi-ansia", "strategie-colloquio"}, iss.user.Categorie)
		require.Equal(t, "Ada", *iss.user.Nome)
	})

	for name, body := range map[string]string{
		"no categories":    `{"email":"a@example.com"}`,
		"empty categories": `{"email":"a@example.com","categorie":[]}`,
		"no email":         `{"categorie":["problemi-ansia"]}`,
	} {
		t.Run(name, func(t *testing.T) {
			t.Cleanup(restore)
			createUser = func(context.Context, database.DB, *model.User) (*model.User, error) {
				t.Fatal("store must not be called")
				return nil, nil
			}
			ctx, rec := newJSONCtx(newEcho(t, false), body)
			require.NoError(t, RegisterStudentHandler(nil, &fakeIssuer{})(ctx))
			require.Equal(t, http.StatusBadRequest, rec.Code)
			require.JSONEq(t, `{"success":false,"error":"Email e almeno una categoria sono obbligatorie."}`, rec.Body.String())
		})
	}

	t.Run("unknown category when strict", func(t *testing.T) {
		t.Cleanup(restore)
		ctx, rec := newJSONCtx(newEcho(t, true), `{"email":"a@example.com","categorie":["boh"]}`)
		require.NoError(t, RegisterStudentHandler(nil, &fakeIssuer{})(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), api.MsgUnknownCategory)
	})

	t.Run("categories must be an array", func(t *testing.T) {
		t.Cleanup(restore)
		ctx, rec := newJSONCtx(newEcho(t, false), `{"email":"a@example.com","categorie":"problemi-ansia"}`)
		require.NoError(t, RegisterStudentHandler(nil, &fakeIssuer{})(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), api.MsgInvalidBody)
	})

	t.Run("store error", func(t *testing.T) {
		t.Cleanup(restore)
		createUser = func(context.Context, database.DB, *model.User) (*model.User, error) {
			return nil, errors.New("boom")
		}
		ctx, rec := newJSONCtx(newEcho(t, false), `{"email":"a@example.com","categorie":["x"]}`)
		require.NoError(t, RegisterStudentHandler(nil, &fakeIssuer{})(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.JSONEq(t, `{"success":false,"error":"Errore durante la registrazione dello studente."}`, rec.Body.String())
	})

	t.Run("session error after insert", func(t *testing.T) {
		t.Cleanup(restore)
		inserts := 0
		createUser = func(_ context.Context, _ database.DB, u *model.User) (*model.User, error) {
			inserts++
			out := *u
			out.ID = inserts
			out.CreatedAt = time.Date(2025, 5, 1, 15, 4, 5, 0, time.UTC)
			return &out, nil
		}
		ctx, rec := newJSONCtx(newEcho(t, false), `{"email":"a@example.com","categorie":["x"]}`)
		require.NoError(t, RegisterStudentHandler(nil, &fakeIssuer{err: errors.New("redis down")})(ctx))

		require.Equal(t, 1, inserts)
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"success":true,"id":1,"created_at":"2025-05-01T15:04:05Z"}`, rec.Body.String())
	})
}

func TestRegisterTeacherHandler(t *testing.T) {
	t.Run("success without categories", func(t *testing.T) {
		t.Cleanup(restore)
		createUser = stubCreate(2)
		iss := &fakeIssuer{}
		ctx, rec := newJSONCtx(newEcho(t, true), `{"email":"prof@example.com"}`)
		require.NoError(t, RegisterTeacherHandler(nil, iss)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"token":"tok-docente"`)
		require.Equal(t, model.RoleTeacher, iss.user.Ruolo)
		require.Nil(t, iss.user.Nome)
		require.Empty(t, iss.user.Categorie)
	})

	t.Run("missing email", func(t *testing.T) {
		t.Cleanup(restore)
		ctx, rec := newJSONCtx(newEcho(t, false), `{"nome":"Prof"}`)
		require.NoError(t, RegisterTeacherHandler(nil, &fakeIssuer{})(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.JSONEq(t, `{"success":false,"error":"L'email è obbligatoria per il docente."}`, rec.Body.String())
	})

	t.Run("store error", func(t *testing.T) {
		t.Cleanup(restore)
		createUser = func(context.Context, database.DB, *model.User) (*model.User, error) {
			return nil, errors.New("boom")
		}
		ctx, rec := newJSONCtx(newEcho(t, false), `{"email":"p@example.com"}`)
		require.NoError(t, RegisterTeacherHandler(nil, &fakeIssuer{})(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Contains(t, rec.Body.String(), api.MsgTeacherSave)
	})
}
