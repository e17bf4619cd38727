// File: internal/router/router.go
package router

import (
	"errors"
	"io/fs"
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"speaksmart/internal/api"
	"speaksmart/internal/cache"
	"speaksmart/internal/database"
	"speaksmart/internal/handler"
	"speaksmart/internal/handler/enrollments"
	"speaksmart/internal/handler/lessons"
	"speaksmart/internal/handler/pages"
	"speaksmart/internal/handler/registration"
	"speaksmart/internal/handler/requests"
	"speaksmart/internal/handler/session"
	"speaksmart/internal/middleware"
	"speaksmart/internal/model"
	"speaksmart/internal/service"
)

// Deps is everything the routes need.
type Deps struct {
	DB       database.DB
	Cache    cache.Cache
	Lists    *cache.ListCache
	Sessions *service.SessionManager
	Static   fs.FS

	// EnforceRoles puts lesson publishing and the help-request list behind a teacher session.
	EnforceRoles bool
	// RateLimit is requests per second per client IP on /api. 0 disables it.
	RateLimit float64
}

// Setup registers every route. Global middleware is installed by the caller.
func Setup(e *echo.Echo, d Deps) {
	e.HTTPErrorHandler = errorHandler(e)

	apiGroup := e.Group("/api")
	if d.RateLimit > 0 {
		apiGroup.Use(rateLimiter(d.RateLimit))
	}
	// unknown API paths are JSON 404s, not the index page
	apiGroup.RouteNotFound("/*", func(c echo.Context) error { return echo.ErrNotFound })

	teacherOnly := middleware.RequireRole(d.Sessions, model.RoleTeacher)
	var gated []echo.MiddlewareFunc
	if d.EnforceRoles {
		gated = append(gated, teacherOnly)
	}

	apiGroup.GET("/ping", handler.PingHandler(d.DB, d.Cache))
	apiGroup.GET("/categorie", handler.CategoriesHandler)

	apiGroup.POST("/iscrizioni", enrollments.CreateEnrollmentHandler(d.DB))
	apiGroup.GET("/iscrizioni", enrollments.ListEnrollmentsHandler(d.DB), teacherOnly)
	apiGroup.GET("/iscrizioni/export", enrollments.ExportEnrollmentsHandler(d.DB), teacherOnly)

	apiGroup.POST("/registrazione-studente", registration.RegisterStudentHandler(d.DB, d.Sessions))
	apiGroup.POST("/registrazione-docente", registration.RegisterTeacherHandler(d.DB, d.Sessions))

	sess := apiGroup.Group("/sessione", middleware.RequireAuth(d.Sessions))
	sess.GET("", session.GetSessionHandler(d.DB))
	sess.DELETE("", session.DeleteSessionHandler(d.Sessions))

	apiGroup.POST("/lezioni", lessons.CreateLessonHandler(d.DB, d.Lists), gated...)
	apiGroup.GET("/lezioni", lessons.ListLessonsHandler(d.DB, d.Lists))

	apiGroup.POST("/richieste", requests.CreateHelpRequestHandler(d.DB, d.Lists))
	apiGroup.GET("/richieste", requests.ListHelpRequestsHandler(d.DB, d.Lists), gated...)

	e.GET("/accesso", pages.PageHandler(d.Static, "accesso.html"))
	e.GET("/area-studenti", pages.PageHandler(d.Static, "area-studenti.html"))
	e.GET("/area-professori", pages.PageHandler(d.Static, "area-professori.html"))
	e.GET("/*", pages.FallbackHandler(d.Static))
}

func rateLimiter(perSecond float64) echo.MiddlewareFunc {
	return echomw.RateLimiterWithConfig(echomw.RateLimiterConfig{
		Store: echomw.NewRateLimiterMemoryStore(rate.Limit(perSecond)),
		ErrorHandler: func(c echo.Context, _ error) error {
			return c.JSON(http.StatusForbidden, api.Fail(http.StatusText(http.StatusForbidden)))
		},
		DenyHandler: func(c echo.Context, _ string, _ error) error {
			return c.JSON(http.StatusTooManyRequests, api.Fail(api.MsgTooManyRequests))
		},
	})
}

// errorHandler renders errors that escape handlers in the same body shape as
// every API response.
func errorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		code := http.StatusInternalServerError
		msg := api.MsgInternal
		var he *echo.HTTPError
		if errors.As(err, &he) && he.Code < http.StatusInternalServerError {
			code = he.Code
			msg = http.StatusText(code)
			if m, ok := he.Message.(string); ok && m != "" {
				msg = m
			}
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = c.JSON(code, api.Fail(msg))
		}
		if err != nil {
			e.Logger.Error(err)
		}
	}
}
