package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"speaksmart/internal/api"
	"speaksmart/internal/service"
)

const ContextSessionKey = "session"

// Verifier resolves a bearer token to a live session.
type Verifier interface {
	Verify(ctx context.Context, token string) (*service.Session, error)
}

func bearerToken(c echo.Context) (string, bool) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", false
	}
	return strings.TrimSpace(parts[1]), true
}

// authenticate resolves the request's session. On failure it returns the
// status and message to answer with.
func authenticate(c echo.Context, v Verifier) (*service.Session, int, string) {
	token, ok := bearerToken(c)
	if !ok {
		return nil, http.StatusUnauthorized, api.MsgMissingToken
	}
	ctx := c.Request().Context()
	s, err := v.Verify(ctx, token)
	switch {
	case errors.Is(err, service.ErrInvalidToken), errors.Is(err, service.ErrSessionNotFound):
		return nil, http.StatusUnauthorized, api.MsgInvalidSession
	case err != nil:
		zerolog.Ctx(ctx).Error().Err(err).Msg("session verification failed")
		return nil, http.StatusInternalServerError, api.MsgSessionError
	}
	return s, 0, ""
}

// RequireAuth rejects requests without a live bearer session.
func RequireAuth(v Verifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			s, status, msg := authenticate(c, v)
			if s == nil {
				return c.JSON(status, api.Fail(msg))
			}
			c.Set(ContextSessionKey, s)
			return next(c)
		}
	}
}

// RequireRole is RequireAuth plus a role check on the session user.
func RequireRole(v Verifier, role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return RequireAuth(v)(func(c echo.Context) error {
			if s := SessionFrom(c); s == nil || s.User.Ruolo != role {
				return c.JSON(http.StatusForbidden, api.Fail(api.MsgForbiddenRole))
			}
			return next(c)
		})
	}
}

// SessionFrom returns the session set by RequireAuth, or nil.
func SessionFrom(c echo.Context) *service.Session {
	s, _ := c.Get(ContextSessionKey).(*service.Session)
	return s
}
