package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"makecents/internal/auth"
	"makecents/internal/errors"
)

const userIDKey = "user_id"

// RequireSession rejects requests whose session cookies do not verify and
// stores the authenticated user id on the context.
func RequireSession(authenticator *auth.Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, ok := authenticator.UserID(cookieValue(c, auth.UserIDCookie), cookieValue(c, auth.ProofCookie))
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
					Error: "login required",
					Code:  "UNAUTHENTICATED",
				})
			}
			c.Set(userIDKey, userID)
			return next(c)
		}
	}
}

func cookieValue(c echo.Context, name string) string {
	cookie, err := c.Cookie(name)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// currentUserID returns the id set by RequireSession.
func currentUserID(c echo.Context) uint {
	id, _ := c.Get(userIDKey).(uint)
	return id
}

func setSessionCookies(c echo.Context, session auth.Session) {
	c.SetCookie(sessionCookie(auth.UserIDCookie, session.UserID, 0))
	c.SetCookie(sessionCookie(auth.ProofCookie, session.Proof, 0))
}

func clearSessionCookies(c echo.Context) {
	c.SetCookie(sessionCookie(auth.UserIDCookie, "", -1))
	c.SetCookie(sessionCookie(auth.ProofCookie, "", -1))
}

func sessionCookie(name, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// failure converts a service error into the JSON error response.
func failure(err error) error {
	httpErr := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}

func invalidBody() error {
	return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
		Error: "invalid request body",
		Code:  "INVALID_REQUEST",
	})
}

func invalidFields(err error) error {
	return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
		Error: err.Error(),
		Code:  "VALIDATION_ERROR",
	})
}
