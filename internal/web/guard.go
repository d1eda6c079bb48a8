package web

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/workling/portal/internal/core/domain"
)

// Route guard. Protected paths refuse to serve without a session: HTML
// requests are redirected to the login page, JSON requests get a 401 before
// any marketplace call is made.

const sessionKey = "user_session"

// RequireSession loads the caller's session and rejects unauthenticated
// requests. The session is stashed in the echo context for handlers.
func RequireSession(m *SessionManager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			us := m.Get(c)
			if !us.Store.IsAuthenticated() {
				if wantsJSON(c) {
					return echo.NewHTTPError(http.StatusUnauthorized, "login required")
				}
				setFlash(c, flashError, "Please log in first")
				return c.Redirect(http.StatusSeeOther, "/login")
			}
			c.Set(sessionKey, us)
			return next(c)
		}
	}
}

// RequireRole rejects callers whose resolved role does not match. A session
// restored from an opaque token has no resolved role yet and is let through;
// the remote API remains the authority in that case.
func RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := currentSession(c).Store.CurrentUser()
			if user == nil || user.Role == role {
				return next(c)
			}
			if wantsJSON(c) {
				return echo.NewHTTPError(http.StatusForbidden, domain.ErrForbiddenRole.Error())
			}
			return c.Redirect(http.StatusSeeOther, dashboardPath(user))
		}
	}
}

// currentSession returns the session stashed by RequireSession. Calling it
// from an unguarded handler is a programming error.
func currentSession(c echo.Context) *userSession {
	us, _ := c.Get(sessionKey).(*userSession)
	if us == nil {
		panic("web: currentSession called outside RequireSession")
	}
	return us
}

// dashboardPath picks the dashboard matching the user's role.
func dashboardPath(user *domain.User) string {
	if user.IsWorker() {
		return "/worker/dashboard"
	}
	return "/employer/dashboard"
}

func wantsJSON(c echo.Context) bool {
	return strings.HasPrefix(c.Path(), "/api/")
}
