package web

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/workling/portal/internal/forms"
	"github.com/workling/portal/internal/gateway"
)

func (s *Server) handleRegister(c echo.Context) error {
	var f forms.RegisterForm
	if err := c.Bind(&f); err != nil {
		setFlash(c, flashError, "invalid form submission")
		return c.Redirect(http.StatusSeeOther, "/register")
	}

	// Validation failures stop here; nothing is sent to the remote.
	in, err := f.Parse()
	if err != nil {
		setFlash(c, flashError, err.Error())
		return c.Redirect(http.StatusSeeOther, "/register")
	}

	if err := s.gw.Register(c.Request().Context(), in); err != nil {
		setFlash(c, flashError, gateway.Message(err))
		return c.Redirect(http.StatusSeeOther, "/register")
	}

	setFlash(c, flashSuccess, "Registration successful!")
	return c.Redirect(http.StatusSeeOther, "/login")
}

func (s *Server) handleLogin(c echo.Context) error {
	email := c.FormValue("email")
	password := c.FormValue("password")
	if email == "" || password == "" {
		setFlash(c, flashError, "email and password are required")
		return c.Redirect(http.StatusSeeOther, "/login")
	}

	token, user, err := s.gw.Login(c.Request().Context(), email, password)
	if err != nil {
		setFlash(c, flashError, gateway.Message(err))
		return c.Redirect(http.StatusSeeOther, "/login")
	}

	us := s.sessions.Get(c)
	if err := us.Store.Login(c.Request().Context(), token, user); err != nil {
		// The page session works; only restore-after-restart is lost.
		s.log.Warn().Err(err).Msg("token persistence failed")
	}
	s.sessions.Remember(c, us)

	return c.Redirect(http.StatusSeeOther, dashboardPath(user))
}

func (s *Server) handleLogout(c echo.Context) error {
	us := s.sessions.Get(c)
	if err := us.Store.Logout(c.Request().Context()); err != nil {
		s.log.Warn().Err(err).Msg("clearing persisted token failed")
	}
	s.sessions.Drop(c)
	return c.Redirect(http.StatusSeeOther, "/")
}
