package web

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (s *Server) handleLanding(c echo.Context) error {
	return c.Render(http.StatusOK, "landing.html", s.newPageData(c, "Home"))
}

func (s *Server) handleLoginPage(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", s.newPageData(c, "Login"))
}

func (s *Server) handleRegisterPage(c echo.Context) error {
	return c.Render(http.StatusOK, "register.html", s.newPageData(c, "Register"))
}
