package web

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/workling/portal/internal/gateway"
)

func (s *Server) handleWorkerDashboard(c echo.Context) error {
	us := currentSession(c)
	us.Worker.Refresh(c.Request().Context())

	snap := us.Worker.Snapshot()
	data := s.newPageData(c, "Available Jobs")
	data.Worker = &snap
	if snap.Err != nil {
		data.ErrorMsg = gateway.Message(snap.Err)
	}
	return c.Render(http.StatusOK, "worker.html", data)
}

func (s *Server) handleApply(c echo.Context) error {
	us := currentSession(c)

	if err := us.Worker.Apply(c.Request().Context(), c.Param("id")); err != nil {
		setFlash(c, flashError, gateway.Message(err))
	} else {
		setFlash(c, flashSuccess, "Applied successfully!")
	}
	return c.Redirect(http.StatusSeeOther, "/worker/dashboard")
}
