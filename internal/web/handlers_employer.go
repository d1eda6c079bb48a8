package web

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/workling/portal/internal/core/domain"
	"github.com/workling/portal/internal/forms"
	"github.com/workling/portal/internal/gateway"
	"github.com/workling/portal/internal/view"
)

func (s *Server) handleEmployerDashboard(c echo.Context) error {
	us := currentSession(c)

	tab := view.Tab(c.QueryParam("tab"))
	if tab == "" {
		tab = view.TabWorkers
	}
	us.Employer.SwitchTab(c.Request().Context(), tab)

	snap := us.Employer.Snapshot()
	data := s.newPageData(c, "Employer Dashboard")
	data.Employer = &snap
	if snap.Err != nil {
		data.ErrorMsg = gateway.Message(snap.Err)
	}
	return c.Render(http.StatusOK, "employer.html", data)
}

func (s *Server) handleCreateJob(c echo.Context) error {
	us := currentSession(c)

	back := "/employer/dashboard?tab=" + c.FormValue("tab")

	var f forms.JobForm
	if err := c.Bind(&f); err != nil {
		setFlash(c, flashError, "invalid form submission")
		return c.Redirect(http.StatusSeeOther, back)
	}
	if err := f.Parse(); err != nil {
		// Blocked before any network call.
		setFlash(c, flashError, err.Error())
		return c.Redirect(http.StatusSeeOther, back)
	}

	if err := us.Employer.CreateJob(c.Request().Context(), f.Title, f.Description); err != nil {
		if errors.Is(err, domain.ErrEmptyJobForm) {
			setFlash(c, flashError, err.Error())
		} else {
			setFlash(c, flashError, gateway.Message(err))
		}
		return c.Redirect(http.StatusSeeOther, back)
	}

	setFlash(c, flashSuccess, "Job posted successfully!")
	return c.Redirect(http.StatusSeeOther, back)
}
