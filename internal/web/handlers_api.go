package web

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/workling/portal/internal/core/domain"
)

type sessionResponse struct {
	Authenticated bool         `json:"authenticated"`
	User          *domain.User `json:"user,omitempty"`
}

type publishJobBody struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
}

// apiSession reports the caller's session state.
//
// @Summary      Current session
// @Tags         session
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/v1/session [get]
func (s *Server) apiSession(c echo.Context) error {
	us := currentSession(c)
	return c.JSON(http.StatusOK, sessionResponse{
		Authenticated: us.Store.IsAuthenticated(),
		User:          us.Store.CurrentUser(),
	})
}

// apiWorkers lists every registered worker.
//
// @Summary      List workers
// @Tags         workers
// @Produce      json
// @Success      200  {array}   domain.User
// @Failure      502  {object}  errorResponse
// @Router       /api/v1/workers [get]
func (s *Server) apiWorkers(c echo.Context) error {
	workers, err := s.gw.ListWorkers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, workers)
}

// apiJobs lists open jobs annotated with the caller's application status.
//
// @Summary      List open jobs
// @Tags         jobs
// @Produce      json
// @Success      200  {array}   domain.Job
// @Failure      401  {object}  errorResponse
// @Router       /api/v1/jobs [get]
func (s *Server) apiJobs(c echo.Context) error {
	us := currentSession(c)
	jobs, err := s.gw.ListJobs(c.Request().Context(), us.Store.Token())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, jobs)
}

// apiApply applies the caller to a job.
//
// @Summary      Apply to a job
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  errorResponse
// @Router       /api/v1/jobs/{id}/apply [post]
func (s *Server) apiApply(c echo.Context) error {
	us := currentSession(c)
	if err := s.gw.ApplyToJob(c.Request().Context(), us.Store.Token(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "applied"})
}

// apiPublishJob publishes a new job owned by the caller.
//
// @Summary      Publish a job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        body  body      publishJobBody  true  "Job details"
// @Success      201   {object}  domain.Job
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/v1/jobs [post]
func (s *Server) apiPublishJob(c echo.Context) error {
	var body publishJobBody
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	us := currentSession(c)
	job, err := s.gw.PostJob(c.Request().Context(), us.Store.Token(), body.Title, body.Description)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, job)
}

// apiMyPostedJobs lists the caller's jobs with applicants.
//
// @Summary      My posted jobs with applicants
// @Tags         jobs
// @Produce      json
// @Success      200  {array}   domain.JobWithApplicants
// @Failure      401  {object}  errorResponse
// @Router       /api/v1/my-posted-jobs [get]
func (s *Server) apiMyPostedJobs(c echo.Context) error {
	us := currentSession(c)
	jobs, err := s.gw.MyPostedJobs(c.Request().Context(), us.Store.Token())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, jobs)
}
