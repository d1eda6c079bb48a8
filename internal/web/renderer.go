package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"

	"github.com/workling/portal/internal/core/domain"
	"github.com/workling/portal/internal/view"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer serves the embedded HTML templates through echo.
type Renderer struct {
	templates *template.Template
}

func NewRenderer() (*Renderer, error) {
	t, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("web: parse templates: %w", err)
	}
	return &Renderer{templates: t}, nil
}

// Render satisfies echo.Renderer.
func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

// pageData is the common payload every template receives.
type pageData struct {
	Title         string
	Authenticated bool
	User          *domain.User
	DashboardPath string
	Flash         *flash

	// Page-specific state; only the relevant field is set.
	Worker   *view.WorkerSnapshot
	Employer *view.EmployerSnapshot
	ErrorMsg string
}

// newPageData assembles the shared navigation/flash state for a request.
func (s *Server) newPageData(c echo.Context, title string) pageData {
	us := s.sessions.Get(c)
	data := pageData{
		Title:         title,
		Authenticated: us.Store.IsAuthenticated(),
		User:          us.Store.CurrentUser(),
		DashboardPath: "/worker/dashboard",
		Flash:         popFlash(c),
	}
	if data.User.IsEmployer() {
		data.DashboardPath = "/employer/dashboard"
	}
	return data
}
