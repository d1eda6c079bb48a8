// Package web is the server-rendered front-end of the Workling portal:
// landing, login, register and the two role dashboards, plus a small JSON
// surface for programmatic use. All marketplace data comes through the
// gateway; the portal owns nothing but session state.
package web

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	_ "github.com/workling/portal/docs"
	"github.com/workling/portal/internal/core/domain"
	"github.com/workling/portal/internal/core/ports"
	"github.com/workling/portal/internal/pkg/config"
)

// Server wires the echo instance, the session manager and the gateway.
type Server struct {
	echo     *echo.Echo
	gw       ports.Gateway
	sessions *SessionManager
	rdb      *redis.Client
	log      zerolog.Logger
	port     string
}

// NewServer builds the portal's HTTP front-end with all routes registered.
func NewServer(cfg *config.Config, gw ports.Gateway, rdb *redis.Client, log zerolog.Logger) (*Server, error) {
	e := echo.New()
	e.HideBanner = true

	renderer, err := NewRenderer()
	if err != nil {
		return nil, err
	}
	e.Renderer = renderer
	e.Validator = NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("workling"))

	s := &Server{
		echo:     e,
		gw:       gw,
		sessions: NewSessionManager(gw, RedisTokenStores(rdb, cfg.Session.TTL), cfg.Session.CookieName, cfg.Session.TTL, log),
		rdb:      rdb,
		log:      log,
		port:     cfg.Port,
	}
	s.routes()
	return s, nil
}

func (s *Server) routes() {
	e := s.echo

	// --- Public pages ---
	e.GET("/", s.handleLanding)
	e.GET("/login", s.handleLoginPage)
	e.POST("/login", s.handleLogin)
	e.GET("/register", s.handleRegisterPage)
	e.POST("/register", s.handleRegister)
	e.POST("/logout", s.handleLogout)

	// --- Guarded dashboards ---
	guard := RequireSession(s.sessions)

	worker := e.Group("/worker", guard, RequireRole(domain.RoleWorker))
	worker.GET("/dashboard", s.handleWorkerDashboard)
	worker.POST("/apply/:id", s.handleApply)

	employer := e.Group("/employer", guard, RequireRole(domain.RoleEmployer))
	employer.GET("/dashboard", s.handleEmployerDashboard)
	employer.POST("/jobs", s.handleCreateJob)

	// --- JSON API ---
	e.GET("/api/v1/workers", s.apiWorkers) // unauthenticated, like the remote

	api := e.Group("/api/v1", guard)
	api.GET("/session", s.apiSession)
	api.GET("/jobs", s.apiJobs, RequireRole(domain.RoleWorker))
	api.POST("/jobs/:id/apply", s.apiApply, RequireRole(domain.RoleWorker))
	api.POST("/jobs", s.apiPublishJob, RequireRole(domain.RoleEmployer))
	api.GET("/my-posted-jobs", s.apiMyPostedJobs, RequireRole(domain.RoleEmployer))

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)
	e.GET("/health", s.handleLiveness)
	e.GET("/health/ready", s.handleReadiness)
}

// Start blocks serving HTTP until the listener fails.
func (s *Server) Start() error {
	s.log.Info().Str("port", s.port).Msg("portal listening")
	return s.echo.Start(":" + s.port)
}

// Echo exposes the underlying echo instance for tests.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}
