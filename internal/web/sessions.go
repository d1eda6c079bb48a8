package web

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/workling/portal/internal/core/ports"
	"github.com/workling/portal/internal/metrics"
	"github.com/workling/portal/internal/session"
	"github.com/workling/portal/internal/view"
)

// userSession bundles everything the portal keeps per browser session: the
// session store plus the two dashboard view-models bound to it.
type userSession struct {
	Store    *session.Store
	Worker   *view.WorkerDashboard
	Employer *view.EmployerDashboard
}

// TokenStoreFactory builds the durable token store for one browser session.
type TokenStoreFactory func(sessionID string) ports.TokenStore

// RedisTokenStores is the production factory: tokens live in Redis, scoped
// per session ID.
func RedisTokenStores(rdb *redis.Client, ttl time.Duration) TokenStoreFactory {
	return func(sessionID string) ports.TokenStore {
		return session.NewRedisTokenStore(rdb, sessionID, ttl)
	}
}

// SessionManager maps the browser session cookie to its userSession.
// In-memory state is rebuilt lazily after a restart; only the token is
// durable, through the configured TokenStoreFactory.
type SessionManager struct {
	mu       sync.Mutex
	sessions map[string]*userSession

	gw         ports.Gateway
	tokens     TokenStoreFactory
	cookieName string
	ttl        time.Duration
	log        zerolog.Logger
}

func NewSessionManager(gw ports.Gateway, tokens TokenStoreFactory, cookieName string, ttl time.Duration, log zerolog.Logger) *SessionManager {
	return &SessionManager{
		sessions:   make(map[string]*userSession),
		gw:         gw,
		tokens:     tokens,
		cookieName: cookieName,
		ttl:        ttl,
		log:        log,
	}
}

// Get returns the userSession for the request, creating the browser session
// (and its cookie) when absent. A freshly built session attempts a token
// restore from Redis so an authenticated user survives portal restarts.
//
// Only authenticated sessions enter the map. Anonymous page views (and
// requests carrying made-up cookie values) get a transient session that is
// rebuilt per request, so unauthenticated traffic cannot grow the map.
func (m *SessionManager) Get(c echo.Context) *userSession {
	id := m.sessionID(c)

	m.mu.Lock()
	if us, ok := m.sessions[id]; ok {
		m.mu.Unlock()
		return us
	}
	m.mu.Unlock()

	store := session.NewStore(m.tokens(id), m.log)
	if err := store.Restore(c.Request().Context()); err != nil {
		m.log.Warn().Err(err).Msg("session restore failed")
	}
	us := &userSession{
		Store:    store,
		Worker:   view.NewWorkerDashboard(m.gw, store),
		Employer: view.NewEmployerDashboard(m.gw, store),
	}
	if !store.IsAuthenticated() {
		return us
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.sessions[id]; ok {
		return existing
	}
	m.sessions[id] = us
	metrics.SessionsActive.Set(float64(len(m.sessions)))
	return us
}

// Remember pins a session in the map once a login upgrades it. Get hands out
// transient sessions to anonymous requests, so the login handler must call
// this for the session to be found again on the next request.
func (m *SessionManager) Remember(c echo.Context, us *userSession) {
	id := m.sessionID(c)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[id] = us
	metrics.SessionsActive.Set(float64(len(m.sessions)))
}

// Drop forgets the in-memory state of the request's session. Used after
// logout so the next request starts from a clean slate.
func (m *SessionManager) Drop(c echo.Context) {
	cookie, err := c.Cookie(m.cookieName)
	if err != nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, cookie.Value)
	metrics.SessionsActive.Set(float64(len(m.sessions)))
}

// sessionID reads the session cookie, minting one when missing.
func (m *SessionManager) sessionID(c echo.Context) string {
	if cookie, err := c.Cookie(m.cookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	id := newSessionID()
	c.SetCookie(&http.Cookie{
		Name:     m.cookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

func newSessionID() string {
	buf := make([]byte, 16)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}
