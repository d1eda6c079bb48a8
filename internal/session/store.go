// Package session tracks the client-side authentication state: the bearer
// token issued by the marketplace API and the identity it belongs to.
// In-memory state lives in Store; the token alone is persisted through a
// ports.TokenStore so it survives process restarts.
package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/workling/portal/internal/core/domain"
	"github.com/workling/portal/internal/core/ports"
)

// Store holds one session. Safe for concurrent use; the web portal shares a
// Store between every request of the same browser session.
type Store struct {
	mu      sync.RWMutex
	session domain.Session

	tokens ports.TokenStore
	log    zerolog.Logger
}

// NewStore creates an empty Store persisting through tokens. A nil tokens
// store is allowed and makes the session purely in-memory.
func NewStore(tokens ports.TokenStore, log zerolog.Logger) *Store {
	return &Store{tokens: tokens, log: log}
}

// Login records a freshly issued token and its resolved user, and persists
// the token. The in-memory state is updated even when persistence fails, so
// the current page session keeps working; the error reports that the next
// process start will not restore it.
func (s *Store) Login(ctx context.Context, token string, user *domain.User) error {
	s.mu.Lock()
	s.session = domain.Session{Token: token, User: user}
	s.mu.Unlock()

	if s.tokens == nil {
		return nil
	}
	if err := s.tokens.Save(ctx, token); err != nil {
		return fmt.Errorf("session: persist token: %w", err)
	}
	return nil
}

// Logout clears the in-memory session and removes the persisted token. The
// token itself is never revoked server-side; invalidation is purely local.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.session = domain.Session{}
	s.mu.Unlock()

	if s.tokens == nil {
		return nil
	}
	if err := s.tokens.Clear(ctx); err != nil {
		return fmt.Errorf("session: clear token: %w", err)
	}
	return nil
}

// Restore loads a previously persisted token, if any. The token's claims are
// inspected (without signature verification, the client does not hold the
// server secret) to discard expired tokens and to pre-populate whatever
// identity the claims carry. An opaque token is kept with an unresolved user.
func (s *Store) Restore(ctx context.Context) error {
	if s.tokens == nil {
		return nil
	}
	token, err := s.tokens.Load(ctx)
	if err != nil {
		return fmt.Errorf("session: load token: %w", err)
	}
	if token == "" {
		return nil
	}

	user, err := identityFromToken(token)
	if err == domain.ErrTokenExpired {
		s.log.Info().Msg("discarding expired session token")
		if cerr := s.tokens.Clear(ctx); cerr != nil {
			return fmt.Errorf("session: clear expired token: %w", cerr)
		}
		return nil
	}
	if err != nil {
		// Not a JWT, or claims unreadable. Keep the token opaque; the
		// server will reject it if it is stale.
		s.log.Debug().Err(err).Msg("session token claims unreadable")
		user = nil
	}

	s.mu.Lock()
	s.session = domain.Session{Token: token, User: user}
	s.mu.Unlock()
	return nil
}

// Token returns the current bearer token, or "" when unauthenticated.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.Token
}

// CurrentUser returns the resolved user, or nil. A restored session can be
// authenticated with a nil user until a login resolves the identity.
func (s *Store) CurrentUser() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.User
}

// IsAuthenticated reports whether a token is present.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.Authenticated()
}
