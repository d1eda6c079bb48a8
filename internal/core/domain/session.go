package domain

import "errors"

var ErrNoSession = errors.New("no active session")
var ErrTokenExpired = errors.New("session token expired")
var ErrUnauthorized = errors.New("not authorized")
var ErrForbiddenRole = errors.New("role not allowed here")

// Session is the client-side record of the authenticated identity.
//
// Invariant: a session established through login always carries both token
// and user. A session restored from durable storage may hold a token with a
// partially resolved user (whatever identity the token's claims carried).
type Session struct {
	Token string
	User  *User
}

// Authenticated reports whether the session holds a token.
func (s Session) Authenticated() bool { return s.Token != "" }
