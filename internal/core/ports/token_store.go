package ports

import "context"

// TokenStore persists the single opaque session token between process runs.
// Implementations store exactly one token per logical session: the CLI keeps
// a file under the user config dir, the web portal keys tokens by browser
// session in Redis.
type TokenStore interface {
	// Save persists the token, replacing any previous one.
	Save(ctx context.Context, token string) error
	// Load returns the persisted token, or "" when none is stored.
	Load(ctx context.Context) (string, error)
	// Clear removes the persisted token. Clearing an empty store is a no-op.
	Clear(ctx context.Context) error
}
