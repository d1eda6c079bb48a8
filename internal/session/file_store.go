package session

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileTokenStore keeps the single session token in a file under the user
// config dir. This is the terminal-client analogue of a browser's local
// storage: one opaque string at a fixed key.
type FileTokenStore struct {
	path string
}

// NewFileTokenStore creates a store at path. An empty path defaults to
// <user config dir>/workling/token.
func NewFileTokenStore(path string) (*FileTokenStore, error) {
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("session: resolve config dir: %w", err)
		}
		path = filepath.Join(dir, "workling", "token")
	}
	return &FileTokenStore{path: path}, nil
}

func (f *FileTokenStore) Save(_ context.Context, token string) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return fmt.Errorf("session: create token dir: %w", err)
	}
	if err := os.WriteFile(f.path, []byte(token+"\n"), 0o600); err != nil {
		return fmt.Errorf("session: write token: %w", err)
	}
	return nil
}

func (f *FileTokenStore) Load(_ context.Context) (string, error) {
	raw, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("session: read token: %w", err)
	}
	return strings.TrimSpace(string(raw)), nil
}

func (f *FileTokenStore) Clear(_ context.Context) error {
	err := os.Remove(f.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("session: remove token: %w", err)
	}
	return nil
}
