// Package redis dials the portal's session backend. Redis holds nothing but
// bearer tokens keyed by browser session; losing it logs every web user out
// and nothing else.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// pingTimeout bounds the startup connectivity check. The portal refuses to
// start without its session backend rather than serving logins it cannot
// persist.
const pingTimeout = 5 * time.Second

// Connect opens a client for the session token backend and verifies it is
// reachable before the portal begins taking requests.
func Connect(ctx context.Context, addr string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("session backend unreachable at %s: %w", addr, err)
	}
	return client, nil
}
