package cmd

import (
	"context"
	"fmt"

	"github.com/workling/portal/internal/gateway"
	"github.com/workling/portal/internal/pkg/config"
	"github.com/workling/portal/internal/session"
	"github.com/workling/portal/pkg/logger"
)

// cli bundles the dependencies every terminal command needs: config, the
// marketplace gateway and a session backed by the token file.
type cli struct {
	cfg  *config.Config
	gw   *gateway.Client
	sess *session.Store
}

// newCLI builds the client stack and restores any persisted session so
// authenticated commands work straight away.
func newCLI(ctx context.Context) (*cli, error) {
	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.Env == "development"})

	gw, err := gateway.New(cfg.APIBaseURL, cfg.HTTPTimeout, log)
	if err != nil {
		return nil, err
	}

	tokens, err := session.NewFileTokenStore(cfg.Session.TokenPath)
	if err != nil {
		return nil, err
	}
	sess := session.NewStore(tokens, log)
	if err := sess.Restore(ctx); err != nil {
		return nil, err
	}

	return &cli{cfg: cfg, gw: gw, sess: sess}, nil
}

// requireSession fails fast when no token is available.
func (c *cli) requireSession() error {
	if !c.sess.IsAuthenticated() {
		return fmt.Errorf("not logged in, run: workling login")
	}
	return nil
}
