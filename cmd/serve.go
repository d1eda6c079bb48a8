package cmd

import (
	"github.com/spf13/cobra"

	"github.com/workling/portal/internal/gateway"
	"github.com/workling/portal/internal/infrastructure/redis"
	"github.com/workling/portal/internal/pkg/config"
	"github.com/workling/portal/internal/web"
	"github.com/workling/portal/pkg/logger"
)

// serveCmd starts the web portal.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the Workling web portal",
	Long: `Serve the Workling web portal: the landing, login and register pages
plus the employer and worker dashboards, backed by the remote marketplace
API and a Redis session store.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.Env == "development"})

		gw, err := gateway.New(cfg.APIBaseURL, cfg.HTTPTimeout, log)
		if err != nil {
			return err
		}

		rdb, err := redis.Connect(cmd.Context(), cfg.Redis.Addr, cfg.Redis.DB)
		if err != nil {
			return err
		}
		defer rdb.Close()

		srv, err := web.NewServer(cfg, gw, rdb, log)
		if err != nil {
			return err
		}
		return srv.Start()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
