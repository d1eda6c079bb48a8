package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "workling",
	Short: "Client for the Workling freelance marketplace",
	Long: `workling is a client for the Workling freelance marketplace.

It can serve the web portal (workling serve) or drive the marketplace
directly from the terminal: register, login, browse jobs and workers,
post jobs and apply to them.`,
	SilenceUsage:  true,
	SilenceErrors: false,
}

// Execute runs the root command. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
