// Package cmd wires the order status color server and its tooling commands.
package cmd

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"orderstatuscolor/server/internal/config"
)

// NewRootCmd builds the command tree. Running without a subcommand starts the server.
func NewRootCmd() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:           "orderstatuscolor",
		Short:         "Order status row colors for the admin order list",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if config.LoadDotEnv(envFiles(envFile)...) {
				log.Debug("Environment loaded from .env")
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", "", "dotenv file to load (default .env)")

	root.AddCommand(newServeCmd(), newColorsCmd())
	return root
}

func envFiles(envFile string) []string {
	if envFile == "" {
		return nil
	}
	return []string{envFile}
}

func setupLogging(cfg *config.Config) {
	log.SetLevel(cfg.Level())
	if cfg.Environment == "production" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}
