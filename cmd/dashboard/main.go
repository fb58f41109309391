package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/souvikjs01/unkey/internal/config"
	"github.com/souvikjs01/unkey/pkg/logger"
)

func newRootCmd() *cobra.Command {
	cfg := config.Load()

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Rate limit namespaces dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&cfg.DBPath, "db", cfg.DBPath, "SQLite database path (env DASH_DB_PATH)")
	cmd.PersistentFlags().StringVar(&cfg.Store, "store", cfg.Store, "Repository backend sql|gorm (env DASH_STORE)")
	cmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level debug|info|warn|error (env DASH_LOG_LEVEL)")
	cmd.PersistentFlags().StringVar(&cfg.JWTSecret, "jwt-secret", cfg.JWTSecret, "HS256 session secret (env DASH_JWT_SECRET)")

	cmd.PersistentPreRunE = func(c *cobra.Command, _ []string) error {
		logger.Init(logger.ParseLevel(cfg.LogLevel))
		return nil
	}

	cmd.AddCommand(newCmdServe(&cfg))
	cmd.AddCommand(newCmdMigrate(&cfg))
	cmd.AddCommand(newCmdToken(&cfg))
	cmd.AddCommand(newCmdSeed(&cfg))
	return cmd
}

func main() {
	root := newRootCmd()
	root.SetContext(context.Background())
	if err := root.Execute(); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}
