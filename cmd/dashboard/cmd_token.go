package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/souvikjs01/unkey/internal/auth"
	"github.com/souvikjs01/unkey/internal/config"
	"github.com/souvikjs01/unkey/internal/service"
)

// newCmdToken mints a session token for local use; production sessions come
// from the identity provider.
func newCmdToken(cfg *config.Config) *cobra.Command {
	var (
		orgID  string
		userID string
		ttl    time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a session token for an organization",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := service.NewAuthService(cfg.JWTSecret).IssueToken(auth.Identity{UserID: userID, OrgID: orgID}, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&orgID, "org", "", "Organization ID")
	cmd.Flags().StringVar(&userID, "user", "", "User ID (sub claim)")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "Token lifetime")
	_ = cmd.MarkFlagRequired("org")
	return cmd
}
