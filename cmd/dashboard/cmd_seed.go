package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/souvikjs01/unkey/internal/config"
	"github.com/souvikjs01/unkey/internal/service"
)

func newCmdSeed(cfg *config.Config) *cobra.Command {
	var (
		orgID      string
		workspace  string
		namespaces []string
	)
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create a workspace and namespaces for an organization",
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, svc, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer conn.Close()

			ctx := cmd.Context()
			ws, err := svc.CreateWorkspace(ctx, orgID, workspace)
			switch {
			case errors.Is(err, service.ErrConflict):
				fmt.Fprintf(cmd.OutOrStdout(), "organization %s already has a workspace\n", orgID)
			case err != nil:
				return fmt.Errorf("create workspace: %w", err)
			default:
				fmt.Fprintf(cmd.OutOrStdout(), "workspace %s\n", ws.ID)
			}

			for _, name := range namespaces {
				ns, err := svc.CreateNamespace(ctx, orgID, name)
				if errors.Is(err, service.ErrConflict) {
					fmt.Fprintf(cmd.OutOrStdout(), "namespace %s exists, skipped\n", name)
					continue
				}
				if err != nil {
					return fmt.Errorf("create namespace %s: %w", name, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "namespace %s %s\n", ns.ID, ns.Name)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&orgID, "org", "", "Organization ID")
	cmd.Flags().StringVar(&workspace, "workspace", "default", "Workspace name")
	cmd.Flags().StringSliceVar(&namespaces, "namespace", nil, "Namespace name, repeatable")
	_ = cmd.MarkFlagRequired("org")
	return cmd
}
