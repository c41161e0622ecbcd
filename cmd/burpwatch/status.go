package main

import (
	"encoding/json"
	"fmt"
	"os/signal"
	"syscall"

	"burpwatch/internal/models"

	"github.com/spf13/cobra"
)

func newStatusCmd(configPath *string) *cobra.Command {
	var scope models.Scope
	var kind string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Ask burp-ui once whether a backup is running",
		Long: `Performs a single forced poll and prints the resulting snapshot as JSON.
The scope defaults to the poller scope from the configuration.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadConfig(*configPath, false)
			if err != nil {
				return err
			}
			if err := setupLogging(cfg.GetLogging()); err != nil {
				return err
			}
			defer closeLogFile()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			c, err := newComponents(cfg, true)
			if err != nil {
				return err
			}
			defer c.close()

			pollerConfig := cfg.GetPoller()
			target := pollerConfig.Scope
			if kind != "" {
				scope.Kind = models.ScopeKind(kind)
				target = scope
			}

			// Report mode never arms a timer; Start only fixes the scope.
			if err := c.poller.Start(target, pollerConfig.IdleInterval, pollerConfig.FastInterval); err != nil {
				return fmt.Errorf("invalid scope: %w", err)
			}

			if _, err := c.poller.ForcePoll(ctx, true); err != nil {
				return fmt.Errorf("failed to check running state: %w", err)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(c.poller.Snapshot())
		},
	}

	cmd.Flags().StringVar(&kind, "scope", "", "scope kind: global, server or client")
	cmd.Flags().StringVar(&scope.Server, "server", "", "burp server (agent) name")
	cmd.Flags().StringVar(&scope.Client, "client", "", "client name for client scope")

	return cmd
}
