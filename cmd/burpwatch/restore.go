package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"burpwatch/internal/models"
	"burpwatch/internal/repository"

	"github.com/spf13/cobra"
)

func newRestoreCmd(configPath *string) *cobra.Command {
	var req models.RestoreRequest

	cmd := &cobra.Command{
		Use:   "restore",
		Short: "Restore files from a backup and download the archive",
		Long: `Submits an asynchronous archive restore to burp-ui, waits for the task
to finish and downloads the archive into the configured download directory.
Interrupting the command cancels the task on burp-ui.`,
		Example: `  burpwatch restore --client web01 --backup 42 --path /etc/ --path /home/bob/notes.txt
  burpwatch restore --client web01 --backup 42 --server agent1 --path / --format tar.gz`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRestore(cmd, *configPath, req)
		},
	}

	cmd.Flags().StringVar(&req.Client, "client", "", "client to restore from (required)")
	cmd.Flags().IntVar(&req.Backup, "backup", 0, "backup number (required)")
	cmd.Flags().StringVar(&req.Server, "server", "", "burp server (agent) name")
	cmd.Flags().StringArrayVar(&req.Paths, "path", nil, "file or directory to restore, repeatable (required)")
	cmd.Flags().IntVar(&req.Strip, "strip", 0, "number of leading path components to strip")
	cmd.Flags().StringVar(&req.Format, "format", "", "archive format: zip, tar.gz or tar.bz2")
	cmd.Flags().StringVar(&req.Password, "password", "", "encryption password of the backup")
	cmd.MarkFlagRequired("client")
	cmd.MarkFlagRequired("backup")
	cmd.MarkFlagRequired("path")

	return cmd
}

func runRestore(cmd *cobra.Command, configFlag string, req models.RestoreRequest) error {
	cfg, _, err := loadConfig(configFlag, false)
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

	repo, err := repository.New(cfg.GetDatabase().Path)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer repo.Close()

	// One poll so the gatekeeper knows whether a backup is running.
	pollerConfig := cfg.GetPoller()
	scope := models.Scope{Kind: models.ScopeGlobal, Server: req.Server}
	if req.Server != "" {
		scope.Kind = models.ScopeServer
	}
	if err := c.poller.Start(scope, pollerConfig.IdleInterval, pollerConfig.FastInterval); err != nil {
		return err
	}
	if _, err := c.poller.ForcePoll(ctx, true); err != nil {
		slog.Warn("could not check running state before restore", "error", err)
	}

	service, _ := c.restoreStack(repo)
	defer service.Shutdown()

	restore, err := service.StartRestore(ctx, req)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "restore %s started (task %s)\n", restore.ID, restore.TaskID)

	final, err := service.Wait(ctx, restore.ID)
	if err != nil {
		if ctx.Err() == nil {
			return err
		}
		cancelCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if cerr := service.CancelRestore(cancelCtx, restore.ID); cerr != nil {
			slog.Warn("failed to cancel restore", "id", restore.ID, "error", cerr)
		}
		return fmt.Errorf("restore %s interrupted", restore.ID)
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(final); err != nil {
		return err
	}

	if final.Status != models.RestoreStatusCompleted {
		return fmt.Errorf("restore %s %s: %s", final.ID, final.Status, final.ErrorMessage)
	}
	return nil
}
