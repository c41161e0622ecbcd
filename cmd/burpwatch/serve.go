package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"burpwatch/internal/api"
	"burpwatch/internal/burpui"
	"burpwatch/internal/config"
	"burpwatch/internal/models"
	"burpwatch/internal/refresher"
	"burpwatch/internal/repository"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

func newServeCmd(configPath *string) *cobra.Command {
	var skipConnect bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the poller, the restore service and the local API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), *configPath, skipConnect)
		},
	}

	cmd.Flags().BoolVar(&skipConnect, "skip-connect", false, "start without waiting for burp-ui to answer")

	return cmd
}

func runServe(parent context.Context, configFlag string, skipConnect bool) error {
	if parent == nil {
		parent = context.Background()
	}

	cfg, configPath, err := loadConfig(configFlag, true)
	if err != nil {
		return err
	}

	if err := setupLogging(cfg.GetLogging()); err != nil {
		return err
	}
	defer closeLogFile()

	slog.Info("configuration loaded", "config_path", configPath, "version", Version)

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	c, err := newComponents(cfg, false)
	if err != nil {
		return err
	}
	defer c.close()

	if !skipConnect {
		if err := burpui.ConnectWithRetry(ctx, c.client, 0, cfg.GetBurpUI().ConnectTimeout); err != nil {
			return err
		}
	}

	// Initialize database
	repo, err := repository.New(cfg.GetDatabase().Path)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer repo.Close()

	slog.Info("database initialized", "path", cfg.GetDatabase().Path)
	recordVersion(repo)

	restoreService, gk := c.restoreStack(repo)

	// Recover restores left running by a previous process
	if err := restoreService.RecoverInterruptedRestores(); err != nil {
		slog.Warn("failed to recover interrupted restores", "error", err)
	}

	// Views refreshed on every running-state transition
	pollerConfig := cfg.GetPoller()
	clientsView := refresher.NewClientsView(c.client, pollerConfig.Scope.Server, nil)
	views := refresher.NewRegistry(pollerConfig.RequestTimeout, 0)
	views.Register("clients", clientsView.Refresh)

	history := refresher.NewHistoryRecorder(repo, func() models.Scope {
		return c.poller.Snapshot().Scope
	}, cfg.GetDatabase().HistoryLimit, nil)

	c.poller.Register("views", views.OnStateChange)
	c.poller.Register("history", history.Record)

	if err := c.poller.Start(pollerConfig.Scope, pollerConfig.IdleInterval, pollerConfig.FastInterval); err != nil {
		return fmt.Errorf("failed to start poller: %w", err)
	}

	// Setup HTTP server
	router := mux.NewRouter()
	handlers := api.NewHandlers(cfg, api.Dependencies{
		Poller:     c.poller,
		Restores:   restoreService,
		Gatekeeper: gk,
		History:    repo,
		Clients:    clientsView,
		Feed:       c.feed,
		Metrics:    promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{}),
		Version:    Version,
	})
	handlers.RegisterRoutes(router)

	serverConfig := cfg.GetServer()
	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", serverConfig.Host, serverConfig.Port),
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting HTTP server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	go pruneRestores(ctx, repo, cfg)

	// Watch for configuration changes
	go func() {
		configChanges := cfg.WatchForChanges()
		for {
			select {
			case <-ctx.Done():
				return
			case <-configChanges:
				slog.Info("configuration changed, applying logging and poller settings")
				if err := setupLogging(cfg.GetLogging()); err != nil {
					slog.Error("failed to apply logging config", "error", err)
				}
				p := cfg.GetPoller()
				if err := c.poller.Start(p.Scope, p.IdleInterval, p.FastInterval); err != nil {
					slog.Error("failed to restart poller", "error", err)
				}
			}
		}
	}()

	var runErr error
	select {
	case <-ctx.Done():
		slog.Info("shutdown signal received, initiating graceful shutdown")
	case runErr = <-serverErr:
		slog.Error("HTTP server error", "error", runErr)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), serverConfig.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	c.poller.Stop()

	// Running restores stay recorded as running and are picked up on restart
	if err := restoreService.Shutdown(); err != nil {
		slog.Error("restore service shutdown error", "error", err)
	}

	if summary, err := restoreService.GetRestoreSummary(); err == nil && summary.RunningRestores > 0 {
		slog.Info("restores left running for the next start", "count", summary.RunningRestores)
	}

	slog.Info("shutdown completed")
	return runErr
}

const versionKey = "burpwatch_version"

func recordVersion(repo *repository.Repository) {
	previous, err := repo.GetConfig(versionKey)
	switch {
	case err == nil && previous != Version:
		slog.Info("version changed since last start", "previous", previous, "current", Version)
	case err != nil && !errors.Is(err, models.ErrNotFound):
		slog.Warn("failed to read stored version", "error", err)
	}
	if err := repo.SetConfig(versionKey, Version); err != nil {
		slog.Warn("failed to store version", "error", err)
	}
}

// pruneRestores deletes finished restore records older than the configured
// retention, once at start and then daily.
func pruneRestores(ctx context.Context, repo *repository.Repository, cfg *config.Config) {
	prune := func() {
		retention := cfg.GetDatabase().RestoreRetention
		if retention < 0 {
			return
		}
		if _, err := repo.CleanupOldRestores(time.Now().Add(-retention)); err != nil {
			slog.Warn("failed to prune old restores", "error", err)
		}
	}

	prune()
	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			prune()
		}
	}
}
