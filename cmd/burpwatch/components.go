package main

import (
	"fmt"
	"log/slog"

	"burpwatch/internal/burpui"
	"burpwatch/internal/config"
	"burpwatch/internal/gatekeeper"
	"burpwatch/internal/metrics"
	"burpwatch/internal/notifications"
	"burpwatch/internal/repository"
	"burpwatch/internal/services"
	"burpwatch/internal/status"
	"burpwatch/internal/tasks"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// components holds what every command builds from the configuration.
type components struct {
	cfg        *config.Config
	client     *burpui.Client
	registry   *prometheus.Registry
	metrics    *metrics.Metrics
	feed       *notifications.Feed
	dispatcher *notifications.Dispatcher
	poller     *status.Poller
}

func newComponents(cfg *config.Config, reportMode bool) (*components, error) {
	pollerConfig := cfg.GetPoller()

	client, err := burpui.NewClient(cfg.GetBurpUI(), pollerConfig.NotRunningStatuses)
	if err != nil {
		return nil, fmt.Errorf("failed to create burp-ui client: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m, err := metrics.NewMetrics(registry)
	if err != nil {
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}

	notifConfig := cfg.GetNotifications()
	feed := notifications.NewFeed(notifConfig.FeedSize)

	sinks := []notifications.Sink{notifications.NewPushoverNotifier(cfg)}
	if notifConfig.Log.Enabled {
		sinks = append(sinks, notifications.NewLogNotifier())
	}

	dispatcher := notifications.NewDispatcher(notifications.DispatcherOptions{
		QueueSize:      notifConfig.QueueSize,
		DefaultTimeout: notifConfig.DefaultTimeout,
		Metrics:        m,
		Feed:           feed,
	}, sinks...)

	poller := status.New(client, dispatcher, status.Options{
		ThrottleWindow:     pollerConfig.ThrottleWindow,
		RequestTimeout:     pollerConfig.RequestTimeout,
		ErrorNotifyTimeout: pollerConfig.ErrorNotifyTimeout,
		ReportMode:         reportMode || pollerConfig.ReportMode,
		Metrics:            m,
	})

	if cfg.GetBurpUI().CacheBypass {
		client.SetCacheBypass(poller.IsRunning)
	}

	return &components{
		cfg:        cfg,
		client:     client,
		registry:   registry,
		metrics:    m,
		feed:       feed,
		dispatcher: dispatcher,
		poller:     poller,
	}, nil
}

// restoreStack wires the restore service on top of the shared components.
func (c *components) restoreStack(repo *repository.Repository) (*services.RestoreService, *gatekeeper.Gatekeeper) {
	tasksConfig := c.cfg.GetTasks()

	watcher := tasks.NewWatcher(c.client, c.dispatcher, tasks.Options{
		TransientStatuses: tasksConfig.TransientStatuses,
		RequestTimeout:    tasksConfig.RequestTimeout,
		CancelTimeout:     tasksConfig.CancelTimeout,
		NotifyTimeout:     c.cfg.GetPoller().ErrorNotifyTimeout,
		Metrics:           c.metrics,
	})

	gk := gatekeeper.New(c.cfg, repo, c.poller)
	service := services.NewRestoreService(c.cfg, repo, c.client, gk, c.dispatcher, watcher, c.metrics)
	return service, gk
}

func (c *components) close() {
	c.poller.Stop()
	c.dispatcher.Close()
	if dropped := c.dispatcher.Dropped(); dropped > 0 {
		slog.Warn("notifications dropped", "count", dropped)
	}
}
