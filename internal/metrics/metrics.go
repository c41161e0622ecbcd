// Package metrics exposes Prometheus metrics for the poller, the task
// watcher and the notifier.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "burpwatch"

type Metrics struct {
	Polls           *prometheus.CounterVec
	StateChanges    prometheus.Counter
	BackupRunning   prometheus.Gauge
	PollInterval    prometheus.Gauge
	TaskPolls       *prometheus.CounterVec
	TaskOutcomes    *prometheus.CounterVec
	Notifications   *prometheus.CounterVec
	NotifyDropped   prometheus.Counter
	RestoreDuration *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Polls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "polls_total",
			Help:      "Running-state polls by result.",
		}, []string{"result"}),
		StateChanges: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "state_changes_total",
			Help:      "Observed running-state transitions.",
		}),
		BackupRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "backup_running",
			Help:      "1 while burp-ui reports a running backup.",
		}),
		PollInterval: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "poll_interval_seconds",
			Help:      "Interval currently used between scheduled polls.",
		}),
		TaskPolls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "task_polls_total",
			Help:      "Asynchronous task status checks by result.",
		}, []string{"result"}),
		TaskOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "task_outcomes_total",
			Help:      "Watched tasks by final outcome.",
		}, []string{"outcome"}),
		Notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_total",
			Help:      "Notifications raised by level.",
		}, []string{"level"}),
		NotifyDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_dropped_total",
			Help:      "Notifications dropped because the delivery queue was full.",
		}),
		RestoreDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "restore_duration_seconds",
			Help:      "Time from submission to the end of a restore.",
			Buckets:   []float64{5, 15, 30, 60, 120, 300, 600, 1800, 3600},
		}, []string{"status"}),
	}

	collectors := []prometheus.Collector{
		m.Polls, m.StateChanges, m.BackupRunning, m.PollInterval,
		m.TaskPolls, m.TaskOutcomes, m.Notifications, m.NotifyDropped,
		m.RestoreDuration,
	}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func (m *Metrics) RecordPoll(result string) {
	m.Polls.WithLabelValues(result).Inc()
}

func (m *Metrics) RecordStateChange() {
	m.StateChanges.Inc()
}

func (m *Metrics) SetRunning(running bool) {
	if running {
		m.BackupRunning.Set(1)
		return
	}
	m.BackupRunning.Set(0)
}

func (m *Metrics) SetPollInterval(d time.Duration) {
	m.PollInterval.Set(d.Seconds())
}

func (m *Metrics) RecordTaskPoll(result string) {
	m.TaskPolls.WithLabelValues(result).Inc()
}

func (m *Metrics) RecordTaskOutcome(outcome string) {
	m.TaskOutcomes.WithLabelValues(outcome).Inc()
}

func (m *Metrics) RecordNotification(level string) {
	m.Notifications.WithLabelValues(level).Inc()
}

func (m *Metrics) RecordNotificationDropped() {
	m.NotifyDropped.Inc()
}

func (m *Metrics) RecordRestoreDuration(status string, d time.Duration) {
	m.RestoreDuration.WithLabelValues(status).Observe(d.Seconds())
}
