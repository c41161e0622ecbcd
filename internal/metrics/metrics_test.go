package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func newTestMetrics(t *testing.T) *Metrics {
	t.Helper()
	m, err := NewMetrics(prometheus.NewRegistry())
	if err != nil {
		t.Fatalf("failed to create metrics: %v", err)
	}
	return m
}

func TestMetrics_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	if _, err := NewMetrics(reg); err != nil {
		t.Fatalf("failed to create metrics: %v", err)
	}
	if _, err := NewMetrics(reg); err == nil {
		t.Error("expected an error registering the same collectors twice")
	}
}

func TestMetrics_Polls(t *testing.T) {
	m := newTestMetrics(t)

	m.RecordPoll("success")
	m.RecordPoll("success")
	m.RecordPoll("stale")

	if val := getCounterValue(t, m.Polls, "success"); val != 2 {
		t.Errorf("expected 2, got %f", val)
	}
	if val := getCounterValue(t, m.Polls, "stale"); val != 1 {
		t.Errorf("expected 1, got %f", val)
	}
}

func TestMetrics_RunningState(t *testing.T) {
	m := newTestMetrics(t)

	m.SetRunning(true)
	if val := getGaugeValue(t, m.BackupRunning); val != 1 {
		t.Errorf("expected 1, got %f", val)
	}

	m.SetRunning(false)
	if val := getGaugeValue(t, m.BackupRunning); val != 0 {
		t.Errorf("expected 0, got %f", val)
	}

	m.SetPollInterval(5 * time.Second)
	if val := getGaugeValue(t, m.PollInterval); val != 5 {
		t.Errorf("expected 5, got %f", val)
	}

	m.RecordStateChange()
	var metric dto.Metric
	if err := m.StateChanges.Write(&metric); err != nil {
		t.Fatalf("failed to write metric: %v", err)
	}
	if val := metric.GetCounter().GetValue(); val != 1 {
		t.Errorf("expected 1, got %f", val)
	}
}

func TestMetrics_TasksAndNotifications(t *testing.T) {
	m := newTestMetrics(t)

	m.RecordTaskPoll("transient")
	m.RecordTaskOutcome("succeeded")
	m.RecordNotification("error")
	m.RecordNotificationDropped()

	if val := getCounterValue(t, m.TaskPolls, "transient"); val != 1 {
		t.Errorf("expected 1, got %f", val)
	}
	if val := getCounterValue(t, m.TaskOutcomes, "succeeded"); val != 1 {
		t.Errorf("expected 1, got %f", val)
	}
	if val := getCounterValue(t, m.Notifications, "error"); val != 1 {
		t.Errorf("expected 1, got %f", val)
	}

	var metric dto.Metric
	if err := m.NotifyDropped.Write(&metric); err != nil {
		t.Fatalf("failed to write metric: %v", err)
	}
	if val := metric.GetCounter().GetValue(); val != 1 {
		t.Errorf("expected 1, got %f", val)
	}
}

func TestMetrics_RestoreDuration(t *testing.T) {
	m := newTestMetrics(t)

	m.RecordRestoreDuration("completed", 90*time.Second)
	m.RecordRestoreDuration("completed", 30*time.Second)

	count, sum := getHistogramValues(t, m.RestoreDuration, "completed")
	if count != 2 {
		t.Errorf("expected count 2, got %d", count)
	}
	if sum != 120 {
		t.Errorf("expected sum 120, got %f", sum)
	}
}

func getCounterValue(t *testing.T, counter *prometheus.CounterVec, label string) float64 {
	t.Helper()
	var m dto.Metric
	if err := counter.WithLabelValues(label).(prometheus.Metric).Write(&m); err != nil {
		t.Fatalf("failed to write metric: %v", err)
	}
	return m.GetCounter().GetValue()
}

func getGaugeValue(t *testing.T, gauge prometheus.Gauge) float64 {
	t.Helper()
	var m dto.Metric
	if err := gauge.Write(&m); err != nil {
		t.Fatalf("failed to write metric: %v", err)
	}
	return m.GetGauge().GetValue()
}

func getHistogramValues(t *testing.T, hist *prometheus.HistogramVec, label string) (uint64, float64) {
	t.Helper()
	observer := hist.WithLabelValues(label)
	var m dto.Metric
	if err := observer.(prometheus.Metric).Write(&m); err != nil {
		t.Fatalf("failed to write metric: %v", err)
	}
	return m.GetHistogram().GetSampleCount(), m.GetHistogram().GetSampleSum()
}
