package notifications

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"burpwatch/internal/clock"
	"burpwatch/internal/interfaces"
	"burpwatch/internal/models"
)

// Sink delivers a notification somewhere. Sinks may block; the Dispatcher
// calls them from its own goroutine.
type Sink interface {
	Name() string
	Send(ctx context.Context, n models.Notification) error
}

// Recorder receives notification metrics. A nil Recorder disables metrics.
type Recorder interface {
	RecordNotification(level string)
	RecordNotificationDropped()
}

type DispatcherOptions struct {
	QueueSize      int
	DefaultTimeout time.Duration
	SendTimeout    time.Duration
	Clock          clock.Clock
	Metrics        Recorder
	// Feed, when set, receives every notification synchronously.
	Feed *Feed
}

// Dispatcher is the process-wide Notifier. Notify never blocks: messages go
// to the feed right away and to the sinks through a bounded queue. When the
// queue is full the message is dropped for the sinks and counted.
type Dispatcher struct {
	sinks   []Sink
	feed    *Feed
	queue   chan models.Notification
	clock   clock.Clock
	metrics Recorder
	opts    DispatcherOptions

	nextID  atomic.Int64
	dropped atomic.Int64

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

var _ interfaces.Notifier = (*Dispatcher)(nil)

func NewDispatcher(opts DispatcherOptions, sinks ...Sink) *Dispatcher {
	if opts.QueueSize <= 0 {
		opts.QueueSize = 64
	}
	if opts.DefaultTimeout <= 0 {
		opts.DefaultTimeout = 5 * time.Second
	}
	if opts.SendTimeout <= 0 {
		opts.SendTimeout = 30 * time.Second
	}
	if opts.Clock == nil {
		opts.Clock = clock.Real()
	}
	if opts.Metrics == nil {
		opts.Metrics = nopRecorder{}
	}

	d := &Dispatcher{
		sinks:   sinks,
		feed:    opts.Feed,
		queue:   make(chan models.Notification, opts.QueueSize),
		clock:   opts.Clock,
		metrics: opts.Metrics,
		opts:    opts,
	}

	d.wg.Add(1)
	go d.run()

	return d
}

// Notify records the message. A zero timeout uses the default display time,
// a negative one keeps the message until it is evicted from the feed.
func (d *Dispatcher) Notify(level models.Level, message string, timeout time.Duration) {
	if level == "" {
		level = models.LevelInfo
	}

	now := d.clock.Now()
	n := models.Notification{
		ID:        d.nextID.Add(1),
		Level:     level,
		Message:   message,
		CreatedAt: now,
	}
	if timeout == 0 {
		timeout = d.opts.DefaultTimeout
	}
	if timeout > 0 {
		expires := now.Add(timeout)
		n.ExpiresAt = &expires
	}

	d.metrics.RecordNotification(string(level))
	if d.feed != nil {
		d.feed.Add(n)
	}

	if len(d.sinks) == 0 {
		return
	}

	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		return
	}

	select {
	case d.queue <- n:
	default:
		d.dropped.Add(1)
		d.metrics.RecordNotificationDropped()
		slog.Warn("notification queue full, dropping message", "level", level)
	}
}

// Dropped returns how many messages never reached the sinks.
func (d *Dispatcher) Dropped() int64 {
	return d.dropped.Load()
}

// Close stops accepting messages and waits for the queue to drain.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	d.wg.Wait()
}

func (d *Dispatcher) run() {
	defer d.wg.Done()

	for n := range d.queue {
		for _, sink := range d.sinks {
			d.deliver(sink, n)
		}
	}
}

func (d *Dispatcher) deliver(sink Sink, n models.Notification) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("notification sink panicked", "sink", sink.Name(), "panic", r)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), d.opts.SendTimeout)
	defer cancel()

	if err := sink.Send(ctx, n); err != nil {
		slog.Warn("failed to deliver notification", "sink", sink.Name(), "error", err)
	}
}

// LogNotifier writes notifications to the structured log.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (l *LogNotifier) Name() string {
	return "log"
}

func (l *LogNotifier) Send(ctx context.Context, n models.Notification) error {
	attrs := []any{"notification_id", n.ID, "message", n.Message}
	switch n.Level {
	case models.LevelError:
		slog.ErrorContext(ctx, "notification", attrs...)
	case models.LevelWarning:
		slog.WarnContext(ctx, "notification", attrs...)
	default:
		slog.InfoContext(ctx, "notification", append(attrs, "level", string(n.Level))...)
	}
	return nil
}

type nopRecorder struct{}

func (nopRecorder) RecordNotification(string)  {}
func (nopRecorder) RecordNotificationDropped() {}
