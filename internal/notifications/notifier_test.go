package notifications

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"burpwatch/internal/models"
	"burpwatch/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	mu    sync.Mutex
	got   []models.Notification
	err   error
	block chan struct{}
}

func (s *recordingSink) Name() string { return "recording" }

func (s *recordingSink) Send(ctx context.Context, n models.Notification) error {
	if s.block != nil {
		<-s.block
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.got = append(s.got, n)
	return s.err
}

func (s *recordingSink) messages() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.got))
	for _, n := range s.got {
		out = append(out, n.Message)
	}
	return out
}

type panickingSink struct{}

func (panickingSink) Name() string { return "panicking" }

func (panickingSink) Send(context.Context, models.Notification) error {
	panic("sink exploded")
}

type countingRecorder struct {
	mu      sync.Mutex
	levels  map[string]int
	dropped int
}

func (r *countingRecorder) RecordNotification(level string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.levels == nil {
		r.levels = make(map[string]int)
	}
	r.levels[level]++
}

func (r *countingRecorder) RecordNotificationDropped() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.dropped++
}

func TestDispatcher_DeliversToSinksAndFeed(t *testing.T) {
	clk := testutil.NewFakeClock()
	feed := NewFeed(10)
	first := &recordingSink{}
	second := &recordingSink{err: errors.New("unreachable")}
	rec := &countingRecorder{}

	d := NewDispatcher(DispatcherOptions{Clock: clk, Feed: feed, Metrics: rec}, first, panickingSink{}, second)

	d.Notify(models.LevelError, "Unable to check running backups", 10*time.Second)
	d.Notify(models.LevelSuccess, "Restore ready", 0)
	d.Close()

	assert.Equal(t, []string{"Unable to check running backups", "Restore ready"}, first.messages())
	assert.Equal(t, []string{"Unable to check running backups", "Restore ready"}, second.messages())

	items := feed.List(clk.Now(), false)
	require.Len(t, items, 2)
	assert.Equal(t, "Restore ready", items[0].Message)
	assert.Equal(t, int64(2), items[0].ID)
	require.NotNil(t, items[0].ExpiresAt)
	assert.Equal(t, clk.Now().Add(5*time.Second), *items[0].ExpiresAt, "zero timeout uses the default")
	assert.Equal(t, clk.Now().Add(10*time.Second), *items[1].ExpiresAt)

	assert.Equal(t, 1, rec.levels["error"])
	assert.Equal(t, 1, rec.levels["success"])
}

func TestDispatcher_NegativeTimeoutIsSticky(t *testing.T) {
	clk := testutil.NewFakeClock()
	feed := NewFeed(10)
	d := NewDispatcher(DispatcherOptions{Clock: clk, Feed: feed})
	defer d.Close()

	d.Notify(models.LevelWarning, "sticky", -1)
	d.Notify("", "defaults to info", time.Second)

	clk.Advance(time.Hour)

	items := feed.List(clk.Now(), false)
	require.Len(t, items, 1)
	assert.Equal(t, "sticky", items[0].Message)
	assert.Nil(t, items[0].ExpiresAt)

	all := feed.List(clk.Now(), true)
	require.Len(t, all, 2)
	assert.Equal(t, models.LevelInfo, all[0].Level)
}

func TestDispatcher_NotifyNeverBlocks(t *testing.T) {
	sink := &recordingSink{block: make(chan struct{})}
	rec := &countingRecorder{}
	d := NewDispatcher(DispatcherOptions{QueueSize: 1, Metrics: rec}, sink)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 10; i++ {
			d.Notify(models.LevelInfo, "msg", time.Second)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Notify blocked on a slow sink")
	}

	// One message is held by the worker, one sits in the queue.
	assert.GreaterOrEqual(t, d.Dropped(), int64(8))
	assert.Equal(t, int(d.Dropped()), rec.dropped)

	close(sink.block)
	d.Close()
}

func TestDispatcher_NotifyAfterCloseIsIgnored(t *testing.T) {
	sink := &recordingSink{}
	d := NewDispatcher(DispatcherOptions{}, sink)
	d.Close()
	d.Close()

	assert.NotPanics(t, func() {
		d.Notify(models.LevelError, "late", time.Second)
	})
	assert.Empty(t, sink.messages())
}

func TestLogNotifier_Send(t *testing.T) {
	l := NewLogNotifier()
	assert.Equal(t, "log", l.Name())

	for _, level := range []models.Level{models.LevelError, models.LevelWarning, models.LevelSuccess, models.LevelInfo} {
		assert.NoError(t, l.Send(context.Background(), models.Notification{Level: level, Message: "hello"}))
	}
}

func TestFeed_EvictsOldest(t *testing.T) {
	feed := NewFeed(3)
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	for i := int64(1); i <= 5; i++ {
		feed.Add(models.Notification{ID: i, Message: "m", CreatedAt: now})
	}

	items := feed.List(now, false)
	require.Len(t, items, 3)
	assert.Equal(t, int64(5), items[0].ID)
	assert.Equal(t, int64(4), items[1].ID)
	assert.Equal(t, int64(3), items[2].ID)
	assert.Equal(t, 3, feed.Len())
}

func TestFeed_Empty(t *testing.T) {
	feed := NewFeed(0)

	assert.Empty(t, feed.List(time.Now(), true))
	assert.Equal(t, 0, feed.Len())
}
