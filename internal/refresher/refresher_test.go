package refresher

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"burpwatch/internal/mocks"
	"burpwatch/internal/models"
	"burpwatch/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRegistry_RefreshRunsEveryView(t *testing.T) {
	r := NewRegistry(time.Second, 2)

	var mu sync.Mutex
	var called []string
	record := func(name string) Func {
		return func(ctx context.Context) error {
			mu.Lock()
			defer mu.Unlock()
			called = append(called, name)
			return nil
		}
	}

	r.Register("clients", record("clients"))
	r.Register("servers", record("servers"))
	r.Register("sessions", record("sessions"))

	require.NoError(t, r.Refresh(context.Background()))
	assert.ElementsMatch(t, []string{"clients", "servers", "sessions"}, called)
	assert.Equal(t, []string{"clients", "servers", "sessions"}, r.Names())
}

func TestRegistry_FailuresAreJoined(t *testing.T) {
	r := NewRegistry(time.Second, 0)

	var healthy atomic.Int32
	r.Register("broken", func(ctx context.Context) error { return errors.New("HTTP 500") })
	r.Register("panicky", func(ctx context.Context) error { panic("nil widget") })
	r.Register("healthy", func(ctx context.Context) error {
		healthy.Add(1)
		return nil
	})

	err := r.Refresh(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken: HTTP 500")
	assert.Contains(t, err.Error(), "panicky: panic: nil widget")
	assert.Equal(t, int32(1), healthy.Load())
}

func TestRegistry_Timeout(t *testing.T) {
	r := NewRegistry(10*time.Millisecond, 1)
	r.Register("slow", func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})

	err := r.Refresh(context.Background())
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRegistry_UnregisterAndEmpty(t *testing.T) {
	r := NewRegistry(0, 0)
	assert.NoError(t, r.Refresh(context.Background()))

	r.Register("clients", func(ctx context.Context) error { return errors.New("should not run") })
	r.Unregister("clients")

	assert.Empty(t, r.Names())
	assert.NoError(t, r.OnStateChange(context.Background(), models.RunningState{Running: true}))
}

func TestClientsView_Refresh(t *testing.T) {
	fetcher := mocks.NewMockRunningClientsFetcher(t)
	clk := testutil.NewFakeClock()
	view := NewClientsView(fetcher, "agent1", clk)

	snap := view.Snapshot()
	assert.Nil(t, snap.UpdatedAt)
	assert.Empty(t, snap.Clients)

	fetcher.EXPECT().RunningClients(mock.Anything, "agent1").Return([]string{"web01", "db01"}, nil).Once()
	require.NoError(t, view.Refresh(context.Background()))

	snap = view.Snapshot()
	assert.Equal(t, "agent1", snap.Server)
	assert.Equal(t, []string{"web01", "db01"}, snap.Clients)
	require.NotNil(t, snap.UpdatedAt)
	assert.Equal(t, clk.Now(), *snap.UpdatedAt)

	// A failed refresh keeps the last good list.
	clk.Advance(time.Minute)
	fetcher.EXPECT().RunningClients(mock.Anything, "agent1").Return(nil, errors.New("connection refused")).Once()
	err := view.Refresh(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to refresh running clients")

	snap = view.Snapshot()
	assert.Equal(t, []string{"web01", "db01"}, snap.Clients)
	assert.Equal(t, clk.Now().Add(-time.Minute), *snap.UpdatedAt)
}

func TestClientsView_ConcurrentRefreshSharesRequest(t *testing.T) {
	fetcher := mocks.NewMockRunningClientsFetcher(t)
	view := NewClientsView(fetcher, "", nil)

	release := make(chan struct{})
	entered := make(chan struct{})
	fetcher.EXPECT().
		RunningClients(mock.Anything, "").
		RunAndReturn(func(ctx context.Context, server string) ([]string, error) {
			close(entered)
			<-release
			return []string{"web01"}, nil
		}).
		Once()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		assert.NoError(t, view.Refresh(context.Background()))
	}()
	<-entered

	wg.Add(1)
	go func() {
		defer wg.Done()
		assert.NoError(t, view.Refresh(context.Background()))
	}()

	// Give the second caller time to join the in-flight request.
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, []string{"web01"}, view.Snapshot().Clients)
}

func TestHistoryRecorder_Record(t *testing.T) {
	repo := testutil.SetupTestDB(t)
	clk := testutil.NewFakeClock()
	scope := models.Scope{Kind: models.ScopeServer, Server: "agent1"}
	h := NewHistoryRecorder(repo, func() models.Scope { return scope }, 2, clk)

	states := []models.RunningState{
		{Running: true, Phase: "backup", Percent: 10, Clients: []string{"web01"}},
		{Running: true, Phase: "backup", Percent: 60, Clients: []string{"web01"}},
		{Running: false},
	}
	for _, s := range states {
		require.NoError(t, h.Record(context.Background(), s))
		clk.Advance(time.Second)
	}

	events, err := repo.GetStatusEvents(models.StatusEventFilter{})
	require.NoError(t, err)
	require.Len(t, events, 2, "history is pruned to the newest rows")

	assert.Equal(t, "server:agent1", events[0].Scope)
	assert.False(t, events[0].Running)
	assert.Equal(t, 60, events[1].Percent)
	assert.Equal(t, models.ClientList{"web01"}, events[1].Clients)
}

func TestHistoryRecorder_RepositoryError(t *testing.T) {
	repo := mocks.NewMockStatusEventRepository(t)
	h := NewHistoryRecorder(repo, nil, 10, nil)

	repo.EXPECT().CreateStatusEvent(mock.MatchedBy(func(e *models.StatusEvent) bool {
		return e.Scope == "global" && e.Running
	})).Return(errors.New("disk I/O error")).Once()

	err := h.Record(context.Background(), models.RunningState{Running: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to record status event")
}
